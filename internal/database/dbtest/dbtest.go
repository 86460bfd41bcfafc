// Package dbtest opens throwaway databases for tests.
package dbtest

import (
	"database/sql"
	"testing"

	"github.com/iliyamo/booking-directory/internal/database"
)

// Open returns a migrated in-memory SQLite database that is closed when the
// test finishes.  The pool holds a single connection, so a test must close
// each session before opening the next one.
func Open(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(database.Options{Driver: database.DriverSQLite, Path: ":memory:"})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := database.Migrate(db, database.DriverSQLite); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}
