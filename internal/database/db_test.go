package database

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(Options{Driver: "oracle"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported driver")
}

func TestMigrate_IsIdempotent(t *testing.T) {
	db, err := Open(Options{Driver: DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, Migrate(db, DriverSQLite))
	require.NoError(t, Migrate(db, DriverSQLite))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('venues', 'artists', 'shows')`).Scan(&n))
	assert.Equal(t, 3, n)
}

func TestOpen_SQLiteEnforcesForeignKeys(t *testing.T) {
	db, err := Open(Options{Driver: DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, Migrate(db, DriverSQLite))

	_, err = db.Exec(`INSERT INTO shows (start_time, artist_id, venue_id) VALUES ('2030-01-01 20:00:00', 99, 99)`)
	assert.Error(t, err)
}

func TestSQLiteLowerFoldsUnicode(t *testing.T) {
	db, err := Open(Options{Driver: DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	tests := []struct {
		in   any
		want any
	}{
		{"ÉCLAIR Hall", "éclair hall"},
		{"Café ÖDEON", "café ödeon"},
		{"plain", "plain"},
		{nil, nil},
	}
	for _, tt := range tests {
		var got any
		require.NoError(t, db.QueryRow(`SELECT LOWER(?)`, tt.in).Scan(&got))
		assert.Equal(t, tt.want, got)
	}
}

func TestSchema_ShowTimesKeepSubSecondPrecision(t *testing.T) {
	var shows string
	for _, stmt := range mysqlSchema {
		if strings.Contains(stmt, "CREATE TABLE IF NOT EXISTS shows") {
			shows = stmt
		}
	}
	require.NotEmpty(t, shows)
	assert.Contains(t, shows, "start_time DATETIME(6) NOT NULL")

	db, err := Open(Options{Driver: DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, Migrate(db, DriverSQLite))
	_, err = db.Exec(`INSERT INTO venues (name) VALUES ('v')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO artists (name, seeking_description) VALUES ('a', '')`)
	require.NoError(t, err)

	at := time.Date(2030, 1, 1, 20, 0, 0, 123456000, time.UTC)
	_, err = db.Exec(`INSERT INTO shows (start_time, artist_id, venue_id) VALUES (?, 1, 1)`, at)
	require.NoError(t, err)

	var got time.Time
	require.NoError(t, db.QueryRow(`SELECT start_time FROM shows`).Scan(&got))
	assert.True(t, at.Equal(got), "got %s", got)
}
