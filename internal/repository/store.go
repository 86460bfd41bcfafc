package repository

import (
	"context"
	"database/sql"
	"errors"
)

// DBTX is the subset of database/sql shared by *sql.DB, *sql.Conn and
// *sql.Tx.  Repositories are bound to one of them so the same queries run
// inside or outside a unit of work.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store owns the connection pool.  It hands out one Session per request;
// nothing read through a session outlives it.
type Store struct {
	db *sql.DB
}

// NewStore constructs a Store over the given pool.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying pool for health checks and migrations.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Session acquires a dedicated connection from the pool.  Callers must
// defer Close on the returned session.
func (s *Store) Session(ctx context.Context) (*Session, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, err
	}
	return &Session{
		conn:    conn,
		Venues:  NewVenueRepo(conn),
		Artists: NewArtistRepo(conn),
		Shows:   NewShowRepo(conn),
	}, nil
}

// Session is the per-request persistence scope.  Reads go through its
// repositories directly; writes go through Transact.
type Session struct {
	conn *sql.Conn

	Venues  *VenueRepo
	Artists *ArtistRepo
	Shows   *ShowRepo
}

// Close returns the connection to the pool.  It is safe to call more than
// once.
func (s *Session) Close() error {
	err := s.conn.Close()
	if errors.Is(err, sql.ErrConnDone) {
		return nil
	}
	return err
}

// UnitOfWork is a pending batch of changes bound to one transaction.
type UnitOfWork struct {
	tx *sql.Tx

	Venues  *VenueRepo
	Artists *ArtistRepo
	Shows   *ShowRepo
}

// Transact runs fn inside a new unit of work and commits it once.  If fn
// or the commit fails the unit of work is rolled back and a *CommitError
// wrapping the cause is returned; no partial writes remain visible.
func (s *Session) Transact(ctx context.Context, op string, fn func(*UnitOfWork) error) (err error) {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return &CommitError{Op: op, Err: err}
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
			err = &CommitError{Op: op, Err: err}
		}
	}()

	uow := &UnitOfWork{
		tx:      tx,
		Venues:  NewVenueRepo(tx),
		Artists: NewArtistRepo(tx),
		Shows:   NewShowRepo(tx),
	}
	if err = fn(uow); err != nil {
		return err
	}
	return tx.Commit()
}
