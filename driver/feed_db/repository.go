package feed_db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxIface is the subset of *pgxpool.Pool the repository uses.
type PgxIface interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

type FeedDBRepository struct {
	pool PgxIface
}

func NewFeedDBRepository(pool PgxIface) *FeedDBRepository {
	return &FeedDBRepository{pool: pool}
}

var ErrNilPool = errors.New("database connection pool is nil")

// UniqueViolation reports the constraint name when err is a unique-key violation (SQLSTATE 23505).
func UniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return pgErr.ConstraintName, true
	}
	return "", false
}

func (r *FeedDBRepository) Ping(ctx context.Context) error {
	if r == nil || r.pool == nil {
		return ErrNilPool
	}
	return r.pool.Ping(ctx)
}
