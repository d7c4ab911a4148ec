package store

import (
	"context"
	"database/sql"
)

// DBTX abstracts the database handle a SQL-backed store runs its queries
// against. Both *sql.DB and *sql.Tx satisfy it, so a store can be pointed
// at a plain connection pool or at a caller-managed transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
