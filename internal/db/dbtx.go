package db

import (
	"context"
	"database/sql"
)

// DBTX is what the curriculum repositories query through. A *sql.DB gives
// standalone reads and writes; the *sql.Tx handed out by WithinTx lets a
// level map replace or a skill move run several repositories in one
// transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
