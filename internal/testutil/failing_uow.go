package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/swimadmin/internal/db"
)

// FailOnNthExecUoW runs each WithinTx call in a real transaction but fails
// its FailOn-th write with Err. Level map replaces, skill moves and seeding
// issue several writes per transaction; pointing FailOn at one in the middle
// shows whether the earlier ones roll back.
//
// Only ExecContext is counted, starting at 1 for each transaction. Reads
// pass through.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error

	fired atomic.Bool
}

// Fired reports whether the injected error was ever returned.
func (u *FailOnNthExecUoW) Fired() bool { return u.fired.Load() }

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	wrapped := &failingTx{DBTX: tx, uow: u}
	if fnErr := fn(ctx, wrapped); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

type failingTx struct {
	db.DBTX
	uow    *FailOnNthExecUoW
	writes atomic.Int32
}

func (f *failingTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.writes.Add(1) == f.uow.FailOn {
		f.uow.fired.Store(true)
		return nil, f.uow.Err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
