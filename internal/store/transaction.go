package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/boardgame-api/internal/platform/logger"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx, so SQL collections can run
// the same queries inside and outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// InTx runs fn inside a transaction on db and returns its result. The
// transaction commits when fn succeeds and rolls back when fn fails or panics.
func InTx[R any](ctx context.Context, db *sql.DB, fn func(ctx context.Context, tx DBTX) (R, error)) (R, error) {
	var zero R
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return zero, fmt.Errorf("failed to begin transaction: %w", err)
	}

	done := false
	defer func() {
		if done {
			return
		}
		if p := recover(); p != nil {
			_ = tx.Rollback()
			log.Error("transaction rolled back after panic", slog.Any("panic", p))
			// ALLOW-PANIC: Re-raising panic after rollback
			panic(p)
		}
	}()

	result, err := fn(ctx, tx)
	if err != nil {
		done = true
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error("rollback failed", slog.String("error", rbErr.Error()))
			return zero, errors.Join(err, fmt.Errorf("failed to roll back transaction: %w", rbErr))
		}
		return zero, err
	}

	done = true
	if err := tx.Commit(); err != nil {
		return zero, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return result, nil
}
