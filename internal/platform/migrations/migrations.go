// Package migrations applies embedded goose migrations for the SQL document
// store backends.
package migrations

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/pressly/goose/v3"
)

// slogGooseLogger adapts the goose logger interface to use slog.
type slogGooseLogger struct {
	logger *slog.Logger
}

// Printf implements the goose.Logger Printf method by forwarding messages to slog.Info.
func (l *slogGooseLogger) Printf(format string, v ...any) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

// Fatalf implements the goose.Logger Fatalf method by forwarding messages to slog.Error.
// It does not exit; the provider returns the error to the caller.
func (l *slogGooseLogger) Fatalf(format string, v ...any) {
	l.logger.Error(fmt.Sprintf(format, v...))
}

// Up applies every pending migration found in dir of fsys to db.
func Up(
	ctx context.Context,
	db *sql.DB,
	dialect goose.Dialect,
	fsys fs.FS,
	dir string,
	logger *slog.Logger,
) error {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "migrations"), slog.String("dialect", string(dialect)))

	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		return fmt.Errorf("failed to open migrations directory %s: %w", dir, err)
	}

	provider, err := goose.NewProvider(dialect, db, sub,
		goose.WithLogger(&slogGooseLogger{logger: logger}),
	)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	start := time.Now()
	results, err := provider.Up(ctx)
	if err != nil {
		logger.Error("migration failed", slog.String("error", err.Error()))
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	for _, r := range results {
		logger.Info("applied migration",
			slog.Int64("version", r.Source.Version),
			slog.Int64("duration_ms", r.Duration.Milliseconds()))
	}

	version, err := provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	logger.Info("database schema up to date",
		slog.Int64("version", version),
		slog.Int("applied", len(results)),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()))
	return nil
}
