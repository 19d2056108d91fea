package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/boardgame-api/internal/config"
	"github.com/phrazzld/boardgame-api/internal/domain"
	"github.com/phrazzld/boardgame-api/internal/platform/memory"
	"github.com/phrazzld/boardgame-api/internal/platform/mongodb"
	"github.com/phrazzld/boardgame-api/internal/platform/postgres"
	"github.com/phrazzld/boardgame-api/internal/platform/sqlite"
	"github.com/phrazzld/boardgame-api/internal/store"
)

// backend is an open document store and the collections served from it.
type backend struct {
	name  string
	games store.Collection[domain.Game]
	users store.Collection[domain.User]
	ping  func(ctx context.Context) error
	close func(ctx context.Context) error
}

// openBackend connects the configured document store, migrating SQL
// backends when requested.
func openBackend(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*backend, error) {
	timeout := time.Duration(cfg.ConnectTimeoutSeconds) * time.Second
	logger = logger.With(slog.String("backend", cfg.Backend))

	switch cfg.Backend {
	case config.BackendMongoDB:
		db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:            cfg.URL,
			Database:       cfg.Name,
			ConnectTimeout: timeout,
		}, logger)
		if err != nil {
			return nil, err
		}
		return &backend{
			name:  cfg.Backend,
			games: mongodb.NewCollection[domain.Game](db.Database(), domain.GameKind.Collection, logger),
			users: mongodb.NewCollection[domain.User](db.Database(), domain.UserKind.Collection, logger),
			ping:  db.Ping,
			close: db.Disconnect,
		}, nil

	case config.BackendPostgres:
		db, err := postgres.Open(ctx, cfg.URL, timeout)
		if err != nil {
			return nil, err
		}
		if cfg.MigrateOnStart {
			if err := postgres.Migrate(ctx, db, logger); err != nil {
				_ = db.Close()
				return nil, err
			}
		}
		logger.Info("database connection established")
		return sqlBackend(cfg.Backend, db,
			postgres.NewCollection[domain.Game](db, domain.GameKind.Collection, logger),
			postgres.NewCollection[domain.User](db, domain.UserKind.Collection, logger),
		), nil

	case config.BackendSQLite:
		db, err := sqlite.Open(ctx, cfg.URL)
		if err != nil {
			return nil, err
		}
		if cfg.MigrateOnStart {
			if err := sqlite.Migrate(ctx, db, logger); err != nil {
				_ = db.Close()
				return nil, err
			}
		}
		logger.Info("database connection established", slog.String("path", cfg.URL))
		return sqlBackend(cfg.Backend, db,
			sqlite.NewCollection[domain.Game](db, domain.GameKind.Collection, logger),
			sqlite.NewCollection[domain.User](db, domain.UserKind.Collection, logger),
		), nil

	case config.BackendMemory:
		logger.Warn("using in-memory store; data is lost on restart")
		return &backend{
			name:  cfg.Backend,
			games: memory.NewCollection[domain.Game](domain.GameKind.Collection, logger),
			users: memory.NewCollection[domain.User](domain.UserKind.Collection, logger),
			ping:  func(context.Context) error { return nil },
			close: func(context.Context) error { return nil },
		}, nil

	default:
		return nil, fmt.Errorf("unsupported database backend %q", cfg.Backend)
	}
}

func sqlBackend(
	name string,
	db *sql.DB,
	games store.Collection[domain.Game],
	users store.Collection[domain.User],
) *backend {
	return &backend{
		name:  name,
		games: games,
		users: users,
		ping:  db.PingContext,
		close: func(context.Context) error { return db.Close() },
	}
}
