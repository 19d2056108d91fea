package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/phrazzld/boardgame-api/internal/config"
	"github.com/phrazzld/boardgame-api/internal/domain"
	"github.com/phrazzld/boardgame-api/internal/service"
	"github.com/phrazzld/boardgame-api/internal/service/auth"
)

// shutdownTimeout bounds graceful HTTP shutdown and store disconnect.
const shutdownTimeout = 10 * time.Second

// application holds the shared dependencies of the server so they can be
// built once and released together on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	backend *backend

	gameService *service.ResourceService[domain.Game]
	userService *service.ResourceService[domain.User]

	// jwtService is nil when auth is disabled.
	jwtService auth.JWTService
}

// newApplication connects the configured store and builds the services on
// top of it.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	return newApplicationWithClock(ctx, cfg, logger, clock.New())
}

func newApplicationWithClock(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	clk clock.Clock,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	be, err := openBackend(ctx, cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.Database.Backend, err)
	}
	app.backend = be

	app.gameService = service.NewGameService(be.games, logger)
	app.userService = service.NewUserService(be.users, clk, logger)

	if cfg.Auth.Enabled {
		app.jwtService, err = auth.NewJWTService(cfg.Auth, clk)
		if err != nil {
			app.cleanup()
			return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
		}
		logger.Info("JWT authentication enabled for write routes")
	}

	return app, nil
}

// cleanup releases the store connection.
func (app *application) cleanup() {
	if app.backend == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.backend.close(ctx); err != nil {
		app.logger.Error("failed to close store", "error", err)
		return
	}
	app.backend = nil
	app.logger.Info("store connection closed")
}
