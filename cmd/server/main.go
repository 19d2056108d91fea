// Package main implements the entry point for the board game catalogue API,
// which serves CRUD endpoints for games and users over a pluggable document
// store.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/boardgame-api/internal/config"
	"github.com/phrazzld/boardgame-api/internal/platform/logger"
)

// @title Board Game Catalogue API
// @version 1.0
// @description CRUD API for board games and the users who play them.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		stop()
		os.Exit(1)
	}
}

// run wires the application together and serves until ctx is cancelled.
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"backend", cfg.Database.Backend,
		"auth_enabled", cfg.Auth.Enabled)

	app, err := newApplication(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer app.cleanup()

	return app.startHTTPServer(ctx, app.setupRouter())
}
