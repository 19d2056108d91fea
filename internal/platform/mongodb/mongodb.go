package mongodb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Config is the connection configuration for a MongoDB deployment.
type Config struct {
	URI            string        // the mongo connection string
	Database       string        // the database name
	ConnectTimeout time.Duration // bounds connect and the initial ping
}

// DB is a connected MongoDB database handle.
type DB struct {
	client   *mongo.Client
	database *mongo.Database
	logger   *slog.Logger
}

// Connect dials the deployment and verifies it with a ping against the
// primary. The returned DB must be closed with Disconnect.
func Connect(ctx context.Context, cfg Config, logger *slog.Logger) (*DB, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "mongodb"))

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	logger.Info("connected to mongodb", slog.String("database", cfg.Database))
	return &DB{
		client:   client,
		database: client.Database(cfg.Database),
		logger:   logger,
	}, nil
}

// Database returns the configured database.
func (db *DB) Database() *mongo.Database {
	return db.database
}

// Ping checks that the primary is reachable.
func (db *DB) Ping(ctx context.Context) error {
	return db.client.Ping(ctx, readpref.Primary())
}

// Disconnect closes all connections held by the client.
func (db *DB) Disconnect(ctx context.Context) error {
	if err := db.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from mongodb: %w", err)
	}
	db.logger.Info("disconnected from mongodb")
	return nil
}
