// Package testdb connects integration tests to real document stores.
//
// Tests are skipped unless the matching environment variable names a
// reachable server:
//
//	BOARDGAMES_TEST_DATABASE_URL  PostgreSQL DSN (DATABASE_URL is also honoured)
//	BOARDGAMES_TEST_MONGODB_URI   MongoDB connection string
//
// Every test gets its own collection name (Postgres) or database (MongoDB),
// removed again on cleanup, so tests may run in parallel against a shared
// server.
package testdb

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/boardgame-api/internal/platform/mongodb"
	"github.com/phrazzld/boardgame-api/internal/platform/postgres"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

// TestTimeout bounds connection setup and cleanup.
const TestTimeout = 10 * time.Second

// GetTestDatabaseURL returns the PostgreSQL DSN for integration tests, or "".
func GetTestDatabaseURL() string {
	if url := os.Getenv("BOARDGAMES_TEST_DATABASE_URL"); url != "" {
		return url
	}
	return os.Getenv("DATABASE_URL")
}

// GetTestMongoURI returns the MongoDB URI for integration tests, or "".
func GetTestMongoURI() string {
	return os.Getenv("BOARDGAMES_TEST_MONGODB_URI")
}

// UniqueName returns a collection or database name no other test uses.
func UniqueName(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

// Postgres opens and migrates the test database, skipping t when none is
// configured. The connection is closed on cleanup.
func Postgres(t *testing.T) *sql.DB {
	t.Helper()

	dsn := GetTestDatabaseURL()
	if dsn == "" {
		t.Skip("BOARDGAMES_TEST_DATABASE_URL not set - skipping postgres integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	db, err := postgres.Open(ctx, dsn, TestTimeout)
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, postgres.Migrate(ctx, db, quietLogger()), "failed to migrate test database")
	return db
}

// PostgresCollectionName reserves a collection name in db and deletes its
// documents on cleanup.
func PostgresCollectionName(t *testing.T, db *sql.DB) string {
	t.Helper()

	name := UniqueName("test")
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
		defer cancel()
		if _, err := db.ExecContext(ctx, "DELETE FROM documents WHERE collection = $1", name); err != nil {
			t.Logf("failed to clean up collection %s: %v", name, err)
		}
	})
	return name
}

// Mongo connects to the test deployment and returns a fresh database that
// is dropped on cleanup, skipping t when no deployment is configured.
func Mongo(t *testing.T) *mongo.Database {
	t.Helper()

	uri := GetTestMongoURI()
	if uri == "" {
		t.Skip("BOARDGAMES_TEST_MONGODB_URI not set - skipping mongodb integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:            uri,
		Database:       UniqueName("boardgames_test"),
		ConnectTimeout: TestTimeout,
	}, quietLogger())
	require.NoError(t, err, "failed to connect to test deployment")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
		defer cancel()
		if err := db.Database().Drop(ctx); err != nil {
			t.Logf("failed to drop test database: %v", err)
		}
		if err := db.Disconnect(ctx); err != nil {
			t.Logf("failed to disconnect: %v", err)
		}
	})
	return db.Database()
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
