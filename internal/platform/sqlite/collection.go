package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/boardgame-api/internal/platform/logger"
	"github.com/phrazzld/boardgame-api/internal/store"
)

// Collection is a store.Collection backed by the documents table.
type Collection[T any] struct {
	db     *sql.DB
	name   string
	logger *slog.Logger
}

var _ store.Collection[struct{}] = (*Collection[struct{}])(nil)

// NewCollection returns the named collection.
func NewCollection[T any](db *sql.DB, name string, logger *slog.Logger) *Collection[T] {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Collection[T]{
		db:   db,
		name: name,
		logger: logger.With(
			slog.String("component", "sqlite_store"),
			slog.String("collection", name),
		),
	}
}

// FindAll returns the documents in insertion order.
func (c *Collection[T]) FindAll(ctx context.Context) ([]T, error) {
	rows, err := c.db.QueryContext(ctx,
		"SELECT id, data FROM documents WHERE collection = ? ORDER BY rowid", c.name)
	if err != nil {
		return nil, c.wrap("find", "failed to query documents", err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]T, 0)
	for rows.Next() {
		var id, data string
		if err := rows.Scan(&id, &data); err != nil {
			return nil, c.wrap("find", "failed to scan document", err)
		}
		doc, err := store.FromJSON[T](id, []byte(data))
		if err != nil {
			return nil, c.wrap("find", "failed to decode document", err)
		}
		out = append(out, *doc)
	}
	if err := rows.Err(); err != nil {
		return nil, c.wrap("find", "failed to iterate documents", err)
	}
	return out, nil
}

// FindByID returns the document with the given UUID.
func (c *Collection[T]) FindByID(ctx context.Context, id string) (*T, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	data, err := c.load(ctx, c.db, id)
	if err != nil {
		return nil, err
	}
	doc, err := store.FromJSON[T](id, []byte(data))
	if err != nil {
		return nil, c.wrap("find", "failed to decode document", err)
	}
	return doc, nil
}

// Insert stores doc under a new UUID.
func (c *Collection[T]) Insert(ctx context.Context, doc *T) (string, error) {
	data, err := store.ToJSON(doc)
	if err != nil {
		return "", c.wrap("insert", "failed to encode document", err)
	}

	id := uuid.NewString()
	_, err = c.db.ExecContext(ctx,
		"INSERT INTO documents (id, collection, data) VALUES (?, ?, ?)", id, c.name, string(data))
	if err != nil {
		return "", c.wrap("insert", "failed to insert document", err)
	}

	logger.FromContextOrDefault(ctx, c.logger).Debug("document inserted", slog.String("id", id))
	return id, nil
}

// UpdateByID merges the fields of doc into the stored document within a
// transaction.
func (c *Collection[T]) UpdateByID(ctx context.Context, id string, doc *T) (store.UpdateResult, error) {
	if err := validateID(id); err != nil {
		return store.UpdateResult{}, err
	}
	fields, err := store.ToFields(doc)
	if err != nil {
		return store.UpdateResult{}, c.wrap("update", "failed to encode document", err)
	}

	return store.InTx(ctx, c.db, func(ctx context.Context, tx store.DBTX) (store.UpdateResult, error) {
		var result store.UpdateResult
		data, err := c.load(ctx, tx, id)
		if errors.Is(err, store.ErrNotFound) {
			return result, nil
		}
		if err != nil {
			return result, err
		}
		result.MatchedCount = 1

		var stored map[string]any
		if err := json.Unmarshal([]byte(data), &stored); err != nil {
			return result, c.wrap("update", "failed to decode stored document", err)
		}
		merged, changed, err := store.Merge(stored, fields)
		if err != nil {
			return result, c.wrap("update", "failed to merge document", err)
		}
		if !changed {
			return result, nil
		}

		raw, err := json.Marshal(merged)
		if err != nil {
			return result, c.wrap("update", "failed to encode document", err)
		}
		_, err = tx.ExecContext(ctx,
			"UPDATE documents SET data = ?, updated_at = CURRENT_TIMESTAMP WHERE collection = ? AND id = ?",
			string(raw), c.name, id)
		if err != nil {
			return result, c.wrap("update", "failed to update document", err)
		}
		result.ModifiedCount = 1
		return result, nil
	})
}

// DeleteByID removes the document with the given UUID.
func (c *Collection[T]) DeleteByID(ctx context.Context, id string) (int64, error) {
	if err := validateID(id); err != nil {
		return 0, err
	}

	res, err := c.db.ExecContext(ctx,
		"DELETE FROM documents WHERE collection = ? AND id = ?", c.name, id)
	if err != nil {
		return 0, c.wrap("delete", "failed to delete document", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, c.wrap("delete", "failed to get rows affected", err)
	}
	return n, nil
}

func (c *Collection[T]) load(ctx context.Context, db store.DBTX, id string) (string, error) {
	var data string
	err := db.QueryRowContext(ctx,
		"SELECT data FROM documents WHERE collection = ? AND id = ?", c.name, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return "", store.ErrNotFound
	}
	if err != nil {
		return "", c.wrap("find", "failed to query document", err)
	}
	return data, nil
}

func (c *Collection[T]) wrap(operation, message string, err error) error {
	return store.NewStoreError(c.name, operation, message, err)
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return store.ErrInvalidID
	}
	return nil
}
