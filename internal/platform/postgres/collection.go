package postgres

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/boardgame-api/internal/platform/logger"
	"github.com/phrazzld/boardgame-api/internal/store"
)

const (
	findAllQuery = `SELECT id::text, data FROM documents
		WHERE collection = $1
		ORDER BY created_at, id`

	findByIDQuery = `SELECT data FROM documents
		WHERE collection = $1 AND id = $2`

	insertQuery = `INSERT INTO documents (id, collection, data)
		VALUES ($1, $2, $3::jsonb)`

	// updateQuery merges $3 into the stored document and reports how many
	// rows matched and how many actually changed.
	updateQuery = `WITH target AS (
			SELECT id, data FROM documents
			WHERE collection = $1 AND id = $2
			FOR UPDATE
		), updated AS (
			UPDATE documents d
			SET data = d.data || $3::jsonb, updated_at = NOW()
			FROM target t
			WHERE d.id = t.id AND (t.data || $3::jsonb) IS DISTINCT FROM t.data
			RETURNING d.id
		)
		SELECT (SELECT COUNT(*) FROM target), (SELECT COUNT(*) FROM updated)`

	deleteQuery = `DELETE FROM documents
		WHERE collection = $1 AND id = $2`
)

// Collection is a store.Collection backed by the documents table.
type Collection[T any] struct {
	db     store.DBTX
	name   string
	logger *slog.Logger
}

var _ store.Collection[struct{}] = (*Collection[struct{}])(nil)

// NewCollection returns the named collection. It accepts a *sql.DB or a
// *sql.Tx.
func NewCollection[T any](db store.DBTX, name string, logger *slog.Logger) *Collection[T] {
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
			slog.String("component", "postgres_store"),
			slog.String("collection", name),
		),
	}
}

// FindAll returns the documents ordered by creation time.
func (c *Collection[T]) FindAll(ctx context.Context) ([]T, error) {
	rows, err := c.db.QueryContext(ctx, findAllQuery, c.name)
	if err != nil {
		return nil, c.wrap("find", "failed to query documents", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	out := make([]T, 0)
	for rows.Next() {
		var (
			id   string
			data []byte
		)
		if err := rows.Scan(&id, &data); err != nil {
			return nil, c.wrap("find", "failed to scan document", err)
		}
		doc, err := store.FromJSON[T](id, data)
		if err != nil {
			return nil, c.wrap("find", "failed to decode document", err)
		}
		out = append(out, *doc)
	}
	if err := rows.Err(); err != nil {
		return nil, c.wrap("find", "failed to iterate documents", MapError(err))
	}
	return out, nil
}

// FindByID returns the document with the given UUID.
func (c *Collection[T]) FindByID(ctx context.Context, id string) (*T, error) {
	docID, err := uuid.Parse(id)
	if err != nil {
		return nil, store.ErrInvalidID
	}

	var data []byte
	err = c.db.QueryRowContext(ctx, findByIDQuery, c.name, docID).Scan(&data)
	if err != nil {
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, c.wrap("find", "failed to query document", mapped)
	}

	doc, err := store.FromJSON[T](docID.String(), data)
	if err != nil {
		return nil, c.wrap("find", "failed to decode document", err)
	}
	return doc, nil
}

// Insert stores doc under a new UUID.
func (c *Collection[T]) Insert(ctx context.Context, doc *T) (string, error) {
	data, err := encode(doc)
	if err != nil {
		return "", c.wrap("insert", "failed to encode document", err)
	}

	id := uuid.New()
	if _, err := c.db.ExecContext(ctx, insertQuery, id, c.name, data); err != nil {
		return "", c.wrap("insert", "failed to insert document", MapError(err))
	}

	logger.FromContextOrDefault(ctx, c.logger).Debug("document inserted", slog.String("id", id.String()))
	return id.String(), nil
}

// UpdateByID merges the fields of doc into the stored document.
func (c *Collection[T]) UpdateByID(ctx context.Context, id string, doc *T) (store.UpdateResult, error) {
	docID, err := uuid.Parse(id)
	if err != nil {
		return store.UpdateResult{}, store.ErrInvalidID
	}
	data, err := encode(doc)
	if err != nil {
		return store.UpdateResult{}, c.wrap("update", "failed to encode document", err)
	}

	var res store.UpdateResult
	err = c.db.QueryRowContext(ctx, updateQuery, c.name, docID, data).
		Scan(&res.MatchedCount, &res.ModifiedCount)
	if err != nil {
		return store.UpdateResult{}, c.wrap("update", "failed to update document", MapError(err))
	}
	return res, nil
}

// DeleteByID removes the document with the given UUID.
func (c *Collection[T]) DeleteByID(ctx context.Context, id string) (int64, error) {
	docID, err := uuid.Parse(id)
	if err != nil {
		return 0, store.ErrInvalidID
	}

	result, err := c.db.ExecContext(ctx, deleteQuery, c.name, docID)
	if err != nil {
		return 0, c.wrap("delete", "failed to delete document", MapError(err))
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, c.wrap("delete", "failed to get rows affected", err)
	}
	return n, nil
}

func (c *Collection[T]) wrap(operation, message string, err error) error {
	return store.NewStoreError(c.name, operation, message, err)
}

func encode[T any](doc *T) (string, error) {
	raw, err := store.ToJSON(doc)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
