package memory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/boardgame-api/internal/platform/logger"
	"github.com/phrazzld/boardgame-api/internal/store"
)

// Collection stores documents as field maps keyed by UUID. Reads and writes
// go through a JSON round-trip so callers never share memory with the store.
type Collection[T any] struct {
	name   string
	logger *slog.Logger

	mu    sync.RWMutex
	docs  map[string]map[string]any
	order []string
}

var _ store.Collection[struct{}] = (*Collection[struct{}])(nil)

// NewCollection creates an empty collection.
func NewCollection[T any](name string, logger *slog.Logger) *Collection[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Collection[T]{
		name:   name,
		logger: logger.With(slog.String("component", "memory_store"), slog.String("collection", name)),
		docs:   make(map[string]map[string]any),
	}
}

// FindAll returns documents in insertion order.
func (c *Collection[T]) FindAll(ctx context.Context) ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		doc, err := store.FromFields[T](id, c.docs[id])
		if err != nil {
			return nil, store.NewStoreError(c.name, "find", "failed to decode document", err)
		}
		out = append(out, *doc)
	}
	return out, nil
}

// FindByID returns the document with the given identifier.
func (c *Collection[T]) FindByID(ctx context.Context, id string) (*T, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	c.mu.RLock()
	fields, ok := c.docs[id]
	c.mu.RUnlock()
	if !ok {
		return nil, store.ErrNotFound
	}

	doc, err := store.FromFields[T](id, fields)
	if err != nil {
		return nil, store.NewStoreError(c.name, "find", "failed to decode document", err)
	}
	return doc, nil
}

// Insert stores doc under a new UUID.
func (c *Collection[T]) Insert(ctx context.Context, doc *T) (string, error) {
	fields, err := store.ToFields(doc)
	if err != nil {
		return "", store.NewStoreError(c.name, "insert", "failed to encode document", err)
	}

	id := uuid.NewString()

	c.mu.Lock()
	c.docs[id] = fields
	c.order = append(c.order, id)
	c.mu.Unlock()

	logger.FromContextOrDefault(ctx, c.logger).Debug("document inserted", slog.String("id", id))
	return id, nil
}

// UpdateByID merges the fields of doc into the stored document.
func (c *Collection[T]) UpdateByID(ctx context.Context, id string, doc *T) (store.UpdateResult, error) {
	if err := validateID(id); err != nil {
		return store.UpdateResult{}, err
	}
	fields, err := store.ToFields(doc)
	if err != nil {
		return store.UpdateResult{}, store.NewStoreError(c.name, "update", "failed to encode document", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	stored, ok := c.docs[id]
	if !ok {
		return store.UpdateResult{}, nil
	}

	merged, changed, err := store.Merge(stored, fields)
	if err != nil {
		return store.UpdateResult{}, store.NewStoreError(c.name, "update", "failed to merge document", err)
	}

	result := store.UpdateResult{MatchedCount: 1}
	if changed {
		c.docs[id] = merged
		result.ModifiedCount = 1
	}
	return result, nil
}

// DeleteByID removes the document with the given identifier.
func (c *Collection[T]) DeleteByID(ctx context.Context, id string) (int64, error) {
	if err := validateID(id); err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.docs[id]; !ok {
		return 0, nil
	}
	delete(c.docs, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return 1, nil
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return store.ErrInvalidID
	}
	return nil
}
