package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/benbjohnson/clock"
	"github.com/phrazzld/boardgame-api/internal/domain"
	"github.com/phrazzld/boardgame-api/internal/platform/logger"
	"github.com/phrazzld/boardgame-api/internal/store"
)

// ResourceService provides the CRUD operations for one resource kind.
type ResourceService[T any] struct {
	kind         domain.Kind
	collection   store.Collection[T]
	beforeInsert func(*T)
	logger       *slog.Logger
}

// Option configures a ResourceService.
type Option[T any] func(*ResourceService[T])

// WithBeforeInsert registers a hook run on every record just before insert.
func WithBeforeInsert[T any](fn func(*T)) Option[T] {
	return func(s *ResourceService[T]) {
		s.beforeInsert = fn
	}
}

// NewResourceService creates a service for kind backed by collection.
func NewResourceService[T any](
	kind domain.Kind,
	collection store.Collection[T],
	logger *slog.Logger,
	opts ...Option[T],
) *ResourceService[T] {
	if collection == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("collection cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &ResourceService[T]{
		kind:       kind,
		collection: collection,
		logger:     logger.With(slog.String("component", kind.Name+"_service")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewGameService creates the service for games. Games are inserted verbatim.
func NewGameService(collection store.Collection[domain.Game], logger *slog.Logger) *ResourceService[domain.Game] {
	return NewResourceService(domain.GameKind, collection, logger)
}

// NewUserService creates the service for users. Each new user is stamped
// with its join time from clk.
func NewUserService(
	collection store.Collection[domain.User],
	clk clock.Clock,
	logger *slog.Logger,
) *ResourceService[domain.User] {
	if clk == nil {
		clk = clock.New()
	}
	return NewResourceService(domain.UserKind, collection, logger,
		WithBeforeInsert(func(u *domain.User) {
			u.StampJoined(clk.Now())
		}),
	)
}

// Kind returns the resource kind this service manages.
func (s *ResourceService[T]) Kind() domain.Kind {
	return s.kind
}

// GetAll returns every record in the collection.
func (s *ResourceService[T]) GetAll(ctx context.Context) ([]T, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	records, err := s.collection.FindAll(ctx)
	if err != nil {
		log.Error("failed to list records", slog.String("error", err.Error()))
		return nil, wrapError(s.kind.Name, "get_all", err)
	}

	log.Debug("listed records", slog.Int("count", len(records)))
	return records, nil
}

// GetByID returns the record with the given identifier, or nil when no such
// record exists.
func (s *ResourceService[T]) GetByID(ctx context.Context, id string) (*T, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	record, err := s.collection.FindByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		log.Debug("record not found", slog.String("id", id))
		return nil, nil
	}
	if err != nil {
		if !errors.Is(err, store.ErrInvalidID) {
			log.Error("failed to get record", slog.String("id", id), slog.String("error", err.Error()))
		}
		return nil, wrapError(s.kind.Name, "get_by_id", err)
	}
	return record, nil
}

// Create inserts record and returns its new identifier.
func (s *ResourceService[T]) Create(ctx context.Context, record *T) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if s.beforeInsert != nil {
		s.beforeInsert(record)
	}

	id, err := s.collection.Insert(ctx, record)
	if err != nil {
		log.Error("failed to create record", slog.String("error", err.Error()))
		return "", wrapError(s.kind.Name, "create", err)
	}

	log.Info("record created", slog.String("id", id))
	return id, nil
}

// Update merges record into the stored document with the given identifier.
// A missing document yields a zero MatchedCount, not an error.
func (s *ResourceService[T]) Update(ctx context.Context, id string, record *T) (store.UpdateResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.collection.UpdateByID(ctx, id, record)
	if err != nil {
		if !errors.Is(err, store.ErrInvalidID) {
			log.Error("failed to update record", slog.String("id", id), slog.String("error", err.Error()))
		}
		return store.UpdateResult{}, wrapError(s.kind.Name, "update", err)
	}

	log.Info("record updated",
		slog.String("id", id),
		slog.Int64("matched", result.MatchedCount),
		slog.Int64("modified", result.ModifiedCount))
	return result, nil
}

// Delete removes the record with the given identifier and returns how many
// records were removed.
func (s *ResourceService[T]) Delete(ctx context.Context, id string) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	deleted, err := s.collection.DeleteByID(ctx, id)
	if err != nil {
		if !errors.Is(err, store.ErrInvalidID) {
			log.Error("failed to delete record", slog.String("id", id), slog.String("error", err.Error()))
		}
		return 0, wrapError(s.kind.Name, "delete", err)
	}

	log.Info("record deleted", slog.String("id", id), slog.Int64("deleted", deleted))
	return deleted, nil
}
