package mocks

import (
	"context"

	"github.com/phrazzld/boardgame-api/internal/api"
	"github.com/phrazzld/boardgame-api/internal/domain"
	"github.com/phrazzld/boardgame-api/internal/store"
)

// MockResourceService implements api.ResourceService for handler tests.
// Unset Fn fields return zero values.
type MockResourceService[T any] struct {
	KindValue domain.Kind

	GetAllFn  func(ctx context.Context) ([]T, error)
	GetByIDFn func(ctx context.Context, id string) (*T, error)
	CreateFn  func(ctx context.Context, record *T) (string, error)
	UpdateFn  func(ctx context.Context, id string, record *T) (store.UpdateResult, error)
	DeleteFn  func(ctx context.Context, id string) (int64, error)
}

var _ api.ResourceService[domain.Game] = (*MockResourceService[domain.Game])(nil)

// Kind implements api.ResourceService
func (m *MockResourceService[T]) Kind() domain.Kind {
	return m.KindValue
}

// GetAll implements api.ResourceService
func (m *MockResourceService[T]) GetAll(ctx context.Context) ([]T, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn(ctx)
	}
	return []T{}, nil
}

// GetByID implements api.ResourceService
func (m *MockResourceService[T]) GetByID(ctx context.Context, id string) (*T, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, nil
}

// Create implements api.ResourceService
func (m *MockResourceService[T]) Create(ctx context.Context, record *T) (string, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, record)
	}
	return "", nil
}

// Update implements api.ResourceService
func (m *MockResourceService[T]) Update(
	ctx context.Context,
	id string,
	record *T,
) (store.UpdateResult, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, record)
	}
	return store.UpdateResult{}, nil
}

// Delete implements api.ResourceService
func (m *MockResourceService[T]) Delete(ctx context.Context, id string) (int64, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return 0, nil
}
