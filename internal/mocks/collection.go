package mocks

import (
	"context"

	"github.com/phrazzld/boardgame-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// Collection is a mock of store.Collection for use with testify/mock.
type Collection[T any] struct {
	mock.Mock
}

var _ store.Collection[struct{}] = (*Collection[struct{}])(nil)

// FindAll is a mock implementation of store.Collection.FindAll
func (m *Collection[T]) FindAll(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	if records, ok := args.Get(0).([]T); ok {
		return records, args.Error(1)
	}
	return nil, args.Error(1)
}

// FindByID is a mock implementation of store.Collection.FindByID
func (m *Collection[T]) FindByID(ctx context.Context, id string) (*T, error) {
	args := m.Called(ctx, id)
	if record, ok := args.Get(0).(*T); ok {
		return record, args.Error(1)
	}
	return nil, args.Error(1)
}

// Insert is a mock implementation of store.Collection.Insert
func (m *Collection[T]) Insert(ctx context.Context, doc *T) (string, error) {
	args := m.Called(ctx, doc)
	return args.String(0), args.Error(1)
}

// UpdateByID is a mock implementation of store.Collection.UpdateByID
func (m *Collection[T]) UpdateByID(ctx context.Context, id string, doc *T) (store.UpdateResult, error) {
	args := m.Called(ctx, id, doc)
	return args.Get(0).(store.UpdateResult), args.Error(1)
}

// DeleteByID is a mock implementation of store.Collection.DeleteByID
func (m *Collection[T]) DeleteByID(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}
