package store

import "context"

// UpdateResult reports the outcome of an UpdateByID call.
type UpdateResult struct {
	// MatchedCount is the number of documents the identifier matched (0 or 1).
	MatchedCount int64
	// ModifiedCount is the number of documents whose stored values changed.
	// It is 0 when the submitted values equal the stored ones.
	ModifiedCount int64
}

// Collection is the document store access contract for one record type.
//
// Records carry their identifier in an "_id" field (json and bson). The
// identifier is ignored on Insert and UpdateByID; it is always assigned by
// the store and returned as an opaque string.
type Collection[T any] interface {
	// FindAll returns every document in the collection. The order is whatever
	// the backend yields. An empty collection yields an empty, non-nil slice.
	FindAll(ctx context.Context) ([]T, error)

	// FindByID returns the document with the given identifier.
	// Returns ErrNotFound if none exists and ErrInvalidID if the identifier
	// is malformed for this backend.
	FindByID(ctx context.Context, id string) (*T, error)

	// Insert stores a new document and returns its generated identifier.
	Insert(ctx context.Context, doc *T) (string, error)

	// UpdateByID merges the fields of doc into the stored document: fields
	// present in doc overwrite, fields absent from doc are left untouched.
	// A missing document is not an error; it is reported as MatchedCount 0.
	UpdateByID(ctx context.Context, id string, doc *T) (UpdateResult, error)

	// DeleteByID removes the document and returns how many were removed
	// (0 or 1). A missing document is not an error.
	DeleteByID(ctx context.Context, id string) (int64, error)
}
