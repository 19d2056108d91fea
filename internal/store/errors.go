package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no document matches the identifier.
	ErrNotFound = errors.New("document not found")

	// ErrInvalidID is returned when an identifier is not syntactically valid
	// for the backend, e.g. not a 24-character hex ObjectID for MongoDB.
	ErrInvalidID = errors.New("invalid document ID")

	// ErrInvalidEntity is returned when a record cannot be encoded for storage.
	ErrInvalidEntity = errors.New("invalid entity")
)

// Sentinel returns ErrNotFound or ErrInvalidID when err wraps one of them,
// and nil otherwise. Both describe the caller's input rather than a store
// fault.
func Sentinel(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrInvalidID):
		return ErrInvalidID
	case errors.Is(err, ErrNotFound):
		return ErrNotFound
	default:
		return nil
	}
}

// StoreError records which collection operation failed.
type StoreError struct {
	Collection string
	Operation  string
	Message    string
	Err        error
}

func (e *StoreError) Error() string {
	msg := e.Operation + " " + e.Collection + ": " + e.Message
	if e.Err == nil {
		return msg
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError builds a StoreError for operation on collection.
func NewStoreError(collection, operation, message string, err error) *StoreError {
	return &StoreError{
		Collection: collection,
		Operation:  operation,
		Message:    message,
		Err:        err,
	}
}
