package service

import (
	"fmt"

	"github.com/phrazzld/boardgame-api/internal/store"
)

// ServiceError wraps unexpected store failures with the operation that failed.
type ServiceError struct {
	// Resource is the resource kind (e.g., "game", "user")
	Resource string
	// Operation is the operation that failed (e.g., "create", "update")
	Operation string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s service %s failed: %v", e.Resource, e.Operation, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// wrapError returns sentinel errors the API layer maps directly and wraps
// everything else in a ServiceError.
func wrapError(resource, operation string, err error) error {
	if err == nil {
		return nil
	}
	if sentinel := store.Sentinel(err); sentinel != nil {
		return sentinel
	}
	return &ServiceError{Resource: resource, Operation: operation, Err: err}
}
