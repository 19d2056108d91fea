// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a submission fails presence or rule checks.
	// It is always wrapped by a *ValidationError carrying the details.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidFormat is returned when submitted data cannot be converted into
	// the typed record (e.g. text where a number is expected).
	ErrInvalidFormat = errors.New("invalid format")
)

// MessageMissingFields is the client-facing message for presence failures.
const MessageMissingFields = "Missing required fields"

// ValidationError describes why a submission was rejected.
// Exactly one of MissingFields or Field is normally populated.
type ValidationError struct {
	// Field is the field whose type/range rule failed, if any.
	Field string
	// Message is safe to return to the client verbatim.
	Message string
	// MissingFields lists every required field that was absent or empty.
	MissingFields []string
	// Detail carries conversion diagnostics for format errors.
	Detail string
	// Err is the sentinel this error wraps.
	Err error
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string, err error) *ValidationError {
	if err == nil {
		err = ErrValidation
	}
	return &ValidationError{Field: field, Message: message, Err: err}
}

func newMissingFieldsError(fields []string) *ValidationError {
	return &ValidationError{
		Message:       MessageMissingFields,
		MissingFields: fields,
		Err:           ErrValidation,
	}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	switch {
	case len(e.MissingFields) > 0:
		return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.MissingFields, ", "))
	case e.Detail != "":
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	default:
		return e.Message
	}
}

// Unwrap returns the wrapped sentinel to support errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
