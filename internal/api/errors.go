package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/boardgame-api/internal/api/shared"
	"github.com/phrazzld/boardgame-api/internal/domain"
	"github.com/phrazzld/boardgame-api/internal/service/auth"
	"github.com/phrazzld/boardgame-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes based on
// the error type, without inspecting messages.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidFormat),
		errors.Is(err, store.ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, shared.ErrInvalidBody):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a client-safe message for errors that are not
// tied to a particular resource operation.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var verr *domain.ValidationError
	switch {
	case errors.Is(err, auth.ErrMissingToken):
		return "Authentication required"
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid):
		return "Invalid token"
	case errors.As(err, &verr):
		return verr.Message
	case errors.Is(err, shared.ErrInvalidBody):
		return "Invalid request body"
	default:
		return "Internal server error"
	}
}
