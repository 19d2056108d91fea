package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/boardgame-api/internal/api/shared"
	"github.com/phrazzld/boardgame-api/internal/domain"
	"github.com/phrazzld/boardgame-api/internal/service/auth"
	"github.com/phrazzld/boardgame-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"token not yet valid", auth.ErrTokenNotYetValid, http.StatusUnauthorized},
		{"missing token", auth.ErrMissingToken, http.StatusUnauthorized},
		{"not found", store.ErrNotFound, http.StatusNotFound},
		{
			"wrapped not found",
			store.NewStoreError("game", "find", "lookup failed", store.ErrNotFound),
			http.StatusNotFound,
		},
		{"invalid id", store.ErrInvalidID, http.StatusBadRequest},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{
			"validation error",
			domain.NewValidationError("price", "price must be a number greater than or equal to 0", nil),
			http.StatusBadRequest,
		},
		{"invalid format", fmt.Errorf("decode: %w", domain.ErrInvalidFormat), http.StatusBadRequest},
		{"invalid body", shared.ErrInvalidBody, http.StatusBadRequest},
		{"unknown error", errors.New("connection reset"), http.StatusInternalServerError},
		{"nil error", nil, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil error", nil, "An unexpected error occurred"},
		{"missing token", auth.ErrMissingToken, "Authentication required"},
		{"expired token", auth.ErrExpiredToken, "Token expired"},
		{"invalid token", auth.ErrInvalidToken, "Invalid token"},
		{"not yet valid", auth.ErrTokenNotYetValid, "Invalid token"},
		{
			"validation error uses its message",
			domain.NewValidationError("email", "Invalid email format", nil),
			"Invalid email format",
		},
		{"invalid body", fmt.Errorf("%w: EOF", shared.ErrInvalidBody), "Invalid request body"},
		{
			"internal detail is never echoed",
			errors.New("dial tcp 10.0.0.7:27017: connection refused"),
			"Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetSafeErrorMessage(tt.err))
		})
	}
}
