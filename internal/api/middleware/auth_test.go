package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/boardgame-api/internal/api/shared"
	"github.com/phrazzld/boardgame-api/internal/mocks"
	"github.com/phrazzld/boardgame-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		authHeader      string
		validateErr     error
		claims          *auth.Claims
		expectedStatus  int
		expectedMessage string
		expectedSubject string
	}{
		{
			name:            "valid token",
			authHeader:      "Bearer valid-token",
			claims:          &auth.Claims{Subject: "dev"},
			expectedStatus:  http.StatusOK,
			expectedSubject: "dev",
		},
		{
			name:            "lower-case scheme",
			authHeader:      "bearer valid-token",
			claims:          &auth.Claims{Subject: "dev"},
			expectedStatus:  http.StatusOK,
			expectedSubject: "dev",
		},
		{
			name:            "missing auth header",
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Authentication required",
		},
		{
			name:            "invalid auth format",
			authHeader:      "InvalidFormat",
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Invalid token",
		},
		{
			name:            "empty bearer token",
			authHeader:      "Bearer ",
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Invalid token",
		},
		{
			name:            "expired token",
			authHeader:      "Bearer expired-token",
			validateErr:     auth.ErrExpiredToken,
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Token expired",
		},
		{
			name:            "invalid token",
			authHeader:      "Bearer invalid-token",
			validateErr:     auth.ErrInvalidToken,
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Invalid token",
		},
		{
			name:            "unexpected validation failure",
			authHeader:      "Bearer some-token",
			validateErr:     errors.New("keyring unavailable"),
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Authentication error",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			jwtService := &mocks.MockJWTService{
				ValidateTokenFn: func(_ context.Context, token string) (*auth.Claims, error) {
					if tt.validateErr != nil {
						return nil, tt.validateErr
					}
					return tt.claims, nil
				},
			}
			m := NewAuthMiddleware(jwtService)

			var subject string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				subject, _ = shared.GetSubject(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/games", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			m.Authenticate(next).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, tt.expectedSubject, subject)
				return
			}

			var env shared.Envelope
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
			assert.False(t, env.Success)
			assert.Equal(t, tt.expectedMessage, env.Message)
		})
	}
}

func TestAuthMiddleware_ProtectWrites(t *testing.T) {
	t.Parallel()

	jwtService := &mocks.MockJWTService{Err: auth.ErrInvalidToken}
	m := NewAuthMiddleware(jwtService)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := m.ProtectWrites(next)

	tests := []struct {
		method         string
		expectedStatus int
	}{
		{http.MethodGet, http.StatusOK},
		{http.MethodHead, http.StatusOK},
		{http.MethodOptions, http.StatusOK},
		{http.MethodPost, http.StatusUnauthorized},
		{http.MethodPut, http.StatusUnauthorized},
		{http.MethodPatch, http.StatusUnauthorized},
		{http.MethodDelete, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.method, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/games/abc", nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
	assert.Empty(t, jwtService.ValidatedTokens(), "no request carried a token")

	req := httptest.NewRequest(http.MethodDelete, "/games/abc", nil)
	req.Header.Set("Authorization", "bearer  tok-123")
	handler.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, []string{"tok-123"}, jwtService.ValidatedTokens())
}

func TestNewAuthMiddleware_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { NewAuthMiddleware(nil) })
}
