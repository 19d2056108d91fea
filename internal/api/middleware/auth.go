package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/phrazzld/boardgame-api/internal/api"
	"github.com/phrazzld/boardgame-api/internal/api/shared"
	"github.com/phrazzld/boardgame-api/internal/service/auth"
)

// AuthMiddleware gates routes behind a bearer JWT.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	if jwtService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("jwtService cannot be nil")
	}
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// Authenticate validates the bearer token on every request and adds its
// subject to the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := bearerToken(r)
		if err != nil {
			m.reject(w, r, err)
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			m.reject(w, r, err)
			return
		}

		ctx := shared.WithSubject(r.Context(), claims.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ProtectWrites authenticates POST, PUT, PATCH and DELETE requests and lets
// reads through unauthenticated.
func (m *AuthMiddleware) ProtectWrites(next http.Handler) http.Handler {
	authenticated := m.Authenticate(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
			authenticated.ServeHTTP(w, r)
		default:
			next.ServeHTTP(w, r)
		}
	})
}

func (m *AuthMiddleware) reject(w http.ResponseWriter, r *http.Request, err error) {
	status := api.MapErrorToStatusCode(err)
	if status != http.StatusUnauthorized {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Authentication error", err)
		return
	}
	shared.RespondWithErrorAndLog(w, r, status, api.GetSafeErrorMessage(err), err,
		shared.WithElevatedLogLevel())
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", auth.ErrMissingToken
	}

	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", errors.Join(auth.ErrInvalidToken, errors.New("malformed authorization header"))
	}
	return strings.TrimSpace(token), nil
}
