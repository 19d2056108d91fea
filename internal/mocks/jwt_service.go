package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/phrazzld/boardgame-api/internal/service/auth"
)

// MockJWTService scripts auth.JWTService outcomes. Unset Fn fields fall back
// to returning Token, Claims and Err.
type MockJWTService struct {
	GenerateTokenFn func(ctx context.Context, subject string, lifetime time.Duration) (string, error)
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	Token  string
	Claims *auth.Claims
	Err    error

	mu        sync.Mutex
	validated []string
}

var _ auth.JWTService = (*MockJWTService)(nil)

func (m *MockJWTService) GenerateToken(ctx context.Context, subject string, lifetime time.Duration) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, subject, lifetime)
	}
	return m.Token, m.Err
}

func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	m.mu.Lock()
	m.validated = append(m.validated, tokenString)
	m.mu.Unlock()

	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	return m.Claims, m.Err
}

// ValidatedTokens returns every token passed to ValidateToken, in call order.
func (m *MockJWTService) ValidatedTokens() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.validated...)
}
