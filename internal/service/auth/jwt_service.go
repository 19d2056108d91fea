// Package auth issues and verifies the HS256 bearer tokens that gate the
// mutating game and user routes when authentication is enabled.
package auth

import (
	"context"
	"time"
)

// JWTService signs tokens for a subject and verifies presented tokens.
type JWTService interface {
	GenerateToken(ctx context.Context, subject string, lifetime time.Duration) (string, error)

	// ValidateToken returns ErrMissingToken, ErrExpiredToken,
	// ErrTokenNotYetValid or ErrInvalidToken when the token is unusable.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims are the registered claims of a verified token.
type Claims struct {
	Subject   string
	Issuer    string
	Audience  []string
	ID        string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
