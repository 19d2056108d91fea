package auth

import "errors"

// Token validation failures. The API maps all of them to 401.
var (
	// ErrMissingToken means no bearer token accompanied the request.
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrInvalidToken covers malformed tokens, bad signatures and unexpected
	// issuer or audience claims.
	ErrInvalidToken = errors.New("invalid authentication token")

	ErrExpiredToken     = errors.New("authentication token has expired")
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")
)
