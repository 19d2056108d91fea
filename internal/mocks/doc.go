// Package mocks provides centralized mock implementations for testing.
//
// Collection is a testify/mock implementation of store.Collection for
// service tests; MockJWTService uses function fields so tests can
// script token validation outcomes inline:
//
//	jwtService := &mocks.MockJWTService{
//	    ValidateTokenFn: func(ctx context.Context, token string) (*auth.Claims, error) {
//	        return nil, auth.ErrExpiredToken
//	    },
//	}
package mocks
