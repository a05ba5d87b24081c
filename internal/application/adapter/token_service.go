// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenClaims represents the claims contained in a JWT access token issued by
// the managed identity provider for a mobile client.
type TokenClaims struct {
	EngineerID uuid.UUID
	Email      string
	ExpiresAt  time.Time
}

// TokenService defines the interface for JWT token validation.
// Registration, sign-in, and role management live outside this service.
type TokenService interface {
	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}
