// Package error defines domain-specific errors for the SitePulse backend.
package error

import "errors"

// Token validation errors. Sign-in and user management live in the managed
// identity provider; this service only validates the tokens presented to it.
var (
	// ErrInvalidToken is returned when a JWT is malformed, expired, or has a bad signature.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrMissingToken is returned when no token was provided.
	ErrMissingToken = errors.New("missing token")
)

// AuthErrorCode defines error codes for token errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	ErrCodeMissingToken AuthErrorCode = "AUTH-010001"
	ErrCodeInvalidToken AuthErrorCode = "AUTH-010002"
	ErrCodeRateLimited  AuthErrorCode = "AUTH-010003"
)
