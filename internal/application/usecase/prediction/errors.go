// Package prediction contains delay-prediction use cases backed by the
// external oracle service.
package prediction

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Error code constants for oracle call failures.
const (
	ErrCodeOracleUnavailable = "ORACLE_UNAVAILABLE"
	ErrCodeOracleRateLimited = "ORACLE_RATE_LIMITED"
	ErrCodeOracleAuthError   = "ORACLE_AUTH_ERROR"
	ErrCodeOracleTimeout     = "ORACLE_TIMEOUT"
	ErrCodeOracleParseError  = "ORACLE_PARSE_ERROR"
	ErrCodeOracleUnknown     = "ORACLE_UNKNOWN_ERROR"
)

// errorMessages contains the user-facing message for each error code.
var errorMessages = map[string]string{
	ErrCodeOracleUnavailable: "The delay prediction service is temporarily unavailable. Try again later.",
	ErrCodeOracleRateLimited: "Prediction request limit reached. Wait a few minutes and try again.",
	ErrCodeOracleAuthError:   "Prediction service configuration error. Please contact support.",
	ErrCodeOracleTimeout:     "The prediction took longer than expected. Try again.",
	ErrCodeOracleParseError:  "Failed to process the prediction response. Try again.",
	ErrCodeOracleUnknown:     "An unexpected error occurred while predicting delays. Try again.",
}

// OracleError represents a failed oracle call, classified into a stable
// code, a user-facing message, and a retryable flag.
type OracleError struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
}

// classifyError converts a Go error into an OracleError with the
// appropriate code, message, and retryable flag.
func classifyError(err error) *OracleError {
	now := time.Now()
	errStr := strings.ToLower(err.Error())

	// Check for timeout/cancellation (context errors)
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &OracleError{
			Code:      ErrCodeOracleTimeout,
			Message:   errorMessages[ErrCodeOracleTimeout],
			Retryable: true,
			Timestamp: now,
		}
	}

	// Check for rate limiting
	if strings.Contains(errStr, "rate limit") || strings.Contains(errStr, "quota") ||
		strings.Contains(errStr, "429") || strings.Contains(errStr, "resource exhausted") {
		return &OracleError{
			Code:      ErrCodeOracleRateLimited,
			Message:   errorMessages[ErrCodeOracleRateLimited],
			Retryable: true,
			Timestamp: now,
		}
	}

	// Check for authentication errors
	if strings.Contains(errStr, "401") || strings.Contains(errStr, "403") ||
		strings.Contains(errStr, "invalid api key") || strings.Contains(errStr, "unauthorized") ||
		strings.Contains(errStr, "authentication") {
		return &OracleError{
			Code:      ErrCodeOracleAuthError,
			Message:   errorMessages[ErrCodeOracleAuthError],
			Retryable: false,
			Timestamp: now,
		}
	}

	// Check for network/connection errors
	if strings.Contains(errStr, "connection") || strings.Contains(errStr, "network") ||
		strings.Contains(errStr, "dial") || strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "unavailable") || strings.Contains(errStr, "503") {
		return &OracleError{
			Code:      ErrCodeOracleUnavailable,
			Message:   errorMessages[ErrCodeOracleUnavailable],
			Retryable: true,
			Timestamp: now,
		}
	}

	// Check for parse errors
	if strings.Contains(errStr, "parse") || strings.Contains(errStr, "json") ||
		strings.Contains(errStr, "unmarshal") || strings.Contains(errStr, "decode") ||
		strings.Contains(errStr, "malformed") {
		return &OracleError{
			Code:      ErrCodeOracleParseError,
			Message:   errorMessages[ErrCodeOracleParseError],
			Retryable: true,
			Timestamp: now,
		}
	}

	// Default to unknown error
	return &OracleError{
		Code:      ErrCodeOracleUnknown,
		Message:   errorMessages[ErrCodeOracleUnknown],
		Retryable: true,
		Timestamp: now,
	}
}
