package prediction

import (
	"context"
	"errors"
	"testing"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode string
		expectRetry  bool
	}{
		// Timeout/cancellation errors
		{
			name:         "context deadline exceeded",
			err:          context.DeadlineExceeded,
			expectedCode: ErrCodeOracleTimeout,
			expectRetry:  true,
		},
		{
			name:         "context canceled",
			err:          context.Canceled,
			expectedCode: ErrCodeOracleTimeout,
			expectRetry:  true,
		},
		// Rate limiting errors
		{
			name:         "rate limit error",
			err:          errors.New("rate limit exceeded"),
			expectedCode: ErrCodeOracleRateLimited,
			expectRetry:  true,
		},
		{
			name:         "429 status code error",
			err:          errors.New("HTTP 429: too many requests"),
			expectedCode: ErrCodeOracleRateLimited,
			expectRetry:  true,
		},
		// Authentication errors
		{
			name:         "401 unauthorized",
			err:          errors.New("401 unauthorized"),
			expectedCode: ErrCodeOracleAuthError,
			expectRetry:  false,
		},
		{
			name:         "invalid api key",
			err:          errors.New("invalid api key"),
			expectedCode: ErrCodeOracleAuthError,
			expectRetry:  false,
		},
		// Network/connection errors
		{
			name:         "connection refused",
			err:          errors.New("connection refused"),
			expectedCode: ErrCodeOracleUnavailable,
			expectRetry:  true,
		},
		{
			name:         "dial error",
			err:          errors.New("dial tcp: connection refused"),
			expectedCode: ErrCodeOracleUnavailable,
			expectRetry:  true,
		},
		{
			name:         "503 status code error",
			err:          errors.New("HTTP 503: service unavailable"),
			expectedCode: ErrCodeOracleUnavailable,
			expectRetry:  true,
		},
		// Parse errors
		{
			name:         "json error",
			err:          errors.New("invalid json"),
			expectedCode: ErrCodeOracleParseError,
			expectRetry:  true,
		},
		{
			name:         "decode error",
			err:          errors.New("decode error"),
			expectedCode: ErrCodeOracleParseError,
			expectRetry:  true,
		},
		// Unknown errors
		{
			name:         "unknown error",
			err:          errors.New("something unexpected happened"),
			expectedCode: ErrCodeOracleUnknown,
			expectRetry:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := classifyError(tt.err)

			if result.Code != tt.expectedCode {
				t.Errorf("expected code %s, got %s", tt.expectedCode, result.Code)
			}

			if result.Retryable != tt.expectRetry {
				t.Errorf("expected retryable %v, got %v", tt.expectRetry, result.Retryable)
			}

			if result.Message != errorMessages[tt.expectedCode] {
				t.Errorf("expected message %q, got %q", errorMessages[tt.expectedCode], result.Message)
			}

			if result.Timestamp.IsZero() {
				t.Error("expected non-zero timestamp")
			}
		})
	}
}

func TestClassifyError_CaseInsensitive(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode string
	}{
		{
			name:         "uppercase rate limit",
			err:          errors.New("RATE LIMIT exceeded"),
			expectedCode: ErrCodeOracleRateLimited,
		},
		{
			name:         "mixed case network",
			err:          errors.New("Network Error"),
			expectedCode: ErrCodeOracleUnavailable,
		},
		{
			name:         "uppercase json",
			err:          errors.New("Invalid JSON format"),
			expectedCode: ErrCodeOracleParseError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := classifyError(tt.err)

			if result.Code != tt.expectedCode {
				t.Errorf("expected code %s, got %s", tt.expectedCode, result.Code)
			}
		})
	}
}

func TestErrorMessages_AllCodesHaveMessages(t *testing.T) {
	codes := []string{
		ErrCodeOracleUnavailable,
		ErrCodeOracleRateLimited,
		ErrCodeOracleAuthError,
		ErrCodeOracleTimeout,
		ErrCodeOracleParseError,
		ErrCodeOracleUnknown,
	}

	for _, code := range codes {
		t.Run(code, func(t *testing.T) {
			message, exists := errorMessages[code]
			if !exists {
				t.Errorf("missing message for code %s", code)
			}
			if message == "" {
				t.Errorf("empty message for code %s", code)
			}
		})
	}
}
