// Package error defines domain-specific errors for the SitePulse backend.
package error

import "errors"

// Prediction oracle errors.
var (
	// ErrOracleUnavailable is returned when the prediction oracle is not configured
	// or cannot be reached.
	ErrOracleUnavailable = errors.New("prediction oracle unavailable")

	// ErrOracleTimeout is returned when the oracle call exceeds its deadline.
	ErrOracleTimeout = errors.New("prediction oracle timed out")

	// ErrOracleMalformedResponse is returned when the oracle response cannot be decoded.
	ErrOracleMalformedResponse = errors.New("malformed prediction oracle response")
)

// PredictionErrorCode defines error codes for prediction errors.
// Format: PRD-XXYYYY where XX is category and YYYY is specific error.
type PredictionErrorCode string

const (
	ErrCodeOracleUnavailable PredictionErrorCode = "PRD-020001"
	ErrCodeOracleTimeout     PredictionErrorCode = "PRD-020002"
	ErrCodeOracleMalformed   PredictionErrorCode = "PRD-020003"
)

// PredictionError represents a prediction oracle error with code and message.
type PredictionError struct {
	Code    PredictionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PredictionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PredictionError) Unwrap() error {
	return e.Err
}

// NewPredictionError creates a new PredictionError with the given code and message.
func NewPredictionError(code PredictionErrorCode, message string, err error) *PredictionError {
	return &PredictionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
