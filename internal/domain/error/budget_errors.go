// Package error defines domain-specific errors for the SitePulse backend.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when no budget document exists for a project.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrCategoryNotFound is returned when a budget category is not found.
	ErrCategoryNotFound = errors.New("budget category not found")

	// ErrCategoryIsPrimary is returned when attempting to delete a primary category.
	ErrCategoryIsPrimary = errors.New("primary categories cannot be deleted")

	// ErrCategoryIDExists is returned when creating a category with an id already in use.
	ErrCategoryIDExists = errors.New("category id already exists")

	// ErrBudgetPersistFailed is returned when the budget document could not be written.
	ErrBudgetPersistFailed = errors.New("failed to persist budget")

	// ErrInvalidTotalBudget is returned when a total budget value is not positive.
	ErrInvalidTotalBudget = errors.New("total budget must be greater than zero")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BUD-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeBudgetNotFound     BudgetErrorCode = "BUD-010001"
	ErrCodeCategoryNotFound   BudgetErrorCode = "BUD-010002"
	ErrCodeCategoryIsPrimary  BudgetErrorCode = "BUD-010003"
	ErrCodeCategoryIDExists   BudgetErrorCode = "BUD-010004"
	ErrCodeInvalidTotalBudget BudgetErrorCode = "BUD-010005"

	// Persistence errors (02XXXX)
	ErrCodeBudgetPersistFailed BudgetErrorCode = "BUD-020001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
