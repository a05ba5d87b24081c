// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetLogType represents the type of a budget log entry (expense or income).
type BudgetLogType string

const (
	BudgetLogTypeExpense BudgetLogType = "expense"
	BudgetLogTypeIncome  BudgetLogType = "income"
)

// BudgetLog represents a manual ledger entry against a project budget.
//
// Category is free text and is matched case-insensitively against budget
// category names when deriving spend for non-primary categories.
type BudgetLog struct {
	ID          uuid.UUID
	ProjectID   uuid.UUID
	Category    string
	Description string
	Amount      decimal.Decimal
	Type        BudgetLogType
	Date        time.Time
	Reference   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewBudgetLog creates a new BudgetLog entity.
func NewBudgetLog(projectID uuid.UUID, category, description string, amount decimal.Decimal, logType BudgetLogType, date time.Time, reference string) *BudgetLog {
	now := time.Now().UTC()

	return &BudgetLog{
		ID:          uuid.New(),
		ProjectID:   projectID,
		Category:    category,
		Description: description,
		Amount:      amount,
		Type:        logType,
		Date:        date,
		Reference:   reference,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
