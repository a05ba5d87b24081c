// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/sitepulse/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget document persistence.
//
// A project has at most one budget document. Writes always carry the full
// document; there are no field-level updates.
type BudgetRepository interface {
	// FindByProjectID retrieves the budget document for a project.
	// Returns domainerror.ErrBudgetNotFound when no document exists.
	FindByProjectID(ctx context.Context, projectID uuid.UUID) (*entity.ProjectBudget, error)

	// Save writes the full budget document, creating it if absent.
	// Saving the same logical value twice produces no observable difference
	// beyond LastUpdated.
	Save(ctx context.Context, budget *entity.ProjectBudget) error
}

// BudgetLogRepository defines the interface for budget log persistence operations.
type BudgetLogRepository interface {
	// Create creates a new budget log entry in the database.
	Create(ctx context.Context, log *entity.BudgetLog) error

	// FindByID retrieves a budget log entry by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BudgetLog, error)

	// FindByProjectID retrieves all budget log entries for a given project.
	FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*entity.BudgetLog, error)

	// Delete removes a budget log entry from the database (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error
}
