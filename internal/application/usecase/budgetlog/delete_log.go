// Package budgetlog contains budget log use cases.
package budgetlog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sitepulse/backend/internal/application/adapter"
	"github.com/sitepulse/backend/internal/application/usecase/budget"
)

// DeleteLogInput represents the input for budget log deletion.
type DeleteLogInput struct {
	ID uuid.UUID
}

// DeleteLogUseCase handles budget log deletion logic.
type DeleteLogUseCase struct {
	logRepo     adapter.BudgetLogRepository
	budgetStore *budget.Store
}

// NewDeleteLogUseCase creates a new DeleteLogUseCase instance.
func NewDeleteLogUseCase(logRepo adapter.BudgetLogRepository, budgetStore *budget.Store) *DeleteLogUseCase {
	return &DeleteLogUseCase{
		logRepo:     logRepo,
		budgetStore: budgetStore,
	}
}

// Execute performs the budget log deletion.
func (uc *DeleteLogUseCase) Execute(ctx context.Context, input DeleteLogInput) error {
	log, err := uc.logRepo.FindByID(ctx, input.ID)
	if err != nil {
		return err
	}

	if err := uc.logRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete budget log: %w", err)
	}

	uc.budgetStore.SignalChange(log.ProjectID, budget.ChangeLogs)

	return nil
}
