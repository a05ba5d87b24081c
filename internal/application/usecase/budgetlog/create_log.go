// Package budgetlog contains budget log use cases.
package budgetlog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sitepulse/backend/internal/application/adapter"
	"github.com/sitepulse/backend/internal/application/usecase/budget"
	"github.com/sitepulse/backend/internal/domain/entity"
	domainerror "github.com/sitepulse/backend/internal/domain/error"
)

// CreateLogInput represents the input for budget log creation.
type CreateLogInput struct {
	ProjectID   uuid.UUID
	Category    string
	Description string
	Amount      decimal.Decimal
	Type        entity.BudgetLogType
	Date        time.Time
	Reference   string
}

// CreateLogOutput represents the output of budget log creation.
type CreateLogOutput struct {
	Log *entity.BudgetLog
}

// CreateLogUseCase handles budget log creation logic.
type CreateLogUseCase struct {
	logRepo     adapter.BudgetLogRepository
	budgetStore *budget.Store
}

// NewCreateLogUseCase creates a new CreateLogUseCase instance.
func NewCreateLogUseCase(logRepo adapter.BudgetLogRepository, budgetStore *budget.Store) *CreateLogUseCase {
	return &CreateLogUseCase{
		logRepo:     logRepo,
		budgetStore: budgetStore,
	}
}

// Execute performs the budget log creation.
func (uc *CreateLogUseCase) Execute(ctx context.Context, input CreateLogInput) (*CreateLogOutput, error) {
	if input.Type != entity.BudgetLogTypeExpense && input.Type != entity.BudgetLogTypeIncome {
		return nil, domainerror.ErrInvalidLogType
	}

	log := entity.NewBudgetLog(
		input.ProjectID,
		input.Category,
		input.Description,
		input.Amount,
		input.Type,
		input.Date,
		input.Reference,
	)

	if err := uc.logRepo.Create(ctx, log); err != nil {
		return nil, fmt.Errorf("failed to create budget log: %w", err)
	}

	uc.budgetStore.SignalChange(input.ProjectID, budget.ChangeLogs)

	return &CreateLogOutput{Log: log}, nil
}
