// Package budget contains the budget reconciliation and synchronization core.
package budget

import (
	"context"

	"github.com/google/uuid"

	"github.com/sitepulse/backend/internal/domain/entity"
	domainerror "github.com/sitepulse/backend/internal/domain/error"
)

// UpdateBudgetInput represents a manual edit of the budget totals.
type UpdateBudgetInput struct {
	ProjectID             uuid.UUID
	TotalBudget           *float64
	ContingencyPercentage *float64
}

// UpdateBudgetOutput represents the output of a budget update.
type UpdateBudgetOutput struct {
	Budget *entity.ProjectBudget
}

// UpdateBudgetUseCase applies a manual edit to the budget totals and persists
// the full document through the store's guard.
type UpdateBudgetUseCase struct {
	store *Store
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(store *Store) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{store: store}
}

// Execute performs the budget update.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	if input.TotalBudget != nil && *input.TotalBudget <= 0 {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidTotalBudget,
			"total budget must be greater than zero",
			domainerror.ErrInvalidTotalBudget,
		)
	}

	current, _, err := uc.store.Load(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}

	updated := current.Clone()
	if input.TotalBudget != nil {
		updated.TotalBudget = *input.TotalBudget
	}
	if input.ContingencyPercentage != nil {
		updated.ContingencyPercentage = *input.ContingencyPercentage
	}

	if err := uc.store.SetAndPersist(ctx, input.ProjectID, updated); err != nil {
		return nil, err
	}

	// A changed total can make a legacy allocation repairable; let the
	// reconciliation handler pick that up.
	uc.store.SignalChange(input.ProjectID, ChangeManual)

	return &UpdateBudgetOutput{Budget: uc.store.Current(input.ProjectID)}, nil
}
