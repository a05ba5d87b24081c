// Package budget contains the budget reconciliation and synchronization core.
package budget

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sitepulse/backend/internal/domain/entity"
	domainerror "github.com/sitepulse/backend/internal/domain/error"
)

// UpdateCategoryInput represents a manual edit of a budget category.
// SpentAmount edits apply to non-primary categories only; primary spend is
// always derived from inventory and overwritten by reconciliation.
type UpdateCategoryInput struct {
	ProjectID       uuid.UUID
	CategoryID      string
	Name            *string
	AllocatedAmount *float64
	SpentAmount     *float64
	Description     *string
}

// UpdateCategoryOutput represents the output of a category update.
type UpdateCategoryOutput struct {
	Budget *entity.ProjectBudget
}

// UpdateCategoryUseCase applies a manual category edit.
type UpdateCategoryUseCase struct {
	store *Store
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(store *Store) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{store: store}
}

// Execute performs the category update.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	current, _, err := uc.store.Load(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}

	updated := current.Clone()
	cat := updated.Category(input.CategoryID)
	if cat == nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeCategoryNotFound,
			"budget category not found",
			domainerror.ErrCategoryNotFound,
		)
	}

	if input.Name != nil && !cat.IsPrimary {
		cat.Name = *input.Name
	}
	if input.AllocatedAmount != nil {
		cat.AllocatedAmount = *input.AllocatedAmount
	}
	if input.SpentAmount != nil && !cat.IsPrimary {
		cat.SpentAmount = *input.SpentAmount
	}
	if input.Description != nil {
		cat.Description = *input.Description
	}
	cat.LastUpdated = time.Now().UTC()
	updated.TotalSpent = updated.SumSpent()

	if err := uc.store.SetAndPersist(ctx, input.ProjectID, updated); err != nil {
		return nil, err
	}

	return &UpdateCategoryOutput{Budget: uc.store.Current(input.ProjectID)}, nil
}
