// Package budget contains the budget reconciliation and synchronization core.
package budget

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sitepulse/backend/internal/domain/entity"
	domainerror "github.com/sitepulse/backend/internal/domain/error"
)

// DeleteCategoryInput represents the input for deleting a user-defined category.
type DeleteCategoryInput struct {
	ProjectID  uuid.UUID
	CategoryID string
}

// DeleteCategoryOutput represents the output of category deletion.
type DeleteCategoryOutput struct {
	Budget *entity.ProjectBudget
}

// DeleteCategoryUseCase removes a non-primary budget category. Primary
// categories are system-owned and cannot be deleted.
type DeleteCategoryUseCase struct {
	store *Store
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(store *Store) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{store: store}
}

// Execute performs the category deletion.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	current, _, err := uc.store.Load(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}

	cat := current.Category(input.CategoryID)
	if cat == nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeCategoryNotFound,
			"budget category not found",
			domainerror.ErrCategoryNotFound,
		)
	}
	if cat.IsPrimary {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeCategoryIsPrimary,
			"primary categories cannot be deleted",
			domainerror.ErrCategoryIsPrimary,
		)
	}

	updated := current.Clone()
	categories := make([]entity.BudgetCategory, 0, len(updated.Categories)-1)
	for _, c := range updated.Categories {
		if c.ID != input.CategoryID {
			categories = append(categories, c)
		}
	}
	updated.Categories = categories
	updated.TotalSpent = updated.SumSpent()
	updated.LastUpdated = time.Now().UTC()

	if err := uc.store.SetAndPersist(ctx, input.ProjectID, updated); err != nil {
		return nil, err
	}

	return &DeleteCategoryOutput{Budget: uc.store.Current(input.ProjectID)}, nil
}
