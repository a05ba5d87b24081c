// Package budget contains the budget reconciliation and synchronization core.
package budget

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sitepulse/backend/internal/domain/entity"
	domainerror "github.com/sitepulse/backend/internal/domain/error"
)

// AddCategoryInput represents the input for creating a user-defined category.
type AddCategoryInput struct {
	ProjectID       uuid.UUID
	Name            string
	AllocatedAmount float64
	Description     string
}

// AddCategoryOutput represents the output of category creation.
type AddCategoryOutput struct {
	Budget   *entity.ProjectBudget
	Category entity.BudgetCategory
}

// AddCategoryUseCase creates a non-primary budget category.
type AddCategoryUseCase struct {
	store *Store
}

// NewAddCategoryUseCase creates a new AddCategoryUseCase instance.
func NewAddCategoryUseCase(store *Store) *AddCategoryUseCase {
	return &AddCategoryUseCase{store: store}
}

// Execute performs the category creation.
func (uc *AddCategoryUseCase) Execute(ctx context.Context, input AddCategoryInput) (*AddCategoryOutput, error) {
	current, _, err := uc.store.Load(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}

	id := categoryID(input.Name)
	if current.Category(id) != nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeCategoryIDExists,
			"a category with this name already exists",
			domainerror.ErrCategoryIDExists,
		)
	}

	category := entity.BudgetCategory{
		ID:              id,
		Name:            input.Name,
		AllocatedAmount: input.AllocatedAmount,
		Description:     input.Description,
		LastUpdated:     time.Now().UTC(),
	}

	updated := current.Clone()
	updated.Categories = append(updated.Categories, category)
	updated.TotalSpent = updated.SumSpent()

	if err := uc.store.SetAndPersist(ctx, input.ProjectID, updated); err != nil {
		return nil, err
	}

	// Existing logs may already reference the new name; reconcile to derive
	// its spend.
	uc.store.SignalChange(input.ProjectID, ChangeManual)

	return &AddCategoryOutput{
		Budget:   uc.store.Current(input.ProjectID),
		Category: category,
	}, nil
}

// categoryID derives a stable category id from a display name.
func categoryID(name string) string {
	id := strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(id, " ", "_")
}
