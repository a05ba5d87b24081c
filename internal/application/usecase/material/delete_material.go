// Package material contains material-related use cases.
package material

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sitepulse/backend/internal/application/adapter"
	"github.com/sitepulse/backend/internal/application/usecase/budget"
)

// DeleteMaterialInput represents the input for material deletion.
type DeleteMaterialInput struct {
	ID uuid.UUID
}

// DeleteMaterialUseCase handles material deletion logic.
type DeleteMaterialUseCase struct {
	materialRepo adapter.MaterialRepository
	budgetStore  *budget.Store
}

// NewDeleteMaterialUseCase creates a new DeleteMaterialUseCase instance.
func NewDeleteMaterialUseCase(materialRepo adapter.MaterialRepository, budgetStore *budget.Store) *DeleteMaterialUseCase {
	return &DeleteMaterialUseCase{
		materialRepo: materialRepo,
		budgetStore:  budgetStore,
	}
}

// Execute performs the material deletion.
func (uc *DeleteMaterialUseCase) Execute(ctx context.Context, input DeleteMaterialInput) error {
	material, err := uc.materialRepo.FindByID(ctx, input.ID)
	if err != nil {
		return err
	}

	if err := uc.materialRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete material: %w", err)
	}

	uc.budgetStore.SignalChange(material.ProjectID, budget.ChangeMaterials)

	return nil
}
