// Package material contains material-related use cases.
package material

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

// UpdateMaterialInput represents the input for material update.
// Nil fields are left unchanged.
type UpdateMaterialInput struct {
	ID          uuid.UUID
	Name        *string
	Quantity    *float64
	TotalBought *float64
	Price       *decimal.Decimal
	Unit        *string
	Category    *string
	Supplier    *string
}

// UpdateMaterialOutput represents the output of material update.
type UpdateMaterialOutput struct {
	Material *entity.Material
}

// UpdateMaterialUseCase handles material update logic.
type UpdateMaterialUseCase struct {
	materialRepo adapter.MaterialRepository
	budgetStore  *budget.Store
}

// NewUpdateMaterialUseCase creates a new UpdateMaterialUseCase instance.
func NewUpdateMaterialUseCase(materialRepo adapter.MaterialRepository, budgetStore *budget.Store) *UpdateMaterialUseCase {
	return &UpdateMaterialUseCase{
		materialRepo: materialRepo,
		budgetStore:  budgetStore,
	}
}

// Execute performs the material update.
func (uc *UpdateMaterialUseCase) Execute(ctx context.Context, input UpdateMaterialInput) (*UpdateMaterialOutput, error) {
	material, err := uc.materialRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Quantity != nil && *input.Quantity < 0 {
		return nil, domainerror.ErrInvalidQuantity
	}

	if input.Name != nil {
		material.Name = *input.Name
	}
	if input.Quantity != nil {
		material.Quantity = *input.Quantity
	}
	if input.TotalBought != nil {
		material.TotalBought = input.TotalBought
	}
	if input.Price != nil {
		material.Price = *input.Price
	}
	if input.Unit != nil {
		material.Unit = *input.Unit
	}
	if input.Category != nil {
		material.Category = *input.Category
	}
	if input.Supplier != nil {
		material.Supplier = *input.Supplier
	}
	material.UpdatedAt = time.Now().UTC()

	if err := uc.materialRepo.Update(ctx, material); err != nil {
		return nil, fmt.Errorf("failed to update material: %w", err)
	}

	uc.budgetStore.SignalChange(material.ProjectID, budget.ChangeMaterials)

	return &UpdateMaterialOutput{Material: material}, nil
}
