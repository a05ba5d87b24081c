// Package material contains material-related use cases.
package material

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sitepulse/backend/internal/application/adapter"
	"github.com/sitepulse/backend/internal/application/usecase/budget"
	"github.com/sitepulse/backend/internal/domain/entity"
	domainerror "github.com/sitepulse/backend/internal/domain/error"
)

// CreateMaterialInput represents the input for material creation.
type CreateMaterialInput struct {
	ProjectID   uuid.UUID
	Name        string
	Quantity    float64
	TotalBought *float64
	Price       decimal.Decimal
	Unit        string
	Category    string
	Supplier    string
}

// CreateMaterialOutput represents the output of material creation.
type CreateMaterialOutput struct {
	Material *entity.Material
}

// CreateMaterialUseCase handles material creation logic.
type CreateMaterialUseCase struct {
	materialRepo adapter.MaterialRepository
	budgetStore  *budget.Store
}

// NewCreateMaterialUseCase creates a new CreateMaterialUseCase instance.
func NewCreateMaterialUseCase(materialRepo adapter.MaterialRepository, budgetStore *budget.Store) *CreateMaterialUseCase {
	return &CreateMaterialUseCase{
		materialRepo: materialRepo,
		budgetStore:  budgetStore,
	}
}

// Execute performs the material creation.
func (uc *CreateMaterialUseCase) Execute(ctx context.Context, input CreateMaterialInput) (*CreateMaterialOutput, error) {
	if input.Quantity < 0 {
		return nil, domainerror.ErrInvalidQuantity
	}

	material := entity.NewMaterial(
		input.ProjectID,
		input.Name,
		input.Quantity,
		input.Price,
		input.Unit,
		input.Category,
		input.Supplier,
	)
	material.TotalBought = input.TotalBought

	if err := uc.materialRepo.Create(ctx, material); err != nil {
		return nil, fmt.Errorf("failed to create material: %w", err)
	}

	uc.budgetStore.SignalChange(input.ProjectID, budget.ChangeMaterials)

	return &CreateMaterialOutput{Material: material}, nil
}
