// Package equipment contains equipment-related use cases.
package equipment

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

// CreateEquipmentInput represents the input for equipment creation.
type CreateEquipmentInput struct {
	ProjectID  uuid.UUID
	Name       string
	Type       entity.EquipmentType
	Category   string
	Condition  string
	RentalCost *decimal.Decimal
	Quantity   int
}

// CreateEquipmentOutput represents the output of equipment creation.
type CreateEquipmentOutput struct {
	Equipment *entity.Equipment
}

// CreateEquipmentUseCase handles equipment creation logic.
type CreateEquipmentUseCase struct {
	equipmentRepo adapter.EquipmentRepository
	budgetStore   *budget.Store
}

// NewCreateEquipmentUseCase creates a new CreateEquipmentUseCase instance.
func NewCreateEquipmentUseCase(equipmentRepo adapter.EquipmentRepository, budgetStore *budget.Store) *CreateEquipmentUseCase {
	return &CreateEquipmentUseCase{
		equipmentRepo: equipmentRepo,
		budgetStore:   budgetStore,
	}
}

// Execute performs the equipment creation.
func (uc *CreateEquipmentUseCase) Execute(ctx context.Context, input CreateEquipmentInput) (*CreateEquipmentOutput, error) {
	if input.Type != entity.EquipmentTypeOwned && input.Type != entity.EquipmentTypeRental {
		return nil, domainerror.ErrInvalidEquipmentType
	}
	if input.Type == entity.EquipmentTypeOwned && input.RentalCost != nil {
		return nil, domainerror.ErrRentalCostOnOwned
	}

	equipment := entity.NewEquipment(
		input.ProjectID,
		input.Name,
		input.Type,
		input.Category,
		input.Condition,
		input.Quantity,
	)
	equipment.RentalCost = input.RentalCost

	if err := uc.equipmentRepo.Create(ctx, equipment); err != nil {
		return nil, fmt.Errorf("failed to create equipment: %w", err)
	}

	uc.budgetStore.SignalChange(input.ProjectID, budget.ChangeEquipment)

	return &CreateEquipmentOutput{Equipment: equipment}, nil
}
