// Package equipment contains equipment-related use cases.
package equipment

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

// UpdateEquipmentInput represents the input for equipment update.
// Nil fields are left unchanged.
type UpdateEquipmentInput struct {
	ID         uuid.UUID
	Name       *string
	Type       *entity.EquipmentType
	Category   *string
	Condition  *string
	RentalCost *decimal.Decimal
	ClearCost  bool
	Quantity   *int
	Status     *entity.EquipmentStatus
}

// UpdateEquipmentOutput represents the output of equipment update.
type UpdateEquipmentOutput struct {
	Equipment *entity.Equipment
}

// UpdateEquipmentUseCase handles equipment update logic.
type UpdateEquipmentUseCase struct {
	equipmentRepo adapter.EquipmentRepository
	budgetStore   *budget.Store
}

// NewUpdateEquipmentUseCase creates a new UpdateEquipmentUseCase instance.
func NewUpdateEquipmentUseCase(equipmentRepo adapter.EquipmentRepository, budgetStore *budget.Store) *UpdateEquipmentUseCase {
	return &UpdateEquipmentUseCase{
		equipmentRepo: equipmentRepo,
		budgetStore:   budgetStore,
	}
}

// Execute performs the equipment update.
func (uc *UpdateEquipmentUseCase) Execute(ctx context.Context, input UpdateEquipmentInput) (*UpdateEquipmentOutput, error) {
	equipment, err := uc.equipmentRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		equipment.Name = *input.Name
	}
	if input.Type != nil {
		if *input.Type != entity.EquipmentTypeOwned && *input.Type != entity.EquipmentTypeRental {
			return nil, domainerror.ErrInvalidEquipmentType
		}
		equipment.Type = *input.Type
	}
	if input.Category != nil {
		equipment.Category = *input.Category
	}
	if input.Condition != nil {
		equipment.Condition = *input.Condition
	}
	if input.RentalCost != nil {
		equipment.RentalCost = input.RentalCost
	}
	if input.ClearCost {
		equipment.RentalCost = nil
	}
	if input.Quantity != nil {
		equipment.Quantity = *input.Quantity
	}
	if input.Status != nil {
		equipment.Status = *input.Status
	}

	// Converting a rental to owned drops its cost so it can never leak into
	// spend derivation.
	if equipment.Type == entity.EquipmentTypeOwned {
		equipment.RentalCost = nil
	}
	equipment.UpdatedAt = time.Now().UTC()

	if err := uc.equipmentRepo.Update(ctx, equipment); err != nil {
		return nil, fmt.Errorf("failed to update equipment: %w", err)
	}

	uc.budgetStore.SignalChange(equipment.ProjectID, budget.ChangeEquipment)

	return &UpdateEquipmentOutput{Equipment: equipment}, nil
}
