// Package equipment contains equipment-related use cases.
package equipment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sitepulse/backend/internal/application/adapter"
	"github.com/sitepulse/backend/internal/application/usecase/budget"
)

// DeleteEquipmentInput represents the input for equipment deletion.
type DeleteEquipmentInput struct {
	ID uuid.UUID
}

// DeleteEquipmentUseCase handles equipment deletion logic.
type DeleteEquipmentUseCase struct {
	equipmentRepo adapter.EquipmentRepository
	budgetStore   *budget.Store
}

// NewDeleteEquipmentUseCase creates a new DeleteEquipmentUseCase instance.
func NewDeleteEquipmentUseCase(equipmentRepo adapter.EquipmentRepository, budgetStore *budget.Store) *DeleteEquipmentUseCase {
	return &DeleteEquipmentUseCase{
		equipmentRepo: equipmentRepo,
		budgetStore:   budgetStore,
	}
}

// Execute performs the equipment deletion.
func (uc *DeleteEquipmentUseCase) Execute(ctx context.Context, input DeleteEquipmentInput) error {
	equipment, err := uc.equipmentRepo.FindByID(ctx, input.ID)
	if err != nil {
		return err
	}

	if err := uc.equipmentRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete equipment: %w", err)
	}

	uc.budgetStore.SignalChange(equipment.ProjectID, budget.ChangeEquipment)

	return nil
}
