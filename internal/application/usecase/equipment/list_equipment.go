// Package equipment contains equipment-related use cases.
package equipment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sitepulse/backend/internal/application/adapter"
	"github.com/sitepulse/backend/internal/domain/entity"
)

// ListEquipmentInput represents the input for listing equipment.
type ListEquipmentInput struct {
	ProjectID uuid.UUID
}

// ListEquipmentOutput represents the output of listing equipment.
type ListEquipmentOutput struct {
	Equipment []*entity.Equipment
}

// ListEquipmentUseCase handles equipment listing logic.
type ListEquipmentUseCase struct {
	equipmentRepo adapter.EquipmentRepository
}

// NewListEquipmentUseCase creates a new ListEquipmentUseCase instance.
func NewListEquipmentUseCase(equipmentRepo adapter.EquipmentRepository) *ListEquipmentUseCase {
	return &ListEquipmentUseCase{equipmentRepo: equipmentRepo}
}

// Execute retrieves all equipment for a project.
func (uc *ListEquipmentUseCase) Execute(ctx context.Context, input ListEquipmentInput) (*ListEquipmentOutput, error) {
	equipment, err := uc.equipmentRepo.FindByProjectID(ctx, input.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}

	return &ListEquipmentOutput{Equipment: equipment}, nil
}
