// Package material contains material-related use cases.
package material

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sitepulse/backend/internal/application/adapter"
	"github.com/sitepulse/backend/internal/domain/entity"
)

// ListMaterialsInput represents the input for listing materials.
type ListMaterialsInput struct {
	ProjectID uuid.UUID
}

// ListMaterialsOutput represents the output of listing materials.
type ListMaterialsOutput struct {
	Materials []*entity.Material
}

// ListMaterialsUseCase handles material listing logic.
type ListMaterialsUseCase struct {
	materialRepo adapter.MaterialRepository
}

// NewListMaterialsUseCase creates a new ListMaterialsUseCase instance.
func NewListMaterialsUseCase(materialRepo adapter.MaterialRepository) *ListMaterialsUseCase {
	return &ListMaterialsUseCase{materialRepo: materialRepo}
}

// Execute retrieves all materials for a project.
func (uc *ListMaterialsUseCase) Execute(ctx context.Context, input ListMaterialsInput) (*ListMaterialsOutput, error) {
	materials, err := uc.materialRepo.FindByProjectID(ctx, input.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list materials: %w", err)
	}

	return &ListMaterialsOutput{Materials: materials}, nil
}
