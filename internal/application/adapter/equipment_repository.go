// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/sitepulse/backend/internal/domain/entity"
)

// EquipmentRepository defines the interface for equipment persistence operations.
type EquipmentRepository interface {
	// Create creates a new piece of equipment in the database.
	Create(ctx context.Context, equipment *entity.Equipment) error

	// FindByID retrieves a piece of equipment by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Equipment, error)

	// FindByProjectID retrieves all equipment for a given project.
	FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*entity.Equipment, error)

	// Update updates an existing piece of equipment in the database.
	Update(ctx context.Context, equipment *entity.Equipment) error

	// Delete removes a piece of equipment from the database (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error
}
