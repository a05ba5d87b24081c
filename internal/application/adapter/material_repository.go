// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/sitepulse/backend/internal/domain/entity"
)

// MaterialRepository defines the interface for material persistence operations.
type MaterialRepository interface {
	// Create creates a new material in the database.
	Create(ctx context.Context, material *entity.Material) error

	// FindByID retrieves a material by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Material, error)

	// FindByProjectID retrieves all materials for a given project.
	FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*entity.Material, error)

	// Update updates an existing material in the database.
	Update(ctx context.Context, material *entity.Material) error

	// Delete removes a material from the database (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error
}
