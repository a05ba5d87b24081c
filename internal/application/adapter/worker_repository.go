// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/sitepulse/backend/internal/domain/entity"
)

// WorkerRepository defines the interface for worker persistence operations.
type WorkerRepository interface {
	// Create creates a new worker in the database.
	Create(ctx context.Context, worker *entity.Worker) error

	// FindByID retrieves a worker by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Worker, error)

	// FindByProjectID retrieves all workers for a given project.
	FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*entity.Worker, error)

	// Update updates an existing worker in the database.
	Update(ctx context.Context, worker *entity.Worker) error

	// Delete removes a worker from the database (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error
}
