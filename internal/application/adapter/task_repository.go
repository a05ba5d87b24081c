// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/sitepulse/backend/internal/domain/entity"
)

// TaskRepository defines the interface for task persistence operations.
type TaskRepository interface {
	// Create creates a new task in the database.
	Create(ctx context.Context, task *entity.Task) error

	// FindByID retrieves a task by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error)

	// FindByProjectID retrieves all tasks for a given project.
	FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*entity.Task, error)

	// Update updates an existing task in the database.
	Update(ctx context.Context, task *entity.Task) error

	// Delete removes a task from the database (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error
}

// TaskFeed is the realtime channel that delivers the full task collection
// snapshot for a project on every change.
type TaskFeed interface {
	// PublishSnapshot publishes the current task collection for a project.
	PublishSnapshot(ctx context.Context, projectID uuid.UUID, tasks []*entity.Task) error

	// Subscribe returns a channel of task snapshots for a project and a
	// cancel function that releases the subscription.
	Subscribe(ctx context.Context, projectID uuid.UUID) (<-chan []*entity.Task, func(), error)
}
