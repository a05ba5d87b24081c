// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/sitepulse/backend/internal/domain/entity"
)

// ProjectRepository defines the interface for project persistence operations.
type ProjectRepository interface {
	// Create creates a new project in the database.
	Create(ctx context.Context, project *entity.Project) error

	// FindByID retrieves a project by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)

	// FindByEngineerID retrieves all projects visible to an engineer.
	FindByEngineerID(ctx context.Context, engineerID uuid.UUID) ([]*entity.Project, error)

	// Update updates an existing project in the database.
	Update(ctx context.Context, project *entity.Project) error
}

// BlueprintRepository defines the interface for blueprint persistence operations.
type BlueprintRepository interface {
	// Create creates a new blueprint in the database.
	Create(ctx context.Context, blueprint *entity.Blueprint) error

	// FindByProjectID retrieves all blueprints for a given project.
	FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*entity.Blueprint, error)

	// Update updates an existing blueprint (including its pin list).
	Update(ctx context.Context, blueprint *entity.Blueprint) error

	// ExistsByProjectID reports whether a project already has any blueprint record.
	ExistsByProjectID(ctx context.Context, projectID uuid.UUID) (bool, error)
}
