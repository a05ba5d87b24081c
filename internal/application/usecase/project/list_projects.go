package project

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sitepulse/backend/internal/application/adapter"
	"github.com/sitepulse/backend/internal/domain/entity"
	domainerror "github.com/sitepulse/backend/internal/domain/error"
)

// ListProjectsInput represents the input for listing projects.
type ListProjectsInput struct {
	EngineerID uuid.UUID
}

// ListProjectsOutput represents the output of listing projects.
type ListProjectsOutput struct {
	Projects []*entity.Project
}

// ListProjectsUseCase handles project listing logic.
type ListProjectsUseCase struct {
	projectRepo adapter.ProjectRepository
	logger      *slog.Logger
}

// NewListProjectsUseCase creates a new ListProjectsUseCase instance.
func NewListProjectsUseCase(projectRepo adapter.ProjectRepository, logger *slog.Logger) *ListProjectsUseCase {
	return &ListProjectsUseCase{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// Execute retrieves all projects visible to an engineer. An access denial
// produces an empty list with a warning.
func (uc *ListProjectsUseCase) Execute(ctx context.Context, input ListProjectsInput) (*ListProjectsOutput, error) {
	projects, err := uc.projectRepo.FindByEngineerID(ctx, input.EngineerID)
	if err != nil {
		if errors.Is(err, domainerror.ErrProjectAccessDenied) {
			uc.logger.Warn("project listing denied, returning empty result", "engineer_id", input.EngineerID)
			return &ListProjectsOutput{Projects: []*entity.Project{}}, nil
		}
		return nil, err
	}

	return &ListProjectsOutput{Projects: projects}, nil
}
