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

// GetProjectInput represents the input for fetching a project.
type GetProjectInput struct {
	ID         uuid.UUID
	EngineerID uuid.UUID
}

// GetProjectOutput represents the output of fetching a project. Project is
// nil when access is denied; that is an empty result, not a failure.
type GetProjectOutput struct {
	Project *entity.Project
}

// GetProjectUseCase handles project retrieval logic.
type GetProjectUseCase struct {
	projectRepo adapter.ProjectRepository
	logger      *slog.Logger
}

// NewGetProjectUseCase creates a new GetProjectUseCase instance.
func NewGetProjectUseCase(projectRepo adapter.ProjectRepository, logger *slog.Logger) *GetProjectUseCase {
	return &GetProjectUseCase{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// Execute retrieves a project. Access-control denials resolve to an empty
// result with a warning instead of an error, so a revoked membership reads
// like "no project data" rather than a crash.
func (uc *GetProjectUseCase) Execute(ctx context.Context, input GetProjectInput) (*GetProjectOutput, error) {
	project, err := uc.projectRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrProjectAccessDenied) {
			uc.logger.Warn("project access denied, returning empty result",
				"project_id", input.ID,
				"engineer_id", input.EngineerID,
			)
			return &GetProjectOutput{}, nil
		}
		return nil, err
	}

	if project.EngineerID != input.EngineerID {
		uc.logger.Warn("project access denied, returning empty result",
			"project_id", input.ID,
			"engineer_id", input.EngineerID,
		)
		return &GetProjectOutput{}, nil
	}

	return &GetProjectOutput{Project: project}, nil
}
