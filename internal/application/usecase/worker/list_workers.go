// Package worker contains worker-related use cases.
package worker

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sitepulse/backend/internal/application/adapter"
	"github.com/sitepulse/backend/internal/domain/entity"
)

// ListWorkersInput represents the input for listing workers.
type ListWorkersInput struct {
	ProjectID uuid.UUID
}

// ListWorkersOutput represents the output of listing workers.
type ListWorkersOutput struct {
	Workers []*entity.Worker
}

// ListWorkersUseCase handles worker listing logic.
type ListWorkersUseCase struct {
	workerRepo adapter.WorkerRepository
}

// NewListWorkersUseCase creates a new ListWorkersUseCase instance.
func NewListWorkersUseCase(workerRepo adapter.WorkerRepository) *ListWorkersUseCase {
	return &ListWorkersUseCase{workerRepo: workerRepo}
}

// Execute retrieves all workers for a project.
func (uc *ListWorkersUseCase) Execute(ctx context.Context, input ListWorkersInput) (*ListWorkersOutput, error) {
	workers, err := uc.workerRepo.FindByProjectID(ctx, input.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}

	return &ListWorkersOutput{Workers: workers}, nil
}
