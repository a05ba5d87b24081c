// Package worker contains worker-related use cases.
package worker

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sitepulse/backend/internal/application/adapter"
	"github.com/sitepulse/backend/internal/domain/entity"
)

// CreateWorkerInput represents the input for worker creation.
type CreateWorkerInput struct {
	ProjectID uuid.UUID
	Name      string
	Role      string
	Skills    []string
	Phone     string
	DailyRate float64
}

// CreateWorkerOutput represents the output of worker creation.
type CreateWorkerOutput struct {
	Worker *entity.Worker
}

// CreateWorkerUseCase handles worker creation logic.
type CreateWorkerUseCase struct {
	workerRepo adapter.WorkerRepository
}

// NewCreateWorkerUseCase creates a new CreateWorkerUseCase instance.
func NewCreateWorkerUseCase(workerRepo adapter.WorkerRepository) *CreateWorkerUseCase {
	return &CreateWorkerUseCase{workerRepo: workerRepo}
}

// Execute performs the worker creation.
func (uc *CreateWorkerUseCase) Execute(ctx context.Context, input CreateWorkerInput) (*CreateWorkerOutput, error) {
	worker := entity.NewWorker(
		input.ProjectID,
		input.Name,
		input.Role,
		input.Skills,
		input.Phone,
		input.DailyRate,
	)

	if err := uc.workerRepo.Create(ctx, worker); err != nil {
		return nil, fmt.Errorf("failed to create worker: %w", err)
	}

	return &CreateWorkerOutput{Worker: worker}, nil
}
