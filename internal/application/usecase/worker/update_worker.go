// Package worker contains worker-related use cases.
package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sitepulse/backend/internal/application/adapter"
	"github.com/sitepulse/backend/internal/domain/entity"
	domainerror "github.com/sitepulse/backend/internal/domain/error"
)

// UpdateWorkerInput represents the input for worker update.
// Nil fields are left unchanged.
type UpdateWorkerInput struct {
	ID        uuid.UUID
	Name      *string
	Role      *string
	Skills    *[]string
	Phone     *string
	DailyRate *float64
	Status    *entity.WorkerStatus
}

// UpdateWorkerOutput represents the output of worker update.
type UpdateWorkerOutput struct {
	Worker *entity.Worker
}

// UpdateWorkerUseCase handles worker update logic.
type UpdateWorkerUseCase struct {
	workerRepo adapter.WorkerRepository
}

// NewUpdateWorkerUseCase creates a new UpdateWorkerUseCase instance.
func NewUpdateWorkerUseCase(workerRepo adapter.WorkerRepository) *UpdateWorkerUseCase {
	return &UpdateWorkerUseCase{workerRepo: workerRepo}
}

// Execute performs the worker update.
func (uc *UpdateWorkerUseCase) Execute(ctx context.Context, input UpdateWorkerInput) (*UpdateWorkerOutput, error) {
	worker, err := uc.workerRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Status != nil && !isValidWorkerStatus(*input.Status) {
		return nil, domainerror.ErrInvalidWorkerStatus
	}

	if input.Name != nil {
		worker.Name = *input.Name
	}
	if input.Role != nil {
		worker.Role = *input.Role
	}
	if input.Skills != nil {
		worker.Skills = *input.Skills
	}
	if input.Phone != nil {
		worker.Phone = *input.Phone
	}
	if input.DailyRate != nil {
		worker.DailyRate = *input.DailyRate
	}
	if input.Status != nil {
		worker.Status = *input.Status
	}
	worker.UpdatedAt = time.Now().UTC()

	if err := uc.workerRepo.Update(ctx, worker); err != nil {
		return nil, fmt.Errorf("failed to update worker: %w", err)
	}

	return &UpdateWorkerOutput{Worker: worker}, nil
}

// isValidWorkerStatus validates the worker status.
func isValidWorkerStatus(status entity.WorkerStatus) bool {
	return status == entity.WorkerStatusActive ||
		status == entity.WorkerStatusOnLeave ||
		status == entity.WorkerStatusInactive
}
