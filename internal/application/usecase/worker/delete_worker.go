package worker

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sitepulse/backend/internal/application/adapter"
)

// DeleteWorkerInput represents the input for worker deletion.
type DeleteWorkerInput struct {
	ID uuid.UUID
}

// DeleteWorkerUseCase handles worker deletion logic.
type DeleteWorkerUseCase struct {
	workerRepo adapter.WorkerRepository
}

// NewDeleteWorkerUseCase creates a new DeleteWorkerUseCase instance.
func NewDeleteWorkerUseCase(workerRepo adapter.WorkerRepository) *DeleteWorkerUseCase {
	return &DeleteWorkerUseCase{workerRepo: workerRepo}
}

// Execute performs the worker deletion.
func (uc *DeleteWorkerUseCase) Execute(ctx context.Context, input DeleteWorkerInput) error {
	if _, err := uc.workerRepo.FindByID(ctx, input.ID); err != nil {
		return err
	}

	if err := uc.workerRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete worker: %w", err)
	}

	return nil
}
