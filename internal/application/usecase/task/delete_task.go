package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sitepulse/backend/internal/application/adapter"
)

// DeleteTaskInput represents the input for task deletion.
type DeleteTaskInput struct {
	ID uuid.UUID
}

// DeleteTaskUseCase handles task deletion logic.
type DeleteTaskUseCase struct {
	taskRepo adapter.TaskRepository
	taskFeed adapter.TaskFeed
	logger   *slog.Logger
}

// NewDeleteTaskUseCase creates a new DeleteTaskUseCase instance.
func NewDeleteTaskUseCase(taskRepo adapter.TaskRepository, taskFeed adapter.TaskFeed, logger *slog.Logger) *DeleteTaskUseCase {
	return &DeleteTaskUseCase{
		taskRepo: taskRepo,
		taskFeed: taskFeed,
		logger:   logger,
	}
}

// Execute performs the task deletion.
func (uc *DeleteTaskUseCase) Execute(ctx context.Context, input DeleteTaskInput) error {
	task, err := uc.taskRepo.FindByID(ctx, input.ID)
	if err != nil {
		return err
	}

	if err := uc.taskRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	publishSnapshot(ctx, uc.taskRepo, uc.taskFeed, uc.logger, task.ProjectID)

	return nil
}
