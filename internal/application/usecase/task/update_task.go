package task

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sitepulse/backend/internal/application/adapter"
	"github.com/sitepulse/backend/internal/domain/entity"
	domainerror "github.com/sitepulse/backend/internal/domain/error"
)

// UpdateTaskInput represents the input for task update. Nil fields are
// left unchanged.
type UpdateTaskInput struct {
	ID           uuid.UUID
	Title        *string
	Description  *string
	Status       *entity.TaskStatus
	Priority     *entity.TaskPriority
	AssigneeID   *uuid.UUID
	PlannedStart *time.Time
	PlannedEnd   *time.Time
	Progress     *int
}

// UpdateTaskOutput represents the output of task update.
type UpdateTaskOutput struct {
	Task *entity.Task
}

// UpdateTaskUseCase handles task update logic.
type UpdateTaskUseCase struct {
	taskRepo adapter.TaskRepository
	taskFeed adapter.TaskFeed
	logger   *slog.Logger
}

// NewUpdateTaskUseCase creates a new UpdateTaskUseCase instance.
func NewUpdateTaskUseCase(taskRepo adapter.TaskRepository, taskFeed adapter.TaskFeed, logger *slog.Logger) *UpdateTaskUseCase {
	return &UpdateTaskUseCase{
		taskRepo: taskRepo,
		taskFeed: taskFeed,
		logger:   logger,
	}
}

// Execute performs the task update.
func (uc *UpdateTaskUseCase) Execute(ctx context.Context, input UpdateTaskInput) (*UpdateTaskOutput, error) {
	task, err := uc.taskRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Status != nil {
		if !isValidTaskStatus(*input.Status) {
			return nil, domainerror.ErrInvalidTaskStatus
		}
		task.Status = *input.Status
		// Completing a task implies full progress.
		if task.Status == entity.TaskStatusCompleted {
			task.Progress = 100
		}
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	if input.AssigneeID != nil {
		task.AssigneeID = input.AssigneeID
	}
	if input.PlannedStart != nil {
		task.PlannedStart = *input.PlannedStart
	}
	if input.PlannedEnd != nil {
		task.PlannedEnd = *input.PlannedEnd
	}
	if input.Progress != nil {
		if *input.Progress < 0 || *input.Progress > 100 {
			return nil, domainerror.ErrInvalidProgress
		}
		task.Progress = *input.Progress
	}

	task.UpdatedAt = time.Now().UTC()

	if err := uc.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	publishSnapshot(ctx, uc.taskRepo, uc.taskFeed, uc.logger, task.ProjectID)

	return &UpdateTaskOutput{Task: task}, nil
}

func isValidTaskStatus(status entity.TaskStatus) bool {
	switch status {
	case entity.TaskStatusPending, entity.TaskStatusInProgress, entity.TaskStatusCompleted, entity.TaskStatusBlocked:
		return true
	default:
		return false
	}
}
