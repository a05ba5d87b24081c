// Package task contains task-related use cases. Every task mutation
// republishes the full project task snapshot on the realtime feed so
// that all connected clients converge on the same collection.
package task

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sitepulse/backend/internal/application/adapter"
	"github.com/sitepulse/backend/internal/domain/entity"
)

// CreateTaskInput represents the input for task creation.
type CreateTaskInput struct {
	ProjectID    uuid.UUID
	Title        string
	Description  string
	Priority     entity.TaskPriority
	AssigneeID   *uuid.UUID
	PlannedStart time.Time
	PlannedEnd   time.Time
}

// CreateTaskOutput represents the output of task creation.
type CreateTaskOutput struct {
	Task *entity.Task
}

// CreateTaskUseCase handles task creation logic.
type CreateTaskUseCase struct {
	taskRepo adapter.TaskRepository
	taskFeed adapter.TaskFeed
	logger   *slog.Logger
}

// NewCreateTaskUseCase creates a new CreateTaskUseCase instance.
func NewCreateTaskUseCase(taskRepo adapter.TaskRepository, taskFeed adapter.TaskFeed, logger *slog.Logger) *CreateTaskUseCase {
	return &CreateTaskUseCase{
		taskRepo: taskRepo,
		taskFeed: taskFeed,
		logger:   logger,
	}
}

// Execute performs the task creation.
func (uc *CreateTaskUseCase) Execute(ctx context.Context, input CreateTaskInput) (*CreateTaskOutput, error) {
	priority := input.Priority
	if priority == "" {
		priority = entity.TaskPriorityMedium
	}

	task := entity.NewTask(
		input.ProjectID,
		input.Title,
		input.Description,
		priority,
		input.PlannedStart,
		input.PlannedEnd,
	)
	task.AssigneeID = input.AssigneeID

	if err := uc.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	publishSnapshot(ctx, uc.taskRepo, uc.taskFeed, uc.logger, input.ProjectID)

	return &CreateTaskOutput{Task: task}, nil
}

// publishSnapshot reloads the project task collection and publishes it on
// the realtime feed. Feed failures are logged but never fail the mutation;
// the persisted state is the source of truth and the next mutation will
// publish a fresh snapshot.
func publishSnapshot(ctx context.Context, repo adapter.TaskRepository, feed adapter.TaskFeed, logger *slog.Logger, projectID uuid.UUID) {
	tasks, err := repo.FindByProjectID(ctx, projectID)
	if err != nil {
		logger.Warn("failed to load task snapshot for feed", "project_id", projectID, "error", err)
		return
	}

	if err := feed.PublishSnapshot(ctx, projectID, tasks); err != nil {
		logger.Warn("failed to publish task snapshot", "project_id", projectID, "error", err)
	}
}
