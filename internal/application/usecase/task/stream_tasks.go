package task

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sitepulse/backend/internal/application/adapter"
	"github.com/sitepulse/backend/internal/domain/entity"
)

// StreamTasksInput represents the input for streaming task snapshots.
type StreamTasksInput struct {
	ProjectID uuid.UUID
}

// StreamTasksOutput carries the initial task snapshot plus a live channel
// of subsequent snapshots. Cancel must be called when the consumer is done.
type StreamTasksOutput struct {
	Initial   []*entity.Task
	Snapshots <-chan []*entity.Task
	Cancel    func()
}

// StreamTasksUseCase wires a consumer into the realtime task feed.
type StreamTasksUseCase struct {
	taskRepo adapter.TaskRepository
	taskFeed adapter.TaskFeed
}

// NewStreamTasksUseCase creates a new StreamTasksUseCase instance.
func NewStreamTasksUseCase(taskRepo adapter.TaskRepository, taskFeed adapter.TaskFeed) *StreamTasksUseCase {
	return &StreamTasksUseCase{
		taskRepo: taskRepo,
		taskFeed: taskFeed,
	}
}

// Execute subscribes to the project task feed and loads the current
// collection so the consumer starts from a complete snapshot.
func (uc *StreamTasksUseCase) Execute(ctx context.Context, input StreamTasksInput) (*StreamTasksOutput, error) {
	snapshots, cancel, err := uc.taskFeed.Subscribe(ctx, input.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to task feed: %w", err)
	}

	initial, err := uc.taskRepo.FindByProjectID(ctx, input.ProjectID)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to load initial task snapshot: %w", err)
	}

	return &StreamTasksOutput{
		Initial:   initial,
		Snapshots: snapshots,
		Cancel:    cancel,
	}, nil
}
