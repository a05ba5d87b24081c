// Package realtime implements the redis-backed realtime channels: the task
// feed that broadcasts collection snapshots and the prediction cache.
package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/sitepulse/backend/internal/application/adapter"
	"github.com/sitepulse/backend/internal/domain/entity"
)

// taskChannelPrefix namespaces the per-project pub/sub channels.
const taskChannelPrefix = "sitepulse:tasks:"

// snapshotBuffer is the per-subscriber channel depth. Snapshots are full
// replacements, so a slow consumer only ever misses intermediate states.
const snapshotBuffer = 8

// taskDoc is the wire shape of one task in a published snapshot.
type taskDoc struct {
	ID           uuid.UUID  `json:"id"`
	ProjectID    uuid.UUID  `json:"project_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	Status       string     `json:"status"`
	Priority     string     `json:"priority"`
	AssigneeID   *uuid.UUID `json:"assignee_id,omitempty"`
	PlannedStart time.Time  `json:"planned_start"`
	PlannedEnd   time.Time  `json:"planned_end"`
	Progress     int        `json:"progress"`
}

// TaskFeed implements adapter.TaskFeed on redis pub/sub. Every mutation
// publishes the complete task collection for the project; subscribers always
// replace, never merge.
type TaskFeed struct {
	client *redis.Client
	logger *slog.Logger
}

// NewTaskFeed creates a new redis task feed.
func NewTaskFeed(client *redis.Client, logger *slog.Logger) *TaskFeed {
	return &TaskFeed{
		client: client,
		logger: logger,
	}
}

func taskChannel(projectID uuid.UUID) string {
	return taskChannelPrefix + projectID.String()
}

// PublishSnapshot publishes the current task collection for a project.
func (f *TaskFeed) PublishSnapshot(ctx context.Context, projectID uuid.UUID, tasks []*entity.Task) error {
	docs := make([]taskDoc, len(tasks))
	for i, t := range tasks {
		docs[i] = taskDoc{
			ID:           t.ID,
			ProjectID:    t.ProjectID,
			Title:        t.Title,
			Description:  t.Description,
			Status:       string(t.Status),
			Priority:     string(t.Priority),
			AssigneeID:   t.AssigneeID,
			PlannedStart: t.PlannedStart,
			PlannedEnd:   t.PlannedEnd,
			Progress:     t.Progress,
		}
	}

	payload, err := json.Marshal(docs)
	if err != nil {
		return fmt.Errorf("failed to encode task snapshot: %w", err)
	}

	if err := f.client.Publish(ctx, taskChannel(projectID), payload).Err(); err != nil {
		return fmt.Errorf("failed to publish task snapshot: %w", err)
	}
	return nil
}

// Subscribe returns a channel of task snapshots for a project and a cancel
// function that releases the subscription.
func (f *TaskFeed) Subscribe(ctx context.Context, projectID uuid.UUID) (<-chan []*entity.Task, func(), error) {
	sub := f.client.Subscribe(ctx, taskChannel(projectID))

	// Force the SUBSCRIBE round trip so a broken connection fails here
	// instead of silently delivering nothing.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, nil, fmt.Errorf("failed to subscribe to task feed: %w", err)
	}

	out := make(chan []*entity.Task, snapshotBuffer)

	go func() {
		defer close(out)
		for msg := range sub.Channel() {
			tasks, err := decodeSnapshot(msg.Payload)
			if err != nil {
				f.logger.Warn("dropping malformed task snapshot", "project_id", projectID, "error", err)
				continue
			}
			select {
			case out <- tasks:
			default:
				// Drop for slow consumers; the next snapshot supersedes this one.
			}
		}
	}()

	cancel := func() {
		_ = sub.Close()
	}
	return out, cancel, nil
}

func decodeSnapshot(payload string) ([]*entity.Task, error) {
	var docs []taskDoc
	if err := json.Unmarshal([]byte(payload), &docs); err != nil {
		return nil, err
	}

	tasks := make([]*entity.Task, len(docs))
	for i, d := range docs {
		tasks[i] = &entity.Task{
			ID:           d.ID,
			ProjectID:    d.ProjectID,
			Title:        d.Title,
			Description:  d.Description,
			Status:       entity.TaskStatus(d.Status),
			Priority:     entity.TaskPriority(d.Priority),
			AssigneeID:   d.AssigneeID,
			PlannedStart: d.PlannedStart,
			PlannedEnd:   d.PlannedEnd,
			Progress:     d.Progress,
		}
	}
	return tasks, nil
}

// Ensure implementation satisfies the interface.
var _ adapter.TaskFeed = (*TaskFeed)(nil)
