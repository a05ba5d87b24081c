package realtime

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/sitepulse/backend/internal/domain/entity"
)

func newTestClient(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestTaskFeed_PublishAndSubscribe(t *testing.T) {
	client := newTestClient(t)
	feed := NewTaskFeed(client, slog.New(slog.NewTextHandler(io.Discard, nil)))
	projectID := uuid.New()

	snapshots, cancel, err := feed.Subscribe(context.Background(), projectID)
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}
	defer cancel()

	tasks := []*entity.Task{
		{
			ID:        uuid.New(),
			ProjectID: projectID,
			Title:     "Install scaffolding",
			Status:    entity.TaskStatusInProgress,
			Priority:  entity.TaskPriorityHigh,
			Progress:  40,
		},
	}

	if err := feed.PublishSnapshot(context.Background(), projectID, tasks); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	select {
	case got := <-snapshots:
		if len(got) != 1 {
			t.Fatalf("expected 1 task, got %d", len(got))
		}
		if got[0].Title != "Install scaffolding" {
			t.Errorf("expected title %q, got %q", "Install scaffolding", got[0].Title)
		}
		if got[0].Status != entity.TaskStatusInProgress {
			t.Errorf("expected status %s, got %s", entity.TaskStatusInProgress, got[0].Status)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for snapshot")
	}
}

func TestTaskFeed_ProjectsAreIsolated(t *testing.T) {
	client := newTestClient(t)
	feed := NewTaskFeed(client, slog.New(slog.NewTextHandler(io.Discard, nil)))

	projectA := uuid.New()
	projectB := uuid.New()

	snapshots, cancel, err := feed.Subscribe(context.Background(), projectA)
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}
	defer cancel()

	if err := feed.PublishSnapshot(context.Background(), projectB, []*entity.Task{
		{ID: uuid.New(), ProjectID: projectB, Title: "Other project"},
	}); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	select {
	case got := <-snapshots:
		t.Fatalf("received snapshot for wrong project: %v", got)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestPredictionCache_RoundTrip(t *testing.T) {
	client := newTestClient(t)
	cache := NewPredictionCache(client)
	projectID := uuid.New()

	predictions := []*entity.DelayPrediction{
		{
			TaskID:            uuid.New(),
			TaskTitle:         "Pour foundation",
			PlannedDuration:   10,
			PredictedDuration: 13,
			DelayDays:         3,
			RiskLevel:         entity.RiskLevelMedium,
			Factors:           []string{"weather"},
		},
	}

	if err := cache.Set(context.Background(), projectID, predictions, time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, err := cache.Get(context.Background(), projectID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 prediction, got %d", len(got))
	}
	if got[0].RiskLevel != entity.RiskLevelMedium {
		t.Errorf("expected medium risk, got %s", got[0].RiskLevel)
	}
	if got[0].DelayDays != 3 {
		t.Errorf("expected 3 delay days, got %d", got[0].DelayDays)
	}
}

func TestPredictionCache_MissReturnsNil(t *testing.T) {
	client := newTestClient(t)
	cache := NewPredictionCache(client)

	got, err := cache.Get(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil on cache miss, got %v", got)
	}
}
