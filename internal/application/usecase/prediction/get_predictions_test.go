package prediction

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/sitepulse/backend/internal/domain/entity"
)

type fakeOracle struct {
	available   bool
	predictions []*entity.DelayPrediction
	err         error
	calls       int
}

func (f *fakeOracle) IsAvailable() bool { return f.available }

func (f *fakeOracle) Predict(ctx context.Context, projectID uuid.UUID) ([]*entity.DelayPrediction, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.predictions, nil
}

type fakeCache struct {
	entries map[uuid.UUID][]*entity.DelayPrediction
	getErr  error
	setErr  error
	lastTTL time.Duration
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[uuid.UUID][]*entity.DelayPrediction)}
}

func (f *fakeCache) Get(ctx context.Context, projectID uuid.UUID) ([]*entity.DelayPrediction, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.entries[projectID], nil
}

func (f *fakeCache) Set(ctx context.Context, projectID uuid.UUID, predictions []*entity.DelayPrediction, ttl time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.entries[projectID] = predictions
	f.lastTTL = ttl
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func samplePredictions() []*entity.DelayPrediction {
	return []*entity.DelayPrediction{
		{
			TaskID:            uuid.New(),
			TaskTitle:         "Pour foundation",
			PlannedDuration:   10,
			PredictedDuration: 14,
			DelayDays:         4,
			RiskLevel:         entity.RiskLevelHigh,
			Factors:           []string{"weather", "supplier lead time"},
		},
	}
}

func TestGetPredictions_CacheMissCallsOracleAndCaches(t *testing.T) {
	projectID := uuid.New()
	oracle := &fakeOracle{available: true, predictions: samplePredictions()}
	cache := newFakeCache()
	uc := NewGetPredictionsUseCase(oracle, cache, testLogger())

	out, oerr := uc.Execute(context.Background(), GetPredictionsInput{ProjectID: projectID})
	if oerr != nil {
		t.Fatalf("unexpected error: %v", oerr.Message)
	}

	if out.FromCache {
		t.Error("expected fresh oracle result, got cache hit")
	}
	if len(out.Predictions) != 1 {
		t.Fatalf("expected 1 prediction, got %d", len(out.Predictions))
	}
	if oracle.calls != 1 {
		t.Errorf("expected 1 oracle call, got %d", oracle.calls)
	}
	if cache.lastTTL != cacheTTL {
		t.Errorf("expected cache TTL %v, got %v", cacheTTL, cache.lastTTL)
	}
}

func TestGetPredictions_CacheHitSkipsOracle(t *testing.T) {
	projectID := uuid.New()
	oracle := &fakeOracle{available: true}
	cache := newFakeCache()
	cache.entries[projectID] = samplePredictions()
	uc := NewGetPredictionsUseCase(oracle, cache, testLogger())

	out, oerr := uc.Execute(context.Background(), GetPredictionsInput{ProjectID: projectID})
	if oerr != nil {
		t.Fatalf("unexpected error: %v", oerr.Message)
	}

	if !out.FromCache {
		t.Error("expected cache hit")
	}
	if oracle.calls != 0 {
		t.Errorf("expected no oracle calls, got %d", oracle.calls)
	}
}

func TestGetPredictions_ForceRefreshBypassesCache(t *testing.T) {
	projectID := uuid.New()
	oracle := &fakeOracle{available: true, predictions: samplePredictions()}
	cache := newFakeCache()
	cache.entries[projectID] = []*entity.DelayPrediction{{TaskTitle: "stale"}}
	uc := NewGetPredictionsUseCase(oracle, cache, testLogger())

	out, oerr := uc.Execute(context.Background(), GetPredictionsInput{ProjectID: projectID, ForceRefresh: true})
	if oerr != nil {
		t.Fatalf("unexpected error: %v", oerr.Message)
	}

	if out.FromCache {
		t.Error("expected oracle result on force refresh")
	}
	if oracle.calls != 1 {
		t.Errorf("expected 1 oracle call, got %d", oracle.calls)
	}
	if cache.entries[projectID][0].TaskTitle == "stale" {
		t.Error("expected cache to be refreshed")
	}
}

func TestGetPredictions_OracleNotConfigured(t *testing.T) {
	uc := NewGetPredictionsUseCase(&fakeOracle{available: false}, newFakeCache(), testLogger())

	_, oerr := uc.Execute(context.Background(), GetPredictionsInput{ProjectID: uuid.New()})
	if oerr == nil {
		t.Fatal("expected error")
	}
	if oerr.Code != ErrCodeOracleUnavailable {
		t.Errorf("expected code %s, got %s", ErrCodeOracleUnavailable, oerr.Code)
	}
	if oerr.Retryable {
		t.Error("unconfigured oracle should not be retryable")
	}
}

func TestGetPredictions_OracleFailureClassified(t *testing.T) {
	oracle := &fakeOracle{available: true, err: errors.New("dial tcp: connection refused")}
	uc := NewGetPredictionsUseCase(oracle, newFakeCache(), testLogger())

	_, oerr := uc.Execute(context.Background(), GetPredictionsInput{ProjectID: uuid.New()})
	if oerr == nil {
		t.Fatal("expected error")
	}
	if oerr.Code != ErrCodeOracleUnavailable {
		t.Errorf("expected code %s, got %s", ErrCodeOracleUnavailable, oerr.Code)
	}
	if !oerr.Retryable {
		t.Error("expected retryable network failure")
	}
}

func TestGetPredictions_BrokenCacheFallsThroughToOracle(t *testing.T) {
	oracle := &fakeOracle{available: true, predictions: samplePredictions()}
	cache := newFakeCache()
	cache.getErr = errors.New("redis: connection pool exhausted")
	cache.setErr = errors.New("redis: connection pool exhausted")
	uc := NewGetPredictionsUseCase(oracle, cache, testLogger())

	out, oerr := uc.Execute(context.Background(), GetPredictionsInput{ProjectID: uuid.New()})
	if oerr != nil {
		t.Fatalf("unexpected error: %v", oerr.Message)
	}
	if len(out.Predictions) != 1 {
		t.Fatalf("expected 1 prediction, got %d", len(out.Predictions))
	}
}
