package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/sitepulse/backend/internal/application/adapter"
	"github.com/sitepulse/backend/internal/domain/entity"
)

// predictionKeyPrefix namespaces the per-project prediction cache entries.
const predictionKeyPrefix = "sitepulse:predictions:"

// predictionDoc is the cached wire shape of one delay prediction.
type predictionDoc struct {
	TaskID            uuid.UUID `json:"task_id"`
	TaskTitle         string    `json:"task_title"`
	PlannedDuration   int       `json:"planned_duration_days"`
	PredictedDuration int       `json:"predicted_duration_days"`
	DelayDays         int       `json:"delay_days"`
	RiskLevel         string    `json:"risk_level"`
	Factors           []string  `json:"factors,omitempty"`
	PlannedEndDate    time.Time `json:"planned_end_date"`
	Status            string    `json:"status,omitempty"`
}

// PredictionCache implements adapter.PredictionCache on redis.
type PredictionCache struct {
	client *redis.Client
}

// NewPredictionCache creates a new redis prediction cache.
func NewPredictionCache(client *redis.Client) *PredictionCache {
	return &PredictionCache{client: client}
}

func predictionKey(projectID uuid.UUID) string {
	return predictionKeyPrefix + projectID.String()
}

// Get returns the cached predictions for a project, or (nil, nil) on a miss.
func (c *PredictionCache) Get(ctx context.Context, projectID uuid.UUID) ([]*entity.DelayPrediction, error) {
	payload, err := c.client.Get(ctx, predictionKey(projectID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read prediction cache: %w", err)
	}

	var docs []predictionDoc
	if err := json.Unmarshal([]byte(payload), &docs); err != nil {
		return nil, fmt.Errorf("failed to decode cached predictions: %w", err)
	}

	predictions := make([]*entity.DelayPrediction, len(docs))
	for i, d := range docs {
		predictions[i] = &entity.DelayPrediction{
			TaskID:            d.TaskID,
			TaskTitle:         d.TaskTitle,
			PlannedDuration:   d.PlannedDuration,
			PredictedDuration: d.PredictedDuration,
			DelayDays:         d.DelayDays,
			RiskLevel:         entity.RiskLevel(d.RiskLevel),
			Factors:           d.Factors,
			PlannedEndDate:    d.PlannedEndDate,
			Status:            d.Status,
		}
	}
	return predictions, nil
}

// Set stores predictions for a project with the given TTL.
func (c *PredictionCache) Set(ctx context.Context, projectID uuid.UUID, predictions []*entity.DelayPrediction, ttl time.Duration) error {
	docs := make([]predictionDoc, len(predictions))
	for i, p := range predictions {
		docs[i] = predictionDoc{
			TaskID:            p.TaskID,
			TaskTitle:         p.TaskTitle,
			PlannedDuration:   p.PlannedDuration,
			PredictedDuration: p.PredictedDuration,
			DelayDays:         p.DelayDays,
			RiskLevel:         string(p.RiskLevel),
			Factors:           p.Factors,
			PlannedEndDate:    p.PlannedEndDate,
			Status:            p.Status,
		}
	}

	payload, err := json.Marshal(docs)
	if err != nil {
		return fmt.Errorf("failed to encode predictions for cache: %w", err)
	}

	if err := c.client.Set(ctx, predictionKey(projectID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write prediction cache: %w", err)
	}
	return nil
}

// Ensure implementation satisfies the interface.
var _ adapter.PredictionCache = (*PredictionCache)(nil)
