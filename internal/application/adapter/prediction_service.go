// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sitepulse/backend/internal/domain/entity"
)

// PredictionService is the client interface for the external delay-prediction
// oracle. It is consumed as an opaque remote function: one attempt per call,
// errors surfaced without retry.
type PredictionService interface {
	// IsAvailable checks if the oracle is configured.
	IsAvailable() bool

	// Predict returns the per-task delay predictions for a project.
	Predict(ctx context.Context, projectID uuid.UUID) ([]*entity.DelayPrediction, error)
}

// PredictionCache caches oracle responses per project.
type PredictionCache interface {
	// Get returns the cached predictions for a project, or (nil, nil) on a miss.
	Get(ctx context.Context, projectID uuid.UUID) ([]*entity.DelayPrediction, error)

	// Set stores predictions for a project with the given TTL.
	Set(ctx context.Context, projectID uuid.UUID, predictions []*entity.DelayPrediction, ttl time.Duration) error
}
