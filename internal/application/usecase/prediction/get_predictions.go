package prediction

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sitepulse/backend/internal/application/adapter"
	"github.com/sitepulse/backend/internal/domain/entity"
)

// cacheTTL bounds how long an oracle response is served without a fresh call.
const cacheTTL = 10 * time.Minute

// GetPredictionsInput represents the input for fetching delay predictions.
type GetPredictionsInput struct {
	ProjectID uuid.UUID
	// ForceRefresh bypasses the cache and always calls the oracle.
	ForceRefresh bool
}

// GetPredictionsOutput represents the output of fetching delay predictions.
type GetPredictionsOutput struct {
	Predictions []*entity.DelayPrediction
	FromCache   bool
	GeneratedAt time.Time
}

// GetPredictionsUseCase fetches per-task delay predictions from the oracle,
// serving cached responses when available.
type GetPredictionsUseCase struct {
	oracle adapter.PredictionService
	cache  adapter.PredictionCache
	logger *slog.Logger
}

// NewGetPredictionsUseCase creates a new GetPredictionsUseCase instance.
func NewGetPredictionsUseCase(oracle adapter.PredictionService, cache adapter.PredictionCache, logger *slog.Logger) *GetPredictionsUseCase {
	return &GetPredictionsUseCase{
		oracle: oracle,
		cache:  cache,
		logger: logger,
	}
}

// Execute returns the delay predictions for a project. The cache is
// consulted first; a miss triggers a single oracle call whose result is
// cached with a bounded TTL. Oracle failures are classified into a
// stable error shape for the caller.
func (uc *GetPredictionsUseCase) Execute(ctx context.Context, input GetPredictionsInput) (*GetPredictionsOutput, *OracleError) {
	if !uc.oracle.IsAvailable() {
		return nil, &OracleError{
			Code:      ErrCodeOracleUnavailable,
			Message:   errorMessages[ErrCodeOracleUnavailable],
			Retryable: false,
			Timestamp: time.Now(),
		}
	}

	if !input.ForceRefresh {
		cached, err := uc.cache.Get(ctx, input.ProjectID)
		if err != nil {
			// A broken cache must not take predictions down with it.
			uc.logger.Warn("prediction cache read failed", "project_id", input.ProjectID, "error", err)
		} else if cached != nil {
			return &GetPredictionsOutput{
				Predictions: cached,
				FromCache:   true,
				GeneratedAt: time.Now(),
			}, nil
		}
	}

	predictions, err := uc.oracle.Predict(ctx, input.ProjectID)
	if err != nil {
		classified := classifyError(err)
		uc.logger.Error("oracle prediction failed",
			"project_id", input.ProjectID,
			"code", classified.Code,
			"error", err,
		)
		return nil, classified
	}

	if err := uc.cache.Set(ctx, input.ProjectID, predictions, cacheTTL); err != nil {
		uc.logger.Warn("prediction cache write failed", "project_id", input.ProjectID, "error", err)
	}

	return &GetPredictionsOutput{
		Predictions: predictions,
		FromCache:   false,
		GeneratedAt: time.Now(),
	}, nil
}
