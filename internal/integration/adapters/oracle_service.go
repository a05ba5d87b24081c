package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/sitepulse/backend/internal/application/adapter"
	"github.com/sitepulse/backend/internal/domain/entity"
	domainerror "github.com/sitepulse/backend/internal/domain/error"
)

// oracleRequestTimeout bounds a single prediction call. The oracle is treated
// as an opaque remote function: one attempt, no retry.
const oracleRequestTimeout = 30 * time.Second

// oraclePrediction is the wire shape of one prediction in the oracle response.
type oraclePrediction struct {
	TaskID            string   `json:"task_id"`
	TaskTitle         string   `json:"task_title"`
	PlannedDuration   int      `json:"planned_duration_days"`
	PredictedDuration int      `json:"predicted_duration_days"`
	DelayDays         int      `json:"delay_days"`
	RiskLevel         string   `json:"risk_level"`
	Factors           []string `json:"factors"`
	PlannedEndDate    string   `json:"planned_end_date"`
	Status            string   `json:"status"`
}

// oracleResponse is the wire shape of the oracle response body.
type oracleResponse struct {
	Predictions []oraclePrediction `json:"predictions"`
}

// OracleService implements adapter.PredictionService against the external
// delay-prediction HTTP endpoint.
type OracleService struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewOracleService creates a new oracle service instance.
func NewOracleService(baseURL, apiKey string) *OracleService {
	return &OracleService{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: oracleRequestTimeout},
	}
}

// IsAvailable checks if the oracle endpoint is configured.
func (s *OracleService) IsAvailable() bool {
	return s.baseURL != ""
}

// Predict returns the per-task delay predictions for a project.
func (s *OracleService) Predict(ctx context.Context, projectID uuid.UUID) ([]*entity.DelayPrediction, error) {
	if !s.IsAvailable() {
		return nil, domainerror.ErrOracleUnavailable
	}

	url := fmt.Sprintf("%s/v1/projects/%s/predictions", s.baseURL, projectID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build oracle request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %v", domainerror.ErrOracleTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", domainerror.ErrOracleUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("oracle returned status %d", resp.StatusCode)
	}

	var body oracleResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrOracleMalformedResponse, err)
	}

	predictions := make([]*entity.DelayPrediction, 0, len(body.Predictions))
	for _, p := range body.Predictions {
		prediction, err := p.toEntity()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domainerror.ErrOracleMalformedResponse, err)
		}
		predictions = append(predictions, prediction)
	}

	return predictions, nil
}

// toEntity converts a wire prediction into the domain shape.
func (p oraclePrediction) toEntity() (*entity.DelayPrediction, error) {
	taskID, err := uuid.Parse(p.TaskID)
	if err != nil {
		return nil, fmt.Errorf("invalid task id %q", p.TaskID)
	}

	var plannedEnd time.Time
	if p.PlannedEndDate != "" {
		plannedEnd, err = time.Parse(time.RFC3339, p.PlannedEndDate)
		if err != nil {
			// Date-only responses are accepted too.
			plannedEnd, err = time.Parse("2006-01-02", p.PlannedEndDate)
			if err != nil {
				return nil, fmt.Errorf("invalid planned end date %q", p.PlannedEndDate)
			}
		}
	}

	risk := entity.RiskLevel(p.RiskLevel)
	switch risk {
	case entity.RiskLevelLow, entity.RiskLevelMedium, entity.RiskLevelHigh:
	default:
		return nil, fmt.Errorf("invalid risk level %q", p.RiskLevel)
	}

	return &entity.DelayPrediction{
		TaskID:            taskID,
		TaskTitle:         p.TaskTitle,
		PlannedDuration:   p.PlannedDuration,
		PredictedDuration: p.PredictedDuration,
		DelayDays:         p.DelayDays,
		RiskLevel:         risk,
		Factors:           p.Factors,
		PlannedEndDate:    plannedEnd,
		Status:            p.Status,
	}, nil
}

// Ensure implementation satisfies the interface.
var _ adapter.PredictionService = (*OracleService)(nil)
