package dto

import (
	"time"

	"github.com/sitepulse/backend/internal/domain/entity"
)

// PredictionResponse represents a single delay prediction in API responses.
type PredictionResponse struct {
	TaskID            string   `json:"task_id"`
	TaskTitle         string   `json:"task_title"`
	PlannedDuration   int      `json:"planned_duration_days"`
	PredictedDuration int      `json:"predicted_duration_days"`
	DelayDays         int      `json:"delay_days"`
	RiskLevel         string   `json:"risk_level"`
	Factors           []string `json:"factors,omitempty"`
	PlannedEndDate    *string  `json:"planned_end_date,omitempty"`
	Status            string   `json:"status,omitempty"`
}

// PredictionListResponse represents the response for listing delay predictions.
type PredictionListResponse struct {
	Predictions []PredictionResponse `json:"predictions"`
	FromCache   bool                 `json:"from_cache"`
	GeneratedAt time.Time            `json:"generated_at"`
}

// ToPredictionListResponse converts delay predictions to a PredictionListResponse.
func ToPredictionListResponse(predictions []*entity.DelayPrediction, fromCache bool, generatedAt time.Time) PredictionListResponse {
	responses := make([]PredictionResponse, len(predictions))
	for i, p := range predictions {
		responses[i] = PredictionResponse{
			TaskID:            p.TaskID.String(),
			TaskTitle:         p.TaskTitle,
			PlannedDuration:   p.PlannedDuration,
			PredictedDuration: p.PredictedDuration,
			DelayDays:         p.DelayDays,
			RiskLevel:         string(p.RiskLevel),
			Factors:           p.Factors,
			Status:            p.Status,
		}
		if !p.PlannedEndDate.IsZero() {
			dateStr := p.PlannedEndDate.Format("2006-01-02")
			responses[i].PlannedEndDate = &dateStr
		}
	}

	return PredictionListResponse{
		Predictions: responses,
		FromCache:   fromCache,
		GeneratedAt: generatedAt,
	}
}
