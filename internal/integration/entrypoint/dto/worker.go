package dto

import (
	"time"

	"github.com/sitepulse/backend/internal/domain/entity"
)

// CreateWorkerRequest represents the request body for worker creation.
type CreateWorkerRequest struct {
	Name      string   `json:"name" binding:"required"`
	Role      string   `json:"role"`
	Skills    []string `json:"skills"`
	Phone     string   `json:"phone"`
	DailyRate float64  `json:"daily_rate" binding:"gte=0"`
}

// UpdateWorkerRequest represents the request body for worker update.
type UpdateWorkerRequest struct {
	Name      *string   `json:"name,omitempty"`
	Role      *string   `json:"role,omitempty"`
	Skills    *[]string `json:"skills,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	DailyRate *float64  `json:"daily_rate,omitempty" binding:"omitempty,gte=0"`
	Status    *string   `json:"status,omitempty" binding:"omitempty,oneof=active on_leave inactive"`
}

// WorkerResponse represents a single worker in API responses.
type WorkerResponse struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Skills    []string  `json:"skills"`
	Phone     string    `json:"phone"`
	DailyRate float64   `json:"daily_rate"`
	Status    string    `json:"status"`
	HiredAt   time.Time `json:"hired_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WorkerListResponse represents the response for listing workers.
type WorkerListResponse struct {
	Workers []WorkerResponse `json:"workers"`
}

// ToWorkerResponse converts a domain Worker entity to a WorkerResponse DTO.
func ToWorkerResponse(w *entity.Worker) WorkerResponse {
	skills := w.Skills
	if skills == nil {
		skills = []string{}
	}

	return WorkerResponse{
		ID:        w.ID.String(),
		ProjectID: w.ProjectID.String(),
		Name:      w.Name,
		Role:      w.Role,
		Skills:    skills,
		Phone:     w.Phone,
		DailyRate: w.DailyRate,
		Status:    string(w.Status),
		HiredAt:   w.HiredAt,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

// ToWorkerListResponse converts a list of workers to a WorkerListResponse.
func ToWorkerListResponse(workers []*entity.Worker) WorkerListResponse {
	responses := make([]WorkerResponse, len(workers))
	for i, w := range workers {
		responses[i] = ToWorkerResponse(w)
	}
	return WorkerListResponse{
		Workers: responses,
	}
}
