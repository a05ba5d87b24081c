package dto

import (
	"time"

	"github.com/sitepulse/backend/internal/domain/entity"
)

// CreateProjectRequest represents the request body for project creation.
type CreateProjectRequest struct {
	Name      string  `json:"name" binding:"required"`
	Location  string  `json:"location"`
	StartDate *string `json:"start_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

// ProjectResponse represents a single project in API responses.
type ProjectResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Location   string    `json:"location"`
	Status     string    `json:"status"`
	EngineerID string    `json:"engineer_id"`
	StartDate  string    `json:"start_date"`
	EndDate    *string   `json:"end_date,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ProjectListResponse represents the response for listing projects.
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

// ToProjectResponse converts a domain Project entity to a ProjectResponse DTO.
func ToProjectResponse(p *entity.Project) ProjectResponse {
	response := ProjectResponse{
		ID:         p.ID.String(),
		Name:       p.Name,
		Location:   p.Location,
		Status:     string(p.Status),
		EngineerID: p.EngineerID.String(),
		StartDate:  p.StartDate.Format("2006-01-02"),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}

	if p.EndDate != nil {
		dateStr := p.EndDate.Format("2006-01-02")
		response.EndDate = &dateStr
	}

	return response
}

// ToProjectListResponse converts a list of projects to a ProjectListResponse.
func ToProjectListResponse(projects []*entity.Project) ProjectListResponse {
	responses := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		responses[i] = ToProjectResponse(p)
	}
	return ProjectListResponse{
		Projects: responses,
	}
}
