package dto

import (
	"time"

	"github.com/sitepulse/backend/internal/domain/entity"
)

// CreateTaskRequest represents the request body for task creation.
type CreateTaskRequest struct {
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description"`
	Priority     string  `json:"priority" binding:"omitempty,oneof=low medium high"`
	AssigneeID   *string `json:"assignee_id,omitempty" binding:"omitempty,uuid"`
	PlannedStart string  `json:"planned_start" binding:"required,datetime=2006-01-02"`
	PlannedEnd   string  `json:"planned_end" binding:"required,datetime=2006-01-02"`
}

// UpdateTaskRequest represents the request body for task update.
type UpdateTaskRequest struct {
	Title        *string `json:"title,omitempty"`
	Description  *string `json:"description,omitempty"`
	Status       *string `json:"status,omitempty" binding:"omitempty,oneof=pending in_progress completed blocked"`
	Priority     *string `json:"priority,omitempty" binding:"omitempty,oneof=low medium high"`
	AssigneeID   *string `json:"assignee_id,omitempty" binding:"omitempty,uuid"`
	PlannedStart *string `json:"planned_start,omitempty" binding:"omitempty,datetime=2006-01-02"`
	PlannedEnd   *string `json:"planned_end,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Progress     *int    `json:"progress,omitempty" binding:"omitempty,gte=0,lte=100"`
}

// TaskResponse represents a single task in API responses.
type TaskResponse struct {
	ID           string    `json:"id"`
	ProjectID    string    `json:"project_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Status       string    `json:"status"`
	Priority     string    `json:"priority"`
	AssigneeID   *string   `json:"assignee_id,omitempty"`
	PlannedStart string    `json:"planned_start"`
	PlannedEnd   string    `json:"planned_end"`
	Progress     int       `json:"progress"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TaskListResponse represents the response for listing tasks.
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

// ToTaskResponse converts a domain Task entity to a TaskResponse DTO.
func ToTaskResponse(t *entity.Task) TaskResponse {
	response := TaskResponse{
		ID:           t.ID.String(),
		ProjectID:    t.ProjectID.String(),
		Title:        t.Title,
		Description:  t.Description,
		Status:       string(t.Status),
		Priority:     string(t.Priority),
		PlannedStart: t.PlannedStart.Format("2006-01-02"),
		PlannedEnd:   t.PlannedEnd.Format("2006-01-02"),
		Progress:     t.Progress,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}

	if t.AssigneeID != nil {
		idStr := t.AssigneeID.String()
		response.AssigneeID = &idStr
	}

	return response
}

// ToTaskListResponse converts a list of tasks to a TaskListResponse.
func ToTaskListResponse(tasks []*entity.Task) TaskListResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		responses[i] = ToTaskResponse(t)
	}
	return TaskListResponse{
		Tasks: responses,
	}
}
