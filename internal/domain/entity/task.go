// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the execution status of a site task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusBlocked    TaskStatus = "blocked"
)

// TaskPriority represents the priority of a site task.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// Task represents a unit of scheduled work on a construction site.
type Task struct {
	ID           uuid.UUID
	ProjectID    uuid.UUID
	Title        string
	Description  string
	Status       TaskStatus
	Priority     TaskPriority
	AssigneeID   *uuid.UUID // Optional worker assignment
	PlannedStart time.Time
	PlannedEnd   time.Time
	Progress     int // 0-100
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time // Soft-delete support
}

// NewTask creates a new Task entity.
func NewTask(projectID uuid.UUID, title, description string, priority TaskPriority, plannedStart, plannedEnd time.Time) *Task {
	now := time.Now().UTC()

	return &Task{
		ID:           uuid.New(),
		ProjectID:    projectID,
		Title:        title,
		Description:  description,
		Status:       TaskStatusPending,
		Priority:     priority,
		PlannedStart: plannedStart,
		PlannedEnd:   plannedEnd,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
