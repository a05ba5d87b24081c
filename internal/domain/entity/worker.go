// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// WorkerStatus represents the availability status of a site worker.
type WorkerStatus string

const (
	WorkerStatusActive   WorkerStatus = "active"
	WorkerStatusOnLeave  WorkerStatus = "on_leave"
	WorkerStatusInactive WorkerStatus = "inactive"
)

// Worker represents a worker assigned to a construction site.
type Worker struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	Name      string
	Role      string
	Skills    []string
	Phone     string
	DailyRate float64
	Status    WorkerStatus
	HiredAt   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewWorker creates a new Worker entity.
func NewWorker(projectID uuid.UUID, name, role string, skills []string, phone string, dailyRate float64) *Worker {
	now := time.Now().UTC()

	return &Worker{
		ID:        uuid.New(),
		ProjectID: projectID,
		Name:      name,
		Role:      role,
		Skills:    skills,
		Phone:     phone,
		DailyRate: dailyRate,
		Status:    WorkerStatusActive,
		HiredAt:   now,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
