// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProjectStatus represents the lifecycle status of a construction project.
type ProjectStatus string

const (
	ProjectStatusPlanning  ProjectStatus = "planning"
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusOnHold    ProjectStatus = "on_hold"
	ProjectStatusCompleted ProjectStatus = "completed"
)

// Project represents a construction site project in the SitePulse system.
type Project struct {
	ID           uuid.UUID
	Name         string
	Location     string
	Status       ProjectStatus
	EngineerID   uuid.UUID
	StartDate    time.Time
	EndDate      *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time // Soft-delete support
}

// NewProject creates a new Project entity.
func NewProject(name, location string, engineerID uuid.UUID, startDate time.Time) *Project {
	now := time.Now().UTC()

	return &Project{
		ID:         uuid.New(),
		Name:       name,
		Location:   location,
		Status:     ProjectStatusPlanning,
		EngineerID: engineerID,
		StartDate:  startDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
