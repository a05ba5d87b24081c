// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// BlueprintPin is a task marker placed on a blueprint image.
// Coordinates are normalized to the 0..1 range of the rendered image.
type BlueprintPin struct {
	TaskID uuid.UUID `json:"task_id"`
	X      float64   `json:"x"`
	Y      float64   `json:"y"`
}

// Blueprint represents an uploaded site blueprint with task pins.
type Blueprint struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	Title     string
	FileURL   string
	Pins      []BlueprintPin
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewBlueprint creates a new Blueprint entity.
func NewBlueprint(projectID uuid.UUID, title, fileURL string) *Blueprint {
	now := time.Now().UTC()

	return &Blueprint{
		ID:        uuid.New(),
		ProjectID: projectID,
		Title:     title,
		FileURL:   fileURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
