// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EquipmentType represents the ownership type of a piece of equipment.
type EquipmentType string

const (
	EquipmentTypeOwned  EquipmentType = "owned"
	EquipmentTypeRental EquipmentType = "rental"
)

// EquipmentStatus represents the operational status of equipment on site.
type EquipmentStatus string

const (
	EquipmentStatusInUse       EquipmentStatus = "in_use"
	EquipmentStatusIdle        EquipmentStatus = "idle"
	EquipmentStatusMaintenance EquipmentStatus = "maintenance"
)

// Equipment represents a piece of equipment assigned to a site.
//
// RentalCost is set only for rentals; owned equipment never contributes to
// budget spend regardless of any cost value.
type Equipment struct {
	ID           uuid.UUID
	ProjectID    uuid.UUID
	Name         string
	Type         EquipmentType
	Category     string
	Condition    string
	RentalCost   *decimal.Decimal
	Quantity     int
	Status       EquipmentStatus
	DateAcquired time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time // Soft-delete support
}

// NewEquipment creates a new Equipment entity.
func NewEquipment(projectID uuid.UUID, name string, equipmentType EquipmentType, category, condition string, quantity int) *Equipment {
	now := time.Now().UTC()

	return &Equipment{
		ID:           uuid.New(),
		ProjectID:    projectID,
		Name:         name,
		Type:         equipmentType,
		Category:     category,
		Condition:    condition,
		Quantity:     quantity,
		Status:       EquipmentStatusIdle,
		DateAcquired: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
