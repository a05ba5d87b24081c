// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Material represents a construction material tracked on a site.
//
// Quantity is the current on-hand amount; TotalBought, when present, is the
// cumulative purchased amount and takes precedence over Quantity for spend
// derivation.
type Material struct {
	ID          uuid.UUID
	ProjectID   uuid.UUID
	Name        string
	Quantity    float64
	TotalBought *float64
	Price       decimal.Decimal // Unit cost
	Unit        string
	Category    string
	Supplier    string
	DateAdded   time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewMaterial creates a new Material entity.
func NewMaterial(projectID uuid.UUID, name string, quantity float64, price decimal.Decimal, unit, category, supplier string) *Material {
	now := time.Now().UTC()

	return &Material{
		ID:        uuid.New(),
		ProjectID: projectID,
		Name:      name,
		Quantity:  quantity,
		Price:     price,
		Unit:      unit,
		Category:  category,
		Supplier:  supplier,
		DateAdded: now,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SpendQuantity returns the quantity used for spend derivation: TotalBought
// when recorded, the on-hand quantity otherwise.
func (m *Material) SpendQuantity() float64 {
	if m.TotalBought != nil {
		return *m.TotalBought
	}
	return m.Quantity
}
