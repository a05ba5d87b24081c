package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sitepulse/backend/internal/domain/entity"
)

// CreateEquipmentRequest represents the request body for equipment creation.
type CreateEquipmentRequest struct {
	Name       string           `json:"name" binding:"required"`
	Type       string           `json:"type" binding:"required,oneof=owned rental"`
	Category   string           `json:"category"`
	Condition  string           `json:"condition"`
	RentalCost *decimal.Decimal `json:"rental_cost,omitempty"`
	Quantity   int              `json:"quantity" binding:"gte=1"`
}

// UpdateEquipmentRequest represents the request body for equipment update.
type UpdateEquipmentRequest struct {
	Name       *string          `json:"name,omitempty"`
	Type       *string          `json:"type,omitempty" binding:"omitempty,oneof=owned rental"`
	Category   *string          `json:"category,omitempty"`
	Condition  *string          `json:"condition,omitempty"`
	RentalCost *decimal.Decimal `json:"rental_cost,omitempty"`
	Quantity   *int             `json:"quantity,omitempty" binding:"omitempty,gte=1"`
	Status     *string          `json:"status,omitempty" binding:"omitempty,oneof=in_use idle maintenance"`
}

// EquipmentResponse represents a single piece of equipment in API responses.
type EquipmentResponse struct {
	ID           string           `json:"id"`
	ProjectID    string           `json:"project_id"`
	Name         string           `json:"name"`
	Type         string           `json:"type"`
	Category     string           `json:"category"`
	Condition    string           `json:"condition"`
	RentalCost   *decimal.Decimal `json:"rental_cost,omitempty"`
	Quantity     int              `json:"quantity"`
	Status       string           `json:"status"`
	DateAcquired time.Time        `json:"date_acquired"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// EquipmentListResponse represents the response for listing equipment.
type EquipmentListResponse struct {
	Equipment []EquipmentResponse `json:"equipment"`
}

// ToEquipmentResponse converts a domain Equipment entity to an EquipmentResponse DTO.
func ToEquipmentResponse(e *entity.Equipment) EquipmentResponse {
	return EquipmentResponse{
		ID:           e.ID.String(),
		ProjectID:    e.ProjectID.String(),
		Name:         e.Name,
		Type:         string(e.Type),
		Category:     e.Category,
		Condition:    e.Condition,
		RentalCost:   e.RentalCost,
		Quantity:     e.Quantity,
		Status:       string(e.Status),
		DateAcquired: e.DateAcquired,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

// ToEquipmentListResponse converts a list of equipment to an EquipmentListResponse.
func ToEquipmentListResponse(equipment []*entity.Equipment) EquipmentListResponse {
	responses := make([]EquipmentResponse, len(equipment))
	for i, e := range equipment {
		responses[i] = ToEquipmentResponse(e)
	}
	return EquipmentListResponse{
		Equipment: responses,
	}
}
