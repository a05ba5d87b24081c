package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sitepulse/backend/internal/domain/entity"
)

// CreateMaterialRequest represents the request body for material creation.
type CreateMaterialRequest struct {
	Name        string          `json:"name" binding:"required"`
	Quantity    float64         `json:"quantity" binding:"gte=0"`
	TotalBought *float64        `json:"total_bought,omitempty" binding:"omitempty,gte=0"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Unit        string          `json:"unit"`
	Category    string          `json:"category"`
	Supplier    string          `json:"supplier"`
}

// UpdateMaterialRequest represents the request body for material update.
type UpdateMaterialRequest struct {
	Name        *string          `json:"name,omitempty"`
	Quantity    *float64         `json:"quantity,omitempty" binding:"omitempty,gte=0"`
	TotalBought *float64         `json:"total_bought,omitempty" binding:"omitempty,gte=0"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Unit        *string          `json:"unit,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Supplier    *string          `json:"supplier,omitempty"`
}

// MaterialResponse represents a single material in API responses.
type MaterialResponse struct {
	ID          string          `json:"id"`
	ProjectID   string          `json:"project_id"`
	Name        string          `json:"name"`
	Quantity    float64         `json:"quantity"`
	TotalBought *float64        `json:"total_bought,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Unit        string          `json:"unit"`
	Category    string          `json:"category"`
	Supplier    string          `json:"supplier"`
	DateAdded   time.Time       `json:"date_added"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// MaterialListResponse represents the response for listing materials.
type MaterialListResponse struct {
	Materials []MaterialResponse `json:"materials"`
}

// ToMaterialResponse converts a domain Material entity to a MaterialResponse DTO.
func ToMaterialResponse(m *entity.Material) MaterialResponse {
	return MaterialResponse{
		ID:          m.ID.String(),
		ProjectID:   m.ProjectID.String(),
		Name:        m.Name,
		Quantity:    m.Quantity,
		TotalBought: m.TotalBought,
		Price:       m.Price,
		Unit:        m.Unit,
		Category:    m.Category,
		Supplier:    m.Supplier,
		DateAdded:   m.DateAdded,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ToMaterialListResponse converts a list of materials to a MaterialListResponse.
func ToMaterialListResponse(materials []*entity.Material) MaterialListResponse {
	responses := make([]MaterialResponse, len(materials))
	for i, m := range materials {
		responses[i] = ToMaterialResponse(m)
	}
	return MaterialListResponse{
		Materials: responses,
	}
}
