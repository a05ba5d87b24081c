package dto

import (
	"time"

	"github.com/sitepulse/backend/internal/domain/entity"
)

// UpdateBudgetRequest represents the request body for budget update.
type UpdateBudgetRequest struct {
	TotalBudget           *float64 `json:"total_budget,omitempty" binding:"omitempty,gt=0"`
	ContingencyPercentage *float64 `json:"contingency_percentage,omitempty" binding:"omitempty,gte=0,lte=100"`
}

// CreateBudgetCategoryRequest represents the request body for adding a budget category.
type CreateBudgetCategoryRequest struct {
	Name            string  `json:"name" binding:"required"`
	AllocatedAmount float64 `json:"allocated_amount" binding:"gte=0"`
	Description     string  `json:"description"`
}

// UpdateBudgetCategoryRequest represents the request body for updating a budget category.
type UpdateBudgetCategoryRequest struct {
	Name            *string  `json:"name,omitempty"`
	AllocatedAmount *float64 `json:"allocated_amount,omitempty" binding:"omitempty,gte=0"`
	SpentAmount     *float64 `json:"spent_amount,omitempty" binding:"omitempty,gte=0"`
	Description     *string  `json:"description,omitempty"`
}

// BudgetCategoryResponse represents a single budget category in API responses.
type BudgetCategoryResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	AllocatedAmount float64   `json:"allocated_amount"`
	SpentAmount     float64   `json:"spent_amount"`
	Description     string    `json:"description,omitempty"`
	LastUpdated     time.Time `json:"last_updated"`
	IsPrimary       bool      `json:"is_primary"`
}

// BudgetResponse represents the project budget document in API responses.
type BudgetResponse struct {
	ProjectID             string                   `json:"project_id"`
	TotalBudget           float64                  `json:"total_budget"`
	TotalSpent            float64                  `json:"total_spent"`
	ContingencyPercentage float64                  `json:"contingency_percentage"`
	Categories            []BudgetCategoryResponse `json:"categories"`
	LastUpdated           time.Time                `json:"last_updated"`
}

// ToBudgetResponse converts a domain ProjectBudget entity to a BudgetResponse DTO.
func ToBudgetResponse(b *entity.ProjectBudget) BudgetResponse {
	categories := make([]BudgetCategoryResponse, len(b.Categories))
	for i, c := range b.Categories {
		categories[i] = BudgetCategoryResponse{
			ID:              c.ID,
			Name:            c.Name,
			AllocatedAmount: c.AllocatedAmount,
			SpentAmount:     c.SpentAmount,
			Description:     c.Description,
			LastUpdated:     c.LastUpdated,
			IsPrimary:       c.IsPrimary,
		}
	}

	return BudgetResponse{
		ProjectID:             b.ProjectID.String(),
		TotalBudget:           b.TotalBudget,
		TotalSpent:            b.TotalSpent,
		ContingencyPercentage: b.ContingencyPercentage,
		Categories:            categories,
		LastUpdated:           b.LastUpdated,
	}
}
