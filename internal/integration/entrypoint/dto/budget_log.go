package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sitepulse/backend/internal/domain/entity"
)

// CreateBudgetLogRequest represents the request body for budget log creation.
type CreateBudgetLogRequest struct {
	Category    string          `json:"category" binding:"required"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Type        string          `json:"type" binding:"required,oneof=expense income"`
	Date        string          `json:"date" binding:"required,datetime=2006-01-02"`
	Reference   string          `json:"reference"`
}

// BudgetLogResponse represents a single budget log entry in API responses.
type BudgetLogResponse struct {
	ID          string          `json:"id"`
	ProjectID   string          `json:"project_id"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Date        string          `json:"date"`
	Reference   string          `json:"reference,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// BudgetLogListResponse represents the response for listing budget logs.
type BudgetLogListResponse struct {
	Logs []BudgetLogResponse `json:"logs"`
}

// ToBudgetLogResponse converts a domain BudgetLog entity to a BudgetLogResponse DTO.
func ToBudgetLogResponse(l *entity.BudgetLog) BudgetLogResponse {
	return BudgetLogResponse{
		ID:          l.ID.String(),
		ProjectID:   l.ProjectID.String(),
		Category:    l.Category,
		Description: l.Description,
		Amount:      l.Amount,
		Type:        string(l.Type),
		Date:        l.Date.Format("2006-01-02"),
		Reference:   l.Reference,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

// ToBudgetLogListResponse converts a list of budget logs to a BudgetLogListResponse.
func ToBudgetLogListResponse(logs []*entity.BudgetLog) BudgetLogListResponse {
	responses := make([]BudgetLogResponse, len(logs))
	for i, l := range logs {
		responses[i] = ToBudgetLogResponse(l)
	}
	return BudgetLogListResponse{
		Logs: responses,
	}
}
