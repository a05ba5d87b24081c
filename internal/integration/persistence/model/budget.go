package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sitepulse/backend/internal/domain/entity"
)

// budgetCategoryDoc is the JSON shape of one category inside the budget
// document column.
type budgetCategoryDoc struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	AllocatedAmount float64   `json:"allocated_amount"`
	SpentAmount     float64   `json:"spent_amount"`
	Description     string    `json:"description,omitempty"`
	LastUpdated     time.Time `json:"last_updated"`
	IsPrimary       bool      `json:"is_primary"`
}

// BudgetModel represents the project_budgets table. One row per project;
// the category list is stored as a JSON document column because categories
// are always read and written as a whole.
type BudgetModel struct {
	ProjectID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	TotalBudget           float64   `gorm:"not null"`
	TotalSpent            float64   `gorm:"not null;default:0"`
	ContingencyPercentage float64   `gorm:"not null;default:0"`
	Categories            string    `gorm:"type:jsonb;not null;default:'[]'"`
	LastUpdated           time.Time `gorm:"not null"`
	CreatedAt             time.Time `gorm:"not null"`
	UpdatedAt             time.Time `gorm:"not null"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "project_budgets"
}

// ToEntity converts a BudgetModel to a domain ProjectBudget entity.
func (m *BudgetModel) ToEntity() (*entity.ProjectBudget, error) {
	var docs []budgetCategoryDoc
	if m.Categories != "" {
		if err := json.Unmarshal([]byte(m.Categories), &docs); err != nil {
			return nil, fmt.Errorf("failed to decode budget categories: %w", err)
		}
	}

	categories := make([]entity.BudgetCategory, len(docs))
	for i, d := range docs {
		categories[i] = entity.BudgetCategory{
			ID:              d.ID,
			Name:            d.Name,
			AllocatedAmount: d.AllocatedAmount,
			SpentAmount:     d.SpentAmount,
			Description:     d.Description,
			LastUpdated:     d.LastUpdated,
			IsPrimary:       d.IsPrimary,
		}
	}

	return &entity.ProjectBudget{
		ProjectID:             m.ProjectID,
		TotalBudget:           m.TotalBudget,
		TotalSpent:            m.TotalSpent,
		ContingencyPercentage: m.ContingencyPercentage,
		Categories:            categories,
		LastUpdated:           m.LastUpdated,
	}, nil
}

// BudgetFromEntity creates a BudgetModel from a domain ProjectBudget entity.
func BudgetFromEntity(budget *entity.ProjectBudget) (*BudgetModel, error) {
	docs := make([]budgetCategoryDoc, len(budget.Categories))
	for i, c := range budget.Categories {
		docs[i] = budgetCategoryDoc{
			ID:              c.ID,
			Name:            c.Name,
			AllocatedAmount: c.AllocatedAmount,
			SpentAmount:     c.SpentAmount,
			Description:     c.Description,
			LastUpdated:     c.LastUpdated,
			IsPrimary:       c.IsPrimary,
		}
	}

	raw, err := json.Marshal(docs)
	if err != nil {
		return nil, fmt.Errorf("failed to encode budget categories: %w", err)
	}

	return &BudgetModel{
		ProjectID:             budget.ProjectID,
		TotalBudget:           budget.TotalBudget,
		TotalSpent:            budget.TotalSpent,
		ContingencyPercentage: budget.ContingencyPercentage,
		Categories:            string(raw),
		LastUpdated:           budget.LastUpdated,
	}, nil
}
