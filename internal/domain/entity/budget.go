// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Canonical ids of the system-owned primary budget categories.
const (
	PrimaryCategoryMaterials = "materials"
	PrimaryCategoryEquipment = "equipment"
)

// BudgetCategory represents a single category line in a project budget.
//
// Primary categories (materials, equipment) are system-owned: their
// SpentAmount is always overwritten by reconciliation and they cannot be
// deleted. Non-primary categories are user-owned.
type BudgetCategory struct {
	ID              string
	Name            string
	AllocatedAmount float64
	SpentAmount     float64
	Description     string
	LastUpdated     time.Time
	IsPrimary       bool
}

// ProjectBudget is the single budget document kept per project.
//
// Invariant: TotalSpent always equals the sum of the categories' SpentAmount;
// it is recomputed on every reconciliation, never stored independently.
type ProjectBudget struct {
	ProjectID             uuid.UUID
	TotalBudget           float64
	TotalSpent            float64
	ContingencyPercentage float64
	Categories            []BudgetCategory
	LastUpdated           time.Time
}

// Category returns a pointer to the category with the given id, or nil.
func (b *ProjectBudget) Category(id string) *BudgetCategory {
	for i := range b.Categories {
		if b.Categories[i].ID == id {
			return &b.Categories[i]
		}
	}
	return nil
}

// SumSpent returns the sum of all category spent amounts.
func (b *ProjectBudget) SumSpent() float64 {
	var total float64
	for i := range b.Categories {
		total += b.Categories[i].SpentAmount
	}
	return total
}

// Clone returns a deep copy of the budget. The store hands copies to
// subscribers so callers can never mutate the shared value in place.
func (b *ProjectBudget) Clone() *ProjectBudget {
	if b == nil {
		return nil
	}
	clone := *b
	clone.Categories = make([]BudgetCategory, len(b.Categories))
	copy(clone.Categories, b.Categories)
	return &clone
}
