// Package budget contains the budget reconciliation and synchronization core.
package budget

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sitepulse/backend/internal/domain/entity"
)

func floatPtr(v float64) *float64 { return &v }

func decPtr(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func TestMaterialsSpent(t *testing.T) {
	tests := []struct {
		name      string
		materials []*entity.Material
		expected  float64
	}{
		{
			name:      "empty list yields zero",
			materials: nil,
			expected:  0,
		},
		{
			name: "totalBought takes precedence over quantity",
			materials: []*entity.Material{
				{Quantity: 10, TotalBought: floatPtr(25), Price: decimal.NewFromInt(4)},
			},
			expected: 100,
		},
		{
			name: "quantity used when totalBought absent",
			materials: []*entity.Material{
				{Quantity: 10, Price: decimal.NewFromInt(4)},
			},
			expected: 40,
		},
		{
			name: "missing price contributes zero",
			materials: []*entity.Material{
				{Quantity: 10},
				{Quantity: 2, Price: decimal.NewFromInt(5)},
			},
			expected: 10,
		},
		{
			name: "contributions sum across materials",
			materials: []*entity.Material{
				{Quantity: 3, Price: decimal.NewFromInt(100)},
				{Quantity: 1, TotalBought: floatPtr(7), Price: decimal.NewFromFloat(2.5)},
			},
			expected: 317.5,
		},
		{
			name: "nil entries are skipped",
			materials: []*entity.Material{
				nil,
				{Quantity: 1, Price: decimal.NewFromInt(9)},
			},
			expected: 9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MaterialsSpent(tt.materials)
			if got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestEquipmentSpent(t *testing.T) {
	tests := []struct {
		name      string
		equipment []*entity.Equipment
		expected  float64
	}{
		{
			name:      "empty list yields zero",
			equipment: nil,
			expected:  0,
		},
		{
			name: "owned equipment never contributes, even with a cost set",
			equipment: []*entity.Equipment{
				{Type: entity.EquipmentTypeRental, RentalCost: decPtr(500)},
				{Type: entity.EquipmentTypeOwned, RentalCost: decPtr(999)},
			},
			expected: 500,
		},
		{
			name: "rental without a cost contributes zero",
			equipment: []*entity.Equipment{
				{Type: entity.EquipmentTypeRental},
			},
			expected: 0,
		},
		{
			name: "rental costs sum",
			equipment: []*entity.Equipment{
				{Type: entity.EquipmentTypeRental, RentalCost: decPtr(1200)},
				{Type: entity.EquipmentTypeRental, RentalCost: decPtr(300.5)},
			},
			expected: 1500.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EquipmentSpent(tt.equipment)
			if got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestLogSpend(t *testing.T) {
	projectID := uuid.New()
	now := time.Now().UTC()

	logs := []*entity.BudgetLog{
		entity.NewBudgetLog(projectID, "Labor", "crew week 12", decimal.NewFromInt(4000), entity.BudgetLogTypeExpense, now, ""),
		entity.NewBudgetLog(projectID, "labor", "overtime", decimal.NewFromInt(500), entity.BudgetLogTypeExpense, now, ""),
		entity.NewBudgetLog(projectID, "Labor", "insurance refund", decimal.NewFromInt(900), entity.BudgetLogTypeIncome, now, ""),
		entity.NewBudgetLog(projectID, "Permits", "county permit", decimal.NewFromInt(250), entity.BudgetLogTypeExpense, now, ""),
	}

	t.Run("matches category names case-insensitively", func(t *testing.T) {
		if got := LogSpend("LABOR", logs); got != 4500 {
			t.Errorf("expected 4500, got %v", got)
		}
	})

	t.Run("income logs are ignored", func(t *testing.T) {
		if got := LogSpend("Labor", logs); got != 4500 {
			t.Errorf("expected 4500, got %v", got)
		}
	})

	t.Run("non-matching logs are ignored", func(t *testing.T) {
		if got := LogSpend("Electrical", logs); got != 0 {
			t.Errorf("expected 0, got %v", got)
		}
	})
}
