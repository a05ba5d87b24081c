// Package budget contains the budget reconciliation and synchronization core.
package budget

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sitepulse/backend/internal/domain/entity"
)

func testBudget(projectID uuid.UUID, totalBudget float64) *entity.ProjectBudget {
	stamp := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)
	budget := &entity.ProjectBudget{
		ProjectID:             projectID,
		TotalBudget:           totalBudget,
		ContingencyPercentage: 10,
		LastUpdated:           stamp,
		Categories: []entity.BudgetCategory{
			{ID: entity.PrimaryCategoryMaterials, Name: "Materials", AllocatedAmount: 100000, SpentAmount: 0, LastUpdated: stamp, IsPrimary: true},
			{ID: entity.PrimaryCategoryEquipment, Name: "Equipment", AllocatedAmount: 100000, SpentAmount: 0, LastUpdated: stamp, IsPrimary: true},
			{ID: "labor", Name: "Labor", AllocatedAmount: 50000, SpentAmount: 0, LastUpdated: stamp},
		},
	}
	budget.TotalSpent = budget.SumSpent()
	return budget
}

func TestReconcile_PrimarySpendOverwritten(t *testing.T) {
	projectID := uuid.New()
	r := NewReconciler()

	in := Inputs{MaterialsSpent: 12500, EquipmentSpent: 800}
	out := r.Reconcile(projectID, testBudget(projectID, 500000), in)

	if got := out.Category(entity.PrimaryCategoryMaterials).SpentAmount; got != 12500 {
		t.Errorf("materials spent: expected 12500, got %v", got)
	}
	if got := out.Category(entity.PrimaryCategoryEquipment).SpentAmount; got != 800 {
		t.Errorf("equipment spent: expected 800, got %v", got)
	}
}

func TestReconcile_TotalSpentInvariant(t *testing.T) {
	projectID := uuid.New()
	r := NewReconciler()

	logs := []*entity.BudgetLog{
		entity.NewBudgetLog(projectID, "Labor", "", decimal.NewFromInt(3000), entity.BudgetLogTypeExpense, time.Now(), ""),
	}
	in := Inputs{MaterialsSpent: 12500, EquipmentSpent: 800, Logs: logs}
	out := r.Reconcile(projectID, testBudget(projectID, 500000), in)

	if out.TotalSpent != out.SumSpent() {
		t.Errorf("invariant violated: totalSpent %v != sum %v", out.TotalSpent, out.SumSpent())
	}
	if out.TotalSpent != 16300 {
		t.Errorf("expected totalSpent 16300, got %v", out.TotalSpent)
	}
}

func TestReconcile_Idempotence(t *testing.T) {
	projectID := uuid.New()
	r := NewReconciler()

	logs := []*entity.BudgetLog{
		entity.NewBudgetLog(projectID, "Labor", "", decimal.NewFromInt(3000), entity.BudgetLogTypeExpense, time.Now(), ""),
	}
	in := Inputs{MaterialsSpent: 12500, EquipmentSpent: 800, Logs: logs}

	// Seed a legacy allocation so the repair path is exercised too.
	seed := testBudget(projectID, 250000)
	seed.Categories[0].AllocatedAmount = 150000

	first := r.Reconcile(projectID, seed, in)
	second := r.Reconcile(projectID, first, in)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("second run differs from first:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestReconcile_LegacyRepair(t *testing.T) {
	projectID := uuid.New()
	r := NewReconciler()

	tests := []struct {
		name        string
		totalBudget float64
		allocated   float64
		expected    float64
	}{
		{
			name:        "legacy constant 150000 corrected to 20 percent target",
			totalBudget: 250000,
			allocated:   150000,
			expected:    50000,
		},
		{
			name:        "legacy constant already at target left alone",
			totalBudget: 250000,
			allocated:   50000,
			expected:    50000,
		},
		{
			name:        "user-chosen value preserved",
			totalBudget: 250000,
			allocated:   73500,
			expected:    73500,
		},
		{
			name:        "allocation exceeding total budget corrected",
			totalBudget: 60000,
			allocated:   75000,
			expected:    12000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			budget := testBudget(projectID, tt.totalBudget)
			budget.Categories[0].AllocatedAmount = tt.allocated

			out := r.Reconcile(projectID, budget, Inputs{})
			got := out.Category(entity.PrimaryCategoryMaterials).AllocatedAmount
			if got != tt.expected {
				t.Errorf("expected allocation %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestReconcile_NonPrimaryFromLogs(t *testing.T) {
	projectID := uuid.New()
	r := NewReconciler()

	t.Run("derives spend from matching expense logs", func(t *testing.T) {
		logs := []*entity.BudgetLog{
			entity.NewBudgetLog(projectID, "labor", "", decimal.NewFromInt(2000), entity.BudgetLogTypeExpense, time.Now(), ""),
			entity.NewBudgetLog(projectID, "Labor", "", decimal.NewFromInt(750), entity.BudgetLogTypeExpense, time.Now(), ""),
		}
		out := r.Reconcile(projectID, testBudget(projectID, 500000), Inputs{Logs: logs})
		if got := out.Category("labor").SpentAmount; got != 2750 {
			t.Errorf("expected 2750, got %v", got)
		}
	})

	t.Run("log for unknown category changes nothing", func(t *testing.T) {
		before := testBudget(projectID, 500000)
		logs := []*entity.BudgetLog{
			entity.NewBudgetLog(projectID, "Landscaping", "", decimal.NewFromInt(9999), entity.BudgetLogTypeExpense, time.Now(), ""),
		}
		out := r.Reconcile(projectID, before, Inputs{Logs: logs})
		for i := range out.Categories {
			if out.Categories[i].SpentAmount != before.Categories[i].SpentAmount {
				t.Errorf("category %s spent changed: %v -> %v",
					out.Categories[i].ID, before.Categories[i].SpentAmount, out.Categories[i].SpentAmount)
			}
		}
	})

	t.Run("allocation and description untouched", func(t *testing.T) {
		budget := testBudget(projectID, 500000)
		budget.Categories[2].Description = "site crew"
		logs := []*entity.BudgetLog{
			entity.NewBudgetLog(projectID, "Labor", "", decimal.NewFromInt(100), entity.BudgetLogTypeExpense, time.Now(), ""),
		}
		out := r.Reconcile(projectID, budget, Inputs{Logs: logs})
		cat := out.Category("labor")
		if cat.AllocatedAmount != 50000 || cat.Description != "site crew" {
			t.Errorf("allocation/description mutated: %+v", cat)
		}
	})
}

func TestReconcile_TimestampChurn(t *testing.T) {
	projectID := uuid.New()
	r := NewReconciler()

	budget := testBudget(projectID, 500000)
	untouchedStamp := budget.Categories[2].LastUpdated

	// Only the materials figure changes; equipment and labor stay at zero.
	out := r.Reconcile(projectID, budget, Inputs{MaterialsSpent: 42})

	if out.Category("labor").LastUpdated != untouchedStamp {
		t.Error("untouched category timestamp was refreshed")
	}
	if out.Category(entity.PrimaryCategoryEquipment).LastUpdated != untouchedStamp {
		t.Error("unchanged primary category timestamp was refreshed")
	}
	if !out.Category(entity.PrimaryCategoryMaterials).LastUpdated.After(untouchedStamp) {
		t.Error("mutated category timestamp was not refreshed")
	}
}

func TestReconcile_SynthesizesDefault(t *testing.T) {
	projectID := uuid.New()
	r := NewReconciler()

	out := r.Reconcile(projectID, nil, Inputs{MaterialsSpent: 150, EquipmentSpent: 75})

	if out.TotalBudget != 500000 {
		t.Errorf("expected default total budget 500000, got %v", out.TotalBudget)
	}
	if out.ContingencyPercentage != 10 {
		t.Errorf("expected contingency 10, got %v", out.ContingencyPercentage)
	}
	if len(out.Categories) != 2 {
		t.Fatalf("expected 2 primary categories, got %d", len(out.Categories))
	}
	for _, cat := range out.Categories {
		if !cat.IsPrimary {
			t.Errorf("category %s not primary", cat.ID)
		}
		if cat.AllocatedAmount != 100000 {
			t.Errorf("category %s allocation: expected 100000, got %v", cat.ID, cat.AllocatedAmount)
		}
	}
	if out.Category(entity.PrimaryCategoryMaterials).SpentAmount != 150 {
		t.Error("default budget did not seed aggregated materials spend")
	}
	if out.TotalSpent != 225 {
		t.Errorf("expected totalSpent 225, got %v", out.TotalSpent)
	}
}
