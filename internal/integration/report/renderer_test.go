package report

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/sitepulse/backend/internal/application/adapter"
	"github.com/sitepulse/backend/internal/domain/entity"
)

func testProject() *entity.Project {
	return entity.NewProject("Harbor Tower", "Rotterdam", uuid.New(), time.Now())
}

func TestRenderBudgetReport(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("failed to create renderer: %v", err)
	}

	html, err := renderer.RenderBudgetReport(adapter.BudgetReportData{
		Project: testProject(),
		Budget: &entity.ProjectBudget{
			ProjectID:             uuid.New(),
			TotalBudget:           500000,
			TotalSpent:            120000,
			ContingencyPercentage: 10,
			Categories: []entity.BudgetCategory{
				{ID: "materials", Name: "Materials", AllocatedAmount: 100000, SpentAmount: 80000, IsPrimary: true},
				{ID: "labor", Name: "Labor", AllocatedAmount: 30000, SpentAmount: 40000},
			},
		},
	})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	for _, want := range []string{"Harbor Tower", "Materials", "500000.00", "80000.00"} {
		if !strings.Contains(html, want) {
			t.Errorf("expected rendered report to contain %q", want)
		}
	}

	// Overspent category is flagged.
	if !strings.Contains(html, "over") {
		t.Error("expected overspent category marker")
	}
}

func TestRenderDelayReport(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("failed to create renderer: %v", err)
	}

	html, err := renderer.RenderDelayReport(adapter.DelayReportData{
		Project: testProject(),
		Predictions: []*entity.DelayPrediction{
			{
				TaskID:            uuid.New(),
				TaskTitle:         "Pour foundation",
				PlannedDuration:   10,
				PredictedDuration: 14,
				DelayDays:         4,
				RiskLevel:         entity.RiskLevelHigh,
				Factors:           []string{"weather", "supplier lead time"},
			},
		},
	})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	for _, want := range []string{"Pour foundation", "risk-high", "weather"} {
		if !strings.Contains(html, want) {
			t.Errorf("expected rendered report to contain %q", want)
		}
	}
}
