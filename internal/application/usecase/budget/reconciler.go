// Package budget contains the budget reconciliation and synchronization core.
package budget

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/sitepulse/backend/internal/domain/entity"
	"github.com/sitepulse/backend/internal/domain/valueobject"
)

// Inputs carries the freshly aggregated figures a reconciliation runs against.
type Inputs struct {
	MaterialsSpent float64
	EquipmentSpent float64
	Logs           []*entity.BudgetLog
}

// Reconciler merges derived spend figures into a project budget document.
// It performs no I/O and cannot fail; malformed inputs degrade to zero
// contribution, never to an error.
type Reconciler struct {
	cfg valueobject.ReconcileConfig
	now func() time.Time
}

// NewReconciler creates a reconciler with the default configuration.
func NewReconciler() *Reconciler {
	return NewReconcilerWithConfig(valueobject.DefaultReconcileConfig())
}

// NewReconcilerWithConfig creates a reconciler with a custom configuration.
func NewReconcilerWithConfig(cfg valueobject.ReconcileConfig) *Reconciler {
	return &Reconciler{
		cfg: cfg,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Reconcile produces an updated budget from the existing document (nil when
// the project has none yet) and the aggregated inputs. The result always
// satisfies TotalSpent == sum of category SpentAmount. Running it twice on
// the same inputs yields an identical document: timestamps are refreshed only
// on categories whose values actually changed.
func (r *Reconciler) Reconcile(projectID uuid.UUID, existing *entity.ProjectBudget, in Inputs) *entity.ProjectBudget {
	if existing == nil {
		return r.synthesizeDefault(projectID, in)
	}

	now := r.now()
	updated := existing.Clone()
	changed := false

	for i := range updated.Categories {
		cat := &updated.Categories[i]

		var newSpent float64
		if cat.IsPrimary && (cat.ID == entity.PrimaryCategoryMaterials || cat.ID == entity.PrimaryCategoryEquipment) {
			if cat.ID == entity.PrimaryCategoryMaterials {
				newSpent = in.MaterialsSpent
			} else {
				newSpent = in.EquipmentSpent
			}

			if repaired, ok := r.repairLegacyAllocation(cat.AllocatedAmount, updated.TotalBudget); ok {
				cat.AllocatedAmount = repaired
				cat.LastUpdated = now
				changed = true
			}
		} else {
			newSpent = LogSpend(cat.Name, in.Logs)
		}

		if cat.SpentAmount != newSpent {
			cat.SpentAmount = newSpent
			cat.LastUpdated = now
			changed = true
		}
	}

	updated.TotalSpent = updated.SumSpent()
	if changed {
		updated.LastUpdated = now
	}
	return updated
}

// repairLegacyAllocation applies the narrow one-time correction rule for
// primary category allocations. The allocation is moved to the share target
// only when it is clearly broken (exceeds the total budget) or is exactly one
// of the known legacy hardcoded values and not already at the target. Every
// other value, including deliberate user edits, is preserved.
func (r *Reconciler) repairLegacyAllocation(allocated, totalBudget float64) (float64, bool) {
	target := math.Round(totalBudget * r.cfg.PrimaryAllocationShare)

	if allocated > totalBudget {
		return target, true
	}
	if r.cfg.IsLegacyAllocation(allocated) && allocated != target {
		return target, true
	}
	return allocated, false
}

// synthesizeDefault builds the bootstrap budget document for a project that
// has none: two primary categories at the share allocation, seeded with the
// currently aggregated spend.
func (r *Reconciler) synthesizeDefault(projectID uuid.UUID, in Inputs) *entity.ProjectBudget {
	now := r.now()
	allocation := math.Round(r.cfg.DefaultTotalBudget * r.cfg.PrimaryAllocationShare)

	budget := &entity.ProjectBudget{
		ProjectID:             projectID,
		TotalBudget:           r.cfg.DefaultTotalBudget,
		ContingencyPercentage: r.cfg.DefaultContingencyPct,
		LastUpdated:           now,
		Categories: []entity.BudgetCategory{
			{
				ID:              entity.PrimaryCategoryMaterials,
				Name:            "Materials",
				AllocatedAmount: allocation,
				SpentAmount:     in.MaterialsSpent,
				Description:     "Construction materials",
				LastUpdated:     now,
				IsPrimary:       true,
			},
			{
				ID:              entity.PrimaryCategoryEquipment,
				Name:            "Equipment",
				AllocatedAmount: allocation,
				SpentAmount:     in.EquipmentSpent,
				Description:     "Equipment rentals",
				LastUpdated:     now,
				IsPrimary:       true,
			},
		},
	}
	budget.TotalSpent = budget.SumSpent()
	return budget
}
