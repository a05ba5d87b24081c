// Package budget contains the budget reconciliation and synchronization core.
package budget

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sitepulse/backend/internal/domain/entity"
)

// MaterialsSpent computes the total materials spend as a pure reduction.
// Each material contributes (totalBought ?? quantity) x unit price; a missing
// price contributes zero. No I/O, no errors.
func MaterialsSpent(materials []*entity.Material) float64 {
	total := decimal.Zero
	for _, m := range materials {
		if m == nil {
			continue
		}
		qty := decimal.NewFromFloat(m.SpendQuantity())
		total = total.Add(m.Price.Mul(qty))
	}
	return total.InexactFloat64()
}

// EquipmentSpent computes the total equipment spend as a pure reduction.
// Only rentals with a recorded rental cost contribute; owned equipment is
// ignored regardless of any cost value.
func EquipmentSpent(equipment []*entity.Equipment) float64 {
	total := decimal.Zero
	for _, e := range equipment {
		if e == nil || e.Type != entity.EquipmentTypeRental || e.RentalCost == nil {
			continue
		}
		total = total.Add(*e.RentalCost)
	}
	return total.InexactFloat64()
}

// LogSpend computes the derived spend for a non-primary category: the sum of
// expense-type logs whose category matches the given name case-insensitively.
// Income-type and non-matching logs are ignored.
func LogSpend(categoryName string, logs []*entity.BudgetLog) float64 {
	total := decimal.Zero
	for _, l := range logs {
		if l == nil || l.Type != entity.BudgetLogTypeExpense {
			continue
		}
		if !strings.EqualFold(l.Category, categoryName) {
			continue
		}
		total = total.Add(l.Amount)
	}
	return total.InexactFloat64()
}
