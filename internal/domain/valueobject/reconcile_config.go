// Package valueobject contains domain value objects for the SitePulse system.
package valueobject

// ReconcileConfig contains the tuning values used when merging derived spend
// into a project budget.
type ReconcileConfig struct {
	// Defaults applied when a project has no budget document yet.
	DefaultTotalBudget    float64
	DefaultContingencyPct float64

	// Share of the total budget granted to each primary category, both for
	// the bootstrap default and as the repair target for legacy allocations.
	PrimaryAllocationShare float64

	// LegacyAllocations are old hardcoded allocation amounts that are
	// corrected to the share target exactly once. Any other allocation,
	// including values users chose deliberately, is left alone.
	LegacyAllocations []float64
}

// DefaultReconcileConfig returns the default reconciliation configuration.
func DefaultReconcileConfig() ReconcileConfig {
	return ReconcileConfig{
		DefaultTotalBudget:     500000,
		DefaultContingencyPct:  10,
		PrimaryAllocationShare: 0.20,
		LegacyAllocations:      []float64{50000, 150000},
	}
}

// IsLegacyAllocation reports whether the amount is one of the known legacy
// hardcoded allocation values.
func (c ReconcileConfig) IsLegacyAllocation(amount float64) bool {
	for _, legacy := range c.LegacyAllocations {
		if amount == legacy {
			return true
		}
	}
	return false
}
