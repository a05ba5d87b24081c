// Package valueobject contains domain value objects for the SitePulse system.
package valueobject

import "time"

// SyncConfig contains the timing windows used by the budget store when
// coalescing reconciliation bursts.
type SyncConfig struct {
	// DebounceWindow is how long the store waits after a change signal before
	// recomputing, so rapid mutation bursts collapse into one recompute.
	DebounceWindow time.Duration

	// PersistCooldown is the window after a completed persist during which
	// further persists are deferred rather than fired concurrently.
	PersistCooldown time.Duration
}

// DefaultSyncConfig returns the default synchronization configuration.
// Both windows stay well under the half-second staleness ceiling.
func DefaultSyncConfig() SyncConfig {
	return SyncConfig{
		DebounceWindow:  150 * time.Millisecond,
		PersistCooldown: 250 * time.Millisecond,
	}
}
