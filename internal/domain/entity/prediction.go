// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RiskLevel represents the delay risk bucket assigned to a task prediction.
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// DelayPrediction is a per-task delay forecast produced by the external
// prediction oracle. It is never persisted, only cached.
type DelayPrediction struct {
	TaskID            uuid.UUID
	TaskTitle         string
	PlannedDuration   int // days
	PredictedDuration int // days
	DelayDays         int
	RiskLevel         RiskLevel
	Factors           []string
	PlannedEndDate    time.Time
	Status            string
}
