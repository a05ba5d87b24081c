// Package error defines domain-specific errors for the SitePulse backend.
package error

import "errors"

// Materials and equipment domain errors.
var (
	// ErrMaterialNotFound is returned when a material is not found in the system.
	ErrMaterialNotFound = errors.New("material not found")

	// ErrEquipmentNotFound is returned when a piece of equipment is not found.
	ErrEquipmentNotFound = errors.New("equipment not found")

	// ErrInvalidQuantity is returned when a quantity is negative.
	ErrInvalidQuantity = errors.New("quantity cannot be negative")

	// ErrInvalidEquipmentType is returned when the equipment type is not owned or rental.
	ErrInvalidEquipmentType = errors.New("invalid equipment type")

	// ErrRentalCostOnOwned is returned when a rental cost is submitted for owned equipment.
	ErrRentalCostOnOwned = errors.New("owned equipment cannot have a rental cost")
)

// Worker domain errors.
var (
	// ErrWorkerNotFound is returned when a worker is not found in the system.
	ErrWorkerNotFound = errors.New("worker not found")

	// ErrInvalidWorkerStatus is returned when a worker status is invalid.
	ErrInvalidWorkerStatus = errors.New("invalid worker status")
)

// Task domain errors.
var (
	// ErrTaskNotFound is returned when a task is not found in the system.
	ErrTaskNotFound = errors.New("task not found")

	// ErrInvalidTaskStatus is returned when a task status is invalid.
	ErrInvalidTaskStatus = errors.New("invalid task status")

	// ErrInvalidProgress is returned when task progress is outside 0-100.
	ErrInvalidProgress = errors.New("progress must be between 0 and 100")
)

// Budget log domain errors.
var (
	// ErrBudgetLogNotFound is returned when a budget log entry is not found.
	ErrBudgetLogNotFound = errors.New("budget log not found")

	// ErrInvalidLogType is returned when a log type is not expense or income.
	ErrInvalidLogType = errors.New("invalid budget log type")
)

// Blueprint domain errors.
var (
	// ErrBlueprintNotFound is returned when a blueprint is not found.
	ErrBlueprintNotFound = errors.New("blueprint not found")
)
