// Package error defines domain-specific errors for the SitePulse backend.
package error

import "errors"

// Project domain errors.
var (
	// ErrProjectNotFound is returned when a project is not found in the system.
	ErrProjectNotFound = errors.New("project not found")

	// ErrProjectAccessDenied is returned when the caller lacks permission on a
	// project. This is an access-control condition, not a transient fault, and
	// resolves to "no project data" rather than a propagated failure.
	ErrProjectAccessDenied = errors.New("project access denied")

	// ErrProjectNameRequired is returned when a project is created without a name.
	ErrProjectNameRequired = errors.New("project name is required")
)
