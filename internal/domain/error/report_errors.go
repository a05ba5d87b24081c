// Package error defines domain-specific errors for the SitePulse backend.
package error

import "errors"

// Report export errors.
var (
	// ErrReportRenderFailed is returned when a report template fails to render.
	ErrReportRenderFailed = errors.New("failed to render report")

	// ErrReportDeliveryFailed is returned when a rendered report could not be delivered.
	ErrReportDeliveryFailed = errors.New("failed to deliver report")
)
