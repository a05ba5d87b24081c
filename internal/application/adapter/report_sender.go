// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/sitepulse/backend/internal/domain/entity"
)

// SendReportInput contains the data needed to deliver a rendered report.
type SendReportInput struct {
	To      string
	Subject string
	HTML    string
}

// SendReportResult contains the result of a report delivery.
type SendReportResult struct {
	MessageID string
}

// ReportSender delivers a rendered report document to a recipient.
type ReportSender interface {
	// Send delivers the report. One attempt; failures surface to the caller.
	Send(ctx context.Context, input SendReportInput) (*SendReportResult, error)
}

// BudgetReportData is the input for rendering a budget report document.
type BudgetReportData struct {
	Project *entity.Project
	Budget  *entity.ProjectBudget
	Logs    []*entity.BudgetLog
}

// DelayReportData is the input for rendering a delay report document.
type DelayReportData struct {
	Project     *entity.Project
	Predictions []*entity.DelayPrediction
}

// ReportRenderer renders report documents to HTML.
type ReportRenderer interface {
	RenderBudgetReport(data BudgetReportData) (string, error)
	RenderDelayReport(data DelayReportData) (string, error)
}
