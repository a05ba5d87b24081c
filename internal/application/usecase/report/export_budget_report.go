// Package report contains report export use cases. Reports are rendered to
// HTML from embedded templates and delivered by email, mirroring the share
// flow of the mobile client.
package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sitepulse/backend/internal/application/adapter"
	"github.com/sitepulse/backend/internal/application/usecase/budget"
	domainerror "github.com/sitepulse/backend/internal/domain/error"
)

// ExportBudgetReportInput represents the input for exporting a budget report.
type ExportBudgetReportInput struct {
	ProjectID uuid.UUID
	Recipient string
}

// ExportBudgetReportOutput represents the output of exporting a budget report.
type ExportBudgetReportOutput struct {
	MessageID string
}

// ExportBudgetReportUseCase renders the current budget document to HTML and
// delivers it to the recipient.
type ExportBudgetReportUseCase struct {
	projectRepo adapter.ProjectRepository
	logRepo     adapter.BudgetLogRepository
	budgetStore *budget.Store
	renderer    adapter.ReportRenderer
	sender      adapter.ReportSender
	logger      *slog.Logger
}

// NewExportBudgetReportUseCase creates a new ExportBudgetReportUseCase instance.
func NewExportBudgetReportUseCase(
	projectRepo adapter.ProjectRepository,
	logRepo adapter.BudgetLogRepository,
	budgetStore *budget.Store,
	renderer adapter.ReportRenderer,
	sender adapter.ReportSender,
	logger *slog.Logger,
) *ExportBudgetReportUseCase {
	return &ExportBudgetReportUseCase{
		projectRepo: projectRepo,
		logRepo:     logRepo,
		budgetStore: budgetStore,
		renderer:    renderer,
		sender:      sender,
		logger:      logger,
	}
}

// Execute exports the budget report for a project.
func (uc *ExportBudgetReportUseCase) Execute(ctx context.Context, input ExportBudgetReportInput) (*ExportBudgetReportOutput, error) {
	project, err := uc.projectRepo.FindByID(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}

	value, _, err := uc.budgetStore.Load(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}

	logs, err := uc.logRepo.FindByProjectID(ctx, input.ProjectID)
	if err != nil {
		// The budget document alone still makes a useful report.
		uc.logger.Warn("budget logs unavailable for report", "project_id", input.ProjectID, "error", err)
		logs = nil
	}

	html, err := uc.renderer.RenderBudgetReport(adapter.BudgetReportData{
		Project: project,
		Budget:  value,
		Logs:    logs,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrReportRenderFailed, err)
	}

	result, err := uc.sender.Send(ctx, adapter.SendReportInput{
		To:      input.Recipient,
		Subject: fmt.Sprintf("Budget report - %s", project.Name),
		HTML:    html,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrReportDeliveryFailed, err)
	}

	uc.logger.Info("budget report delivered",
		"project_id", input.ProjectID,
		"recipient", input.Recipient,
		"message_id", result.MessageID,
	)

	return &ExportBudgetReportOutput{MessageID: result.MessageID}, nil
}
