package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sitepulse/backend/internal/application/adapter"
	"github.com/sitepulse/backend/internal/application/usecase/prediction"
	domainerror "github.com/sitepulse/backend/internal/domain/error"
)

// ExportDelayReportInput represents the input for exporting a delay report.
type ExportDelayReportInput struct {
	ProjectID uuid.UUID
	Recipient string
}

// ExportDelayReportOutput represents the output of exporting a delay report.
type ExportDelayReportOutput struct {
	MessageID string
}

// ExportDelayReportUseCase renders the current delay predictions to HTML and
// delivers them to the recipient. Cached predictions are acceptable here; a
// report does not force an oracle refresh.
type ExportDelayReportUseCase struct {
	projectRepo adapter.ProjectRepository
	predictions *prediction.GetPredictionsUseCase
	renderer    adapter.ReportRenderer
	sender      adapter.ReportSender
	logger      *slog.Logger
}

// NewExportDelayReportUseCase creates a new ExportDelayReportUseCase instance.
func NewExportDelayReportUseCase(
	projectRepo adapter.ProjectRepository,
	predictions *prediction.GetPredictionsUseCase,
	renderer adapter.ReportRenderer,
	sender adapter.ReportSender,
	logger *slog.Logger,
) *ExportDelayReportUseCase {
	return &ExportDelayReportUseCase{
		projectRepo: projectRepo,
		predictions: predictions,
		renderer:    renderer,
		sender:      sender,
		logger:      logger,
	}
}

// Execute exports the delay report for a project.
func (uc *ExportDelayReportUseCase) Execute(ctx context.Context, input ExportDelayReportInput) (*ExportDelayReportOutput, error) {
	project, err := uc.projectRepo.FindByID(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}

	out, oracleErr := uc.predictions.Execute(ctx, prediction.GetPredictionsInput{ProjectID: input.ProjectID})
	if oracleErr != nil {
		return nil, fmt.Errorf("%w: %s", domainerror.ErrOracleUnavailable, oracleErr.Message)
	}

	if len(out.Predictions) == 0 {
		return nil, errors.New("no predictions available to report")
	}

	html, err := uc.renderer.RenderDelayReport(adapter.DelayReportData{
		Project:     project,
		Predictions: out.Predictions,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrReportRenderFailed, err)
	}

	result, err := uc.sender.Send(ctx, adapter.SendReportInput{
		To:      input.Recipient,
		Subject: fmt.Sprintf("Delay forecast - %s", project.Name),
		HTML:    html,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrReportDeliveryFailed, err)
	}

	uc.logger.Info("delay report delivered",
		"project_id", input.ProjectID,
		"recipient", input.Recipient,
		"message_id", result.MessageID,
	)

	return &ExportDelayReportOutput{MessageID: result.MessageID}, nil
}
