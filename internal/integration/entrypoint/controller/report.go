// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sitepulse/backend/internal/application/usecase/report"
	domainerror "github.com/sitepulse/backend/internal/domain/error"
	"github.com/sitepulse/backend/internal/integration/entrypoint/dto"
	"github.com/sitepulse/backend/internal/integration/entrypoint/middleware"
)

// ReportController handles report export endpoints.
type ReportController struct {
	budgetUseCase *report.ExportBudgetReportUseCase
	delayUseCase  *report.ExportDelayReportUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	budgetUseCase *report.ExportBudgetReportUseCase,
	delayUseCase *report.ExportDelayReportUseCase,
) *ReportController {
	return &ReportController{
		budgetUseCase: budgetUseCase,
		delayUseCase:  delayUseCase,
	}
}

// ExportBudget handles POST /projects/:projectId/reports/budget requests.
func (c *ReportController) ExportBudget(ctx *gin.Context) {
	if _, ok := middleware.GetEngineerIDFromContext(ctx); !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Engineer not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	projectID, err := uuid.Parse(ctx.Param("projectId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid project ID format",
		})
		return
	}

	var req dto.ExportReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.budgetUseCase.Execute(ctx.Request.Context(), report.ExportBudgetReportInput{
		ProjectID: projectID,
		Recipient: req.Recipient,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusAccepted, dto.ExportReportResponse{
		MessageID: output.MessageID,
	})
}

// ExportDelay handles POST /projects/:projectId/reports/delays requests.
func (c *ReportController) ExportDelay(ctx *gin.Context) {
	if _, ok := middleware.GetEngineerIDFromContext(ctx); !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Engineer not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	projectID, err := uuid.Parse(ctx.Param("projectId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid project ID format",
		})
		return
	}

	var req dto.ExportReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.delayUseCase.Execute(ctx.Request.Context(), report.ExportDelayReportInput{
		ProjectID: projectID,
		Recipient: req.Recipient,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusAccepted, dto.ExportReportResponse{
		MessageID: output.MessageID,
	})
}

// handleReportError maps report errors to HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerror.ErrProjectNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Project not found",
		})
	case errors.Is(err, domainerror.ErrOracleUnavailable):
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: "Delay predictions are unavailable, report cannot be generated",
		})
	case errors.Is(err, domainerror.ErrReportDeliveryFailed):
		ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{
			Error: "Report could not be delivered",
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}
