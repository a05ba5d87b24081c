// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sitepulse/backend/internal/application/usecase/budgetlog"
	"github.com/sitepulse/backend/internal/domain/entity"
	domainerror "github.com/sitepulse/backend/internal/domain/error"
	"github.com/sitepulse/backend/internal/integration/entrypoint/dto"
	"github.com/sitepulse/backend/internal/integration/entrypoint/middleware"
)

// BudgetLogController handles budget log endpoints.
type BudgetLogController struct {
	listUseCase   *budgetlog.ListLogsUseCase
	createUseCase *budgetlog.CreateLogUseCase
	deleteUseCase *budgetlog.DeleteLogUseCase
}

// NewBudgetLogController creates a new budget log controller instance.
func NewBudgetLogController(
	listUseCase *budgetlog.ListLogsUseCase,
	createUseCase *budgetlog.CreateLogUseCase,
	deleteUseCase *budgetlog.DeleteLogUseCase,
) *BudgetLogController {
	return &BudgetLogController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /projects/:projectId/logs requests.
func (c *BudgetLogController) List(ctx *gin.Context) {
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

	output, err := c.listUseCase.Execute(ctx.Request.Context(), budgetlog.ListLogsInput{
		ProjectID: projectID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve budget logs",
		})
		return
	}

	response := dto.ToBudgetLogListResponse(output.Logs)
	ctx.JSON(http.StatusOK, response)
}

// Create handles POST /projects/:projectId/logs requests.
func (c *BudgetLogController) Create(ctx *gin.Context) {
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

	var req dto.CreateBudgetLogRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format",
		})
		return
	}

	input := budgetlog.CreateLogInput{
		ProjectID:   projectID,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		Type:        entity.BudgetLogType(req.Type),
		Date:        date,
		Reference:   req.Reference,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetLogError(ctx, err)
		return
	}

	response := dto.ToBudgetLogResponse(output.Log)
	ctx.JSON(http.StatusCreated, response)
}

// Delete handles DELETE /projects/:projectId/logs/:id requests.
func (c *BudgetLogController) Delete(ctx *gin.Context) {
	if _, ok := middleware.GetEngineerIDFromContext(ctx); !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Engineer not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	logID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid log ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), budgetlog.DeleteLogInput{
		ID: logID,
	}); err != nil {
		c.handleBudgetLogError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleBudgetLogError maps budget log errors to HTTP responses.
func (c *BudgetLogController) handleBudgetLogError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerror.ErrBudgetLogNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Budget log not found",
		})
	case errors.Is(err, domainerror.ErrInvalidLogType):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}
