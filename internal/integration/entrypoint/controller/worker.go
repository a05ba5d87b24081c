// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sitepulse/backend/internal/application/usecase/worker"
	"github.com/sitepulse/backend/internal/domain/entity"
	domainerror "github.com/sitepulse/backend/internal/domain/error"
	"github.com/sitepulse/backend/internal/integration/entrypoint/dto"
	"github.com/sitepulse/backend/internal/integration/entrypoint/middleware"
)

// WorkerController handles workforce endpoints.
type WorkerController struct {
	listUseCase   *worker.ListWorkersUseCase
	createUseCase *worker.CreateWorkerUseCase
	updateUseCase *worker.UpdateWorkerUseCase
	deleteUseCase *worker.DeleteWorkerUseCase
}

// NewWorkerController creates a new worker controller instance.
func NewWorkerController(
	listUseCase *worker.ListWorkersUseCase,
	createUseCase *worker.CreateWorkerUseCase,
	updateUseCase *worker.UpdateWorkerUseCase,
	deleteUseCase *worker.DeleteWorkerUseCase,
) *WorkerController {
	return &WorkerController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /projects/:projectId/workers requests.
func (c *WorkerController) List(ctx *gin.Context) {
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

	output, err := c.listUseCase.Execute(ctx.Request.Context(), worker.ListWorkersInput{
		ProjectID: projectID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve workers",
		})
		return
	}

	response := dto.ToWorkerListResponse(output.Workers)
	ctx.JSON(http.StatusOK, response)
}

// Create handles POST /projects/:projectId/workers requests.
func (c *WorkerController) Create(ctx *gin.Context) {
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

	var req dto.CreateWorkerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := worker.CreateWorkerInput{
		ProjectID: projectID,
		Name:      req.Name,
		Role:      req.Role,
		Skills:    req.Skills,
		Phone:     req.Phone,
		DailyRate: req.DailyRate,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleWorkerError(ctx, err)
		return
	}

	response := dto.ToWorkerResponse(output.Worker)
	ctx.JSON(http.StatusCreated, response)
}

// Update handles PATCH /projects/:projectId/workers/:id requests.
func (c *WorkerController) Update(ctx *gin.Context) {
	if _, ok := middleware.GetEngineerIDFromContext(ctx); !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Engineer not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	workerID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid worker ID format",
		})
		return
	}

	var req dto.UpdateWorkerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := worker.UpdateWorkerInput{
		ID:        workerID,
		Name:      req.Name,
		Role:      req.Role,
		Skills:    req.Skills,
		Phone:     req.Phone,
		DailyRate: req.DailyRate,
	}

	if req.Status != nil {
		status := entity.WorkerStatus(*req.Status)
		input.Status = &status
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleWorkerError(ctx, err)
		return
	}

	response := dto.ToWorkerResponse(output.Worker)
	ctx.JSON(http.StatusOK, response)
}

// Delete handles DELETE /projects/:projectId/workers/:id requests.
func (c *WorkerController) Delete(ctx *gin.Context) {
	if _, ok := middleware.GetEngineerIDFromContext(ctx); !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Engineer not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	workerID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid worker ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), worker.DeleteWorkerInput{
		ID: workerID,
	}); err != nil {
		c.handleWorkerError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleWorkerError maps worker errors to HTTP responses.
func (c *WorkerController) handleWorkerError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerror.ErrWorkerNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Worker not found",
		})
	case errors.Is(err, domainerror.ErrInvalidWorkerStatus):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}
