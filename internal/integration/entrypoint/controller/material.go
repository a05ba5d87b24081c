// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sitepulse/backend/internal/application/usecase/material"
	domainerror "github.com/sitepulse/backend/internal/domain/error"
	"github.com/sitepulse/backend/internal/integration/entrypoint/dto"
	"github.com/sitepulse/backend/internal/integration/entrypoint/middleware"
)

// MaterialController handles material inventory endpoints.
type MaterialController struct {
	listUseCase   *material.ListMaterialsUseCase
	createUseCase *material.CreateMaterialUseCase
	updateUseCase *material.UpdateMaterialUseCase
	deleteUseCase *material.DeleteMaterialUseCase
}

// NewMaterialController creates a new material controller instance.
func NewMaterialController(
	listUseCase *material.ListMaterialsUseCase,
	createUseCase *material.CreateMaterialUseCase,
	updateUseCase *material.UpdateMaterialUseCase,
	deleteUseCase *material.DeleteMaterialUseCase,
) *MaterialController {
	return &MaterialController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /projects/:projectId/materials requests.
func (c *MaterialController) List(ctx *gin.Context) {
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

	output, err := c.listUseCase.Execute(ctx.Request.Context(), material.ListMaterialsInput{
		ProjectID: projectID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve materials",
		})
		return
	}

	response := dto.ToMaterialListResponse(output.Materials)
	ctx.JSON(http.StatusOK, response)
}

// Create handles POST /projects/:projectId/materials requests.
func (c *MaterialController) Create(ctx *gin.Context) {
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

	var req dto.CreateMaterialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := material.CreateMaterialInput{
		ProjectID:   projectID,
		Name:        req.Name,
		Quantity:    req.Quantity,
		TotalBought: req.TotalBought,
		Price:       req.Price,
		Unit:        req.Unit,
		Category:    req.Category,
		Supplier:    req.Supplier,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleMaterialError(ctx, err)
		return
	}

	response := dto.ToMaterialResponse(output.Material)
	ctx.JSON(http.StatusCreated, response)
}

// Update handles PATCH /projects/:projectId/materials/:id requests.
func (c *MaterialController) Update(ctx *gin.Context) {
	if _, ok := middleware.GetEngineerIDFromContext(ctx); !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Engineer not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	materialID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid material ID format",
		})
		return
	}

	var req dto.UpdateMaterialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := material.UpdateMaterialInput{
		ID:          materialID,
		Name:        req.Name,
		Quantity:    req.Quantity,
		TotalBought: req.TotalBought,
		Price:       req.Price,
		Unit:        req.Unit,
		Category:    req.Category,
		Supplier:    req.Supplier,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleMaterialError(ctx, err)
		return
	}

	response := dto.ToMaterialResponse(output.Material)
	ctx.JSON(http.StatusOK, response)
}

// Delete handles DELETE /projects/:projectId/materials/:id requests.
func (c *MaterialController) Delete(ctx *gin.Context) {
	if _, ok := middleware.GetEngineerIDFromContext(ctx); !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Engineer not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	materialID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid material ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), material.DeleteMaterialInput{
		ID: materialID,
	}); err != nil {
		c.handleMaterialError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleMaterialError maps material errors to HTTP responses.
func (c *MaterialController) handleMaterialError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerror.ErrMaterialNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Material not found",
		})
	case errors.Is(err, domainerror.ErrInvalidQuantity):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}
