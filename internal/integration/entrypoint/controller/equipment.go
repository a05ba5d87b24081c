// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sitepulse/backend/internal/application/usecase/equipment"
	"github.com/sitepulse/backend/internal/domain/entity"
	domainerror "github.com/sitepulse/backend/internal/domain/error"
	"github.com/sitepulse/backend/internal/integration/entrypoint/dto"
	"github.com/sitepulse/backend/internal/integration/entrypoint/middleware"
)

// EquipmentController handles equipment inventory endpoints.
type EquipmentController struct {
	listUseCase   *equipment.ListEquipmentUseCase
	createUseCase *equipment.CreateEquipmentUseCase
	updateUseCase *equipment.UpdateEquipmentUseCase
	deleteUseCase *equipment.DeleteEquipmentUseCase
}

// NewEquipmentController creates a new equipment controller instance.
func NewEquipmentController(
	listUseCase *equipment.ListEquipmentUseCase,
	createUseCase *equipment.CreateEquipmentUseCase,
	updateUseCase *equipment.UpdateEquipmentUseCase,
	deleteUseCase *equipment.DeleteEquipmentUseCase,
) *EquipmentController {
	return &EquipmentController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /projects/:projectId/equipment requests.
func (c *EquipmentController) List(ctx *gin.Context) {
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

	output, err := c.listUseCase.Execute(ctx.Request.Context(), equipment.ListEquipmentInput{
		ProjectID: projectID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve equipment",
		})
		return
	}

	response := dto.ToEquipmentListResponse(output.Equipment)
	ctx.JSON(http.StatusOK, response)
}

// Create handles POST /projects/:projectId/equipment requests.
func (c *EquipmentController) Create(ctx *gin.Context) {
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

	var req dto.CreateEquipmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := equipment.CreateEquipmentInput{
		ProjectID:  projectID,
		Name:       req.Name,
		Type:       entity.EquipmentType(req.Type),
		Category:   req.Category,
		Condition:  req.Condition,
		RentalCost: req.RentalCost,
		Quantity:   req.Quantity,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleEquipmentError(ctx, err)
		return
	}

	response := dto.ToEquipmentResponse(output.Equipment)
	ctx.JSON(http.StatusCreated, response)
}

// Update handles PATCH /projects/:projectId/equipment/:id requests.
func (c *EquipmentController) Update(ctx *gin.Context) {
	if _, ok := middleware.GetEngineerIDFromContext(ctx); !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Engineer not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	equipmentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid equipment ID format",
		})
		return
	}

	var req dto.UpdateEquipmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := equipment.UpdateEquipmentInput{
		ID:         equipmentID,
		Name:       req.Name,
		Category:   req.Category,
		Condition:  req.Condition,
		RentalCost: req.RentalCost,
		Quantity:   req.Quantity,
	}

	if req.Type != nil {
		equipmentType := entity.EquipmentType(*req.Type)
		input.Type = &equipmentType
	}
	if req.Status != nil {
		status := entity.EquipmentStatus(*req.Status)
		input.Status = &status
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleEquipmentError(ctx, err)
		return
	}

	response := dto.ToEquipmentResponse(output.Equipment)
	ctx.JSON(http.StatusOK, response)
}

// Delete handles DELETE /projects/:projectId/equipment/:id requests.
func (c *EquipmentController) Delete(ctx *gin.Context) {
	if _, ok := middleware.GetEngineerIDFromContext(ctx); !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Engineer not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	equipmentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid equipment ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), equipment.DeleteEquipmentInput{
		ID: equipmentID,
	}); err != nil {
		c.handleEquipmentError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleEquipmentError maps equipment errors to HTTP responses.
func (c *EquipmentController) handleEquipmentError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerror.ErrEquipmentNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Equipment not found",
		})
	case errors.Is(err, domainerror.ErrInvalidEquipmentType),
		errors.Is(err, domainerror.ErrRentalCostOnOwned),
		errors.Is(err, domainerror.ErrInvalidQuantity):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}
