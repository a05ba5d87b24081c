// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sitepulse/backend/internal/application/usecase/budget"
	domainerror "github.com/sitepulse/backend/internal/domain/error"
	"github.com/sitepulse/backend/internal/integration/entrypoint/dto"
	"github.com/sitepulse/backend/internal/integration/entrypoint/middleware"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	loadUseCase           *budget.LoadBudgetUseCase
	updateUseCase         *budget.UpdateBudgetUseCase
	addCategoryUseCase    *budget.AddCategoryUseCase
	updateCategoryUseCase *budget.UpdateCategoryUseCase
	deleteCategoryUseCase *budget.DeleteCategoryUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	loadUseCase *budget.LoadBudgetUseCase,
	updateUseCase *budget.UpdateBudgetUseCase,
	addCategoryUseCase *budget.AddCategoryUseCase,
	updateCategoryUseCase *budget.UpdateCategoryUseCase,
	deleteCategoryUseCase *budget.DeleteCategoryUseCase,
) *BudgetController {
	return &BudgetController{
		loadUseCase:           loadUseCase,
		updateUseCase:         updateUseCase,
		addCategoryUseCase:    addCategoryUseCase,
		updateCategoryUseCase: updateCategoryUseCase,
		deleteCategoryUseCase: deleteCategoryUseCase,
	}
}

// Get handles GET /projects/:projectId/budget requests.
// The first load for a project bootstraps a default budget document.
func (c *BudgetController) Get(ctx *gin.Context) {
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

	input := budget.LoadBudgetInput{
		ProjectID: projectID,
		Activate:  ctx.Query("activate") == "true",
	}

	output, err := c.loadUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	response := dto.ToBudgetResponse(output.Budget)
	ctx.JSON(http.StatusOK, response)
}

// Update handles PUT /projects/:projectId/budget requests.
func (c *BudgetController) Update(ctx *gin.Context) {
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

	var req dto.UpdateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := budget.UpdateBudgetInput{
		ProjectID:             projectID,
		TotalBudget:           req.TotalBudget,
		ContingencyPercentage: req.ContingencyPercentage,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	response := dto.ToBudgetResponse(output.Budget)
	ctx.JSON(http.StatusOK, response)
}

// AddCategory handles POST /projects/:projectId/budget/categories requests.
func (c *BudgetController) AddCategory(ctx *gin.Context) {
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

	var req dto.CreateBudgetCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := budget.AddCategoryInput{
		ProjectID:       projectID,
		Name:            req.Name,
		AllocatedAmount: req.AllocatedAmount,
		Description:     req.Description,
	}

	output, err := c.addCategoryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	response := dto.ToBudgetResponse(output.Budget)
	ctx.JSON(http.StatusCreated, response)
}

// UpdateCategory handles PATCH /projects/:projectId/budget/categories/:categoryId requests.
func (c *BudgetController) UpdateCategory(ctx *gin.Context) {
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

	var req dto.UpdateBudgetCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := budget.UpdateCategoryInput{
		ProjectID:       projectID,
		CategoryID:      ctx.Param("categoryId"),
		Name:            req.Name,
		AllocatedAmount: req.AllocatedAmount,
		SpentAmount:     req.SpentAmount,
		Description:     req.Description,
	}

	output, err := c.updateCategoryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	response := dto.ToBudgetResponse(output.Budget)
	ctx.JSON(http.StatusOK, response)
}

// DeleteCategory handles DELETE /projects/:projectId/budget/categories/:categoryId requests.
func (c *BudgetController) DeleteCategory(ctx *gin.Context) {
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

	input := budget.DeleteCategoryInput{
		ProjectID:  projectID,
		CategoryID: ctx.Param("categoryId"),
	}

	output, err := c.deleteCategoryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	response := dto.ToBudgetResponse(output.Budget)
	ctx.JSON(http.StatusOK, response)
}

// handleBudgetError handles budget errors and returns appropriate HTTP responses.
func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		statusCode := c.getStatusCodeForBudgetError(budgetErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForBudgetError maps budget error codes to HTTP status codes.
func (c *BudgetController) getStatusCodeForBudgetError(code domainerror.BudgetErrorCode) int {
	switch code {
	case domainerror.ErrCodeBudgetNotFound, domainerror.ErrCodeCategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeCategoryIsPrimary, domainerror.ErrCodeCategoryIDExists:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidTotalBudget:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
