// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sitepulse/backend/internal/application/usecase/project"
	domainerror "github.com/sitepulse/backend/internal/domain/error"
	"github.com/sitepulse/backend/internal/integration/entrypoint/dto"
	"github.com/sitepulse/backend/internal/integration/entrypoint/middleware"
)

// ProjectController handles project endpoints.
type ProjectController struct {
	listUseCase     *project.ListProjectsUseCase
	getUseCase      *project.GetProjectUseCase
	createUseCase   *project.CreateProjectUseCase
	snapshotUseCase *project.LoadSnapshotUseCase
}

// NewProjectController creates a new project controller instance.
func NewProjectController(
	listUseCase *project.ListProjectsUseCase,
	getUseCase *project.GetProjectUseCase,
	createUseCase *project.CreateProjectUseCase,
	snapshotUseCase *project.LoadSnapshotUseCase,
) *ProjectController {
	return &ProjectController{
		listUseCase:     listUseCase,
		getUseCase:      getUseCase,
		createUseCase:   createUseCase,
		snapshotUseCase: snapshotUseCase,
	}
}

// List handles GET /projects requests.
func (c *ProjectController) List(ctx *gin.Context) {
	engineerID, ok := middleware.GetEngineerIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Engineer not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := project.ListProjectsInput{
		EngineerID: engineerID,
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve projects",
		})
		return
	}

	response := dto.ToProjectListResponse(output.Projects)
	ctx.JSON(http.StatusOK, response)
}

// Get handles GET /projects/:projectId requests.
func (c *ProjectController) Get(ctx *gin.Context) {
	engineerID, ok := middleware.GetEngineerIDFromContext(ctx)
	if !ok {
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

	input := project.GetProjectInput{
		ID:         projectID,
		EngineerID: engineerID,
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve project",
		})
		return
	}

	// Access-control failures resolve to "no project data", never an error.
	if output.Project == nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Project not found",
		})
		return
	}

	response := dto.ToProjectResponse(output.Project)
	ctx.JSON(http.StatusOK, response)
}

// Create handles POST /projects requests.
func (c *ProjectController) Create(ctx *gin.Context) {
	engineerID, ok := middleware.GetEngineerIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Engineer not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := project.CreateProjectInput{
		Name:       req.Name,
		Location:   req.Location,
		EngineerID: engineerID,
	}

	if req.StartDate != nil {
		startDate, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start date format",
			})
			return
		}
		input.StartDate = startDate
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domainerror.ErrProjectNameRequired) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: err.Error(),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to create project",
		})
		return
	}

	response := dto.ToProjectResponse(output.Project)
	ctx.JSON(http.StatusCreated, response)
}

// Snapshot handles GET /projects/:projectId/snapshot requests.
// It loads the full working set a client needs when a project is opened.
func (c *ProjectController) Snapshot(ctx *gin.Context) {
	engineerID, ok := middleware.GetEngineerIDFromContext(ctx)
	if !ok {
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

	// Confirm the project exists and belongs to the caller before loading.
	projectOutput, err := c.getUseCase.Execute(ctx.Request.Context(), project.GetProjectInput{
		ID:         projectID,
		EngineerID: engineerID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve project",
		})
		return
	}
	if projectOutput.Project == nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Project not found",
		})
		return
	}

	snapshot, err := c.snapshotUseCase.Execute(ctx.Request.Context(), project.SnapshotInput{
		ProjectID: projectID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to load project data",
		})
		return
	}

	response := dto.ToSnapshotResponse(snapshot)
	ctx.JSON(http.StatusOK, response)
}
