// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sitepulse/backend/internal/application/usecase/task"
	"github.com/sitepulse/backend/internal/domain/entity"
	domainerror "github.com/sitepulse/backend/internal/domain/error"
	"github.com/sitepulse/backend/internal/integration/entrypoint/dto"
	"github.com/sitepulse/backend/internal/integration/entrypoint/middleware"
)

// TaskController handles task endpoints, including the realtime task stream.
type TaskController struct {
	listUseCase   *task.ListTasksUseCase
	createUseCase *task.CreateTaskUseCase
	updateUseCase *task.UpdateTaskUseCase
	deleteUseCase *task.DeleteTaskUseCase
	streamUseCase *task.StreamTasksUseCase
}

// NewTaskController creates a new task controller instance.
func NewTaskController(
	listUseCase *task.ListTasksUseCase,
	createUseCase *task.CreateTaskUseCase,
	updateUseCase *task.UpdateTaskUseCase,
	deleteUseCase *task.DeleteTaskUseCase,
	streamUseCase *task.StreamTasksUseCase,
) *TaskController {
	return &TaskController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		streamUseCase: streamUseCase,
	}
}

// List handles GET /projects/:projectId/tasks requests.
func (c *TaskController) List(ctx *gin.Context) {
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

	output, err := c.listUseCase.Execute(ctx.Request.Context(), task.ListTasksInput{
		ProjectID: projectID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve tasks",
		})
		return
	}

	response := dto.ToTaskListResponse(output.Tasks)
	ctx.JSON(http.StatusOK, response)
}

// Create handles POST /projects/:projectId/tasks requests.
func (c *TaskController) Create(ctx *gin.Context) {
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

	var req dto.CreateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	plannedStart, err := time.Parse("2006-01-02", req.PlannedStart)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid planned start date format",
		})
		return
	}
	plannedEnd, err := time.Parse("2006-01-02", req.PlannedEnd)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid planned end date format",
		})
		return
	}

	input := task.CreateTaskInput{
		ProjectID:    projectID,
		Title:        req.Title,
		Description:  req.Description,
		Priority:     entity.TaskPriority(req.Priority),
		PlannedStart: plannedStart,
		PlannedEnd:   plannedEnd,
	}

	if req.AssigneeID != nil {
		assigneeID, err := uuid.Parse(*req.AssigneeID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid assignee ID format",
			})
			return
		}
		input.AssigneeID = &assigneeID
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	response := dto.ToTaskResponse(output.Task)
	ctx.JSON(http.StatusCreated, response)
}

// Update handles PATCH /projects/:projectId/tasks/:id requests.
func (c *TaskController) Update(ctx *gin.Context) {
	if _, ok := middleware.GetEngineerIDFromContext(ctx); !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Engineer not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	taskID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid task ID format",
		})
		return
	}

	var req dto.UpdateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := task.UpdateTaskInput{
		ID:          taskID,
		Title:       req.Title,
		Description: req.Description,
		Progress:    req.Progress,
	}

	if req.Status != nil {
		status := entity.TaskStatus(*req.Status)
		input.Status = &status
	}
	if req.Priority != nil {
		priority := entity.TaskPriority(*req.Priority)
		input.Priority = &priority
	}
	if req.AssigneeID != nil {
		assigneeID, err := uuid.Parse(*req.AssigneeID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid assignee ID format",
			})
			return
		}
		input.AssigneeID = &assigneeID
	}
	if req.PlannedStart != nil {
		plannedStart, err := time.Parse("2006-01-02", *req.PlannedStart)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid planned start date format",
			})
			return
		}
		input.PlannedStart = &plannedStart
	}
	if req.PlannedEnd != nil {
		plannedEnd, err := time.Parse("2006-01-02", *req.PlannedEnd)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid planned end date format",
			})
			return
		}
		input.PlannedEnd = &plannedEnd
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	response := dto.ToTaskResponse(output.Task)
	ctx.JSON(http.StatusOK, response)
}

// Delete handles DELETE /projects/:projectId/tasks/:id requests.
func (c *TaskController) Delete(ctx *gin.Context) {
	if _, ok := middleware.GetEngineerIDFromContext(ctx); !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Engineer not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	taskID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid task ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), task.DeleteTaskInput{
		ID: taskID,
	}); err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Stream handles GET /projects/:projectId/tasks/stream requests.
// It serves the task collection over server-sent events: one event with the
// current collection on connect, then a full replacement snapshot after every
// mutation. Consumers replace their local collection wholesale.
func (c *TaskController) Stream(ctx *gin.Context) {
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

	output, err := c.streamUseCase.Execute(ctx.Request.Context(), task.StreamTasksInput{
		ProjectID: projectID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to open task stream",
		})
		return
	}
	defer output.Cancel()

	ctx.Writer.Header().Set("Content-Type", "text/event-stream")
	ctx.Writer.Header().Set("Cache-Control", "no-cache")
	ctx.Writer.Header().Set("Connection", "keep-alive")

	ctx.SSEvent("tasks", dto.ToTaskListResponse(output.Initial))
	ctx.Writer.Flush()

	ctx.Stream(func(w io.Writer) bool {
		select {
		case tasks, open := <-output.Snapshots:
			if !open {
				return false
			}
			ctx.SSEvent("tasks", dto.ToTaskListResponse(tasks))
			return true
		case <-ctx.Request.Context().Done():
			return false
		}
	})
}

// handleTaskError maps task errors to HTTP responses.
func (c *TaskController) handleTaskError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerror.ErrTaskNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Task not found",
		})
	case errors.Is(err, domainerror.ErrInvalidTaskStatus),
		errors.Is(err, domainerror.ErrInvalidProgress):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}
