// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/sitepulse/backend/internal/integration/entrypoint/controller"
	"github.com/sitepulse/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine               *gin.Engine
	healthController     *controller.HealthController
	projectController    *controller.ProjectController
	materialController   *controller.MaterialController
	equipmentController  *controller.EquipmentController
	workerController     *controller.WorkerController
	taskController       *controller.TaskController
	budgetController     *controller.BudgetController
	budgetLogController  *controller.BudgetLogController
	predictionController *controller.PredictionController
	reportController     *controller.ReportController
	reportRateLimiter    *middleware.RateLimiter
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	projectController *controller.ProjectController,
	materialController *controller.MaterialController,
	equipmentController *controller.EquipmentController,
	workerController *controller.WorkerController,
	taskController *controller.TaskController,
	budgetController *controller.BudgetController,
	budgetLogController *controller.BudgetLogController,
	predictionController *controller.PredictionController,
	reportController *controller.ReportController,
	reportRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:     healthController,
		projectController:    projectController,
		materialController:   materialController,
		equipmentController:  equipmentController,
		workerController:     workerController,
		taskController:       taskController,
		budgetController:     budgetController,
		budgetLogController:  budgetLogController,
		predictionController: predictionController,
		reportController:     reportController,
		reportRateLimiter:    reportRateLimiter,
		authMiddleware:       authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.projectController == nil || r.authMiddleware == nil {
			return
		}

		projects := v1.Group("/projects")
		projects.Use(r.authMiddleware.Authenticate())
		{
			projects.GET("", r.projectController.List)
			projects.POST("", r.projectController.Create)
			projects.GET("/:projectId", r.projectController.Get)
			projects.GET("/:projectId/snapshot", r.projectController.Snapshot)

			// Material routes (nested under a project)
			if r.materialController != nil {
				projects.GET("/:projectId/materials", r.materialController.List)
				projects.POST("/:projectId/materials", r.materialController.Create)
				projects.PATCH("/:projectId/materials/:id", r.materialController.Update)
				projects.DELETE("/:projectId/materials/:id", r.materialController.Delete)
			}

			// Equipment routes
			if r.equipmentController != nil {
				projects.GET("/:projectId/equipment", r.equipmentController.List)
				projects.POST("/:projectId/equipment", r.equipmentController.Create)
				projects.PATCH("/:projectId/equipment/:id", r.equipmentController.Update)
				projects.DELETE("/:projectId/equipment/:id", r.equipmentController.Delete)
			}

			// Worker routes
			if r.workerController != nil {
				projects.GET("/:projectId/workers", r.workerController.List)
				projects.POST("/:projectId/workers", r.workerController.Create)
				projects.PATCH("/:projectId/workers/:id", r.workerController.Update)
				projects.DELETE("/:projectId/workers/:id", r.workerController.Delete)
			}

			// Task routes, including the realtime stream
			if r.taskController != nil {
				projects.GET("/:projectId/tasks", r.taskController.List)
				projects.GET("/:projectId/tasks/stream", r.taskController.Stream)
				projects.POST("/:projectId/tasks", r.taskController.Create)
				projects.PATCH("/:projectId/tasks/:id", r.taskController.Update)
				projects.DELETE("/:projectId/tasks/:id", r.taskController.Delete)
			}

			// Budget routes
			if r.budgetController != nil {
				projects.GET("/:projectId/budget", r.budgetController.Get)
				projects.PUT("/:projectId/budget", r.budgetController.Update)
				projects.POST("/:projectId/budget/categories", r.budgetController.AddCategory)
				projects.PATCH("/:projectId/budget/categories/:categoryId", r.budgetController.UpdateCategory)
				projects.DELETE("/:projectId/budget/categories/:categoryId", r.budgetController.DeleteCategory)
			}

			// Budget log routes
			if r.budgetLogController != nil {
				projects.GET("/:projectId/logs", r.budgetLogController.List)
				projects.POST("/:projectId/logs", r.budgetLogController.Create)
				projects.DELETE("/:projectId/logs/:id", r.budgetLogController.Delete)
			}

			// Delay prediction routes
			if r.predictionController != nil {
				projects.GET("/:projectId/predictions", r.predictionController.Get)
			}

			// Report export routes (rate limited, exports send email)
			if r.reportController != nil && r.reportRateLimiter != nil {
				projects.POST("/:projectId/reports/budget", r.reportRateLimiter.Middleware(), r.reportController.ExportBudget)
				projects.POST("/:projectId/reports/delays", r.reportRateLimiter.Middleware(), r.reportController.ExportDelay)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
