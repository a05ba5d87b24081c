// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/sitepulse/backend/config"
	"github.com/sitepulse/backend/internal/application/usecase/budget"
	"github.com/sitepulse/backend/internal/application/usecase/budgetlog"
	"github.com/sitepulse/backend/internal/application/usecase/equipment"
	"github.com/sitepulse/backend/internal/application/usecase/material"
	"github.com/sitepulse/backend/internal/application/usecase/prediction"
	"github.com/sitepulse/backend/internal/application/usecase/project"
	"github.com/sitepulse/backend/internal/application/usecase/report"
	"github.com/sitepulse/backend/internal/application/usecase/task"
	"github.com/sitepulse/backend/internal/application/usecase/worker"
	"github.com/sitepulse/backend/internal/domain/valueobject"
	"github.com/sitepulse/backend/internal/infra/server/router"
	"github.com/sitepulse/backend/internal/integration/adapters"
	"github.com/sitepulse/backend/internal/integration/entrypoint/controller"
	"github.com/sitepulse/backend/internal/integration/entrypoint/middleware"
	"github.com/sitepulse/backend/internal/integration/persistence"
	"github.com/sitepulse/backend/internal/integration/realtime"
	reportintegration "github.com/sitepulse/backend/internal/integration/report"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Redis       *redis.Client
	Router      *router.Router
	BudgetStore *budget.Store
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, logger *slog.Logger) (*Injector, error) {
	// Create repositories
	projectRepo := persistence.NewProjectRepository(db)
	materialRepo := persistence.NewMaterialRepository(db)
	equipmentRepo := persistence.NewEquipmentRepository(db)
	workerRepo := persistence.NewWorkerRepository(db)
	taskRepo := persistence.NewTaskRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	budgetLogRepo := persistence.NewBudgetLogRepository(db)
	blueprintRepo := persistence.NewBlueprintRepository(db)

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret)
	oracleService := adapters.NewOracleService(cfg.Oracle.BaseURL, cfg.Oracle.APIKey)
	taskFeed := realtime.NewTaskFeed(redisClient, logger)
	predictionCache := realtime.NewPredictionCache(redisClient)
	renderer, err := reportintegration.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to build report renderer: %w", err)
	}
	reportSender := reportintegration.NewResendClient(cfg.Report.ResendAPIKey, cfg.Report.FromName, cfg.Report.FromEmail)

	// Create the budget store, the single owner of in-memory budget state
	syncConfig := valueobject.SyncConfig{
		DebounceWindow:  cfg.Sync.DebounceWindow,
		PersistCooldown: cfg.Sync.PersistCooldown,
	}
	budgetStore := budget.NewStore(budgetRepo, materialRepo, equipmentRepo, budgetLogRepo, budget.NewReconciler(), syncConfig)

	// Create project use cases
	listProjectsUseCase := project.NewListProjectsUseCase(projectRepo, logger)
	getProjectUseCase := project.NewGetProjectUseCase(projectRepo, logger)
	createProjectUseCase := project.NewCreateProjectUseCase(projectRepo)
	loadSnapshotUseCase := project.NewLoadSnapshotUseCase(
		materialRepo, equipmentRepo, workerRepo, taskRepo, budgetLogRepo, blueprintRepo, budgetStore, logger,
	)

	// Create material use cases
	listMaterialsUseCase := material.NewListMaterialsUseCase(materialRepo)
	createMaterialUseCase := material.NewCreateMaterialUseCase(materialRepo, budgetStore)
	updateMaterialUseCase := material.NewUpdateMaterialUseCase(materialRepo, budgetStore)
	deleteMaterialUseCase := material.NewDeleteMaterialUseCase(materialRepo, budgetStore)

	// Create equipment use cases
	listEquipmentUseCase := equipment.NewListEquipmentUseCase(equipmentRepo)
	createEquipmentUseCase := equipment.NewCreateEquipmentUseCase(equipmentRepo, budgetStore)
	updateEquipmentUseCase := equipment.NewUpdateEquipmentUseCase(equipmentRepo, budgetStore)
	deleteEquipmentUseCase := equipment.NewDeleteEquipmentUseCase(equipmentRepo, budgetStore)

	// Create worker use cases
	listWorkersUseCase := worker.NewListWorkersUseCase(workerRepo)
	createWorkerUseCase := worker.NewCreateWorkerUseCase(workerRepo)
	updateWorkerUseCase := worker.NewUpdateWorkerUseCase(workerRepo)
	deleteWorkerUseCase := worker.NewDeleteWorkerUseCase(workerRepo)

	// Create task use cases
	listTasksUseCase := task.NewListTasksUseCase(taskRepo)
	createTaskUseCase := task.NewCreateTaskUseCase(taskRepo, taskFeed, logger)
	updateTaskUseCase := task.NewUpdateTaskUseCase(taskRepo, taskFeed, logger)
	deleteTaskUseCase := task.NewDeleteTaskUseCase(taskRepo, taskFeed, logger)
	streamTasksUseCase := task.NewStreamTasksUseCase(taskRepo, taskFeed)

	// Create budget use cases
	loadBudgetUseCase := budget.NewLoadBudgetUseCase(budgetStore)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetStore)
	addCategoryUseCase := budget.NewAddCategoryUseCase(budgetStore)
	updateCategoryUseCase := budget.NewUpdateCategoryUseCase(budgetStore)
	deleteCategoryUseCase := budget.NewDeleteCategoryUseCase(budgetStore)

	// Create budget log use cases
	listLogsUseCase := budgetlog.NewListLogsUseCase(budgetLogRepo)
	createLogUseCase := budgetlog.NewCreateLogUseCase(budgetLogRepo, budgetStore)
	deleteLogUseCase := budgetlog.NewDeleteLogUseCase(budgetLogRepo, budgetStore)

	// Create prediction use case
	getPredictionsUseCase := prediction.NewGetPredictionsUseCase(oracleService, predictionCache, logger)

	// Create report use cases
	exportBudgetReportUseCase := report.NewExportBudgetReportUseCase(
		projectRepo, budgetLogRepo, budgetStore, renderer, reportSender, logger,
	)
	exportDelayReportUseCase := report.NewExportDelayReportUseCase(
		projectRepo, getPredictionsUseCase, renderer, reportSender, logger,
	)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	projectController := controller.NewProjectController(
		listProjectsUseCase,
		getProjectUseCase,
		createProjectUseCase,
		loadSnapshotUseCase,
	)

	materialController := controller.NewMaterialController(
		listMaterialsUseCase,
		createMaterialUseCase,
		updateMaterialUseCase,
		deleteMaterialUseCase,
	)

	equipmentController := controller.NewEquipmentController(
		listEquipmentUseCase,
		createEquipmentUseCase,
		updateEquipmentUseCase,
		deleteEquipmentUseCase,
	)

	workerController := controller.NewWorkerController(
		listWorkersUseCase,
		createWorkerUseCase,
		updateWorkerUseCase,
		deleteWorkerUseCase,
	)

	taskController := controller.NewTaskController(
		listTasksUseCase,
		createTaskUseCase,
		updateTaskUseCase,
		deleteTaskUseCase,
		streamTasksUseCase,
	)

	budgetController := controller.NewBudgetController(
		loadBudgetUseCase,
		updateBudgetUseCase,
		addCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	budgetLogController := controller.NewBudgetLogController(
		listLogsUseCase,
		createLogUseCase,
		deleteLogUseCase,
	)

	predictionController := controller.NewPredictionController(getPredictionsUseCase)

	reportController := controller.NewReportController(
		exportBudgetReportUseCase,
		exportDelayReportUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var reportRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		reportRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		reportRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		projectController,
		materialController,
		equipmentController,
		workerController,
		taskController,
		budgetController,
		budgetLogController,
		predictionController,
		reportController,
		reportRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Redis:       redisClient,
		Router:      r,
		BudgetStore: budgetStore,
	}, nil
}
