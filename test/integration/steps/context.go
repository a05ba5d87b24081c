// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

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
	"github.com/sitepulse/backend/internal/integration/persistence/model"
	"github.com/sitepulse/backend/internal/integration/realtime"
	reportintegration "github.com/sitepulse/backend/internal/integration/report"
	"github.com/sitepulse/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

// Short debounce/cooldown windows keep the wait steps in the budget
// synchronization scenarios fast while still exercising the coalescing path.
const (
	testDebounceWindow  = 40 * time.Millisecond
	testPersistCooldown = 60 * time.Millisecond
)

type testContext struct {
	uri        string
	headers    map[string]string
	client     *http.Client
	response   *response
	db         *mock.Db
	serverPort int

	accessToken       string
	engineerID        uuid.UUID
	currentProjectID  uuid.UUID
	currentMaterialID uuid.UUID
	currentTaskID     uuid.UUID
	currentLogID      uuid.UUID
	currentCategoryID string
}

type response struct {
	status int
	body   any
	raw    []byte
}

var serverInit sync.Once
var testDB *mock.Db
var oracleMock *mock.ApiMock
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb(map[string]any{
			"projects":        &model.ProjectModel{},
			"materials":       &model.MaterialModel{},
			"equipment":       &model.EquipmentModel{},
			"workers":         &model.WorkerModel{},
			"tasks":           &model.TaskModel{},
			"project_budgets": &model.BudgetModel{},
			"budget_logs":     &model.BudgetLogModel{},
			"blueprints":      &model.BlueprintModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^I am authenticated as an engineer$`, test.iAmAuthenticatedAsAnEngineer)
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Seeding steps
	ctx.Given(`^a project exists with name "([^"]*)"$`, test.aProjectExistsWithName)
	ctx.Given(`^a project owned by another engineer exists$`, test.aProjectOwnedByAnotherEngineerExists)
	ctx.Given(`^a material exists with name "([^"]*)", quantity (\d+) and unit price "([^"]*)"$`, test.aMaterialExists)
	ctx.Given(`^a task exists with title "([^"]*)"$`, test.aTaskExistsWithTitle)
	ctx.Given(`^the project budget has been loaded$`, test.theProjectBudgetHasBeenLoaded)
	ctx.Given(`^the oracle responds to "([^"]*)" "([^"]*)" with status (\d+) and body:$`, test.theOracleRespondsWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.When(`^I wait (\d+) milliseconds$`, test.iWaitMilliseconds)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response list "([^"]*)" should have (\d+) items$`, test.theResponseListShouldHaveItems)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)

	// External service assertion steps
	ctx.Then(`^the oracle should have received (\d+) "([^"]*)" requests to "([^"]*)"$`, test.theOracleShouldHaveReceivedRequests)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.engineerID = uuid.Nil
	t.currentProjectID = uuid.Nil
	t.currentMaterialID = uuid.Nil
	t.currentTaskID = uuid.Nil
	t.currentLogID = uuid.Nil
	t.currentCategoryID = ""

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
	if oracleMock != nil {
		oracleMock.Clear()
	}
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		oracleMock = mock.NewApiServer()
		oracleMock.Start()

		go func() {
			gin.SetMode(gin.TestMode)

			logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
			redisClient := mock.NewRedis()

			// Create repositories
			projectRepo := persistence.NewProjectRepository(testDB.DbConn)
			materialRepo := persistence.NewMaterialRepository(testDB.DbConn)
			equipmentRepo := persistence.NewEquipmentRepository(testDB.DbConn)
			workerRepo := persistence.NewWorkerRepository(testDB.DbConn)
			taskRepo := persistence.NewTaskRepository(testDB.DbConn)
			budgetRepo := persistence.NewBudgetRepository(testDB.DbConn)
			budgetLogRepo := persistence.NewBudgetLogRepository(testDB.DbConn)
			blueprintRepo := persistence.NewBlueprintRepository(testDB.DbConn)

			// Create adapters/services
			tokenService := adapters.NewTokenService(testJWTSecret)
			oracleService := adapters.NewOracleService(oracleMock.GetUrl(), "test-oracle-key")
			taskFeed := realtime.NewTaskFeed(redisClient, logger)
			predictionCache := realtime.NewPredictionCache(redisClient)
			renderer, err := reportintegration.NewRenderer()
			if err != nil {
				panic(fmt.Sprintf("failed to build report renderer: %v", err))
			}
			reportSender := reportintegration.NewResendClient("", "SitePulse", "reports@resend.dev")

			budgetStore := budget.NewStore(
				budgetRepo, materialRepo, equipmentRepo, budgetLogRepo,
				budget.NewReconciler(),
				valueobject.SyncConfig{
					DebounceWindow:  testDebounceWindow,
					PersistCooldown: testPersistCooldown,
				},
			)

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
				return testDB != nil && testDB.DbConn != nil
			})
			projectController := controller.NewProjectController(
				listProjectsUseCase, getProjectUseCase, createProjectUseCase, loadSnapshotUseCase,
			)
			materialController := controller.NewMaterialController(
				listMaterialsUseCase, createMaterialUseCase, updateMaterialUseCase, deleteMaterialUseCase,
			)
			equipmentController := controller.NewEquipmentController(
				listEquipmentUseCase, createEquipmentUseCase, updateEquipmentUseCase, deleteEquipmentUseCase,
			)
			workerController := controller.NewWorkerController(
				listWorkersUseCase, createWorkerUseCase, updateWorkerUseCase, deleteWorkerUseCase,
			)
			taskController := controller.NewTaskController(
				listTasksUseCase, createTaskUseCase, updateTaskUseCase, deleteTaskUseCase, streamTasksUseCase,
			)
			budgetController := controller.NewBudgetController(
				loadBudgetUseCase, updateBudgetUseCase, addCategoryUseCase, updateCategoryUseCase, deleteCategoryUseCase,
			)
			budgetLogController := controller.NewBudgetLogController(
				listLogsUseCase, createLogUseCase, deleteLogUseCase,
			)
			predictionController := controller.NewPredictionController(getPredictionsUseCase)
			reportController := controller.NewReportController(
				exportBudgetReportUseCase, exportDelayReportUseCase,
			)

			// Create middleware
			reportRateLimiter := middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

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
			engine := r.Setup("test")

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
				Handler: engine,
			}
			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}
