package project

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sitepulse/backend/internal/application/adapter"
	"github.com/sitepulse/backend/internal/application/usecase/budget"
	"github.com/sitepulse/backend/internal/domain/entity"
)

// sourceTimeout bounds each collection fetch of the snapshot load. A slow
// source degrades to its fallback instead of stalling the whole open.
const sourceTimeout = 10 * time.Second

// defaultBlueprintTitle names the blueprint seeded for projects that have none.
const defaultBlueprintTitle = "Site overview"

// SnapshotInput represents the input for opening a project.
type SnapshotInput struct {
	ProjectID uuid.UUID
}

// Snapshot is the full working set of a project, loaded when the client
// opens it. Sources that failed to load carry their fallback value and are
// listed in Warnings.
type Snapshot struct {
	Materials  []*entity.Material
	Equipment  []*entity.Equipment
	Workers    []*entity.Worker
	Tasks      []*entity.Task
	Logs       []*entity.BudgetLog
	Blueprints []*entity.Blueprint
	Budget     *entity.ProjectBudget
	Warnings   []string
}

// LoadSnapshotUseCase loads every project collection in parallel, each fetch
// wrapped in a timeout with a fallback, so one failing source never blocks
// or fails the others.
type LoadSnapshotUseCase struct {
	materialRepo  adapter.MaterialRepository
	equipmentRepo adapter.EquipmentRepository
	workerRepo    adapter.WorkerRepository
	taskRepo      adapter.TaskRepository
	logRepo       adapter.BudgetLogRepository
	blueprintRepo adapter.BlueprintRepository
	budgetStore   *budget.Store
	logger        *slog.Logger
}

// NewLoadSnapshotUseCase creates a new LoadSnapshotUseCase instance.
func NewLoadSnapshotUseCase(
	materialRepo adapter.MaterialRepository,
	equipmentRepo adapter.EquipmentRepository,
	workerRepo adapter.WorkerRepository,
	taskRepo adapter.TaskRepository,
	logRepo adapter.BudgetLogRepository,
	blueprintRepo adapter.BlueprintRepository,
	budgetStore *budget.Store,
	logger *slog.Logger,
) *LoadSnapshotUseCase {
	return &LoadSnapshotUseCase{
		materialRepo:  materialRepo,
		equipmentRepo: equipmentRepo,
		workerRepo:    workerRepo,
		taskRepo:      taskRepo,
		logRepo:       logRepo,
		blueprintRepo: blueprintRepo,
		budgetStore:   budgetStore,
		logger:        logger,
	}
}

// Execute marks the project active, loads all collections in parallel, and
// seeds a default blueprint for projects that have none. Individual source
// failures degrade to fallbacks; only a total budget-load failure is fatal.
func (uc *LoadSnapshotUseCase) Execute(ctx context.Context, input SnapshotInput) (*Snapshot, error) {
	uc.budgetStore.Activate(input.ProjectID)

	snapshot := &Snapshot{}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		budgetErr error
	)

	warn := func(source string, err error) {
		uc.logger.Warn("snapshot source failed, using fallback",
			"project_id", input.ProjectID,
			"source", source,
			"error", err,
		)
		mu.Lock()
		snapshot.Warnings = append(snapshot.Warnings, source)
		mu.Unlock()
	}

	fetch := func(source string, load func(ctx context.Context) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fetchCtx, cancel := context.WithTimeout(ctx, sourceTimeout)
			defer cancel()
			if err := load(fetchCtx); err != nil {
				warn(source, err)
			}
		}()
	}

	fetch("materials", func(ctx context.Context) error {
		items, err := uc.materialRepo.FindByProjectID(ctx, input.ProjectID)
		if err != nil {
			return err
		}
		snapshot.Materials = items
		return nil
	})

	fetch("equipment", func(ctx context.Context) error {
		items, err := uc.equipmentRepo.FindByProjectID(ctx, input.ProjectID)
		if err != nil {
			return err
		}
		snapshot.Equipment = items
		return nil
	})

	fetch("workers", func(ctx context.Context) error {
		items, err := uc.workerRepo.FindByProjectID(ctx, input.ProjectID)
		if err != nil {
			return err
		}
		snapshot.Workers = items
		return nil
	})

	fetch("tasks", func(ctx context.Context) error {
		items, err := uc.taskRepo.FindByProjectID(ctx, input.ProjectID)
		if err != nil {
			return err
		}
		snapshot.Tasks = items
		return nil
	})

	fetch("budget_logs", func(ctx context.Context) error {
		items, err := uc.logRepo.FindByProjectID(ctx, input.ProjectID)
		if err != nil {
			return err
		}
		snapshot.Logs = items
		return nil
	})

	fetch("blueprints", func(ctx context.Context) error {
		items, err := uc.blueprintRepo.FindByProjectID(ctx, input.ProjectID)
		if err != nil {
			return err
		}
		snapshot.Blueprints = items
		return nil
	})

	fetch("budget", func(ctx context.Context) error {
		value, _, err := uc.budgetStore.Load(ctx, input.ProjectID)
		if err != nil {
			budgetErr = err
			return err
		}
		snapshot.Budget = value
		return nil
	})

	wg.Wait()

	if budgetErr != nil {
		return nil, budgetErr
	}

	uc.ensureBlueprint(ctx, input.ProjectID, snapshot)

	return snapshot, nil
}

// ensureBlueprint seeds a default blueprint record once per project so the
// pin board always has a canvas to draw on. Runs only when the blueprint
// fetch itself succeeded; a failed fetch must not trigger a duplicate seed.
func (uc *LoadSnapshotUseCase) ensureBlueprint(ctx context.Context, projectID uuid.UUID, snapshot *Snapshot) {
	if len(snapshot.Blueprints) > 0 {
		return
	}
	for _, source := range snapshot.Warnings {
		if source == "blueprints" {
			return
		}
	}

	exists, err := uc.blueprintRepo.ExistsByProjectID(ctx, projectID)
	if err != nil || exists {
		if err != nil {
			uc.logger.Warn("blueprint existence check failed", "project_id", projectID, "error", err)
		}
		return
	}

	blueprint := entity.NewBlueprint(projectID, defaultBlueprintTitle, "")
	if err := uc.blueprintRepo.Create(ctx, blueprint); err != nil {
		uc.logger.Warn("failed to seed default blueprint", "project_id", projectID, "error", err)
		return
	}

	snapshot.Blueprints = append(snapshot.Blueprints, blueprint)
}
