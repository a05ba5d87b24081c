package project

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sitepulse/backend/internal/application/usecase/budget"
	"github.com/sitepulse/backend/internal/domain/entity"
	domainerror "github.com/sitepulse/backend/internal/domain/error"
	"github.com/sitepulse/backend/internal/domain/valueobject"
)

type fakeMaterialRepo struct {
	items []*entity.Material
	err   error
}

func (f *fakeMaterialRepo) Create(ctx context.Context, m *entity.Material) error { return nil }
func (f *fakeMaterialRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Material, error) {
	return nil, domainerror.ErrMaterialNotFound
}
func (f *fakeMaterialRepo) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*entity.Material, error) {
	return f.items, f.err
}
func (f *fakeMaterialRepo) Update(ctx context.Context, m *entity.Material) error { return nil }
func (f *fakeMaterialRepo) Delete(ctx context.Context, id uuid.UUID) error       { return nil }

type fakeEquipmentRepo struct {
	items []*entity.Equipment
	err   error
}

func (f *fakeEquipmentRepo) Create(ctx context.Context, e *entity.Equipment) error { return nil }
func (f *fakeEquipmentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Equipment, error) {
	return nil, domainerror.ErrEquipmentNotFound
}
func (f *fakeEquipmentRepo) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*entity.Equipment, error) {
	return f.items, f.err
}
func (f *fakeEquipmentRepo) Update(ctx context.Context, e *entity.Equipment) error { return nil }
func (f *fakeEquipmentRepo) Delete(ctx context.Context, id uuid.UUID) error        { return nil }

type fakeWorkerRepo struct {
	items []*entity.Worker
	err   error
}

func (f *fakeWorkerRepo) Create(ctx context.Context, w *entity.Worker) error { return nil }
func (f *fakeWorkerRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Worker, error) {
	return nil, domainerror.ErrWorkerNotFound
}
func (f *fakeWorkerRepo) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*entity.Worker, error) {
	return f.items, f.err
}
func (f *fakeWorkerRepo) Update(ctx context.Context, w *entity.Worker) error { return nil }
func (f *fakeWorkerRepo) Delete(ctx context.Context, id uuid.UUID) error     { return nil }

type fakeTaskRepo struct {
	items []*entity.Task
	err   error
}

func (f *fakeTaskRepo) Create(ctx context.Context, t *entity.Task) error { return nil }
func (f *fakeTaskRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	return nil, domainerror.ErrTaskNotFound
}
func (f *fakeTaskRepo) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*entity.Task, error) {
	return f.items, f.err
}
func (f *fakeTaskRepo) Update(ctx context.Context, t *entity.Task) error { return nil }
func (f *fakeTaskRepo) Delete(ctx context.Context, id uuid.UUID) error   { return nil }

type fakeLogRepo struct {
	items []*entity.BudgetLog
	err   error
}

func (f *fakeLogRepo) Create(ctx context.Context, l *entity.BudgetLog) error { return nil }
func (f *fakeLogRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.BudgetLog, error) {
	return nil, domainerror.ErrBudgetLogNotFound
}
func (f *fakeLogRepo) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*entity.BudgetLog, error) {
	return f.items, f.err
}
func (f *fakeLogRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type fakeBlueprintRepo struct {
	items   []*entity.Blueprint
	findErr error
	created []*entity.Blueprint
}

func (f *fakeBlueprintRepo) Create(ctx context.Context, b *entity.Blueprint) error {
	f.created = append(f.created, b)
	return nil
}
func (f *fakeBlueprintRepo) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*entity.Blueprint, error) {
	return f.items, f.findErr
}
func (f *fakeBlueprintRepo) Update(ctx context.Context, b *entity.Blueprint) error { return nil }
func (f *fakeBlueprintRepo) ExistsByProjectID(ctx context.Context, projectID uuid.UUID) (bool, error) {
	return len(f.items) > 0, nil
}

type fakeBudgetRepo struct {
	docs map[uuid.UUID]*entity.ProjectBudget
}

func (f *fakeBudgetRepo) FindByProjectID(ctx context.Context, projectID uuid.UUID) (*entity.ProjectBudget, error) {
	doc, ok := f.docs[projectID]
	if !ok {
		return nil, domainerror.ErrBudgetNotFound
	}
	return doc.Clone(), nil
}

func (f *fakeBudgetRepo) Save(ctx context.Context, b *entity.ProjectBudget) error {
	f.docs[b.ProjectID] = b.Clone()
	return nil
}

type loaderFixture struct {
	materials  *fakeMaterialRepo
	equipment  *fakeEquipmentRepo
	workers    *fakeWorkerRepo
	tasks      *fakeTaskRepo
	logs       *fakeLogRepo
	blueprints *fakeBlueprintRepo
	uc         *LoadSnapshotUseCase
}

func newLoaderFixture() *loaderFixture {
	f := &loaderFixture{
		materials:  &fakeMaterialRepo{},
		equipment:  &fakeEquipmentRepo{},
		workers:    &fakeWorkerRepo{},
		tasks:      &fakeTaskRepo{},
		logs:       &fakeLogRepo{},
		blueprints: &fakeBlueprintRepo{},
	}

	store := budget.NewStore(
		&fakeBudgetRepo{docs: make(map[uuid.UUID]*entity.ProjectBudget)},
		f.materials,
		f.equipment,
		f.logs,
		budget.NewReconciler(),
		valueobject.DefaultSyncConfig(),
	)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.uc = NewLoadSnapshotUseCase(
		f.materials, f.equipment, f.workers, f.tasks, f.logs, f.blueprints,
		store, logger,
	)
	return f
}

func TestLoadSnapshot_LoadsAllCollections(t *testing.T) {
	projectID := uuid.New()
	f := newLoaderFixture()

	f.materials.items = []*entity.Material{
		entity.NewMaterial(projectID, "Cement", 100, decimal.NewFromInt(25), "bag", "structure", "ACME"),
	}
	f.workers.items = []*entity.Worker{
		entity.NewWorker(projectID, "Ana", "Electrician", []string{"wiring"}, "", 300),
	}
	f.tasks.items = []*entity.Task{{ID: uuid.New(), ProjectID: projectID, Title: "Pour slab"}}
	f.blueprints.items = []*entity.Blueprint{entity.NewBlueprint(projectID, "Ground floor", "https://cdn/bp.png")}

	snapshot, err := f.uc.Execute(context.Background(), SnapshotInput{ProjectID: projectID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(snapshot.Materials) != 1 || len(snapshot.Workers) != 1 || len(snapshot.Tasks) != 1 {
		t.Errorf("collections not loaded: materials=%d workers=%d tasks=%d",
			len(snapshot.Materials), len(snapshot.Workers), len(snapshot.Tasks))
	}
	if snapshot.Budget == nil {
		t.Error("expected budget to be loaded")
	}
	if len(snapshot.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", snapshot.Warnings)
	}
	if len(f.blueprints.created) != 0 {
		t.Error("existing blueprint should not be re-seeded")
	}
}

func TestLoadSnapshot_SourceFailureIsIsolated(t *testing.T) {
	projectID := uuid.New()
	f := newLoaderFixture()

	f.workers.err = errors.New("connection refused")
	f.tasks.items = []*entity.Task{{ID: uuid.New(), ProjectID: projectID, Title: "Inspect rebar"}}

	snapshot, err := f.uc.Execute(context.Background(), SnapshotInput{ProjectID: projectID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(snapshot.Workers) != 0 {
		t.Error("failed source should fall back to empty")
	}
	if len(snapshot.Tasks) != 1 {
		t.Error("sibling sources should still load")
	}

	found := false
	for _, w := range snapshot.Warnings {
		if w == "workers" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected workers warning, got %v", snapshot.Warnings)
	}
}

func TestLoadSnapshot_SeedsDefaultBlueprint(t *testing.T) {
	projectID := uuid.New()
	f := newLoaderFixture()

	snapshot, err := f.uc.Execute(context.Background(), SnapshotInput{ProjectID: projectID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(f.blueprints.created) != 1 {
		t.Fatalf("expected 1 seeded blueprint, got %d", len(f.blueprints.created))
	}
	if f.blueprints.created[0].Title != defaultBlueprintTitle {
		t.Errorf("expected title %q, got %q", defaultBlueprintTitle, f.blueprints.created[0].Title)
	}
	if len(snapshot.Blueprints) != 1 {
		t.Error("seeded blueprint should appear in the snapshot")
	}
}

func TestLoadSnapshot_BlueprintFetchFailureSkipsSeed(t *testing.T) {
	projectID := uuid.New()
	f := newLoaderFixture()

	f.blueprints.findErr = errors.New("connection refused")

	snapshot, err := f.uc.Execute(context.Background(), SnapshotInput{ProjectID: projectID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(f.blueprints.created) != 0 {
		t.Error("seed must not run when the blueprint fetch failed")
	}
	if len(snapshot.Blueprints) != 0 {
		t.Error("expected empty blueprint fallback")
	}
}
