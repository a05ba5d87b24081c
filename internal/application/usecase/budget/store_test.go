// Package budget contains the budget reconciliation and synchronization core.
package budget

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sitepulse/backend/internal/domain/entity"
	domainerror "github.com/sitepulse/backend/internal/domain/error"
	"github.com/sitepulse/backend/internal/domain/valueobject"
)

// fakeBudgetRepo is an in-memory budget repository that records writes.
type fakeBudgetRepo struct {
	mu          sync.Mutex
	docs        map[uuid.UUID]*entity.ProjectBudget
	saves       int
	finds       int
	inFlight    int
	maxInFlight int
	findDelay   time.Duration
	saveDelay   time.Duration
	failSave    bool
	failFind    bool
	lastSaved   *entity.ProjectBudget
}

func newFakeBudgetRepo() *fakeBudgetRepo {
	return &fakeBudgetRepo{docs: make(map[uuid.UUID]*entity.ProjectBudget)}
}

func (r *fakeBudgetRepo) FindByProjectID(_ context.Context, projectID uuid.UUID) (*entity.ProjectBudget, error) {
	r.mu.Lock()
	r.finds++
	delay := r.findDelay
	fail := r.failFind
	doc := r.docs[projectID]
	r.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}
	if fail {
		return nil, errors.New("connection refused")
	}
	if doc == nil {
		return nil, domainerror.ErrBudgetNotFound
	}
	return doc.Clone(), nil
}

func (r *fakeBudgetRepo) Save(_ context.Context, budget *entity.ProjectBudget) error {
	r.mu.Lock()
	r.inFlight++
	if r.inFlight > r.maxInFlight {
		r.maxInFlight = r.inFlight
	}
	delay := r.saveDelay
	fail := r.failSave
	r.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.inFlight--
	if fail {
		return errors.New("write refused")
	}
	r.saves++
	r.docs[budget.ProjectID] = budget.Clone()
	r.lastSaved = budget.Clone()
	return nil
}

func (r *fakeBudgetRepo) saveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves
}

func (r *fakeBudgetRepo) findCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.finds
}

func (r *fakeBudgetRepo) last() *entity.ProjectBudget {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastSaved
}

// fakeMaterialRepo serves a mutable material list, simulating the live
// collection the aggregator must re-read at recompute time.
type fakeMaterialRepo struct {
	mu        sync.Mutex
	materials []*entity.Material
}

func (r *fakeMaterialRepo) set(materials []*entity.Material) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.materials = materials
}

func (r *fakeMaterialRepo) Create(context.Context, *entity.Material) error { return nil }
func (r *fakeMaterialRepo) FindByID(context.Context, uuid.UUID) (*entity.Material, error) {
	return nil, domainerror.ErrMaterialNotFound
}
func (r *fakeMaterialRepo) Update(context.Context, *entity.Material) error { return nil }
func (r *fakeMaterialRepo) Delete(context.Context, uuid.UUID) error        { return nil }
func (r *fakeMaterialRepo) FindByProjectID(context.Context, uuid.UUID) ([]*entity.Material, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.materials, nil
}

type fakeEquipmentRepo struct {
	mu        sync.Mutex
	equipment []*entity.Equipment
}

func (r *fakeEquipmentRepo) Create(context.Context, *entity.Equipment) error { return nil }
func (r *fakeEquipmentRepo) FindByID(context.Context, uuid.UUID) (*entity.Equipment, error) {
	return nil, domainerror.ErrEquipmentNotFound
}
func (r *fakeEquipmentRepo) Update(context.Context, *entity.Equipment) error { return nil }
func (r *fakeEquipmentRepo) Delete(context.Context, uuid.UUID) error         { return nil }
func (r *fakeEquipmentRepo) FindByProjectID(context.Context, uuid.UUID) ([]*entity.Equipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.equipment, nil
}

type fakeLogRepo struct {
	mu   sync.Mutex
	logs []*entity.BudgetLog
}

func (r *fakeLogRepo) Create(context.Context, *entity.BudgetLog) error { return nil }
func (r *fakeLogRepo) FindByID(context.Context, uuid.UUID) (*entity.BudgetLog, error) {
	return nil, domainerror.ErrBudgetLogNotFound
}
func (r *fakeLogRepo) Delete(context.Context, uuid.UUID) error { return nil }
func (r *fakeLogRepo) FindByProjectID(context.Context, uuid.UUID) ([]*entity.BudgetLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.logs, nil
}

type storeFixture struct {
	store      *Store
	budgetRepo *fakeBudgetRepo
	materials  *fakeMaterialRepo
	equipment  *fakeEquipmentRepo
	logs       *fakeLogRepo
}

func newStoreFixture() *storeFixture {
	budgetRepo := newFakeBudgetRepo()
	materials := &fakeMaterialRepo{}
	equipment := &fakeEquipmentRepo{}
	logs := &fakeLogRepo{}

	cfg := valueobject.SyncConfig{
		DebounceWindow:  30 * time.Millisecond,
		PersistCooldown: 60 * time.Millisecond,
	}
	store := NewStore(budgetRepo, materials, equipment, logs, NewReconciler(), cfg)

	return &storeFixture{
		store:      store,
		budgetRepo: budgetRepo,
		materials:  materials,
		equipment:  equipment,
		logs:       logs,
	}
}

// waitFor polls until the condition holds or the deadline passes.
func waitFor(t *testing.T, timeout time.Duration, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(msg)
}

func material(qty float64, price float64) *entity.Material {
	return &entity.Material{ID: uuid.New(), Quantity: qty, Price: decimal.NewFromFloat(price)}
}

func TestStore_BootstrapPersistsDefault(t *testing.T) {
	f := newStoreFixture()
	projectID := uuid.New()

	out, bootstrapped, err := f.store.Load(context.Background(), projectID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bootstrapped {
		t.Fatal("expected bootstrap for a project without a budget document")
	}
	if out.TotalBudget != 500000 || out.ContingencyPercentage != 10 {
		t.Errorf("unexpected default document: %+v", out)
	}
	if f.budgetRepo.saveCount() != 1 {
		t.Errorf("expected bootstrap to persist immediately, saves=%d", f.budgetRepo.saveCount())
	}

	// A second load in the same session must not re-run the routine.
	_, bootstrapped, err = f.store.Load(context.Background(), projectID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bootstrapped {
		t.Error("bootstrap ran twice for the same project session")
	}
	if f.budgetRepo.findCount() != 1 {
		t.Errorf("expected one remote load per session, finds=%d", f.budgetRepo.findCount())
	}
}

func TestStore_LoadReconcilesStoredDocument(t *testing.T) {
	f := newStoreFixture()
	projectID := uuid.New()

	stored := testBudget(projectID, 500000)
	f.budgetRepo.docs[projectID] = stored
	f.materials.set([]*entity.Material{material(10, 25)})

	out, bootstrapped, err := f.store.Load(context.Background(), projectID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bootstrapped {
		t.Fatal("existing document must not be bootstrapped")
	}
	if got := out.Category(entity.PrimaryCategoryMaterials).SpentAmount; got != 250 {
		t.Errorf("load did not reconcile primary spend: expected 250, got %v", got)
	}
}

func TestStore_CoalescedPersist(t *testing.T) {
	f := newStoreFixture()
	projectID := uuid.New()

	f.budgetRepo.docs[projectID] = testBudget(projectID, 500000)
	if _, _, err := f.store.Load(context.Background(), projectID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	waitFor(t, time.Second, func() bool { return f.budgetRepo.saveCount() == 1 }, "load persist did not complete")
	baseline := f.budgetRepo.saveCount()

	// Cooldown from the load persist must expire before the burst.
	time.Sleep(80 * time.Millisecond)

	// Two mutations land inside one debounce window; only the later state
	// may reach the remote store.
	f.materials.set([]*entity.Material{material(1, 100)})
	f.store.SignalChange(projectID, ChangeMaterials)
	f.materials.set([]*entity.Material{material(2, 100)})
	f.store.SignalChange(projectID, ChangeMaterials)

	waitFor(t, time.Second, func() bool { return f.budgetRepo.saveCount() == baseline+1 }, "coalesced persist did not complete")
	time.Sleep(100 * time.Millisecond)

	if got := f.budgetRepo.saveCount(); got != baseline+1 {
		t.Errorf("expected exactly one write for the burst, got %d extra", got-baseline)
	}
	saved := f.budgetRepo.last()
	if got := saved.Category(entity.PrimaryCategoryMaterials).SpentAmount; got != 200 {
		t.Errorf("persisted value is stale: expected 200, got %v", got)
	}
}

func TestStore_NoConcurrentWrites(t *testing.T) {
	f := newStoreFixture()
	projectID := uuid.New()

	f.budgetRepo.docs[projectID] = testBudget(projectID, 500000)
	f.budgetRepo.saveDelay = 40 * time.Millisecond
	if _, _, err := f.store.Load(context.Background(), projectID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Fire bursts across several windows while saves are slow.
	for i := 1; i <= 4; i++ {
		f.materials.set([]*entity.Material{material(float64(i), 10)})
		f.store.SignalChange(projectID, ChangeMaterials)
		time.Sleep(50 * time.Millisecond)
	}

	waitFor(t, 2*time.Second, func() bool {
		f.budgetRepo.mu.Lock()
		defer f.budgetRepo.mu.Unlock()
		return f.budgetRepo.inFlight == 0 && f.budgetRepo.saves > 0
	}, "persists did not settle")

	f.budgetRepo.mu.Lock()
	max := f.budgetRepo.maxInFlight
	f.budgetRepo.mu.Unlock()
	if max > 1 {
		t.Errorf("observed %d overlapping writes for one project", max)
	}
}

func TestStore_ProjectSwitch(t *testing.T) {
	f := newStoreFixture()
	projectA := uuid.New()
	projectB := uuid.New()

	budgetA := testBudget(projectA, 111111)
	budgetB := testBudget(projectB, 222222)
	f.budgetRepo.docs[projectA] = budgetA
	f.budgetRepo.docs[projectB] = budgetB
	f.budgetRepo.findDelay = 50 * time.Millisecond

	// Begin loading A, then switch to B before A resolves.
	f.store.Activate(projectA)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _, _ = f.store.Load(context.Background(), projectA)
	}()
	time.Sleep(10 * time.Millisecond)

	f.budgetRepo.mu.Lock()
	f.budgetRepo.findDelay = 0
	f.budgetRepo.mu.Unlock()

	f.store.Activate(projectB)
	if _, _, err := f.store.Load(context.Background(), projectB); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	<-done

	active := f.store.ActiveBudget()
	if active == nil || active.ProjectID != projectB {
		t.Fatalf("active budget does not belong to the selected project: %+v", active)
	}
	if active.TotalBudget != 222222 {
		t.Errorf("active budget carries stale data: %v", active.TotalBudget)
	}
}

func TestStore_ResetDropsInFlightLoad(t *testing.T) {
	f := newStoreFixture()
	projectID := uuid.New()

	f.budgetRepo.docs[projectID] = testBudget(projectID, 500000)
	f.budgetRepo.findDelay = 40 * time.Millisecond

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _, _ = f.store.Load(context.Background(), projectID)
	}()
	time.Sleep(10 * time.Millisecond)
	f.store.Reset(projectID)
	<-done

	if cur := f.store.Current(projectID); cur != nil {
		t.Errorf("stale load committed after reset: %+v", cur)
	}
}

func TestStore_UpdateIsNoopWithoutBudget(t *testing.T) {
	f := newStoreFixture()
	total := 750000.0

	if f.store.Update(uuid.New(), Patch{TotalBudget: &total}) {
		t.Error("update applied to a project with no shared value")
	}
}

func TestStore_PersistFailureKeepsSharedValue(t *testing.T) {
	f := newStoreFixture()
	projectID := uuid.New()

	f.budgetRepo.docs[projectID] = testBudget(projectID, 500000)
	if _, _, err := f.store.Load(context.Background(), projectID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	waitFor(t, time.Second, func() bool {
		f.budgetRepo.mu.Lock()
		defer f.budgetRepo.mu.Unlock()
		return f.budgetRepo.inFlight == 0
	}, "load persist did not settle")
	time.Sleep(80 * time.Millisecond)

	f.budgetRepo.mu.Lock()
	f.budgetRepo.failSave = true
	f.budgetRepo.mu.Unlock()

	edited := f.store.Current(projectID)
	edited.TotalBudget = 900000
	err := f.store.SetAndPersist(context.Background(), projectID, edited)
	if err == nil {
		t.Fatal("expected persist failure to surface")
	}
	var budgetErr *domainerror.BudgetError
	if !errors.As(err, &budgetErr) || budgetErr.Code != domainerror.ErrCodeBudgetPersistFailed {
		t.Errorf("unexpected error: %v", err)
	}

	if cur := f.store.Current(projectID); cur.TotalBudget != 900000 {
		t.Errorf("failed persist rolled back shared state: %v", cur.TotalBudget)
	}
}

func TestStore_DegradedLoadNeverOverwritesStored(t *testing.T) {
	f := newStoreFixture()
	projectID := uuid.New()

	f.budgetRepo.docs[projectID] = testBudget(projectID, 999999)
	f.budgetRepo.failFind = true

	out, bootstrapped, err := f.store.Load(context.Background(), projectID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bootstrapped {
		t.Fatal("degraded load must not report a bootstrap")
	}
	if out.TotalBudget != 500000 {
		t.Fatalf("degraded load did not fall back to the default: %v", out.TotalBudget)
	}

	// A mutation while the store is degraded recomputes in memory only; the
	// fallback value must never reach the remote document.
	f.materials.set([]*entity.Material{material(4, 25)})
	f.store.SignalChange(projectID, ChangeMaterials)
	time.Sleep(150 * time.Millisecond)

	if got := f.budgetRepo.saveCount(); got != 0 {
		t.Fatalf("fallback value reached the remote store, saves=%d", got)
	}
	f.budgetRepo.mu.Lock()
	storedTotal := f.budgetRepo.docs[projectID].TotalBudget
	f.budgetRepo.failFind = false
	f.budgetRepo.mu.Unlock()
	if storedTotal != 999999 {
		t.Fatalf("stored document was clobbered: %v", storedTotal)
	}

	// Once the repository recovers, the next recompute reloads the stored
	// document and persistence resumes on top of it.
	f.store.SignalChange(projectID, ChangeMaterials)
	waitFor(t, time.Second, func() bool { return f.budgetRepo.saveCount() == 1 }, "recovered recompute did not persist")

	saved := f.budgetRepo.last()
	if saved.TotalBudget != 999999 {
		t.Errorf("recovered persist lost the stored total: %v", saved.TotalBudget)
	}
	if got := saved.Category(entity.PrimaryCategoryMaterials).SpentAmount; got != 100 {
		t.Errorf("recovered persist missed derived spend: expected 100, got %v", got)
	}
}

func TestStore_SubscribersSeePublishedValues(t *testing.T) {
	f := newStoreFixture()
	projectID := uuid.New()

	var mu sync.Mutex
	var seen []float64
	id := f.store.Subscribe(func(pid uuid.UUID, b *entity.ProjectBudget) {
		if pid != projectID {
			return
		}
		mu.Lock()
		seen = append(seen, b.TotalBudget)
		mu.Unlock()
	})
	defer f.store.Unsubscribe(id)

	f.store.Set(projectID, testBudget(projectID, 100))
	f.store.Set(projectID, testBudget(projectID, 200))

	mu.Lock()
	defer mu.Unlock()
	if len(seen) != 2 || seen[0] != 100 || seen[1] != 200 {
		t.Errorf("unexpected publish sequence: %v", seen)
	}
}
