// Package budget contains the budget reconciliation and synchronization core.
package budget

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sitepulse/backend/internal/application/adapter"
	"github.com/sitepulse/backend/internal/domain/entity"
	domainerror "github.com/sitepulse/backend/internal/domain/error"
	"github.com/sitepulse/backend/internal/domain/valueobject"
)

// ChangeKind identifies which mutation path triggered a recompute. All paths
// funnel into the same debounced reconciliation handler.
type ChangeKind string

const (
	ChangeMaterials ChangeKind = "materials"
	ChangeEquipment ChangeKind = "equipment"
	ChangeLogs      ChangeKind = "logs"
	ChangeManual    ChangeKind = "manual"
)

// sourceReadTimeout bounds the collection reads done at recompute time.
const sourceReadTimeout = 10 * time.Second

// persistWaitInterval is how often a blocked manual persist re-checks the guard.
const persistWaitInterval = 20 * time.Millisecond

// Patch is a shallow merge applied to the shared budget value.
type Patch struct {
	TotalBudget           *float64
	ContingencyPercentage *float64
	Categories            *[]entity.BudgetCategory
}

// Subscriber receives every published budget value. The budget passed in is a
// copy; subscribers may not assume it is the shared instance.
type Subscriber func(projectID uuid.UUID, budget *entity.ProjectBudget)

// session holds the per-project synchronization state for one client session.
type session struct {
	generation    uint64
	current       *entity.ProjectBudget
	loaded        bool
	loading       bool
	timer         *time.Timer
	persisting    bool
	persistQueued bool
	drainArmed    bool
	cooldownUntil time.Time
}

// Store owns the authoritative in-memory budget value per project and is the
// single choke point for every mutation path: loads, reconciliations, manual
// edits, and persistence all go through it.
//
// Recomputation re-reads the current collections from the repositories at the
// moment it runs; nothing is captured when a change signal is registered, so
// a burst of signals coalesces into one recompute over the latest state.
type Store struct {
	budgetRepo    adapter.BudgetRepository
	materialRepo  adapter.MaterialRepository
	equipmentRepo adapter.EquipmentRepository
	logRepo       adapter.BudgetLogRepository
	reconciler    *Reconciler
	cfg           valueobject.SyncConfig

	mu          sync.Mutex
	active      uuid.UUID
	sessions    map[uuid.UUID]*session
	subscribers map[int]Subscriber
	nextSubID   int
}

// NewStore creates a budget store.
func NewStore(
	budgetRepo adapter.BudgetRepository,
	materialRepo adapter.MaterialRepository,
	equipmentRepo adapter.EquipmentRepository,
	logRepo adapter.BudgetLogRepository,
	reconciler *Reconciler,
	cfg valueobject.SyncConfig,
) *Store {
	return &Store{
		budgetRepo:    budgetRepo,
		materialRepo:  materialRepo,
		equipmentRepo: equipmentRepo,
		logRepo:       logRepo,
		reconciler:    reconciler,
		cfg:           cfg,
		sessions:      make(map[uuid.UUID]*session),
		subscribers:   make(map[int]Subscriber),
	}
}

func (s *Store) ensureSessionLocked(projectID uuid.UUID) *session {
	sess, ok := s.sessions[projectID]
	if !ok {
		sess = &session{}
		s.sessions[projectID] = sess
	}
	return sess
}

// Activate marks the given project as the actively viewed one. In-flight
// loads for other projects can still complete into their own sessions but
// never replace the active view.
func (s *Store) Activate(projectID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = projectID
	s.ensureSessionLocked(projectID)
}

// ActiveBudget returns the shared budget value of the active project, or nil.
func (s *Store) ActiveBudget() *entity.ProjectBudget {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[s.active]
	if !ok {
		return nil
	}
	return sess.current.Clone()
}

// Current returns a copy of the shared budget value for a project, or nil.
func (s *Store) Current(projectID uuid.UUID) *entity.ProjectBudget {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[projectID]
	if !ok {
		return nil
	}
	return sess.current.Clone()
}

// Set unconditionally replaces the shared value and notifies subscribers.
func (s *Store) Set(projectID uuid.UUID, budget *entity.ProjectBudget) {
	s.mu.Lock()
	sess := s.ensureSessionLocked(projectID)
	sess.current = budget.Clone()
	published := sess.current.Clone()
	s.mu.Unlock()

	s.notify(projectID, published)
}

// Update shallow-merges the patch into the shared value if one exists.
// It is a no-op when no budget has been published for the project yet.
func (s *Store) Update(projectID uuid.UUID, patch Patch) bool {
	s.mu.Lock()
	sess, ok := s.sessions[projectID]
	if !ok || sess.current == nil {
		s.mu.Unlock()
		return false
	}

	if patch.TotalBudget != nil {
		sess.current.TotalBudget = *patch.TotalBudget
	}
	if patch.ContingencyPercentage != nil {
		sess.current.ContingencyPercentage = *patch.ContingencyPercentage
	}
	if patch.Categories != nil {
		sess.current.Categories = make([]entity.BudgetCategory, len(*patch.Categories))
		copy(sess.current.Categories, *patch.Categories)
	}
	sess.current.TotalSpent = sess.current.SumSpent()
	sess.current.LastUpdated = time.Now().UTC()
	published := sess.current.Clone()
	s.mu.Unlock()

	s.notify(projectID, published)
	return true
}

// Subscribe registers a subscriber for published budget values and returns
// its id for Unsubscribe.
func (s *Store) Subscribe(fn Subscriber) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSubID++
	id := s.nextSubID
	s.subscribers[id] = fn
	return id
}

// Unsubscribe removes a subscriber.
func (s *Store) Unsubscribe(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subscribers, id)
}

func (s *Store) notify(projectID uuid.UUID, budget *entity.ProjectBudget) {
	s.mu.Lock()
	subs := make([]Subscriber, 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(projectID, budget)
	}
}

// Reset invalidates the session for a project: in-flight loads and scheduled
// recomputes for the old generation are dropped, and the next Load re-runs
// the bootstrap check.
func (s *Store) Reset(projectID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.ensureSessionLocked(projectID)
	sess.generation++
	sess.loaded = false
	sess.loading = false
	if sess.timer != nil {
		sess.timer.Stop()
		sess.timer = nil
	}
}

// SignalChange registers that a mutation path changed data the budget is
// derived from. The actual recompute runs after the debounce window; signals
// arriving inside the window collapse into a single recompute over whatever
// the repositories hold when it fires.
func (s *Store) SignalChange(projectID uuid.UUID, kind ChangeKind) {
	s.mu.Lock()
	sess := s.ensureSessionLocked(projectID)
	gen := sess.generation

	if sess.timer != nil {
		sess.timer.Reset(s.cfg.DebounceWindow)
		s.mu.Unlock()
		return
	}
	sess.timer = time.AfterFunc(s.cfg.DebounceWindow, func() {
		s.runReconcile(projectID, gen)
	})
	s.mu.Unlock()

	slog.Debug("budget recompute scheduled", "project_id", projectID, "change", string(kind))
}

// runReconcile re-reads the current collections, reconciles, republishes the
// shared value, and requests a guarded persist.
func (s *Store) runReconcile(projectID uuid.UUID, gen uint64) {
	s.mu.Lock()
	sess, ok := s.sessions[projectID]
	if !ok || sess.generation != gen {
		s.mu.Unlock()
		return
	}
	sess.timer = nil
	existing := sess.current.Clone()
	loaded := sess.loaded
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), sourceReadTimeout)
	defer cancel()

	if !loaded {
		// The session never completed an authoritative load; its current
		// value is a local fallback that must not shadow the stored
		// document. Retry the load before reconciling.
		stored, err := s.budgetRepo.FindByProjectID(ctx, projectID)
		switch {
		case err == nil:
			existing = stored
			loaded = true
		case errors.Is(err, domainerror.ErrBudgetNotFound):
			// Nothing stored to clobber; the reconciled value is authoritative.
			loaded = true
		default:
			slog.Warn("budget recompute: stored document still unreachable",
				"project_id", projectID,
				"error", err,
			)
		}
	}

	in, err := s.aggregateInputs(ctx, projectID)
	if err != nil {
		// A newer trigger will converge once the sources are readable again.
		slog.Warn("budget recompute skipped, sources unavailable",
			"project_id", projectID,
			"error", err,
		)
		return
	}

	updated := s.reconciler.Reconcile(projectID, existing, in)

	s.mu.Lock()
	if sess.generation != gen {
		s.mu.Unlock()
		return
	}
	sess.current = updated
	if loaded {
		sess.loaded = true
	}
	published := updated.Clone()
	s.mu.Unlock()

	s.notify(projectID, published)
	s.requestPersist(projectID)
}

// aggregateInputs reads the collections as they are right now. Values are
// never captured at signal time.
func (s *Store) aggregateInputs(ctx context.Context, projectID uuid.UUID) (Inputs, error) {
	materials, err := s.materialRepo.FindByProjectID(ctx, projectID)
	if err != nil {
		return Inputs{}, err
	}
	equipment, err := s.equipmentRepo.FindByProjectID(ctx, projectID)
	if err != nil {
		return Inputs{}, err
	}
	logs, err := s.logRepo.FindByProjectID(ctx, projectID)
	if err != nil {
		return Inputs{}, err
	}

	return Inputs{
		MaterialsSpent: MaterialsSpent(materials),
		EquipmentSpent: EquipmentSpent(equipment),
		Logs:           logs,
	}, nil
}

// requestPersist writes the shared value through the reentrancy guard: while
// a persist is in flight, or within the cooldown window after one completed,
// the request is queued and drained later with whatever value is current
// then. It never fires a second concurrent write for the same project.
func (s *Store) requestPersist(projectID uuid.UUID) {
	s.mu.Lock()
	sess, ok := s.sessions[projectID]
	if !ok || sess.current == nil || !sess.loaded {
		// An unloaded session holds a local fallback; writing it would
		// overwrite the stored document with defaults.
		s.mu.Unlock()
		return
	}

	now := time.Now()
	if sess.persisting || now.Before(sess.cooldownUntil) {
		sess.persistQueued = true
		if !sess.persisting && !sess.drainArmed {
			sess.drainArmed = true
			wait := sess.cooldownUntil.Sub(now)
			time.AfterFunc(wait, func() { s.drainPersist(projectID) })
		}
		s.mu.Unlock()
		return
	}

	sess.persisting = true
	value := sess.current.Clone()
	s.mu.Unlock()

	go s.doPersist(projectID, value)
}

func (s *Store) drainPersist(projectID uuid.UUID) {
	s.mu.Lock()
	sess, ok := s.sessions[projectID]
	if !ok {
		s.mu.Unlock()
		return
	}
	sess.drainArmed = false
	queued := sess.persistQueued
	sess.persistQueued = false
	s.mu.Unlock()

	if queued {
		s.requestPersist(projectID)
	}
}

func (s *Store) doPersist(projectID uuid.UUID, value *entity.ProjectBudget) {
	ctx, cancel := context.WithTimeout(context.Background(), sourceReadTimeout)
	defer cancel()

	if err := s.budgetRepo.Save(ctx, value); err != nil {
		// The in-memory shared value stays as-is; a later recompute or
		// manual save re-derives and retries.
		slog.Error("budget persist failed",
			"project_id", projectID,
			"error", err,
		)
	}

	s.mu.Lock()
	sess, ok := s.sessions[projectID]
	if !ok {
		s.mu.Unlock()
		return
	}
	sess.persisting = false
	sess.cooldownUntil = time.Now().Add(s.cfg.PersistCooldown)
	queued := sess.persistQueued
	if queued && !sess.drainArmed {
		sess.drainArmed = true
		time.AfterFunc(s.cfg.PersistCooldown, func() { s.drainPersist(projectID) })
	}
	s.mu.Unlock()
}

// SetAndPersist applies a manual, user-initiated edit: the shared value is
// replaced immediately, then persisted synchronously once the guard window
// closes. A persist failure is returned to the caller but leaves the shared
// value untouched.
func (s *Store) SetAndPersist(ctx context.Context, projectID uuid.UUID, budget *entity.ProjectBudget) error {
	s.Set(projectID, budget)

	for {
		s.mu.Lock()
		sess := s.ensureSessionLocked(projectID)
		if !sess.persisting && !time.Now().Before(sess.cooldownUntil) {
			sess.persisting = true
			value := sess.current.Clone()
			s.mu.Unlock()

			err := s.budgetRepo.Save(ctx, value)

			s.mu.Lock()
			sess.persisting = false
			sess.cooldownUntil = time.Now().Add(s.cfg.PersistCooldown)
			if err == nil {
				// A manual save is authoritative even when the initial
				// load never completed.
				sess.loaded = true
			}
			s.mu.Unlock()

			if err != nil {
				slog.Error("manual budget save failed", "project_id", projectID, "error", err)
				return domainerror.NewBudgetError(
					domainerror.ErrCodeBudgetPersistFailed,
					"failed to persist budget",
					err,
				)
			}
			return nil
		}
		s.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(persistWaitInterval):
		}
	}
}

// Load performs the once-per-project-per-session load-or-bootstrap. When a
// document exists it is reconciled against the current collections before
// publishing; when none exists the default document is synthesized and
// persisted immediately so subsequent loads find one. A transient load
// failure degrades to an unpersisted default value and leaves the session
// unloaded so a later access retries.
func (s *Store) Load(ctx context.Context, projectID uuid.UUID) (*entity.ProjectBudget, bool, error) {
	s.mu.Lock()
	sess := s.ensureSessionLocked(projectID)
	if sess.loaded && sess.current != nil {
		current := sess.current.Clone()
		s.mu.Unlock()
		return current, false, nil
	}
	if sess.loading {
		s.mu.Unlock()
		return s.awaitLoad(ctx, projectID)
	}
	sess.loading = true
	gen := sess.generation
	s.mu.Unlock()

	result, bootstrapped, loadOK := s.loadOrBootstrap(ctx, projectID)

	s.mu.Lock()
	if sess.generation != gen {
		// The project was switched or reset while this load was in flight;
		// its result must not overwrite newer state.
		s.mu.Unlock()
		return result, bootstrapped, nil
	}
	sess.loading = false
	sess.current = result
	sess.loaded = loadOK
	published := result.Clone()
	s.mu.Unlock()

	s.notify(projectID, published)
	if loadOK && !bootstrapped {
		// Persist the refreshed reconciliation through the guard.
		s.requestPersist(projectID)
	}
	return result, bootstrapped, nil
}

func (s *Store) loadOrBootstrap(ctx context.Context, projectID uuid.UUID) (result *entity.ProjectBudget, bootstrapped, loadOK bool) {
	existing, err := s.budgetRepo.FindByProjectID(ctx, projectID)
	switch {
	case err == nil:
		in, aerr := s.aggregateInputs(ctx, projectID)
		if aerr != nil {
			slog.Warn("budget load: sources unavailable, publishing stored document",
				"project_id", projectID,
				"error", aerr,
			)
			return existing, false, true
		}
		return s.reconciler.Reconcile(projectID, existing, in), false, true

	case errors.Is(err, domainerror.ErrBudgetNotFound):
		in, aerr := s.aggregateInputs(ctx, projectID)
		if aerr != nil {
			slog.Warn("budget bootstrap: sources unavailable, seeding zero spend",
				"project_id", projectID,
				"error", aerr,
			)
			in = Inputs{}
		}
		synthesized := s.reconciler.Reconcile(projectID, nil, in)
		if perr := s.budgetRepo.Save(ctx, synthesized); perr != nil {
			slog.Error("budget bootstrap persist failed", "project_id", projectID, "error", perr)
		}
		return synthesized, true, true

	default:
		// Transient remote failure: never block, never mark loaded.
		slog.Warn("budget load failed, falling back to default",
			"project_id", projectID,
			"error", err,
		)
		return s.reconciler.Reconcile(projectID, nil, Inputs{}), false, false
	}
}

// awaitLoad waits for a concurrent load of the same project to finish.
func (s *Store) awaitLoad(ctx context.Context, projectID uuid.UUID) (*entity.ProjectBudget, bool, error) {
	for {
		s.mu.Lock()
		sess := s.ensureSessionLocked(projectID)
		if !sess.loading {
			current := sess.current.Clone()
			s.mu.Unlock()
			return current, false, nil
		}
		s.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil, false, ctx.Err()
		case <-time.After(persistWaitInterval):
		}
	}
}
