// Package budget contains the budget reconciliation and synchronization core.
package budget

import (
	"context"

	"github.com/google/uuid"

	"github.com/sitepulse/backend/internal/domain/entity"
)

// LoadBudgetInput represents the input for loading a project budget.
type LoadBudgetInput struct {
	ProjectID uuid.UUID

	// Activate marks the project as the actively viewed one for this client
	// session before the load begins.
	Activate bool
}

// LoadBudgetOutput represents the output of loading a project budget.
type LoadBudgetOutput struct {
	Budget       *entity.ProjectBudget
	Bootstrapped bool
}

// LoadBudgetUseCase performs the load-or-bootstrap routine on first access to
// a project's budget. Subsequent executions for the same project in the same
// session return the shared value without re-running the routine.
type LoadBudgetUseCase struct {
	store *Store
}

// NewLoadBudgetUseCase creates a new LoadBudgetUseCase instance.
func NewLoadBudgetUseCase(store *Store) *LoadBudgetUseCase {
	return &LoadBudgetUseCase{store: store}
}

// Execute loads the budget, bootstrapping a default document when none exists.
func (uc *LoadBudgetUseCase) Execute(ctx context.Context, input LoadBudgetInput) (*LoadBudgetOutput, error) {
	if input.Activate {
		uc.store.Activate(input.ProjectID)
	}

	budget, bootstrapped, err := uc.store.Load(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}

	return &LoadBudgetOutput{
		Budget:       budget,
		Bootstrapped: bootstrapped,
	}, nil
}
