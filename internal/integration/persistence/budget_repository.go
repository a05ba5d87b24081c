package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sitepulse/backend/internal/application/adapter"
	"github.com/sitepulse/backend/internal/domain/entity"
	domainerror "github.com/sitepulse/backend/internal/domain/error"
	"github.com/sitepulse/backend/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface. Each
// project owns exactly one budget row; Save replaces the whole document.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// FindByProjectID retrieves the budget document for a project.
func (r *budgetRepository) FindByProjectID(ctx context.Context, projectID uuid.UUID) (*entity.ProjectBudget, error) {
	var budgetModel model.BudgetModel
	result := r.db.WithContext(ctx).Where("project_id = ?", projectID).First(&budgetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBudgetNotFound
		}
		return nil, result.Error
	}
	return budgetModel.ToEntity()
}

// Save upserts the full budget document for a project.
func (r *budgetRepository) Save(ctx context.Context, budget *entity.ProjectBudget) error {
	budgetModel, err := model.BudgetFromEntity(budget)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	budgetModel.UpdatedAt = now

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "project_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_budget", "total_spent", "contingency_percentage",
			"categories", "last_updated", "updated_at",
		}),
	}).Create(budgetModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
