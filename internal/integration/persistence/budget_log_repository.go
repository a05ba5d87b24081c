package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sitepulse/backend/internal/application/adapter"
	"github.com/sitepulse/backend/internal/domain/entity"
	domainerror "github.com/sitepulse/backend/internal/domain/error"
	"github.com/sitepulse/backend/internal/integration/persistence/model"
)

// budgetLogRepository implements the adapter.BudgetLogRepository interface.
type budgetLogRepository struct {
	db *gorm.DB
}

// NewBudgetLogRepository creates a new budget log repository instance.
func NewBudgetLogRepository(db *gorm.DB) adapter.BudgetLogRepository {
	return &budgetLogRepository{
		db: db,
	}
}

// Create creates a new budget log entry in the database.
func (r *budgetLogRepository) Create(ctx context.Context, log *entity.BudgetLog) error {
	logModel := model.BudgetLogFromEntity(log)
	result := r.db.WithContext(ctx).Create(logModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a budget log entry by its ID.
func (r *budgetLogRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BudgetLog, error) {
	var logModel model.BudgetLogModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&logModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBudgetLogNotFound
		}
		return nil, result.Error
	}
	return logModel.ToEntity(), nil
}

// FindByProjectID retrieves all budget log entries for a given project.
func (r *budgetLogRepository) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*entity.BudgetLog, error) {
	var logModels []model.BudgetLogModel
	result := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("date DESC, created_at DESC").
		Find(&logModels)
	if result.Error != nil {
		return nil, result.Error
	}

	logs := make([]*entity.BudgetLog, len(logModels))
	for i, lm := range logModels {
		logs[i] = lm.ToEntity()
	}
	return logs, nil
}

// Delete removes a budget log entry from the database (soft delete).
func (r *budgetLogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.BudgetLogModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBudgetLogNotFound
	}
	return nil
}
