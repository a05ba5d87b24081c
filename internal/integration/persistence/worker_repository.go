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

// workerRepository implements the adapter.WorkerRepository interface.
type workerRepository struct {
	db *gorm.DB
}

// NewWorkerRepository creates a new worker repository instance.
func NewWorkerRepository(db *gorm.DB) adapter.WorkerRepository {
	return &workerRepository{
		db: db,
	}
}

// Create creates a new worker in the database.
func (r *workerRepository) Create(ctx context.Context, worker *entity.Worker) error {
	workerModel := model.WorkerFromEntity(worker)
	result := r.db.WithContext(ctx).Create(workerModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a worker by its ID.
func (r *workerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Worker, error) {
	var workerModel model.WorkerModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&workerModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrWorkerNotFound
		}
		return nil, result.Error
	}
	return workerModel.ToEntity(), nil
}

// FindByProjectID retrieves all workers for a given project.
func (r *workerRepository) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*entity.Worker, error) {
	var workerModels []model.WorkerModel
	result := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("name ASC").
		Find(&workerModels)
	if result.Error != nil {
		return nil, result.Error
	}

	workers := make([]*entity.Worker, len(workerModels))
	for i, wm := range workerModels {
		workers[i] = wm.ToEntity()
	}
	return workers, nil
}

// Update updates an existing worker in the database.
func (r *workerRepository) Update(ctx context.Context, worker *entity.Worker) error {
	workerModel := model.WorkerFromEntity(worker)
	result := r.db.WithContext(ctx).Save(workerModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrWorkerNotFound
	}
	return nil
}

// Delete removes a worker from the database (soft delete).
func (r *workerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.WorkerModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrWorkerNotFound
	}
	return nil
}
