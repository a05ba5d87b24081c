package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sitepulse/backend/internal/application/adapter"
	"github.com/sitepulse/backend/internal/domain/entity"
	domainerror "github.com/sitepulse/backend/internal/domain/error"
	"github.com/sitepulse/backend/internal/integration/persistence/model"
)

// blueprintRepository implements the adapter.BlueprintRepository interface.
type blueprintRepository struct {
	db *gorm.DB
}

// NewBlueprintRepository creates a new blueprint repository instance.
func NewBlueprintRepository(db *gorm.DB) adapter.BlueprintRepository {
	return &blueprintRepository{
		db: db,
	}
}

// Create creates a new blueprint in the database.
func (r *blueprintRepository) Create(ctx context.Context, blueprint *entity.Blueprint) error {
	blueprintModel, err := model.BlueprintFromEntity(blueprint)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Create(blueprintModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByProjectID retrieves all blueprints for a given project.
func (r *blueprintRepository) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*entity.Blueprint, error) {
	var blueprintModels []model.BlueprintModel
	result := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&blueprintModels)
	if result.Error != nil {
		return nil, result.Error
	}

	blueprints := make([]*entity.Blueprint, 0, len(blueprintModels))
	for i := range blueprintModels {
		blueprint, err := blueprintModels[i].ToEntity()
		if err != nil {
			return nil, err
		}
		blueprints = append(blueprints, blueprint)
	}
	return blueprints, nil
}

// Update updates an existing blueprint (including its pin list).
func (r *blueprintRepository) Update(ctx context.Context, blueprint *entity.Blueprint) error {
	blueprintModel, err := model.BlueprintFromEntity(blueprint)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Save(blueprintModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBlueprintNotFound
	}
	return nil
}

// ExistsByProjectID reports whether a project already has any blueprint record,
// deleted ones included, so the default seed never runs twice.
func (r *blueprintRepository) ExistsByProjectID(ctx context.Context, projectID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Unscoped().
		Model(&model.BlueprintModel{}).
		Where("project_id = ?", projectID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
