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

// materialRepository implements the adapter.MaterialRepository interface.
type materialRepository struct {
	db *gorm.DB
}

// NewMaterialRepository creates a new material repository instance.
func NewMaterialRepository(db *gorm.DB) adapter.MaterialRepository {
	return &materialRepository{
		db: db,
	}
}

// Create creates a new material in the database.
func (r *materialRepository) Create(ctx context.Context, material *entity.Material) error {
	materialModel := model.MaterialFromEntity(material)
	result := r.db.WithContext(ctx).Create(materialModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a material by its ID.
func (r *materialRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Material, error) {
	var materialModel model.MaterialModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&materialModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrMaterialNotFound
		}
		return nil, result.Error
	}
	return materialModel.ToEntity(), nil
}

// FindByProjectID retrieves all materials for a given project.
func (r *materialRepository) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*entity.Material, error) {
	var materialModels []model.MaterialModel
	result := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("date_added DESC, created_at DESC").
		Find(&materialModels)
	if result.Error != nil {
		return nil, result.Error
	}

	materials := make([]*entity.Material, len(materialModels))
	for i, mm := range materialModels {
		materials[i] = mm.ToEntity()
	}
	return materials, nil
}

// Update updates an existing material in the database.
func (r *materialRepository) Update(ctx context.Context, material *entity.Material) error {
	materialModel := model.MaterialFromEntity(material)
	result := r.db.WithContext(ctx).Save(materialModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrMaterialNotFound
	}
	return nil
}

// Delete removes a material from the database (soft delete).
func (r *materialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.MaterialModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrMaterialNotFound
	}
	return nil
}
