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

// equipmentRepository implements the adapter.EquipmentRepository interface.
type equipmentRepository struct {
	db *gorm.DB
}

// NewEquipmentRepository creates a new equipment repository instance.
func NewEquipmentRepository(db *gorm.DB) adapter.EquipmentRepository {
	return &equipmentRepository{
		db: db,
	}
}

// Create creates a new piece of equipment in the database.
func (r *equipmentRepository) Create(ctx context.Context, equipment *entity.Equipment) error {
	equipmentModel := model.EquipmentFromEntity(equipment)
	result := r.db.WithContext(ctx).Create(equipmentModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a piece of equipment by its ID.
func (r *equipmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Equipment, error) {
	var equipmentModel model.EquipmentModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&equipmentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrEquipmentNotFound
		}
		return nil, result.Error
	}
	return equipmentModel.ToEntity(), nil
}

// FindByProjectID retrieves all equipment for a given project.
func (r *equipmentRepository) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*entity.Equipment, error) {
	var equipmentModels []model.EquipmentModel
	result := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("date_acquired DESC, created_at DESC").
		Find(&equipmentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	equipment := make([]*entity.Equipment, len(equipmentModels))
	for i, em := range equipmentModels {
		equipment[i] = em.ToEntity()
	}
	return equipment, nil
}

// Update updates an existing piece of equipment in the database.
func (r *equipmentRepository) Update(ctx context.Context, equipment *entity.Equipment) error {
	equipmentModel := model.EquipmentFromEntity(equipment)
	result := r.db.WithContext(ctx).Save(equipmentModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrEquipmentNotFound
	}
	return nil
}

// Delete removes a piece of equipment from the database (soft delete).
func (r *equipmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.EquipmentModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrEquipmentNotFound
	}
	return nil
}
