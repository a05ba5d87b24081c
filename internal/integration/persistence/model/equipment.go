package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sitepulse/backend/internal/domain/entity"
)

// EquipmentModel represents the equipment table in the database.
type EquipmentModel struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey"`
	ProjectID    uuid.UUID        `gorm:"type:uuid;not null;index"`
	Name         string           `gorm:"type:varchar(255);not null"`
	Type         string           `gorm:"type:varchar(10);not null;index"`
	Category     string           `gorm:"type:varchar(100)"`
	Condition    string           `gorm:"type:varchar(100)"`
	RentalCost   *decimal.Decimal `gorm:"type:decimal(15,2)"`
	Quantity     int              `gorm:"not null;default:1"`
	Status       string           `gorm:"type:varchar(20);not null"`
	DateAcquired time.Time        `gorm:"not null"`
	CreatedAt    time.Time        `gorm:"not null"`
	UpdatedAt    time.Time        `gorm:"not null"`
	DeletedAt    gorm.DeletedAt   `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the EquipmentModel.
func (EquipmentModel) TableName() string {
	return "equipment"
}

// ToEntity converts an EquipmentModel to a domain Equipment entity.
func (m *EquipmentModel) ToEntity() *entity.Equipment {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Equipment{
		ID:           m.ID,
		ProjectID:    m.ProjectID,
		Name:         m.Name,
		Type:         entity.EquipmentType(m.Type),
		Category:     m.Category,
		Condition:    m.Condition,
		RentalCost:   m.RentalCost,
		Quantity:     m.Quantity,
		Status:       entity.EquipmentStatus(m.Status),
		DateAcquired: m.DateAcquired,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		DeletedAt:    deletedAt,
	}
}

// EquipmentFromEntity creates an EquipmentModel from a domain Equipment entity.
func EquipmentFromEntity(equipment *entity.Equipment) *EquipmentModel {
	var deletedAt gorm.DeletedAt
	if equipment.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *equipment.DeletedAt, Valid: true}
	}

	return &EquipmentModel{
		ID:           equipment.ID,
		ProjectID:    equipment.ProjectID,
		Name:         equipment.Name,
		Type:         string(equipment.Type),
		Category:     equipment.Category,
		Condition:    equipment.Condition,
		RentalCost:   equipment.RentalCost,
		Quantity:     equipment.Quantity,
		Status:       string(equipment.Status),
		DateAcquired: equipment.DateAcquired,
		CreatedAt:    equipment.CreatedAt,
		UpdatedAt:    equipment.UpdatedAt,
		DeletedAt:    deletedAt,
	}
}
