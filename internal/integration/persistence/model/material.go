package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sitepulse/backend/internal/domain/entity"
)

// MaterialModel represents the materials table in the database.
type MaterialModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProjectID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Quantity    float64         `gorm:"not null;default:0"`
	TotalBought *float64        `gorm:"type:numeric"`
	Price       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Unit        string          `gorm:"type:varchar(50)"`
	Category    string          `gorm:"type:varchar(100);index"`
	Supplier    string          `gorm:"type:varchar(255)"`
	DateAdded   time.Time       `gorm:"not null"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
	DeletedAt   gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the MaterialModel.
func (MaterialModel) TableName() string {
	return "materials"
}

// ToEntity converts a MaterialModel to a domain Material entity.
func (m *MaterialModel) ToEntity() *entity.Material {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Material{
		ID:          m.ID,
		ProjectID:   m.ProjectID,
		Name:        m.Name,
		Quantity:    m.Quantity,
		TotalBought: m.TotalBought,
		Price:       m.Price,
		Unit:        m.Unit,
		Category:    m.Category,
		Supplier:    m.Supplier,
		DateAdded:   m.DateAdded,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}

// MaterialFromEntity creates a MaterialModel from a domain Material entity.
func MaterialFromEntity(material *entity.Material) *MaterialModel {
	var deletedAt gorm.DeletedAt
	if material.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *material.DeletedAt, Valid: true}
	}

	return &MaterialModel{
		ID:          material.ID,
		ProjectID:   material.ProjectID,
		Name:        material.Name,
		Quantity:    material.Quantity,
		TotalBought: material.TotalBought,
		Price:       material.Price,
		Unit:        material.Unit,
		Category:    material.Category,
		Supplier:    material.Supplier,
		DateAdded:   material.DateAdded,
		CreatedAt:   material.CreatedAt,
		UpdatedAt:   material.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}
