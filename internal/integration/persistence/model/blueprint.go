package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sitepulse/backend/internal/domain/entity"
)

// BlueprintModel represents the blueprints table in the database. Pins are
// stored as a JSON document column; they are always replaced as a whole.
type BlueprintModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	ProjectID uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title     string         `gorm:"type:varchar(255);not null"`
	FileURL   string         `gorm:"type:text"`
	Pins      string         `gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
	DeletedAt gorm.DeletedAt `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the BlueprintModel.
func (BlueprintModel) TableName() string {
	return "blueprints"
}

// ToEntity converts a BlueprintModel to a domain Blueprint entity.
func (m *BlueprintModel) ToEntity() (*entity.Blueprint, error) {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	var pins []entity.BlueprintPin
	if m.Pins != "" {
		if err := json.Unmarshal([]byte(m.Pins), &pins); err != nil {
			return nil, fmt.Errorf("failed to decode blueprint pins: %w", err)
		}
	}

	return &entity.Blueprint{
		ID:        m.ID,
		ProjectID: m.ProjectID,
		Title:     m.Title,
		FileURL:   m.FileURL,
		Pins:      pins,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: deletedAt,
	}, nil
}

// BlueprintFromEntity creates a BlueprintModel from a domain Blueprint entity.
func BlueprintFromEntity(blueprint *entity.Blueprint) (*BlueprintModel, error) {
	var deletedAt gorm.DeletedAt
	if blueprint.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *blueprint.DeletedAt, Valid: true}
	}

	pins := blueprint.Pins
	if pins == nil {
		pins = []entity.BlueprintPin{}
	}
	raw, err := json.Marshal(pins)
	if err != nil {
		return nil, fmt.Errorf("failed to encode blueprint pins: %w", err)
	}

	return &BlueprintModel{
		ID:        blueprint.ID,
		ProjectID: blueprint.ProjectID,
		Title:     blueprint.Title,
		FileURL:   blueprint.FileURL,
		Pins:      string(raw),
		CreatedAt: blueprint.CreatedAt,
		UpdatedAt: blueprint.UpdatedAt,
		DeletedAt: deletedAt,
	}, nil
}
