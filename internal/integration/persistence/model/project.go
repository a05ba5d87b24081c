// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sitepulse/backend/internal/domain/entity"
)

// ProjectModel represents the projects table in the database.
type ProjectModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name       string         `gorm:"type:varchar(255);not null"`
	Location   string         `gorm:"type:varchar(255)"`
	Status     string         `gorm:"type:varchar(20);not null;index"`
	EngineerID uuid.UUID      `gorm:"type:uuid;not null;index"`
	StartDate  time.Time      `gorm:"type:date;not null"`
	EndDate    *time.Time     `gorm:"type:date"`
	CreatedAt  time.Time      `gorm:"not null"`
	UpdatedAt  time.Time      `gorm:"not null"`
	DeletedAt  gorm.DeletedAt `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the ProjectModel.
func (ProjectModel) TableName() string {
	return "projects"
}

// ToEntity converts a ProjectModel to a domain Project entity.
func (m *ProjectModel) ToEntity() *entity.Project {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Project{
		ID:         m.ID,
		Name:       m.Name,
		Location:   m.Location,
		Status:     entity.ProjectStatus(m.Status),
		EngineerID: m.EngineerID,
		StartDate:  m.StartDate,
		EndDate:    m.EndDate,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
		DeletedAt:  deletedAt,
	}
}

// ProjectFromEntity creates a ProjectModel from a domain Project entity.
func ProjectFromEntity(project *entity.Project) *ProjectModel {
	var deletedAt gorm.DeletedAt
	if project.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *project.DeletedAt, Valid: true}
	}

	return &ProjectModel{
		ID:         project.ID,
		Name:       project.Name,
		Location:   project.Location,
		Status:     string(project.Status),
		EngineerID: project.EngineerID,
		StartDate:  project.StartDate,
		EndDate:    project.EndDate,
		CreatedAt:  project.CreatedAt,
		UpdatedAt:  project.UpdatedAt,
		DeletedAt:  deletedAt,
	}
}
