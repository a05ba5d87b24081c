package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sitepulse/backend/internal/domain/entity"
)

// TaskModel represents the tasks table in the database.
type TaskModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	ProjectID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title        string         `gorm:"type:varchar(255);not null"`
	Description  string         `gorm:"type:text"`
	Status       string         `gorm:"type:varchar(20);not null;index"`
	Priority     string         `gorm:"type:varchar(10);not null"`
	AssigneeID   *uuid.UUID     `gorm:"type:uuid;index"`
	PlannedStart time.Time      `gorm:"type:date"`
	PlannedEnd   time.Time      `gorm:"type:date"`
	Progress     int            `gorm:"not null;default:0"`
	CreatedAt    time.Time      `gorm:"not null"`
	UpdatedAt    time.Time      `gorm:"not null"`
	DeletedAt    gorm.DeletedAt `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the TaskModel.
func (TaskModel) TableName() string {
	return "tasks"
}

// ToEntity converts a TaskModel to a domain Task entity.
func (m *TaskModel) ToEntity() *entity.Task {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Task{
		ID:           m.ID,
		ProjectID:    m.ProjectID,
		Title:        m.Title,
		Description:  m.Description,
		Status:       entity.TaskStatus(m.Status),
		Priority:     entity.TaskPriority(m.Priority),
		AssigneeID:   m.AssigneeID,
		PlannedStart: m.PlannedStart,
		PlannedEnd:   m.PlannedEnd,
		Progress:     m.Progress,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		DeletedAt:    deletedAt,
	}
}

// TaskFromEntity creates a TaskModel from a domain Task entity.
func TaskFromEntity(task *entity.Task) *TaskModel {
	var deletedAt gorm.DeletedAt
	if task.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *task.DeletedAt, Valid: true}
	}

	return &TaskModel{
		ID:           task.ID,
		ProjectID:    task.ProjectID,
		Title:        task.Title,
		Description:  task.Description,
		Status:       string(task.Status),
		Priority:     string(task.Priority),
		AssigneeID:   task.AssigneeID,
		PlannedStart: task.PlannedStart,
		PlannedEnd:   task.PlannedEnd,
		Progress:     task.Progress,
		CreatedAt:    task.CreatedAt,
		UpdatedAt:    task.UpdatedAt,
		DeletedAt:    deletedAt,
	}
}
