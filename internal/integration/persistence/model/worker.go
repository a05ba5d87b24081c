package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/sitepulse/backend/internal/domain/entity"
)

// WorkerModel represents the workers table in the database.
type WorkerModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	ProjectID uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name      string         `gorm:"type:varchar(255);not null"`
	Role      string         `gorm:"type:varchar(100)"`
	Skills    pq.StringArray `gorm:"type:text[]"`
	Phone     string         `gorm:"type:varchar(30)"`
	DailyRate float64        `gorm:"not null;default:0"`
	Status    string         `gorm:"type:varchar(20);not null;index"`
	HiredAt   time.Time      `gorm:"not null"`
	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
	DeletedAt gorm.DeletedAt `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the WorkerModel.
func (WorkerModel) TableName() string {
	return "workers"
}

// ToEntity converts a WorkerModel to a domain Worker entity.
func (m *WorkerModel) ToEntity() *entity.Worker {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	skills := make([]string, len(m.Skills))
	copy(skills, m.Skills)

	return &entity.Worker{
		ID:        m.ID,
		ProjectID: m.ProjectID,
		Name:      m.Name,
		Role:      m.Role,
		Skills:    skills,
		Phone:     m.Phone,
		DailyRate: m.DailyRate,
		Status:    entity.WorkerStatus(m.Status),
		HiredAt:   m.HiredAt,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: deletedAt,
	}
}

// WorkerFromEntity creates a WorkerModel from a domain Worker entity.
func WorkerFromEntity(worker *entity.Worker) *WorkerModel {
	var deletedAt gorm.DeletedAt
	if worker.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *worker.DeletedAt, Valid: true}
	}

	skills := make(pq.StringArray, len(worker.Skills))
	copy(skills, worker.Skills)

	return &WorkerModel{
		ID:        worker.ID,
		ProjectID: worker.ProjectID,
		Name:      worker.Name,
		Role:      worker.Role,
		Skills:    skills,
		Phone:     worker.Phone,
		DailyRate: worker.DailyRate,
		Status:    string(worker.Status),
		HiredAt:   worker.HiredAt,
		CreatedAt: worker.CreatedAt,
		UpdatedAt: worker.UpdatedAt,
		DeletedAt: deletedAt,
	}
}
