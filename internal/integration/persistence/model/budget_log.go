package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sitepulse/backend/internal/domain/entity"
)

// BudgetLogModel represents the budget_logs table in the database.
type BudgetLogModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProjectID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Category    string          `gorm:"type:varchar(100);not null;index"`
	Description string          `gorm:"type:varchar(255)"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Type        string          `gorm:"type:varchar(10);not null;index"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	Reference   string          `gorm:"type:varchar(100)"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
	DeletedAt   gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the BudgetLogModel.
func (BudgetLogModel) TableName() string {
	return "budget_logs"
}

// ToEntity converts a BudgetLogModel to a domain BudgetLog entity.
func (m *BudgetLogModel) ToEntity() *entity.BudgetLog {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.BudgetLog{
		ID:          m.ID,
		ProjectID:   m.ProjectID,
		Category:    m.Category,
		Description: m.Description,
		Amount:      m.Amount,
		Type:        entity.BudgetLogType(m.Type),
		Date:        m.Date,
		Reference:   m.Reference,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}

// BudgetLogFromEntity creates a BudgetLogModel from a domain BudgetLog entity.
func BudgetLogFromEntity(log *entity.BudgetLog) *BudgetLogModel {
	var deletedAt gorm.DeletedAt
	if log.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *log.DeletedAt, Valid: true}
	}

	return &BudgetLogModel{
		ID:          log.ID,
		ProjectID:   log.ProjectID,
		Category:    log.Category,
		Description: log.Description,
		Amount:      log.Amount,
		Type:        string(log.Type),
		Date:        log.Date,
		Reference:   log.Reference,
		CreatedAt:   log.CreatedAt,
		UpdatedAt:   log.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}
