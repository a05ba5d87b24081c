// Package budgetlog contains budget log use cases.
package budgetlog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sitepulse/backend/internal/application/adapter"
	"github.com/sitepulse/backend/internal/domain/entity"
)

// ListLogsInput represents the input for listing budget logs.
type ListLogsInput struct {
	ProjectID uuid.UUID
}

// ListLogsOutput represents the output of listing budget logs.
type ListLogsOutput struct {
	Logs []*entity.BudgetLog
}

// ListLogsUseCase handles budget log listing logic.
type ListLogsUseCase struct {
	logRepo adapter.BudgetLogRepository
}

// NewListLogsUseCase creates a new ListLogsUseCase instance.
func NewListLogsUseCase(logRepo adapter.BudgetLogRepository) *ListLogsUseCase {
	return &ListLogsUseCase{logRepo: logRepo}
}

// Execute retrieves all budget logs for a project.
func (uc *ListLogsUseCase) Execute(ctx context.Context, input ListLogsInput) (*ListLogsOutput, error) {
	logs, err := uc.logRepo.FindByProjectID(ctx, input.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budget logs: %w", err)
	}

	return &ListLogsOutput{Logs: logs}, nil
}
