package dto

import (
	"time"

	"github.com/sitepulse/backend/internal/application/usecase/project"
	"github.com/sitepulse/backend/internal/domain/entity"
)

// BlueprintPinResponse represents a task pin on a blueprint.
type BlueprintPinResponse struct {
	TaskID string  `json:"task_id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// BlueprintResponse represents a single blueprint in API responses.
type BlueprintResponse struct {
	ID        string                 `json:"id"`
	ProjectID string                 `json:"project_id"`
	Title     string                 `json:"title"`
	FileURL   string                 `json:"file_url,omitempty"`
	Pins      []BlueprintPinResponse `json:"pins"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// SnapshotResponse is the full working set returned when a project is opened.
// Sources that failed to load carry their fallback value and are listed in
// warnings.
type SnapshotResponse struct {
	Materials  []MaterialResponse  `json:"materials"`
	Equipment  []EquipmentResponse `json:"equipment"`
	Workers    []WorkerResponse    `json:"workers"`
	Tasks      []TaskResponse      `json:"tasks"`
	Logs       []BudgetLogResponse `json:"logs"`
	Blueprints []BlueprintResponse `json:"blueprints"`
	Budget     *BudgetResponse     `json:"budget,omitempty"`
	Warnings   []string            `json:"warnings,omitempty"`
}

// ToBlueprintResponse converts a domain Blueprint entity to a BlueprintResponse DTO.
func ToBlueprintResponse(b *entity.Blueprint) BlueprintResponse {
	pins := make([]BlueprintPinResponse, len(b.Pins))
	for i, p := range b.Pins {
		pins[i] = BlueprintPinResponse{
			TaskID: p.TaskID.String(),
			X:      p.X,
			Y:      p.Y,
		}
	}

	return BlueprintResponse{
		ID:        b.ID.String(),
		ProjectID: b.ProjectID.String(),
		Title:     b.Title,
		FileURL:   b.FileURL,
		Pins:      pins,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// ToSnapshotResponse converts a project snapshot to a SnapshotResponse DTO.
func ToSnapshotResponse(s *project.Snapshot) SnapshotResponse {
	response := SnapshotResponse{
		Materials: ToMaterialListResponse(s.Materials).Materials,
		Equipment: ToEquipmentListResponse(s.Equipment).Equipment,
		Workers:   ToWorkerListResponse(s.Workers).Workers,
		Tasks:     ToTaskListResponse(s.Tasks).Tasks,
		Logs:      ToBudgetLogListResponse(s.Logs).Logs,
		Warnings:  s.Warnings,
	}

	response.Blueprints = make([]BlueprintResponse, len(s.Blueprints))
	for i, b := range s.Blueprints {
		response.Blueprints[i] = ToBlueprintResponse(b)
	}

	if s.Budget != nil {
		budget := ToBudgetResponse(s.Budget)
		response.Budget = &budget
	}

	return response
}
