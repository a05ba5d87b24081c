package adapters

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/sitepulse/backend/internal/domain/entity"
	domainerror "github.com/sitepulse/backend/internal/domain/error"
)

func TestOracleService_Predict(t *testing.T) {
	taskID := uuid.New()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"predictions": [{
				"task_id": "` + taskID.String() + `",
				"task_title": "Pour foundation",
				"planned_duration_days": 10,
				"predicted_duration_days": 14,
				"delay_days": 4,
				"risk_level": "high",
				"factors": ["weather"],
				"planned_end_date": "2026-09-15",
				"status": "in_progress"
			}]
		}`))
	}))
	defer server.Close()

	service := NewOracleService(server.URL, "test-key")

	predictions, err := service.Predict(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(predictions) != 1 {
		t.Fatalf("expected 1 prediction, got %d", len(predictions))
	}

	p := predictions[0]
	if p.TaskID != taskID {
		t.Errorf("expected task id %s, got %s", taskID, p.TaskID)
	}
	if p.DelayDays != 4 {
		t.Errorf("expected 4 delay days, got %d", p.DelayDays)
	}
	if p.RiskLevel != entity.RiskLevelHigh {
		t.Errorf("expected high risk, got %s", p.RiskLevel)
	}
}

func TestOracleService_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"predictions": [{"task_id": "not-a-uuid"}]}`))
	}))
	defer server.Close()

	service := NewOracleService(server.URL, "")

	_, err := service.Predict(context.Background(), uuid.New())
	if !errors.Is(err, domainerror.ErrOracleMalformedResponse) {
		t.Errorf("expected malformed response error, got %v", err)
	}
}

func TestOracleService_InvalidRiskLevel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"predictions": [{"task_id": "` + uuid.New().String() + `", "risk_level": "extreme"}]}`))
	}))
	defer server.Close()

	service := NewOracleService(server.URL, "")

	_, err := service.Predict(context.Background(), uuid.New())
	if !errors.Is(err, domainerror.ErrOracleMalformedResponse) {
		t.Errorf("expected malformed response error, got %v", err)
	}
}

func TestOracleService_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	service := NewOracleService(server.URL, "")

	_, err := service.Predict(context.Background(), uuid.New())
	if err == nil {
		t.Fatal("expected error for non-200 status")
	}
}

func TestOracleService_NotConfigured(t *testing.T) {
	service := NewOracleService("", "")

	if service.IsAvailable() {
		t.Error("service without base URL should not be available")
	}

	_, err := service.Predict(context.Background(), uuid.New())
	if !errors.Is(err, domainerror.ErrOracleUnavailable) {
		t.Errorf("expected unavailable error, got %v", err)
	}
}
