package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func serveReadiness(t *testing.T, h *HealthDependenciesHandler) (*httptest.ResponseRecorder, readinessResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()
	if err := h.Readiness(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Readiness returned error: %v", err)
	}
	var body readinessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return rec, body
}

func TestLiveness(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	if err := NewHealthHandler().Liveness(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Liveness returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadiness_AllHealthy(t *testing.T) {
	ok := pingFunc(func(context.Context) error { return nil })
	h := NewHealthDependenciesHandler(
		Dependency{Name: "datastore", Pinger: ok},
		Dependency{Name: "redis", Pinger: ok},
		Dependency{Name: "mongodb", Pinger: nil},
	)

	rec, body := serveReadiness(t, h)
	if rec.Code != http.StatusOK || body.Status != "ok" {
		t.Fatalf("expected ready, got %d %+v", rec.Code, body)
	}
	if _, listed := body.Dependencies["mongodb"]; listed {
		t.Fatalf("unconfigured dependency must not be reported")
	}
}

func TestReadiness_Degraded(t *testing.T) {
	h := NewHealthDependenciesHandler(
		Dependency{Name: "datastore", Pinger: pingFunc(func(context.Context) error { return errors.New("refused") })},
		Dependency{Name: "redis", Pinger: pingFunc(func(context.Context) error { return nil })},
	)

	rec, body := serveReadiness(t, h)
	if rec.Code != http.StatusServiceUnavailable || body.Status != "degraded" {
		t.Fatalf("expected degraded, got %d %+v", rec.Code, body)
	}
	if body.Dependencies["datastore"].Error != "refused" {
		t.Fatalf("unexpected datastore status: %+v", body.Dependencies["datastore"])
	}
	if body.Dependencies["redis"].Status != "ok" {
		t.Fatalf("unexpected redis status: %+v", body.Dependencies["redis"])
	}
}
