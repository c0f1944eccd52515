package handlers

import (
	"net/http"
	"time"

	"isms-lab/internal/config"
	"isms-lab/internal/domain/catalog"
	"isms-lab/pkg/logger"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	config    *config.Config
	logger    *logger.Logger
	startTime time.Time
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(cfg *config.Config, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		config:    cfg,
		logger:    log.WithComponent("health"),
		startTime: time.Now(),
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Version   string            `json:"version"`
	Uptime    string            `json:"uptime"`
	Timestamp string            `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// Check handles GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Version:   h.config.App.Version,
		Uptime:    time.Since(h.startTime).String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Ready handles GET /ready - verifies the reference data is loaded
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{
		"catalog":       "healthy",
		"questionnaire": "healthy",
	}
	status := http.StatusOK
	overall := "ready"

	if catalog.TotalControls() == 0 {
		checks["catalog"] = "unhealthy: no controls loaded"
		status = http.StatusServiceUnavailable
		overall = "not ready"
	}
	if catalog.TotalQuestions() == 0 {
		checks["questionnaire"] = "unhealthy: no questions loaded"
		status = http.StatusServiceUnavailable
		overall = "not ready"
	}

	respondJSON(w, status, HealthResponse{
		Status:    overall,
		Version:   h.config.App.Version,
		Uptime:    time.Since(h.startTime).String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
	})
}
