package handlers

import (
	"net/http"
	"time"

	"pcimon/internal/dataset"
	"pcimon/pkg/logger"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	store      *dataset.Store
	version    string
	instanceID string
	logger     *logger.Logger
	startTime  time.Time
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(store *dataset.Store, version, instanceID string, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		store:      store,
		version:    version,
		instanceID: instanceID,
		logger:     log.WithComponent("health"),
		startTime:  time.Now(),
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status     string            `json:"status"`
	Version    string            `json:"version"`
	InstanceID string            `json:"instance_id"`
	Uptime     string            `json:"uptime"`
	Timestamp  string            `json:"timestamp"`
	Checks     map[string]string `json:"checks,omitempty"`
}

// Check handles GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{
		Status:     "healthy",
		Version:    h.version,
		InstanceID: h.instanceID,
		Uptime:     time.Since(h.startTime).String(),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	})
}

// Ready handles GET /ready - verifies all four datasets are loadable
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]string)
	status := http.StatusOK
	overallStatus := "ready"

	record := func(name string, err error) {
		if err != nil {
			checks[name] = "unhealthy: " + err.Error()
			status = http.StatusServiceUnavailable
			overallStatus = "not ready"
			return
		}
		checks[name] = "healthy"
	}

	_, err := h.store.Requirements()
	record(dataset.DatasetRequirements, err)
	_, err = h.store.ControlStatus()
	record(dataset.DatasetControlStatus, err)
	_, err = h.store.Findings()
	record(dataset.DatasetFindings, err)
	_, err = h.store.Trend()
	record(dataset.DatasetTrend, err)

	respondJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		InstanceID: h.instanceID,
		Uptime:     time.Since(h.startTime).String(),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Checks:     checks,
	})
}
