package handlers

import (
	"encoding/json"
	"net/http"

	"pcimon/internal/dataset"
	"pcimon/internal/domain/services"
	"pcimon/pkg/logger"
)

// Handlers holds all API handlers
type Handlers struct {
	Health       *HealthHandler
	Summary      *SummaryHandler
	Requirements *RequirementsHandler
	Findings     *FindingsHandler
	Trend        *TrendHandler
}

// Dependencies holds dependencies for handlers
type Dependencies struct {
	Store      *dataset.Store
	Assembler  *services.Assembler
	Version    string
	InstanceID string
	Logger     *logger.Logger
}

// NewHandlers creates all handlers
func NewHandlers(deps Dependencies) *Handlers {
	return &Handlers{
		Health:       NewHealthHandler(deps.Store, deps.Version, deps.InstanceID, deps.Logger),
		Summary:      NewSummaryHandler(deps.Store, deps.Assembler, deps.Logger),
		Requirements: NewRequirementsHandler(deps.Store, deps.Assembler, deps.Logger),
		Findings:     NewFindingsHandler(deps.Store, deps.Assembler, deps.Logger),
		Trend:        NewTrendHandler(deps.Store, deps.Logger),
	}
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
