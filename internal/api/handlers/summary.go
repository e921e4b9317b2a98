package handlers

import (
	"net/http"

	"pcimon/internal/dataset"
	"pcimon/internal/domain/services"
	"pcimon/pkg/logger"
)

// SummaryHandler serves the executive summary view
type SummaryHandler struct {
	store     *dataset.Store
	assembler *services.Assembler
	logger    *logger.Logger
}

// NewSummaryHandler creates a new SummaryHandler
func NewSummaryHandler(store *dataset.Store, assembler *services.Assembler, log *logger.Logger) *SummaryHandler {
	return &SummaryHandler{
		store:     store,
		assembler: assembler,
		logger:    log.WithComponent("summary"),
	}
}

// Get handles GET /api/v1/summary
func (h *SummaryHandler) Get(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.store.ControlStatus()
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load control status")
		respondError(w, http.StatusInternalServerError, "failed to load control status")
		return
	}
	requirements, err := h.store.Requirements()
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load requirements")
		respondError(w, http.StatusInternalServerError, "failed to load requirements")
		return
	}
	findings, err := h.store.Findings()
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load findings")
		respondError(w, http.StatusInternalServerError, "failed to load findings")
		return
	}
	trend, err := h.store.Trend()
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load trend data")
		respondError(w, http.StatusInternalServerError, "failed to load trend data")
		return
	}

	summary := h.assembler.BuildExecutiveSummary(snapshot, requirements, findings, trend.TrendData)
	respondJSON(w, http.StatusOK, summary)
}
