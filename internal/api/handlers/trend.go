package handlers

import (
	"net/http"

	"pcimon/internal/dataset"
	"pcimon/internal/domain/services"
	"pcimon/pkg/logger"
)

// TrendHandler serves the trend analysis view
type TrendHandler struct {
	store  *dataset.Store
	logger *logger.Logger
}

// NewTrendHandler creates a new TrendHandler
func NewTrendHandler(store *dataset.Store, log *logger.Logger) *TrendHandler {
	return &TrendHandler{
		store:  store,
		logger: log.WithComponent("trend"),
	}
}

// Get handles GET /api/v1/trend
func (h *TrendHandler) Get(w http.ResponseWriter, r *http.Request) {
	trend, err := h.store.Trend()
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load trend data")
		respondError(w, http.StatusInternalServerError, "failed to load trend data")
		return
	}

	respondJSON(w, http.StatusOK, services.BuildTrendReport(trend))
}
