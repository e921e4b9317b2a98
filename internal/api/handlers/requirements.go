package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pcimon/internal/dataset"
	"pcimon/internal/domain/services"
	"pcimon/pkg/logger"
)

// RequirementsHandler serves requirement status cards and detail views
type RequirementsHandler struct {
	store     *dataset.Store
	assembler *services.Assembler
	logger    *logger.Logger
}

// NewRequirementsHandler creates a new RequirementsHandler
func NewRequirementsHandler(store *dataset.Store, assembler *services.Assembler, log *logger.Logger) *RequirementsHandler {
	return &RequirementsHandler{
		store:     store,
		assembler: assembler,
		logger:    log.WithComponent("requirements"),
	}
}

// List handles GET /api/v1/requirements - status cards in snapshot order
func (h *RequirementsHandler) List(w http.ResponseWriter, r *http.Request) {
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

	respondJSON(w, http.StatusOK, h.assembler.BuildSummaryCards(snapshot, requirements, findings))
}

// Get handles GET /api/v1/requirements/{id} - one requirement joined with its
// control row and findings. Missing catalog entry or control row yields 404 so
// the UI can render its placeholder state.
func (h *RequirementsHandler) Get(w http.ResponseWriter, r *http.Request) {
	requirementID := chi.URLParam(r, "id")

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

	detail, err := h.assembler.BuildRequirementDetail(requirementID, requirements, snapshot, findings)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondError(w, http.StatusNotFound, "requirement not found")
			return
		}
		h.logger.Error().Err(err).Str("requirement_id", requirementID).Msg("failed to build requirement detail")
		respondError(w, http.StatusInternalServerError, "failed to build requirement detail")
		return
	}

	respondJSON(w, http.StatusOK, detail)
}
