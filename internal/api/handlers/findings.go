package handlers

import (
	"net/http"
	"net/url"
	"time"

	"pcimon/internal/dataset"
	"pcimon/internal/domain/models"
	"pcimon/internal/domain/services"
	"pcimon/pkg/logger"
)

// FindingsHandler serves the findings explorer and its CSV export
type FindingsHandler struct {
	store     *dataset.Store
	assembler *services.Assembler
	logger    *logger.Logger
	now       func() time.Time
}

// NewFindingsHandler creates a new FindingsHandler
func NewFindingsHandler(store *dataset.Store, assembler *services.Assembler, log *logger.Logger) *FindingsHandler {
	return &FindingsHandler{
		store:     store,
		assembler: assembler,
		logger:    log.WithComponent("findings"),
		now:       time.Now,
	}
}

// List handles GET /api/v1/findings. Query params severity, status and
// requirement are repeatable; omitting severity or requirement selects the
// full universe, omitting status selects open findings only.
func (h *FindingsHandler) List(w http.ResponseWriter, r *http.Request) {
	findings, filter, ok := h.loadFiltered(w, r)
	if !ok {
		return
	}

	filtered := services.FilterFindings(findings, filter)
	respondJSON(w, http.StatusOK, models.FindingsPage{
		Showing:  len(filtered),
		Total:    len(findings),
		Findings: h.assembler.BuildFindingViews(filtered),
	})
}

// Export handles GET /api/v1/findings/export - CSV download of the currently
// filtered findings, filename encoding the current date.
func (h *FindingsHandler) Export(w http.ResponseWriter, r *http.Request) {
	findings, filter, ok := h.loadFiltered(w, r)
	if !ok {
		return
	}

	filtered := services.FilterFindings(findings, filter)
	filename := services.ExportFilename(h.now())

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename=`+filename)
	if err := services.WriteCSV(w, filtered); err != nil {
		h.logger.Error().Err(err).Msg("failed to write findings export")
	}
}

// loadFiltered loads the datasets needed by the findings views and builds the
// filter from the request query. Returns ok=false after writing an error
// response.
func (h *FindingsHandler) loadFiltered(w http.ResponseWriter, r *http.Request) ([]models.Finding, services.FindingFilter, bool) {
	findings, err := h.store.Findings()
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load findings")
		respondError(w, http.StatusInternalServerError, "failed to load findings")
		return nil, services.FindingFilter{}, false
	}
	requirements, err := h.store.Requirements()
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load requirements")
		respondError(w, http.StatusInternalServerError, "failed to load requirements")
		return nil, services.FindingFilter{}, false
	}

	return findings, filterFromQuery(r.URL.Query(), requirements), true
}

// filterFromQuery maps query params onto a FindingFilter, falling back to the
// default selection per axis when the param is absent.
func filterFromQuery(q url.Values, requirements []models.Requirement) services.FindingFilter {
	filter := services.DefaultFilter(requirements)

	if severities := q["severity"]; len(severities) > 0 {
		filter.Severities = filter.Severities[:0]
		for _, s := range severities {
			filter.Severities = append(filter.Severities, models.ParseSeverity(s))
		}
	}
	if statuses := q["status"]; len(statuses) > 0 {
		filter.Statuses = filter.Statuses[:0]
		for _, s := range statuses {
			filter.Statuses = append(filter.Statuses, models.ParseFindingState(s))
		}
	}
	if ids := q["requirement"]; len(ids) > 0 {
		filter.Requirements = ids
	}

	return filter
}
