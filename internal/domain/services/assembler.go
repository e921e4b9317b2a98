package services

import (
	"errors"

	"pcimon/internal/domain/models"
	"pcimon/pkg/logger"
)

// ErrNotFound is returned when a requested requirement has no matching
// catalog entry or control row. Callers recover by showing a placeholder
// state; partial data is never returned.
var ErrNotFound = errors.New("requirement not found")

// Assembler joins requirement metadata with control status and findings into
// display records. All joins are in-memory over the loaded datasets.
type Assembler struct {
	logger *logger.Logger
}

// NewAssembler creates a new Assembler
func NewAssembler(log *logger.Logger) *Assembler {
	return &Assembler{
		logger: log.WithComponent("assembler"),
	}
}

// ResolveRequirementName looks up a requirement name by id. When no catalog
// entry matches, the raw id is echoed back unmodified so the UI never shows
// an empty name.
func (a *Assembler) ResolveRequirementName(id string, requirements []models.Requirement) string {
	for _, req := range requirements {
		if req.ID == id {
			return req.Name
		}
	}
	return id
}

// BuildSummaryCards produces one card per control, preserving the snapshot's
// control order. The order is significant downstream: it drives a fixed
// 3-column grid.
func (a *Assembler) BuildSummaryCards(
	snapshot *models.StatusSnapshot,
	requirements []models.Requirement,
	findings []models.Finding,
) []models.SummaryCard {
	cards := make([]models.SummaryCard, 0, len(snapshot.Controls))
	for _, control := range snapshot.Controls {
		if !control.Status.Known() {
			a.logger.Warn().
				Str("requirement_id", control.RequirementID).
				Str("status", string(control.Status)).
				Msg("unknown control status, using neutral color")
		}
		cards = append(cards, models.SummaryCard{
			RequirementID: control.RequirementID,
			Name:          a.ResolveRequirementName(control.RequirementID, requirements),
			Status:        control.Status,
			StatusColor:   models.StatusColor(control.Status),
			Details:       control.Details,
			FindingCount:  control.FindingCount,
			CountMismatch: control.FindingCount != countByRequirement(findings, control.RequirementID),
		})
	}
	return cards
}

// BuildRequirementDetail joins one requirement with its control row and all
// findings that reference it. It returns ErrNotFound when either the catalog
// entry or the control row is missing; the caller must show a placeholder
// rather than partial data.
func (a *Assembler) BuildRequirementDetail(
	requirementID string,
	requirements []models.Requirement,
	snapshot *models.StatusSnapshot,
	findings []models.Finding,
) (*models.RequirementDetail, error) {
	var requirement *models.Requirement
	for i := range requirements {
		if requirements[i].ID == requirementID {
			requirement = &requirements[i]
			break
		}
	}

	// Duplicate control rows for one requirement: first row wins, matching
	// the upstream dashboard's first-match lookup.
	var control *models.ControlStatus
	for i := range snapshot.Controls {
		if snapshot.Controls[i].RequirementID == requirementID {
			control = &snapshot.Controls[i]
			break
		}
	}

	if requirement == nil || control == nil {
		return nil, ErrNotFound
	}

	return &models.RequirementDetail{
		Requirement: *requirement,
		Control:     *control,
		StatusColor: models.StatusColor(control.Status),
		Findings:    a.buildFindingViews(findingsByRequirement(findings, requirementID)),
	}, nil
}

// BuildExecutiveSummary assembles the top-level dashboard view-model:
// snapshot date, the snapshot's verbatim summary, open finding counts, the
// status card grid and the trend series for the quick chart.
func (a *Assembler) BuildExecutiveSummary(
	snapshot *models.StatusSnapshot,
	requirements []models.Requirement,
	findings []models.Finding,
	trend []models.TrendPoint,
) *models.ExecutiveSummary {
	open := 0
	criticalOpen := 0
	for _, f := range findings {
		if models.ParseFindingState(string(f.Status)) != models.FindingStateOpen {
			continue
		}
		open++
		if models.ParseSeverity(string(f.Severity)) == models.SeverityCritical {
			criticalOpen++
		}
	}

	return &models.ExecutiveSummary{
		SnapshotDate:         snapshot.SnapshotDate,
		Summary:              snapshot.Summary,
		OpenFindings:         open,
		CriticalOpenFindings: criticalOpen,
		Cards:                a.BuildSummaryCards(snapshot, requirements, findings),
		Trend:                BuildTrendSeries(trend),
	}
}

// buildFindingViews decorates findings with their severity colors
func (a *Assembler) buildFindingViews(findings []models.Finding) []models.FindingView {
	views := make([]models.FindingView, 0, len(findings))
	for _, f := range findings {
		if !f.Severity.Known() {
			a.logger.Warn().
				Str("finding_id", f.ID).
				Str("severity", string(f.Severity)).
				Msg("unknown finding severity, using neutral color")
		}
		views = append(views, models.FindingView{
			Finding:       f,
			SeverityColor: models.SeverityColor(f.Severity),
		})
	}
	return views
}

// BuildFindingViews decorates an arbitrary finding list with severity colors
func (a *Assembler) BuildFindingViews(findings []models.Finding) []models.FindingView {
	return a.buildFindingViews(findings)
}

func findingsByRequirement(findings []models.Finding, requirementID string) []models.Finding {
	var matched []models.Finding
	for _, f := range findings {
		if f.RequirementID == requirementID {
			matched = append(matched, f)
		}
	}
	return matched
}

func countByRequirement(findings []models.Finding, requirementID string) int {
	n := 0
	for _, f := range findings {
		if f.RequirementID == requirementID {
			n++
		}
	}
	return n
}
