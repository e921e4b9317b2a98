package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"pcimon/internal/domain/models"
)

// FindingFilter selects findings by set membership on severity, status and
// requirement. A finding is included iff all three memberships hold. An empty
// set on any axis selects nothing, not everything.
type FindingFilter struct {
	Severities   []models.Severity
	Statuses     []models.FindingState
	Requirements []string
}

// DefaultFilter returns the findings explorer's initial state: every
// severity, every requirement, but only open findings. Remediated findings
// stay hidden until the user opts in.
func DefaultFilter(requirements []models.Requirement) FindingFilter {
	ids := make([]string, 0, len(requirements))
	for _, req := range requirements {
		ids = append(ids, req.ID)
	}
	return FindingFilter{
		Severities:   models.Severities(),
		Statuses:     []models.FindingState{models.FindingStateOpen},
		Requirements: ids,
	}
}

// Match reports whether a finding satisfies all three membership predicates
func (f FindingFilter) Match(finding models.Finding) bool {
	return containsSeverity(f.Severities, finding.Severity) &&
		containsState(f.Statuses, finding.Status) &&
		containsString(f.Requirements, finding.RequirementID)
}

// FilterFindings returns the subset of findings matching the filter,
// preserving the original relative order.
func FilterFindings(findings []models.Finding, filter FindingFilter) []models.Finding {
	filtered := make([]models.Finding, 0, len(findings))
	for _, finding := range findings {
		if filter.Match(finding) {
			filtered = append(filtered, finding)
		}
	}
	return filtered
}

// exportHeader is the fixed column order of the findings export
var exportHeader = []string{"ID", "Severity", "Status", "Requirement", "Title", "Resource", "Detected"}

// WriteCSV writes the filtered findings as delimited text with a header row.
// The export always reflects the filtered set handed in, never the
// unfiltered collection.
func WriteCSV(w io.Writer, findings []models.Finding) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("failed to write export header: %w", err)
	}
	for _, f := range findings {
		row := []string{
			f.ID,
			string(f.Severity),
			string(f.Status),
			f.RequirementID,
			f.Title,
			f.ResourceID,
			f.DetectedAt,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write export row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportFilename returns the download name for an export taken at the given
// time, e.g. pci_findings_20240116.csv.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("pci_findings_%s.csv", now.Format("20060102"))
}

func containsSeverity(set []models.Severity, s models.Severity) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func containsState(set []models.FindingState, s models.FindingState) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func containsString(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
