package models

// View-model records consumed by the dashboard frontend. All of them are
// assembled on demand from the cached datasets; none are persisted.

// SummaryCard is one requirement status card on the executive summary grid.
// Card order follows the snapshot's control order. FindingCount is the
// snapshot's advisory number; CountMismatch flags a divergence from the
// actual number of matching findings as a data-quality signal, without
// correcting the displayed value.
type SummaryCard struct {
	RequirementID string       `json:"requirement_id"`
	Name          string       `json:"name"`
	Status        ControlState `json:"status"`
	StatusColor   string       `json:"status_color"`
	Details       string       `json:"details"`
	FindingCount  int          `json:"finding_count"`
	CountMismatch bool         `json:"count_mismatch,omitempty"`
}

// FindingView is a finding decorated with its display color
type FindingView struct {
	Finding
	SeverityColor string `json:"severity_color"`
}

// RequirementDetail joins one requirement with its control row and all
// findings that reference it
type RequirementDetail struct {
	Requirement Requirement   `json:"requirement"`
	Control     ControlStatus `json:"control"`
	StatusColor string        `json:"status_color"`
	Findings    []FindingView `json:"findings"`
}

// ExecutiveSummary is the top-level dashboard view-model
type ExecutiveSummary struct {
	SnapshotDate         string        `json:"snapshot_date"`
	Summary              Summary       `json:"summary"`
	OpenFindings         int           `json:"open_findings"`
	CriticalOpenFindings int           `json:"critical_open_findings"`
	Cards                []SummaryCard `json:"cards"`
	Trend                []TrendPoint  `json:"trend"`
}

// Annotation is an event positioned on the score series at the compliance
// score of its matching trend point
type Annotation struct {
	Date  string  `json:"date"`
	Score float64 `json:"score"`
	Label string  `json:"label"`
}

// PassFailSeries holds parallel passing/failing sequences indexed identically
// to the date axis, intended for a stacked chart
type PassFailSeries struct {
	Dates   []string `json:"dates"`
	Passing []int    `json:"passing"`
	Failing []int    `json:"failing"`
}

// TrendReport is the trend analysis view-model
type TrendReport struct {
	Series      []TrendPoint   `json:"series"`
	Annotations []Annotation   `json:"annotations"`
	PassFail    PassFailSeries `json:"pass_fail"`
	Events      []Event        `json:"events"`
}

// FindingsPage is the findings explorer view-model: the filtered subset plus
// the "showing X of Y" counts
type FindingsPage struct {
	Showing  int           `json:"showing"`
	Total    int           `json:"total"`
	Findings []FindingView `json:"findings"`
}
