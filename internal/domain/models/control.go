package models

import "strings"

// ControlState represents the evaluation state of one requirement's control
type ControlState string

const (
	ControlStatePass    ControlState = "pass"
	ControlStateFail    ControlState = "fail"
	ControlStateUnknown ControlState = "unknown"
)

// ParseControlState converts a string to a ControlState, case-insensitively.
// Unrecognized values pass through unchanged so the raw snapshot value is
// never lost.
func ParseControlState(s string) ControlState {
	switch strings.ToLower(s) {
	case "pass":
		return ControlStatePass
	case "fail":
		return ControlStateFail
	case "unknown":
		return ControlStateUnknown
	default:
		return ControlState(s)
	}
}

// Known reports whether the state is one of the recognized constants
func (s ControlState) Known() bool {
	switch ControlState(strings.ToLower(string(s))) {
	case ControlStatePass, ControlStateFail, ControlStateUnknown:
		return true
	default:
		return false
	}
}

// ControlStatus is the snapshot's evaluation of one requirement. FindingCount
// is the advisory number stored upstream; it is displayed as-is and never
// cross-validated against the findings collection.
type ControlStatus struct {
	RequirementID    string       `json:"requirement_id"`
	Status           ControlState `json:"status"`
	Details          string       `json:"details"`
	FindingCount     int          `json:"finding_count"`
	LastChecked      string       `json:"last_checked"`
	EvidenceLocation string       `json:"evidence_location"`
}

// Summary carries the snapshot's pre-computed aggregates. It is taken verbatim
// from the control status file and never recomputed from individual controls.
type Summary struct {
	ComplianceScore float64 `json:"compliance_score"`
	Passing         int     `json:"passing"`
	Failing         int     `json:"failing"`
}

// StatusSnapshot mirrors the on-disk layout of the control status file.
// Controls preserve file order; the dashboard grid depends on it.
type StatusSnapshot struct {
	SnapshotDate string          `json:"snapshot_date"`
	Summary      Summary         `json:"summary"`
	Controls     []ControlStatus `json:"controls"`
}
