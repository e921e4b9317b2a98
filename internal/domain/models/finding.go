package models

import "strings"

// Severity represents the severity level of a finding
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Severities lists all recognized severity levels, highest first
func Severities() []Severity {
	return []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow}
}

// ParseSeverity converts a string to a Severity, case-insensitively.
// Unrecognized values pass through unchanged.
func ParseSeverity(s string) Severity {
	switch strings.ToLower(s) {
	case "critical":
		return SeverityCritical
	case "high":
		return SeverityHigh
	case "medium":
		return SeverityMedium
	case "low":
		return SeverityLow
	default:
		return Severity(s)
	}
}

// Known reports whether the severity is one of the recognized constants
func (s Severity) Known() bool {
	switch Severity(strings.ToLower(string(s))) {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return true
	default:
		return false
	}
}

// FindingState represents the remediation state of a finding
type FindingState string

const (
	FindingStateOpen       FindingState = "open"
	FindingStateRemediated FindingState = "remediated"
)

// FindingStates lists all recognized finding states
func FindingStates() []FindingState {
	return []FindingState{FindingStateOpen, FindingStateRemediated}
}

// ParseFindingState converts a string to a FindingState, case-insensitively.
// Unrecognized values pass through unchanged.
func ParseFindingState(s string) FindingState {
	switch strings.ToLower(s) {
	case "open":
		return FindingStateOpen
	case "remediated":
		return FindingStateRemediated
	default:
		return FindingState(s)
	}
}

// Finding is a single trackable compliance issue tied to one requirement and
// one resource. Many findings may reference one requirement; zero is valid.
type Finding struct {
	ID            string       `json:"id"`
	RequirementID string       `json:"requirement_id"`
	Severity      Severity     `json:"severity"`
	Status        FindingState `json:"status"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	ResourceID    string       `json:"resource_id"`
	Remediation   string       `json:"remediation"`
	DetectedAt    string       `json:"detected_at"`
}

// FindingCollection mirrors the on-disk layout of the findings file
type FindingCollection struct {
	Findings []Finding `json:"findings"`
}
