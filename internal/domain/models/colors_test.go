package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityColor(t *testing.T) {
	tests := []struct {
		name     string
		severity Severity
		want     string
	}{
		{"critical", SeverityCritical, "#dc3545"},
		{"high", SeverityHigh, "#fd7e14"},
		{"medium", SeverityMedium, "#ffc107"},
		{"low", SeverityLow, "#28a745"},
		{"case insensitive", Severity("CRITICAL"), "#dc3545"},
		{"mixed case", Severity("High"), "#fd7e14"},
		{"unrecognized", Severity("catastrophic"), ColorNeutral},
		{"empty", Severity(""), ColorNeutral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SeverityColor(tt.severity))
		})
	}
}

func TestStatusColor(t *testing.T) {
	tests := []struct {
		name   string
		status ControlState
		want   string
	}{
		{"pass", ControlStatePass, "#28a745"},
		{"fail", ControlStateFail, "#dc3545"},
		{"unknown", ControlStateUnknown, ColorNeutral},
		{"case insensitive", ControlState("PASS"), "#28a745"},
		{"unrecognized", ControlState("skipped"), ColorNeutral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusColor(tt.status))
		})
	}
}

func TestParseSeverity(t *testing.T) {
	assert.Equal(t, SeverityCritical, ParseSeverity("Critical"))
	assert.Equal(t, SeverityLow, ParseSeverity("LOW"))
	// Unrecognized values pass through unchanged
	assert.Equal(t, Severity("weird"), ParseSeverity("weird"))

	assert.True(t, SeverityHigh.Known())
	assert.True(t, Severity("MEDIUM").Known())
	assert.False(t, Severity("weird").Known())
}

func TestParseControlState(t *testing.T) {
	assert.Equal(t, ControlStatePass, ParseControlState("Pass"))
	assert.Equal(t, ControlStateFail, ParseControlState("FAIL"))
	assert.Equal(t, ControlState("skipped"), ParseControlState("skipped"))
}

func TestParseFindingState(t *testing.T) {
	assert.Equal(t, FindingStateOpen, ParseFindingState("OPEN"))
	assert.Equal(t, FindingStateRemediated, ParseFindingState("Remediated"))
	assert.Equal(t, FindingState("wontfix"), ParseFindingState("wontfix"))
}
