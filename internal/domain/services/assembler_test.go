package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pcimon/internal/domain/models"
	"pcimon/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Format: "json"})
}

func testRequirements() []models.Requirement {
	return []models.Requirement{
		{ID: "req_1", Name: "Install and Maintain Network Security Controls", AWSService: "EC2 Security Groups"},
		{ID: "req_3", Name: "Protect Stored Account Data", AWSService: "S3"},
		{ID: "req_8", Name: "Identify Users and Authenticate Access", AWSService: "IAM"},
	}
}

func testSnapshot() *models.StatusSnapshot {
	return &models.StatusSnapshot{
		SnapshotDate: "2024-01-16",
		Summary:      models.Summary{ComplianceScore: 66.7, Passing: 2, Failing: 1},
		Controls: []models.ControlStatus{
			{RequirementID: "req_8", Status: models.ControlStateFail, Details: "1 console user lacks MFA.", FindingCount: 2},
			{RequirementID: "req_1", Status: models.ControlStatePass, Details: "Security groups locked down.", FindingCount: 0},
			{RequirementID: "req_3", Status: models.ControlStatePass, Details: "Buckets encrypted.", FindingCount: 1},
		},
	}
}

func testFindings() []models.Finding {
	return []models.Finding{
		{ID: "finding_001", RequirementID: "req_8", Severity: models.SeverityCritical, Status: models.FindingStateOpen, Title: "Console user without MFA"},
		{ID: "finding_002", RequirementID: "req_8", Severity: models.SeverityHigh, Status: models.FindingStateOpen, Title: "Break-glass account without MFA"},
		{ID: "finding_003", RequirementID: "req_3", Severity: models.SeverityMedium, Status: models.FindingStateRemediated, Title: "Bucket without default encryption"},
	}
}

func TestResolveRequirementName(t *testing.T) {
	a := NewAssembler(testLogger())
	reqs := testRequirements()

	assert.Equal(t, "Protect Stored Account Data", a.ResolveRequirementName("req_3", reqs))

	// Unknown ids are echoed back unchanged so the UI never shows a blank name
	assert.Equal(t, "req_99", a.ResolveRequirementName("req_99", reqs))
	assert.Equal(t, "req_99", a.ResolveRequirementName("req_99", nil))
}

func TestBuildSummaryCards(t *testing.T) {
	a := NewAssembler(testLogger())

	cards := a.BuildSummaryCards(testSnapshot(), testRequirements(), testFindings())
	require.Len(t, cards, 3)

	// Snapshot order is preserved: the grid layout depends on it
	assert.Equal(t, "req_8", cards[0].RequirementID)
	assert.Equal(t, "req_1", cards[1].RequirementID)
	assert.Equal(t, "req_3", cards[2].RequirementID)

	assert.Equal(t, "Identify Users and Authenticate Access", cards[0].Name)
	assert.Equal(t, models.ControlStateFail, cards[0].Status)
	assert.Equal(t, "#dc3545", cards[0].StatusColor)

	// Advisory count displayed as-is; matches actual here
	assert.Equal(t, 2, cards[0].FindingCount)
	assert.False(t, cards[0].CountMismatch)

	// req_3 claims 1 finding and actually has 1
	assert.False(t, cards[2].CountMismatch)
}

func TestBuildSummaryCards_CountMismatch(t *testing.T) {
	a := NewAssembler(testLogger())
	snapshot := testSnapshot()
	snapshot.Controls[1].FindingCount = 4 // req_1 actually has zero findings

	cards := a.BuildSummaryCards(snapshot, testRequirements(), testFindings())

	// The advisory number is flagged, never corrected
	assert.Equal(t, 4, cards[1].FindingCount)
	assert.True(t, cards[1].CountMismatch)
}

func TestBuildSummaryCards_UnknownStatus(t *testing.T) {
	a := NewAssembler(testLogger())
	snapshot := testSnapshot()
	snapshot.Controls[0].Status = models.ControlState("skipped")

	cards := a.BuildSummaryCards(snapshot, testRequirements(), testFindings())
	assert.Equal(t, models.ColorNeutral, cards[0].StatusColor)
}

func TestBuildRequirementDetail(t *testing.T) {
	a := NewAssembler(testLogger())

	detail, err := a.BuildRequirementDetail("req_8", testRequirements(), testSnapshot(), testFindings())
	require.NoError(t, err)

	assert.Equal(t, "req_8", detail.Requirement.ID)
	assert.Equal(t, "IAM", detail.Requirement.AWSService)
	assert.Equal(t, models.ControlStateFail, detail.Control.Status)
	assert.Equal(t, "#dc3545", detail.StatusColor)

	require.Len(t, detail.Findings, 2)
	assert.Equal(t, "finding_001", detail.Findings[0].ID)
	assert.Equal(t, "#dc3545", detail.Findings[0].SeverityColor)
	assert.Equal(t, "#fd7e14", detail.Findings[1].SeverityColor)
}

func TestBuildRequirementDetail_ZeroFindings(t *testing.T) {
	a := NewAssembler(testLogger())

	detail, err := a.BuildRequirementDetail("req_1", testRequirements(), testSnapshot(), testFindings())
	require.NoError(t, err)
	assert.Empty(t, detail.Findings)
}

func TestBuildRequirementDetail_NotFound(t *testing.T) {
	a := NewAssembler(testLogger())

	// Absent from both the catalog and the control list
	_, err := a.BuildRequirementDetail("req_99", testRequirements(), testSnapshot(), testFindings())
	assert.ErrorIs(t, err, ErrNotFound)

	// In the catalog but without a control row: still NotFound, no partial data
	reqs := append(testRequirements(), models.Requirement{ID: "req_12", Name: "Support Information Security"})
	_, err = a.BuildRequirementDetail("req_12", reqs, testSnapshot(), testFindings())
	assert.ErrorIs(t, err, ErrNotFound)

	// Control row without a catalog entry: same
	snapshot := testSnapshot()
	snapshot.Controls = append(snapshot.Controls, models.ControlStatus{RequirementID: "req_42", Status: models.ControlStatePass})
	_, err = a.BuildRequirementDetail("req_42", testRequirements(), snapshot, testFindings())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBuildRequirementDetail_DuplicateControlFirstWins(t *testing.T) {
	a := NewAssembler(testLogger())
	snapshot := testSnapshot()
	snapshot.Controls = append(snapshot.Controls, models.ControlStatus{
		RequirementID: "req_8",
		Status:        models.ControlStatePass,
		Details:       "duplicate row",
	})

	detail, err := a.BuildRequirementDetail("req_8", testRequirements(), snapshot, testFindings())
	require.NoError(t, err)
	assert.Equal(t, models.ControlStateFail, detail.Control.Status)
	assert.Equal(t, "1 console user lacks MFA.", detail.Control.Details)
}

func TestBuildExecutiveSummary(t *testing.T) {
	a := NewAssembler(testLogger())
	trend := []models.TrendPoint{
		{Date: "2024-01-15", ComplianceScore: 66.7, Passing: 4, Failing: 2},
		{Date: "2024-01-14", ComplianceScore: 50.0, Passing: 3, Failing: 3},
	}

	summary := a.BuildExecutiveSummary(testSnapshot(), testRequirements(), testFindings(), trend)

	assert.Equal(t, "2024-01-16", summary.SnapshotDate)
	// Summary is taken verbatim from the snapshot, never recomputed
	assert.Equal(t, 66.7, summary.Summary.ComplianceScore)
	assert.Equal(t, 2, summary.Summary.Passing)

	assert.Equal(t, 2, summary.OpenFindings)
	assert.Equal(t, 1, summary.CriticalOpenFindings)
	assert.Len(t, summary.Cards, 3)

	// Quick trend is sorted ascending
	require.Len(t, summary.Trend, 2)
	assert.Equal(t, "2024-01-14", summary.Trend[0].Date)
}
