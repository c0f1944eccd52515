package services

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"isms-lab/internal/domain/models"
	"isms-lab/pkg/logger"
)

func testBuilder() *ReportBuilder {
	return NewReportBuilder(logger.NewDevelopment())
}

func assessment(id string, status models.ImplementationStatus, priority models.Priority) models.ControlAssessment {
	return models.ControlAssessment{
		ControlID: id,
		Status:    status,
		Priority:  priority,
	}
}

func TestBuild_ComplianceScoreRounds(t *testing.T) {
	b := testBuilder()

	report := b.Build(ReportInput{
		Assessments: []models.ControlAssessment{
			assessment("A.5.1", models.StatusFullyImplemented, ""),
			assessment("A.5.2", models.StatusNotImplemented, ""),
			assessment("A.5.3", models.StatusNotImplemented, ""),
		},
	})

	// round(1/3 * 100) = 33
	if report.Stats.ComplianceScore != 33 {
		t.Errorf("score = %d, want 33", report.Stats.ComplianceScore)
	}
}

func TestBuild_ScoreZeroWithoutControls(t *testing.T) {
	b := testBuilder()

	report := b.Build(ReportInput{})
	if report.Stats.ComplianceScore != 0 {
		t.Errorf("score = %d, want 0", report.Stats.ComplianceScore)
	}
}

func TestBuild_GapRowsExcludeFullyAndNotApplicable(t *testing.T) {
	b := testBuilder()

	report := b.Build(ReportInput{
		Assessments: []models.ControlAssessment{
			assessment("A.5.1", models.StatusFullyImplemented, ""),
			assessment("A.5.2", models.StatusNotApplicable, ""),
			assessment("A.5.3", models.StatusPartiallyImplemented, models.PriorityHigh),
			assessment("A.5.4", models.StatusNotImplemented, models.PriorityLow),
			assessment("A.5.5", models.StatusUnset, ""),
		},
	})

	if len(report.Gaps) != 3 {
		t.Fatalf("got %d gap rows, want 3", len(report.Gaps))
	}
	wantIDs := []string{"A.5.3", "A.5.4", "A.5.5"}
	for i, want := range wantIDs {
		if report.Gaps[i].ControlID != want {
			t.Errorf("gap[%d] = %s, want %s", i, report.Gaps[i].ControlID, want)
		}
	}
	if report.Stats.TotalGaps != 3 || report.Stats.HighPriorityGaps != 1 {
		t.Errorf("gaps = %d/%d high, want 3/1", report.Stats.TotalGaps, report.Stats.HighPriorityGaps)
	}
}

func TestBuild_RiskIDsArePositional(t *testing.T) {
	b := testBuilder()

	risks := []models.RiskEntry{
		{ID: uuid.New(), Asset: "first"},
		{ID: uuid.New(), Asset: "second"},
		{ID: uuid.New(), Asset: "third"},
	}

	report := b.Build(ReportInput{Risks: risks})
	if report.Risks[0].RiskID != "RISK-001" || report.Risks[2].RiskID != "RISK-003" {
		t.Errorf("ids = %s..%s", report.Risks[0].RiskID, report.Risks[2].RiskID)
	}

	// Removing the first entry shifts the ids.
	report = b.Build(ReportInput{Risks: risks[1:]})
	if report.Risks[0].RiskID != "RISK-001" || report.Risks[0].Asset != "second" {
		t.Errorf("after removal: %s/%s", report.Risks[0].RiskID, report.Risks[0].Asset)
	}
}

func TestBuild_ScopingRowsSorted(t *testing.T) {
	b := testBuilder()

	report := b.Build(ReportInput{
		Scoping: models.ScopingResponses{12: "vendors", 1: "saas", 5: "b2b"},
	})

	wantIDs := []int{1, 5, 12}
	if len(report.Scoping) != 3 {
		t.Fatalf("got %d rows", len(report.Scoping))
	}
	for i, want := range wantIDs {
		if report.Scoping[i].QuestionID != want {
			t.Errorf("row %d id = %d, want %d", i, report.Scoping[i].QuestionID, want)
		}
	}
}

func TestBuild_QARowsSubstituteNotAnswered(t *testing.T) {
	b := testBuilder()

	report := b.Build(ReportInput{
		Assessments: []models.ControlAssessment{
			{
				ControlID: "A.8.13",
				Questions: []models.FollowUpQuestion{
					{ID: "backup_solution", Prompt: "What backup solution/tool is implemented?", Required: true},
					{ID: "backup_frequency", Prompt: "What is the backup frequency for critical systems?", Required: true},
				},
				Answers: map[string]string{"backup_solution": "Veeam"},
			},
		},
	})

	if len(report.QA) != 2 {
		t.Fatalf("got %d qa rows, want 2", len(report.QA))
	}
	if report.QA[0].Answer != "Veeam" {
		t.Errorf("answer = %q", report.QA[0].Answer)
	}
	if report.QA[1].Answer != "Not Answered" {
		t.Errorf("unanswered = %q, want Not Answered", report.QA[1].Answer)
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"5", 5},
		{"  12  ", 12},
		{"3 critical findings", 3},
		{"none", 0},
		{"N/A", 0},
		{"approx 4", 0},
	}

	for _, tt := range tests {
		if got := parseCount(tt.in); got != tt.want {
			t.Errorf("parseCount(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestBuild_VAPTAndAuditCounts(t *testing.T) {
	b := testBuilder()

	report := b.Build(ReportInput{
		VAPT: []models.VAPTAssessment{
			{Type: "External VAPT", CriticalFindings: "2", HighFindings: "4 issues", MediumFindings: "none", LowFindings: "10"},
			{Type: "Internal VAPT", CriticalFindings: "1"},
		},
		Audit: models.InternalAudit{
			NonConformities: models.NonConformities{Major: "2", Minor: "5", Observations: "unknown"},
		},
	})

	if report.Stats.VAPTCritical != 3 || report.Stats.VAPTHigh != 4 || report.Stats.VAPTMedium != 0 || report.Stats.VAPTLow != 10 {
		t.Errorf("vapt counts = %d/%d/%d/%d", report.Stats.VAPTCritical, report.Stats.VAPTHigh, report.Stats.VAPTMedium, report.Stats.VAPTLow)
	}
	if report.Stats.MajorNC != 2 || report.Stats.MinorNC != 5 || report.Stats.Observations != 0 {
		t.Errorf("nc counts = %d/%d/%d", report.Stats.MajorNC, report.Stats.MinorNC, report.Stats.Observations)
	}
}

func TestRecommendations_OrderAndTexts(t *testing.T) {
	b := testBuilder()

	stats := models.Statistics{
		HighPriorityGaps: 4,
		CriticalRisks:    2,
		VAPTCritical:     3,
		MajorNC:          1,
		TotalPolicies:    10,
		UploadedPolicies: 7,
	}

	recs := b.recommendations(stats)
	want := []string{
		"Address 4 high-priority gaps identified in the gap assessment",
		"Immediate action required for 2 critical risks",
		"Remediate 3 critical vulnerabilities from VAPT",
		"Resolve 1 major non-conformities from internal audit",
		"Complete documentation: 3 policies pending upload",
	}
	if len(recs) != len(want) {
		t.Fatalf("got %d recommendations, want %d", len(recs), len(want))
	}
	for i := range want {
		if recs[i] != want[i] {
			t.Errorf("rec[%d] = %q, want %q", i, recs[i], want[i])
		}
	}
}

func TestRecommendations_StrongFoundation(t *testing.T) {
	b := testBuilder()

	recs := b.recommendations(models.Statistics{
		ComplianceScore:  85,
		TotalPolicies:    10,
		UploadedPolicies: 10,
	})

	if len(recs) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(recs))
	}
	if !strings.Contains(recs[0], "external certification audit") {
		t.Errorf("rec = %q", recs[0])
	}

	// A critical risk suppresses the congratulation even at high score.
	recs = b.recommendations(models.Statistics{
		ComplianceScore:  85,
		CriticalRisks:    1,
		TotalPolicies:    10,
		UploadedPolicies: 10,
	})
	for _, r := range recs {
		if strings.Contains(r, "external certification audit") {
			t.Errorf("unexpected congratulation with critical risks: %q", r)
		}
	}
}
