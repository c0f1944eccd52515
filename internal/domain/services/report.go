package services

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"isms-lab/internal/domain/models"
	"isms-lab/pkg/logger"
)

// ReportInput carries the six stage data sets a compliance report is
// built from.
type ReportInput struct {
	Scoping     models.ScopingResponses
	Assessments []models.ControlAssessment
	Risks       []models.RiskEntry
	Policies    []models.Policy
	VAPT        []models.VAPTAssessment
	Audit       models.InternalAudit
}

// ReportBuilder derives the normalized compliance report from raw
// stage data. Reports are computed on demand, never persisted.
type ReportBuilder struct {
	logger *logger.Logger
}

// NewReportBuilder creates a new ReportBuilder
func NewReportBuilder(log *logger.Logger) *ReportBuilder {
	return &ReportBuilder{
		logger: log.WithComponent("report"),
	}
}

// Build assembles the full report: row views over each stage, derived
// statistics, the compliance score and the recommendation list.
func (b *ReportBuilder) Build(in ReportInput) *models.ComplianceReport {
	report := &models.ComplianceReport{
		Scoping:  b.scopingRows(in.Scoping),
		Gaps:     b.gapRows(in.Assessments),
		QA:       b.qaRows(in.Assessments),
		Risks:    b.riskRows(in.Risks),
		Policies: b.policyRows(in.Policies),
		VAPT:     b.vaptRows(in.VAPT),
		Audit:    b.auditRow(in.Audit),
	}
	report.Stats = b.statistics(in, report)
	report.Recommendations = b.recommendations(report.Stats)

	b.logger.Debug().
		Int("controls", report.Stats.TotalControls).
		Int("score", report.Stats.ComplianceScore).
		Int("risks", report.Stats.TotalRisks).
		Msg("report built")

	return report
}

// scopingRows lists responses in ascending question id order.
func (b *ReportBuilder) scopingRows(responses models.ScopingResponses) []models.ScopingRow {
	ids := make([]int, 0, len(responses))
	for id := range responses {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	rows := make([]models.ScopingRow, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, models.ScopingRow{QuestionID: id, Response: responses[id]})
	}
	return rows
}

// gapRows keeps only controls still carrying a gap, preserving
// assessment (catalog) order.
func (b *ReportBuilder) gapRows(assessments []models.ControlAssessment) []models.GapRow {
	var rows []models.GapRow
	for _, a := range assessments {
		if !a.IsGap() {
			continue
		}
		rows = append(rows, models.GapRow{
			ControlID:   a.ControlID,
			ControlName: a.ControlName,
			Annex:       a.Annex,
			Status:      a.Status,
			Gaps:        a.IdentifiedGaps,
			Priority:    a.Priority,
		})
	}
	return rows
}

func (b *ReportBuilder) qaRows(assessments []models.ControlAssessment) []models.QARow {
	var rows []models.QARow
	for _, a := range assessments {
		for _, q := range a.Questions {
			answer := a.Answers[q.ID]
			if answer == "" {
				answer = "Not Answered"
			}
			rows = append(rows, models.QARow{
				ControlID:   a.ControlID,
				ControlName: a.ControlName,
				Question:    q.Prompt,
				Answer:      answer,
				Required:    q.Required,
			})
		}
	}
	return rows
}

// riskRows assigns positional RISK-NNN identifiers. Ids shift when
// entries are removed; the stable handle is the entry uuid, not the
// report id.
func (b *ReportBuilder) riskRows(risks []models.RiskEntry) []models.RiskRow {
	rows := make([]models.RiskRow, 0, len(risks))
	for i, r := range risks {
		rows = append(rows, models.RiskRow{
			RiskID:           fmt.Sprintf("RISK-%03d", i+1),
			Asset:            r.Asset,
			Threat:           r.Threat,
			Vulnerability:    r.Vulnerability,
			Likelihood:       r.Likelihood,
			Impact:           r.Impact,
			Level:            r.Level,
			Treatment:        r.Treatment,
			Owner:            r.Owner,
			Status:           r.Status,
			ExistingControls: r.ExistingControls,
		})
	}
	return rows
}

func (b *ReportBuilder) policyRows(policies []models.Policy) []models.PolicyRow {
	rows := make([]models.PolicyRow, 0, len(policies))
	for _, p := range policies {
		rows = append(rows, models.PolicyRow{
			Name:         p.Name,
			Version:      p.Version,
			Owner:        p.Owner,
			Status:       p.Status,
			ApprovedDate: p.ApprovedDate,
			ReviewDate:   p.ReviewDate,
			FileName:     p.FileName,
		})
	}
	return rows
}

func (b *ReportBuilder) vaptRows(assessments []models.VAPTAssessment) []models.VAPTRow {
	rows := make([]models.VAPTRow, 0, len(assessments))
	for _, v := range assessments {
		rows = append(rows, models.VAPTRow{
			Type:      v.Type,
			Scope:     v.Scope,
			Vendor:    v.Vendor,
			StartDate: v.StartDate,
			EndDate:   v.EndDate,
			Critical:  parseCount(v.CriticalFindings),
			High:      parseCount(v.HighFindings),
			Medium:    parseCount(v.MediumFindings),
			Low:       parseCount(v.LowFindings),
			Status:    v.Status,
		})
	}
	return rows
}

func (b *ReportBuilder) auditRow(audit models.InternalAudit) models.AuditRow {
	return models.AuditRow{
		StartDate:    audit.StartDate,
		EndDate:      audit.EndDate,
		AuditTeam:    audit.AuditTeam,
		MajorNC:      parseCount(audit.NonConformities.Major),
		MinorNC:      parseCount(audit.NonConformities.Minor),
		Observations: parseCount(audit.NonConformities.Observations),
		Status:       audit.Status,
	}
}

func (b *ReportBuilder) statistics(in ReportInput, report *models.ComplianceReport) models.Statistics {
	var stats models.Statistics

	stats.TotalControls = len(in.Assessments)
	for _, a := range in.Assessments {
		switch a.Status {
		case models.StatusFullyImplemented:
			stats.FullyImplemented++
		case models.StatusPartiallyImplemented:
			stats.PartiallyImplemented++
		case models.StatusNotImplemented:
			stats.NotImplemented++
		case models.StatusNotApplicable:
			stats.NotApplicable++
		}
		if a.IsGap() {
			stats.TotalGaps++
			// Priority counts only while the control is still open
			// as a gap; a stale High on a closed control is ignored.
			if a.Priority == models.PriorityHigh {
				stats.HighPriorityGaps++
			}
		}
		stats.QuestionsAsked += len(a.Questions)
		stats.QuestionsAnswered += len(a.Answers)
		stats.EvidenceFiles += len(a.EvidenceFiles)
	}
	if stats.TotalControls > 0 {
		stats.ComplianceScore = int(math.Round(float64(stats.FullyImplemented) / float64(stats.TotalControls) * 100))
	}

	stats.TotalRisks = len(in.Risks)
	for _, r := range in.Risks {
		switch r.Level {
		case models.RiskLevelCritical:
			stats.CriticalRisks++
		case models.RiskLevelHigh:
			stats.HighRisks++
		case models.RiskLevelMedium:
			stats.MediumRisks++
		case models.RiskLevelLow:
			stats.LowRisks++
		}
	}

	stats.TotalPolicies = len(in.Policies)
	for _, p := range in.Policies {
		if p.Uploaded() {
			stats.UploadedPolicies++
		}
	}

	for _, v := range report.VAPT {
		stats.VAPTCritical += v.Critical
		stats.VAPTHigh += v.High
		stats.VAPTMedium += v.Medium
		stats.VAPTLow += v.Low
	}

	stats.MajorNC = report.Audit.MajorNC
	stats.MinorNC = report.Audit.MinorNC
	stats.Observations = report.Audit.Observations

	return stats
}

// recommendations emits the advisory list in fixed evaluation order.
func (b *ReportBuilder) recommendations(stats models.Statistics) []string {
	var recs []string
	if stats.HighPriorityGaps > 0 {
		recs = append(recs, fmt.Sprintf("Address %d high-priority gaps identified in the gap assessment", stats.HighPriorityGaps))
	}
	if stats.CriticalRisks > 0 {
		recs = append(recs, fmt.Sprintf("Immediate action required for %d critical risks", stats.CriticalRisks))
	}
	if stats.VAPTCritical > 0 {
		recs = append(recs, fmt.Sprintf("Remediate %d critical vulnerabilities from VAPT", stats.VAPTCritical))
	}
	if stats.MajorNC > 0 {
		recs = append(recs, fmt.Sprintf("Resolve %d major non-conformities from internal audit", stats.MajorNC))
	}
	if stats.UploadedPolicies < stats.TotalPolicies {
		recs = append(recs, fmt.Sprintf("Complete documentation: %d policies pending upload", stats.TotalPolicies-stats.UploadedPolicies))
	}
	if stats.ComplianceScore >= 80 && stats.CriticalRisks == 0 {
		recs = append(recs, "Strong compliance foundation - consider scheduling external certification audit")
	}
	return recs
}

// parseCount reads the leading integer of a free-text count field,
// zero when the field does not start with digits.
func parseCount(s string) int {
	s = strings.TrimSpace(s)
	n := 0
	seen := false
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		seen = true
		n = n*10 + int(r-'0')
	}
	if !seen {
		return 0
	}
	return n
}
