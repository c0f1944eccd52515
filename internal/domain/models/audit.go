package models

import "github.com/google/uuid"

// AuditStatus is the lifecycle state of the internal audit.
type AuditStatus string

const (
	AuditStatusPlanned      AuditStatus = "Planned"
	AuditStatusInProgress   AuditStatus = "In Progress"
	AuditStatusCompleted    AuditStatus = "Completed"
	AuditStatusReportIssued AuditStatus = "Report Issued"
)

// FindingSeverity classifies an individual audit finding.
type FindingSeverity string

const (
	SeverityMajor       FindingSeverity = "Major"
	SeverityMinor       FindingSeverity = "Minor"
	SeverityObservation FindingSeverity = "Observation"
	SeverityOpportunity FindingSeverity = "Opportunity"
)

// AuditFinding is one itemized finding recorded during the audit.
type AuditFinding struct {
	ID             uuid.UUID       `json:"id"`
	Control        string          `json:"control"`
	Finding        string          `json:"finding"`
	Severity       FindingSeverity `json:"severity"`
	Recommendation string          `json:"recommendation"`
}

// NonConformities holds the audit's summary counts as entered. Raw
// strings on purpose: aggregation parses them, unparseable means zero.
type NonConformities struct {
	Major        string `json:"major"`
	Minor        string `json:"minor"`
	Observations string `json:"observations"`
}

// InternalAudit is the single internal audit record of the workflow.
type InternalAudit struct {
	StartDate       string          `json:"start_date"`
	EndDate         string          `json:"end_date"`
	AuditTeam       string          `json:"audit_team"`
	Scope           string          `json:"scope"`
	Findings        []AuditFinding  `json:"findings,omitempty"`
	ReportFileName  string          `json:"report_file_name"`
	ReportFileSize  int64           `json:"report_file_size"`
	Status          AuditStatus     `json:"status"`
	NonConformities NonConformities `json:"non_conformities"`
}

// Clone returns a copy that does not share Findings with the receiver.
func (a InternalAudit) Clone() InternalAudit {
	out := a
	if a.Findings != nil {
		out.Findings = append([]AuditFinding(nil), a.Findings...)
	}
	return out
}
