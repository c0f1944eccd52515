package models

import "github.com/google/uuid"

// VAPTStatus is the lifecycle state of a security assessment.
type VAPTStatus string

const (
	VAPTStatusPlanned     VAPTStatus = "Planned"
	VAPTStatusInProgress  VAPTStatus = "In Progress"
	VAPTStatusCompleted   VAPTStatus = "Completed"
	VAPTStatusRemediation VAPTStatus = "Remediation"
)

// VAPTAssessment is one vulnerability assessment / penetration test
// engagement. Finding counts are kept as the raw strings the assessor
// entered; aggregation parses them and treats anything unparseable as
// zero.
type VAPTAssessment struct {
	ID               uuid.UUID  `json:"id"`
	Type             string     `json:"type"`
	Scope            string     `json:"scope"`
	Vendor           string     `json:"vendor"`
	StartDate        string     `json:"start_date"`
	EndDate          string     `json:"end_date"`
	ReportFileName   string     `json:"report_file_name"`
	ReportFileSize   int64      `json:"report_file_size"`
	CriticalFindings string     `json:"critical_findings"`
	HighFindings     string     `json:"high_findings"`
	MediumFindings   string     `json:"medium_findings"`
	LowFindings      string     `json:"low_findings"`
	Status           VAPTStatus `json:"status"`
}

// DefaultVAPTTypes are the engagements seeded at stage start.
var DefaultVAPTTypes = []string{
	"External VAPT",
	"Internal VAPT",
	"Cloud Security Assessment",
}
