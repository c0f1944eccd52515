package models

// ScopingRow is one answered scoping question in the report.
type ScopingRow struct {
	QuestionID int    `json:"question_id"`
	Response   string `json:"response"`
}

// GapRow is one control that is neither fully implemented nor excluded
// as inapplicable, in catalog order.
type GapRow struct {
	ControlID   string               `json:"control_id"`
	ControlName string               `json:"control_name"`
	Annex       string               `json:"annex"`
	Status      ImplementationStatus `json:"status"`
	Gaps        string               `json:"gaps"`
	Priority    Priority             `json:"priority"`
}

// QARow is one flattened follow-up question with its answer.
type QARow struct {
	ControlID   string `json:"control_id"`
	ControlName string `json:"control_name"`
	Question    string `json:"question"`
	Answer      string `json:"answer"`
	Required    bool   `json:"required"`
}

// RiskRow is one risk register row. RiskID is positional (RISK-NNN),
// assigned from the current list order at build time.
type RiskRow struct {
	RiskID           string     `json:"risk_id"`
	Asset            string     `json:"asset"`
	Threat           string     `json:"threat"`
	Vulnerability    string     `json:"vulnerability"`
	Likelihood       RiskRating `json:"likelihood"`
	Impact           RiskRating `json:"impact"`
	Level            RiskLevel  `json:"risk_level"`
	Treatment        string     `json:"treatment"`
	Owner            string     `json:"owner"`
	Status           RiskStatus `json:"status"`
	ExistingControls string     `json:"existing_controls"`
}

// PolicyRow is one policy register row.
type PolicyRow struct {
	Name         string       `json:"name"`
	Version      string       `json:"version"`
	Owner        string       `json:"owner"`
	Status       PolicyStatus `json:"status"`
	ApprovedDate string       `json:"approved_date"`
	ReviewDate   string       `json:"review_date"`
	FileName     string       `json:"file_name"`
}

// VAPTRow is one assessment-findings row with parsed counts.
type VAPTRow struct {
	Type      string     `json:"type"`
	Scope     string     `json:"scope"`
	Vendor    string     `json:"vendor"`
	StartDate string     `json:"start_date"`
	EndDate   string     `json:"end_date"`
	Critical  int        `json:"critical"`
	High      int        `json:"high"`
	Medium    int        `json:"medium"`
	Low       int        `json:"low"`
	Status    VAPTStatus `json:"status"`
}

// AuditRow is the internal audit summary row with parsed NC counts.
type AuditRow struct {
	StartDate    string      `json:"start_date"`
	EndDate      string      `json:"end_date"`
	AuditTeam    string      `json:"audit_team"`
	MajorNC      int         `json:"major_nc"`
	MinorNC      int         `json:"minor_nc"`
	Observations int         `json:"observations"`
	Status       AuditStatus `json:"status"`
}

// Statistics is the derived counters block of a compliance report.
type Statistics struct {
	TotalControls        int `json:"total_controls"`
	FullyImplemented     int `json:"fully_implemented"`
	PartiallyImplemented int `json:"partially_implemented"`
	NotImplemented       int `json:"not_implemented"`
	NotApplicable        int `json:"not_applicable"`
	TotalGaps            int `json:"total_gaps"`
	HighPriorityGaps     int `json:"high_priority_gaps"`
	ComplianceScore      int `json:"compliance_score"`

	TotalRisks    int `json:"total_risks"`
	CriticalRisks int `json:"critical_risks"`
	HighRisks     int `json:"high_risks"`
	MediumRisks   int `json:"medium_risks"`
	LowRisks      int `json:"low_risks"`

	TotalPolicies    int `json:"total_policies"`
	UploadedPolicies int `json:"uploaded_policies"`

	VAPTCritical int `json:"vapt_critical"`
	VAPTHigh     int `json:"vapt_high"`
	VAPTMedium   int `json:"vapt_medium"`
	VAPTLow      int `json:"vapt_low"`

	MajorNC      int `json:"major_nc"`
	MinorNC      int `json:"minor_nc"`
	Observations int `json:"observations"`

	QuestionsAsked    int `json:"questions_asked"`
	QuestionsAnswered int `json:"questions_answered"`
	EvidenceFiles     int `json:"evidence_files"`
}

// ComplianceReport is the normalized export view over all six workflow
// stages. It is computed on demand and never stored.
type ComplianceReport struct {
	Scoping         []ScopingRow `json:"scoping"`
	Gaps            []GapRow     `json:"gaps"`
	QA              []QARow      `json:"qa"`
	Risks           []RiskRow    `json:"risks"`
	Policies        []PolicyRow  `json:"policies"`
	VAPT            []VAPTRow    `json:"vapt"`
	Audit           AuditRow     `json:"audit"`
	Stats           Statistics   `json:"stats"`
	Recommendations []string     `json:"recommendations"`
}
