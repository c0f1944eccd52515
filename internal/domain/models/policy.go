package models

import "github.com/google/uuid"

// PolicyStatus is the lifecycle state of a policy document.
type PolicyStatus string

const (
	PolicyStatusDraft       PolicyStatus = "Draft"
	PolicyStatusUploaded    PolicyStatus = "Uploaded"
	PolicyStatusUnderReview PolicyStatus = "Under Review"
	PolicyStatusApproved    PolicyStatus = "Approved"
	PolicyStatusActive      PolicyStatus = "Active"
)

// RequiredPolicies is the fixed set of policies every ISMS must carry.
// Entries on this list are seeded at stage start and cannot be removed.
var RequiredPolicies = []string{
	"Information Security Policy",
	"Access Control Policy",
	"Acceptable Use Policy",
	"Change Management Policy",
	"Incident Response Policy",
	"Business Continuity Policy",
	"Backup and Recovery Policy",
	"Data Classification Policy",
	"Password Policy",
	"Physical Security Policy",
}

// IsRequiredPolicy reports whether name is on the required list.
func IsRequiredPolicy(name string) bool {
	for _, p := range RequiredPolicies {
		if p == name {
			return true
		}
	}
	return false
}

// Policy is one row of the policy register. FileName is the metadata
// of the uploaded document; an empty FileName means nothing has been
// uploaded yet.
type Policy struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name"`
	Version      string       `json:"version"`
	Owner        string       `json:"owner"`
	ApprovedDate string       `json:"approved_date"`
	ReviewDate   string       `json:"review_date"`
	Status       PolicyStatus `json:"status"`
	FileName     string       `json:"file_name"`
	FileSize     int64        `json:"file_size"`
}

// Uploaded reports whether a document has been attached to the policy.
func (p Policy) Uploaded() bool {
	return p.FileName != ""
}
