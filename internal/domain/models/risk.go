package models

import "github.com/google/uuid"

// RiskRating is an ordinal likelihood or impact rating.
type RiskRating string

const (
	RatingUnset  RiskRating = ""
	RatingLow    RiskRating = "Low"
	RatingMedium RiskRating = "Medium"
	RatingHigh   RiskRating = "High"
)

// RiskLevel is the derived classification of a risk. The zero value
// means "not yet calculated" and must not be displayed as Low.
type RiskLevel string

const (
	RiskLevelUnscored RiskLevel = ""
	RiskLevelLow      RiskLevel = "Low"
	RiskLevelMedium   RiskLevel = "Medium"
	RiskLevelHigh     RiskLevel = "High"
	RiskLevelCritical RiskLevel = "Critical"
)

// RiskStatus is the treatment lifecycle state of a risk entry.
type RiskStatus string

const (
	RiskStatusOpen       RiskStatus = "Open"
	RiskStatusInProgress RiskStatus = "In Progress"
	RiskStatusMitigated  RiskStatus = "Mitigated"
	RiskStatusAccepted   RiskStatus = "Accepted"
	RiskStatusClosed     RiskStatus = "Closed"
)

// RiskEntry is one row of the risk register. Level is always derived
// from Likelihood and Impact; it is never set directly. Export
// identifiers (RISK-NNN) are positional and assigned at export time,
// ID only gives the entry a stable identity for edits and deletes.
type RiskEntry struct {
	ID               uuid.UUID  `json:"id"`
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
