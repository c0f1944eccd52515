package models

// EvidenceUpdate is one parsed row of a completed evidence template.
// Rows referencing unknown control ids are dropped at apply time.
type EvidenceUpdate struct {
	ControlID   string `json:"control_id"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Owner       string `json:"owner"`
	LastUpdated string `json:"last_updated"`
}
