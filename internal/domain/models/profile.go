package models

// ScopingResponses maps scoping question IDs to free-text answers.
// Missing keys mean the question was not answered.
type ScopingResponses map[int]string

// CloudProvider is a recognized cloud service provider.
type CloudProvider string

const (
	CloudProviderAWS   CloudProvider = "AWS"
	CloudProviderAzure CloudProvider = "Azure"
	CloudProviderGCP   CloudProvider = "GCP"
)

// InfrastructureProfile is the derived snapshot of an organization's
// technical environment, inferred from scoping responses. Every field
// is a deterministic function of specific question answers; the profile
// drives which follow-up questions are generated per control.
type InfrastructureProfile struct {
	HasCloud        bool            `json:"has_cloud"`
	CloudProviders  []CloudProvider `json:"cloud_providers,omitempty"`
	HasOnPrem       bool            `json:"has_on_prem"`
	HasHybrid       bool            `json:"has_hybrid"`
	HasRemoteWork   bool            `json:"has_remote_work"`
	HasThirdParty   bool            `json:"has_third_party"`
	HasMobile       bool            `json:"has_mobile"`
	CriticalSystems []string        `json:"critical_systems,omitempty"`
	DataTypes       []string        `json:"data_types,omitempty"`
	EmployeeCount   int             `json:"employee_count"`
}
