package services

import (
	"fmt"
	"strings"

	"isms-lab/internal/domain/models"
	"isms-lab/pkg/logger"
)

// QuestionGenerator emits the follow-up questions that apply to a
// control under a given infrastructure profile. Generation is
// deterministic: equal inputs yield sequences equal in ids, order and
// content, because assessments key answers by question id across
// save/reload cycles.
type QuestionGenerator struct {
	logger *logger.Logger
}

// NewQuestionGenerator creates a new QuestionGenerator
func NewQuestionGenerator(log *logger.Logger) *QuestionGenerator {
	return &QuestionGenerator{
		logger: log.WithComponent("questions"),
	}
}

// questionRule is one conditionally-emitted question of the rule
// table. When is nil for unconditional questions. PerProvider rules
// emit one question per cloud provider in profile order, with the
// provider name interpolated into id and prompt. JoinProviders rules
// interpolate the comma-joined provider list into the prompt.
type questionRule struct {
	When          func(models.InfrastructureProfile) bool
	PerProvider   bool
	JoinProviders bool
	ID            string
	Prompt        string
	Kind          models.QuestionKind
	Choices       []string
	Required      bool
}

func whenCloud(p models.InfrastructureProfile) bool      { return p.HasCloud }
func whenThirdParty(p models.InfrastructureProfile) bool { return p.HasThirdParty }
func whenRemote(p models.InfrastructureProfile) bool     { return p.HasRemoteWork }
func whenMobile(p models.InfrastructureProfile) bool     { return p.HasMobile }

// questionRules maps control ids to their rules, evaluated in
// declaration order. Controls absent from the table generate nothing.
var questionRules = map[string][]questionRule{
	"A.5.9": {
		{ID: "asset_inventory_tool", Prompt: "What tool or system do you use to maintain your asset inventory?", Kind: models.QuestionKindText, Required: true},
		{ID: "asset_update_frequency", Prompt: "How frequently is the asset inventory updated?", Kind: models.QuestionKindSelect, Choices: []string{"Real-time", "Daily", "Weekly", "Monthly", "Quarterly"}, Required: true},
		{When: whenCloud, JoinProviders: true, ID: "cloud_asset_tracking", Prompt: "How do you track assets in %s?", Kind: models.QuestionKindText, Required: true},
	},
	"A.5.15": {
		{ID: "access_control_system", Prompt: "What system(s) do you use for access control management?", Kind: models.QuestionKindText, Required: true},
		{When: whenCloud, JoinProviders: true, ID: "cloud_iam", Prompt: "Do you use centralized IAM for %s?", Kind: models.QuestionKindSelect, Choices: []string{"Yes - Centralized", "Yes - Per Provider", "No", "Partially"}, Required: true},
	},
	"A.5.19": {
		{When: whenThirdParty, ID: "supplier_assessment", Prompt: "How do you assess security risks of third-party suppliers?", Kind: models.QuestionKindText, Required: true},
		{When: whenThirdParty, ID: "supplier_contracts", Prompt: "Do all supplier contracts include security requirements?", Kind: models.QuestionKindSelect, Choices: []string{"Yes - All", "Yes - Critical only", "Partially", "No"}, Required: true},
	},
	"A.5.23": {
		{When: whenCloud, PerProvider: true, ID: "cloud_security_", Prompt: "What security controls are implemented in %s?", Kind: models.QuestionKindTextarea, Required: true},
	},
	"A.6.7": {
		{When: whenRemote, ID: "remote_vpn", Prompt: "What VPN solution do you use for remote access?", Kind: models.QuestionKindText, Required: true},
		{When: whenRemote, ID: "remote_mfa", Prompt: "Is MFA enforced for all remote access?", Kind: models.QuestionKindSelect, Choices: []string{"Yes - All users", "Yes - Privileged only", "Partially", "No"}, Required: true},
	},
	"A.8.1": {
		{ID: "endpoint_protection", Prompt: "What endpoint protection software is deployed?", Kind: models.QuestionKindText, Required: true},
		{When: whenMobile, ID: "mdm_solution", Prompt: "What MDM solution is used for mobile device management?", Kind: models.QuestionKindText, Required: true},
	},
	"A.8.8": {
		{ID: "vuln_scanning_tool", Prompt: "What vulnerability scanning tool(s) do you use?", Kind: models.QuestionKindText, Required: true},
		{ID: "vuln_scan_frequency", Prompt: "How often are vulnerability scans performed?", Kind: models.QuestionKindSelect, Choices: []string{"Continuous", "Weekly", "Monthly", "Quarterly", "Annually"}, Required: true},
	},
	"A.8.9": {
		{ID: "config_management_tool", Prompt: "What configuration management tools are in use?", Kind: models.QuestionKindText, Required: false},
		{When: whenCloud, ID: "iac_usage", Prompt: "Do you use Infrastructure as Code (IaC)?", Kind: models.QuestionKindSelect, Choices: []string{"Yes - Terraform", "Yes - CloudFormation", "Yes - Other", "No"}, Required: true},
	},
	"A.8.13": {
		{ID: "backup_solution", Prompt: "What backup solution/tool is implemented?", Kind: models.QuestionKindText, Required: true},
		{ID: "backup_frequency", Prompt: "What is the backup frequency for critical systems?", Kind: models.QuestionKindSelect, Choices: []string{"Real-time/Continuous", "Hourly", "Daily", "Weekly"}, Required: true},
		{ID: "backup_testing", Prompt: "How often are backup restores tested?", Kind: models.QuestionKindSelect, Choices: []string{"Monthly", "Quarterly", "Semi-annually", "Annually", "Never"}, Required: true},
	},
	"A.8.15": {
		{ID: "logging_tool", Prompt: "What logging/SIEM solution is used?", Kind: models.QuestionKindText, Required: true},
		{ID: "log_retention", Prompt: "What is the log retention period?", Kind: models.QuestionKindSelect, Choices: []string{"30 days", "90 days", "6 months", "1 year", "2+ years"}, Required: true},
	},
	"A.8.16": {
		{ID: "monitoring_tools", Prompt: "What monitoring tools are deployed?", Kind: models.QuestionKindText, Required: true},
		{ID: "alert_response_time", Prompt: "What is the average response time to security alerts?", Kind: models.QuestionKindSelect, Choices: []string{"< 15 minutes", "< 1 hour", "< 4 hours", "< 24 hours", "Varies"}, Required: true},
	},
	"A.8.20": {
		{ID: "firewall_solution", Prompt: "What firewall solution(s) are in place?", Kind: models.QuestionKindText, Required: true},
		{ID: "network_segmentation", Prompt: "Is network segmentation implemented?", Kind: models.QuestionKindSelect, Choices: []string{"Yes - VLANs", "Yes - Physical", "Yes - Both", "No"}, Required: true},
	},
	"A.8.24": {
		{ID: "encryption_at_rest", Prompt: "What encryption is used for data at rest?", Kind: models.QuestionKindText, Required: true},
		{ID: "encryption_in_transit", Prompt: "What protocols are used for data in transit?", Kind: models.QuestionKindText, Required: true},
		{When: whenCloud, ID: "key_management", Prompt: "What key management solution is used?", Kind: models.QuestionKindText, Required: true},
	},
}

// Generate returns the follow-up questions applicable to the control
// under the profile, empty for controls not in the rule table.
func (g *QuestionGenerator) Generate(control models.Control, profile models.InfrastructureProfile) []models.FollowUpQuestion {
	rules, ok := questionRules[control.ID]
	if !ok {
		return nil
	}

	var questions []models.FollowUpQuestion
	for _, rule := range rules {
		if rule.When != nil && !rule.When(profile) {
			continue
		}

		if rule.PerProvider {
			for _, provider := range profile.CloudProviders {
				questions = append(questions, models.FollowUpQuestion{
					ID:       rule.ID + strings.ToLower(string(provider)),
					Prompt:   fmt.Sprintf(rule.Prompt, provider),
					Kind:     rule.Kind,
					Choices:  rule.Choices,
					Required: rule.Required,
				})
			}
			continue
		}

		prompt := rule.Prompt
		if rule.JoinProviders {
			prompt = fmt.Sprintf(rule.Prompt, joinProviders(profile.CloudProviders))
		}
		questions = append(questions, models.FollowUpQuestion{
			ID:       rule.ID,
			Prompt:   prompt,
			Kind:     rule.Kind,
			Choices:  rule.Choices,
			Required: rule.Required,
		})
	}
	return questions
}

func joinProviders(providers []models.CloudProvider) string {
	names := make([]string, len(providers))
	for i, p := range providers {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}
