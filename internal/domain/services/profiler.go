package services

import (
	"strconv"
	"strings"

	"isms-lab/internal/domain/catalog"
	"isms-lab/internal/domain/models"
	"isms-lab/pkg/logger"
)

// Profiler derives an infrastructure profile from scoping responses.
// Inference is deterministic: the same responses always produce the
// same profile, which downstream question generation depends on.
type Profiler struct {
	logger *logger.Logger
}

// NewProfiler creates a new Profiler
func NewProfiler(log *logger.Logger) *Profiler {
	return &Profiler{
		logger: log.WithComponent("profiler"),
	}
}

// InferProfile maps raw scoping answers to an InfrastructureProfile.
// Total: absent answers leave every derived field at its zero value.
func (p *Profiler) InferProfile(responses models.ScopingResponses) models.InfrastructureProfile {
	var profile models.InfrastructureProfile

	// Infrastructure architecture: primary question first, fallback second.
	infra := strings.ToLower(firstNonEmpty(responses, catalog.QInfrastructure, catalog.QInfrastructureFallback))
	profile.HasCloud = strings.Contains(infra, "cloud")
	profile.HasOnPrem = strings.Contains(infra, "on-premise") || strings.Contains(infra, "on premise")
	profile.HasHybrid = strings.Contains(infra, "hybrid")

	// Providers keep detection order AWS, Azure, GCP regardless of how
	// the answer mentions them.
	if profile.HasCloud {
		if strings.Contains(infra, "aws") {
			profile.CloudProviders = append(profile.CloudProviders, models.CloudProviderAWS)
		}
		if strings.Contains(infra, "azure") {
			profile.CloudProviders = append(profile.CloudProviders, models.CloudProviderAzure)
		}
		if strings.Contains(infra, "gcp") {
			profile.CloudProviders = append(profile.CloudProviders, models.CloudProviderGCP)
		}
	}

	remote := strings.ToLower(responses[catalog.QRemoteWork])
	profile.HasRemoteWork = strings.Contains(remote, "yes") ||
		strings.Contains(remote, "remote") ||
		strings.Contains(remote, "hybrid")

	// Any substantive free-text answer is taken to mean a third-party
	// relationship exists. The length heuristic comes from the fixed
	// inference table and must not be tuned here.
	thirdParty := strings.ToLower(responses[catalog.QThirdParty])
	profile.HasThirdParty = strings.Contains(thirdParty, "yes") || len(thirdParty) > 10

	mobile := strings.ToLower(responses[catalog.QMobileManagement])
	profile.HasMobile = strings.Contains(mobile, "mdm") || strings.Contains(mobile, "mobile")

	profile.CriticalSystems = splitList(firstNonEmpty(responses, catalog.QCriticalSystems, catalog.QCriticalSystemsAlt))
	profile.DataTypes = splitList(responses[catalog.QDataTypes])
	profile.EmployeeCount = firstNumber(responses[catalog.QEmployeeCount])

	return profile
}

// firstNonEmpty returns the first non-empty answer among ids, in order.
func firstNonEmpty(responses models.ScopingResponses, ids ...int) string {
	for _, id := range ids {
		if answer := responses[id]; answer != "" {
			return answer
		}
	}
	return ""
}

// splitList splits a comma-separated answer into trimmed, non-empty
// segments, order preserved.
func splitList(answer string) []string {
	if answer == "" {
		return nil
	}
	var items []string
	for _, part := range strings.Split(answer, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

// firstNumber parses the first contiguous run of digits in the answer,
// 0 if none is present.
func firstNumber(answer string) int {
	start := -1
	for i, r := range answer {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			n, _ := strconv.Atoi(answer[start:i])
			return n
		}
	}
	if start >= 0 {
		n, _ := strconv.Atoi(answer[start:])
		return n
	}
	return 0
}
