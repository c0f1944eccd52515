package services

import (
	"reflect"
	"testing"

	"isms-lab/internal/domain/catalog"
	"isms-lab/internal/domain/models"
	"isms-lab/pkg/logger"
)

func testProfiler() *Profiler {
	return NewProfiler(logger.NewDevelopment())
}

func TestInferProfile_HybridCloud(t *testing.T) {
	p := testProfiler()

	profile := p.InferProfile(models.ScopingResponses{
		catalog.QInfrastructure: "Hybrid cloud - AWS and Azure, plus some on-premise servers",
	})

	if !profile.HasCloud {
		t.Error("expected HasCloud")
	}
	if !profile.HasHybrid {
		t.Error("expected HasHybrid")
	}
	if !profile.HasOnPrem {
		t.Error("expected HasOnPrem")
	}
	want := []models.CloudProvider{models.CloudProviderAWS, models.CloudProviderAzure}
	if !reflect.DeepEqual(profile.CloudProviders, want) {
		t.Errorf("providers = %v, want %v", profile.CloudProviders, want)
	}
}

func TestInferProfile_ProviderOrderIsFixed(t *testing.T) {
	p := testProfiler()

	// Mention GCP before AWS; detection order still wins.
	profile := p.InferProfile(models.ScopingResponses{
		catalog.QInfrastructure: "Cloud based on GCP and AWS",
	})

	want := []models.CloudProvider{models.CloudProviderAWS, models.CloudProviderGCP}
	if !reflect.DeepEqual(profile.CloudProviders, want) {
		t.Errorf("providers = %v, want %v", profile.CloudProviders, want)
	}
}

func TestInferProfile_InfrastructureFallbackQuestion(t *testing.T) {
	p := testProfiler()

	profile := p.InferProfile(models.ScopingResponses{
		catalog.QInfrastructureFallback: "Fully cloud on Azure",
	})

	if !profile.HasCloud {
		t.Error("expected HasCloud from fallback question")
	}
	want := []models.CloudProvider{models.CloudProviderAzure}
	if !reflect.DeepEqual(profile.CloudProviders, want) {
		t.Errorf("providers = %v, want %v", profile.CloudProviders, want)
	}
}

func TestInferProfile_NoProvidersWithoutCloud(t *testing.T) {
	p := testProfiler()

	// AWS is mentioned but the architecture is not cloud.
	profile := p.InferProfile(models.ScopingResponses{
		catalog.QInfrastructure: "On-premise only, we migrated away from AWS",
	})

	if profile.HasCloud {
		t.Error("expected HasCloud false")
	}
	if len(profile.CloudProviders) != 0 {
		t.Errorf("providers = %v, want none", profile.CloudProviders)
	}
}

func TestInferProfile_RemoteWork(t *testing.T) {
	p := testProfiler()

	tests := []struct {
		answer string
		want   bool
	}{
		{"Yes, about half the staff", true},
		{"All employees work remote", true},
		{"Hybrid model, 3 days in office", true},
		{"No, office only", false},
		{"", false},
	}

	for _, tt := range tests {
		profile := p.InferProfile(models.ScopingResponses{catalog.QRemoteWork: tt.answer})
		if profile.HasRemoteWork != tt.want {
			t.Errorf("HasRemoteWork(%q) = %v, want %v", tt.answer, profile.HasRemoteWork, tt.want)
		}
	}
}

func TestInferProfile_ThirdPartyLengthHeuristic(t *testing.T) {
	p := testProfiler()

	tests := []struct {
		answer string
		want   bool
	}{
		{"yes", true},
		{"We rely on several outsourced vendors", true},
		{"no", false},
		{"none", false},
		{"", false},
	}

	for _, tt := range tests {
		profile := p.InferProfile(models.ScopingResponses{catalog.QThirdParty: tt.answer})
		if profile.HasThirdParty != tt.want {
			t.Errorf("HasThirdParty(%q) = %v, want %v", tt.answer, profile.HasThirdParty, tt.want)
		}
	}
}

func TestInferProfile_MobileAndLists(t *testing.T) {
	p := testProfiler()

	profile := p.InferProfile(models.ScopingResponses{
		catalog.QMobileManagement: "Intune MDM for all phones",
		catalog.QCriticalSystems:  "CRM, ERP, , Payment Gateway",
		catalog.QDataTypes:        "PII, financial data",
		catalog.QEmployeeCount:    "around 250 full time",
	})

	if !profile.HasMobile {
		t.Error("expected HasMobile")
	}
	wantSystems := []string{"CRM", "ERP", "Payment Gateway"}
	if !reflect.DeepEqual(profile.CriticalSystems, wantSystems) {
		t.Errorf("CriticalSystems = %v, want %v", profile.CriticalSystems, wantSystems)
	}
	wantData := []string{"PII", "financial data"}
	if !reflect.DeepEqual(profile.DataTypes, wantData) {
		t.Errorf("DataTypes = %v, want %v", profile.DataTypes, wantData)
	}
	if profile.EmployeeCount != 250 {
		t.Errorf("EmployeeCount = %d, want 250", profile.EmployeeCount)
	}
}

func TestInferProfile_Deterministic(t *testing.T) {
	p := testProfiler()

	responses := models.ScopingResponses{
		catalog.QInfrastructure:   "Hybrid with AWS, Azure and GCP",
		catalog.QRemoteWork:       "yes",
		catalog.QThirdParty:       "yes, payroll and hosting vendors",
		catalog.QMobileManagement: "MDM via Jamf",
		catalog.QCriticalSystems:  "ERP, Git",
		catalog.QEmployeeCount:    "120",
	}

	first := p.InferProfile(responses)
	for i := 0; i < 5; i++ {
		if got := p.InferProfile(responses); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs: %+v vs %+v", i, got, first)
		}
	}
}

func TestInferProfile_EmptyResponses(t *testing.T) {
	p := testProfiler()

	profile := p.InferProfile(models.ScopingResponses{})

	var zero models.InfrastructureProfile
	if !reflect.DeepEqual(profile, zero) {
		t.Errorf("empty responses produced non-zero profile: %+v", profile)
	}
}
