package catalog

import (
	"errors"
	"testing"
)

func TestGroups_ClauseOrderAndSizes(t *testing.T) {
	groups := Groups()
	if len(groups) != 4 {
		t.Fatalf("got %d groups, want 4", len(groups))
	}

	want := []struct {
		id       string
		name     string
		controls int
	}{
		{"A.5", "Organizational Controls", 37},
		{"A.6", "People Controls", 8},
		{"A.7", "Physical Controls", 14},
		{"A.8", "Technological Controls", 34},
	}
	for i, w := range want {
		g := groups[i]
		if g.ID != w.id || g.Name != w.name || len(g.Controls) != w.controls {
			t.Errorf("group %d = %s %q (%d controls), want %s %q (%d)", i, g.ID, g.Name, len(g.Controls), w.id, w.name, w.controls)
		}
	}
}

func TestTotalControls(t *testing.T) {
	if got := TotalControls(); got != 93 {
		t.Errorf("TotalControls() = %d, want 93", got)
	}
}

func TestFindControl(t *testing.T) {
	c, err := FindControl("A.8.13")
	if err != nil {
		t.Fatalf("FindControl: %v", err)
	}
	if c.Name != "Information backup" {
		t.Errorf("name = %q", c.Name)
	}

	if _, err := FindControl("A.9.1"); !errors.Is(err, ErrControlNotFound) {
		t.Errorf("expected ErrControlNotFound, got %v", err)
	}
}

func TestTotalQuestions(t *testing.T) {
	if got := TotalQuestions(); got != 67 {
		t.Errorf("TotalQuestions() = %d, want 67", got)
	}
}

func TestFindQuestion_Id47Absent(t *testing.T) {
	if _, ok := FindQuestion(47); ok {
		t.Error("question 47 should not exist")
	}
	for _, id := range []int{1, 46, 48, 68} {
		if _, ok := FindQuestion(id); !ok {
			t.Errorf("question %d missing", id)
		}
	}
}

func TestInferenceConstantsResolve(t *testing.T) {
	ids := []int{
		QInfrastructure,
		QInfrastructureFallback,
		QCriticalSystems,
		QCriticalSystemsAlt,
		QDataTypes,
		QMobileManagement,
		QEmployeeCount,
		QRemoteWork,
		QThirdParty,
	}
	for _, id := range ids {
		if _, ok := FindQuestion(id); !ok {
			t.Errorf("inference question %d not in questionnaire", id)
		}
	}
}
