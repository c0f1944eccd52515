package workflow

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"isms-lab/internal/domain/models"
)

func TestUpdateAudit(t *testing.T) {
	s := testStore()

	team, major := "Internal audit team", "2 major"
	audit := s.UpdateAudit(AuditPatch{AuditTeam: &team, Major: &major})

	if audit.AuditTeam != team {
		t.Errorf("team = %q", audit.AuditTeam)
	}
	if audit.NonConformities.Major != "2 major" {
		t.Errorf("major = %q", audit.NonConformities.Major)
	}
	if audit.Status != models.AuditStatusPlanned {
		t.Errorf("status drifted: %q", audit.Status)
	}
}

func TestAuditFindings(t *testing.T) {
	s := testStore()

	f := s.AddFinding("A.8.15", "Log retention below policy", models.SeverityMinor, "Extend retention to one year")
	if f.ID == uuid.Nil {
		t.Fatal("finding id not assigned")
	}
	if got := len(s.Audit().Findings); got != 1 {
		t.Fatalf("got %d findings, want 1", got)
	}

	if err := s.RemoveFinding(f.ID); err != nil {
		t.Fatalf("RemoveFinding: %v", err)
	}
	if got := len(s.Audit().Findings); got != 0 {
		t.Errorf("got %d findings after removal", got)
	}

	if err := s.RemoveFinding(uuid.New()); !errors.Is(err, ErrFindingNotFound) {
		t.Errorf("err = %v, want ErrFindingNotFound", err)
	}
}

func TestAuditCopies_DoNotShareFindings(t *testing.T) {
	s := testStore()

	first := s.AddFinding("A.8.15", "Log retention below policy", models.SeverityMinor, "Extend retention to one year")
	s.AddFinding("A.5.1", "Policy review overdue", models.SeverityMajor, "Schedule annual review")

	before := s.Audit()
	if err := s.RemoveFinding(first.ID); err != nil {
		t.Fatalf("RemoveFinding: %v", err)
	}

	if got := len(before.Findings); got != 2 {
		t.Fatalf("copy has %d findings, want 2", got)
	}
	if before.Findings[0].Control != "A.8.15" {
		t.Errorf("copy findings = %+v", before.Findings)
	}
}

func TestAttachAuditReport(t *testing.T) {
	s := testStore()

	audit := s.AttachAuditReport("audit-report-2026.pdf", 16384)
	if audit.ReportFileName != "audit-report-2026.pdf" || audit.ReportFileSize != 16384 {
		t.Errorf("audit = %+v", audit)
	}
	if audit.Status != models.AuditStatusCompleted {
		t.Errorf("status = %q, want Completed", audit.Status)
	}
}

func TestUpdateVAPT(t *testing.T) {
	s := testStore()
	v := s.VAPT()[0]

	vendor, critical := "SecureWorks", "3"
	got, err := s.UpdateVAPT(v.ID, VAPTPatch{Vendor: &vendor, CriticalFindings: &critical})
	if err != nil {
		t.Fatalf("UpdateVAPT: %v", err)
	}
	if got.Vendor != "SecureWorks" || got.CriticalFindings != "3" {
		t.Errorf("engagement = %+v", got)
	}

	if _, err := s.UpdateVAPT(uuid.New(), VAPTPatch{}); !errors.Is(err, ErrVAPTNotFound) {
		t.Errorf("err = %v, want ErrVAPTNotFound", err)
	}
}
