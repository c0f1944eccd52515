package workflow

import (
	"fmt"

	"github.com/google/uuid"

	"isms-lab/internal/domain/models"
)

// AuditPatch carries the editable fields of the internal audit record.
type AuditPatch struct {
	StartDate    *string             `json:"start_date,omitempty"`
	EndDate      *string             `json:"end_date,omitempty"`
	AuditTeam    *string             `json:"audit_team,omitempty"`
	Scope        *string             `json:"scope,omitempty"`
	Status       *models.AuditStatus `json:"status,omitempty"`
	Major        *string             `json:"major,omitempty"`
	Minor        *string             `json:"minor,omitempty"`
	Observations *string             `json:"observations,omitempty"`
}

// Audit returns a copy of the internal audit record that does not
// share its findings slice with the store.
func (s *Store) Audit() models.InternalAudit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.audit.Clone()
}

// UpdateAudit applies a patch to the audit record.
func (s *Store) UpdateAudit(patch AuditPatch) models.InternalAudit {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.StartDate != nil {
		s.audit.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		s.audit.EndDate = *patch.EndDate
	}
	if patch.AuditTeam != nil {
		s.audit.AuditTeam = *patch.AuditTeam
	}
	if patch.Scope != nil {
		s.audit.Scope = *patch.Scope
	}
	if patch.Status != nil {
		s.audit.Status = *patch.Status
	}
	if patch.Major != nil {
		s.audit.NonConformities.Major = *patch.Major
	}
	if patch.Minor != nil {
		s.audit.NonConformities.Minor = *patch.Minor
	}
	if patch.Observations != nil {
		s.audit.NonConformities.Observations = *patch.Observations
	}
	return s.audit.Clone()
}

// AddFinding records an itemized audit finding.
func (s *Store) AddFinding(control, finding string, severity models.FindingSeverity, recommendation string) models.AuditFinding {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := models.AuditFinding{
		ID:             uuid.New(),
		Control:        control,
		Finding:        finding,
		Severity:       severity,
		Recommendation: recommendation,
	}
	s.audit.Findings = append(s.audit.Findings, f)
	return f
}

// RemoveFinding deletes an itemized finding.
func (s *Store) RemoveFinding(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.audit.Findings {
		if s.audit.Findings[i].ID == id {
			s.audit.Findings = append(s.audit.Findings[:i], s.audit.Findings[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrFindingNotFound, id)
}

// AttachAuditReport records the uploaded report metadata and marks the
// audit completed.
func (s *Store) AttachAuditReport(name string, size int64) models.InternalAudit {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.audit.ReportFileName = name
	s.audit.ReportFileSize = size
	s.audit.Status = models.AuditStatusCompleted
	return s.audit.Clone()
}
