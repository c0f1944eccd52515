package workflow

import (
	"fmt"

	"github.com/google/uuid"

	"isms-lab/internal/domain/models"
)

// VAPTPatch carries the editable fields of an engagement. Finding
// counts stay strings; aggregation parses them later.
type VAPTPatch struct {
	Scope            *string            `json:"scope,omitempty"`
	Vendor           *string            `json:"vendor,omitempty"`
	StartDate        *string            `json:"start_date,omitempty"`
	EndDate          *string            `json:"end_date,omitempty"`
	CriticalFindings *string            `json:"critical_findings,omitempty"`
	HighFindings     *string            `json:"high_findings,omitempty"`
	MediumFindings   *string            `json:"medium_findings,omitempty"`
	LowFindings      *string            `json:"low_findings,omitempty"`
	Status           *models.VAPTStatus `json:"status,omitempty"`
}

// VAPT returns a copy of the engagement list.
func (s *Store) VAPT() []models.VAPTAssessment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.VAPTAssessment, len(s.vapt))
	copy(out, s.vapt)
	return out
}

// UpdateVAPT applies a patch to one engagement.
func (s *Store) UpdateVAPT(id uuid.UUID, patch VAPTPatch) (models.VAPTAssessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.vaptIndex(id)
	if i < 0 {
		return models.VAPTAssessment{}, fmt.Errorf("%w: %s", ErrVAPTNotFound, id)
	}

	v := &s.vapt[i]
	if patch.Scope != nil {
		v.Scope = *patch.Scope
	}
	if patch.Vendor != nil {
		v.Vendor = *patch.Vendor
	}
	if patch.StartDate != nil {
		v.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		v.EndDate = *patch.EndDate
	}
	if patch.CriticalFindings != nil {
		v.CriticalFindings = *patch.CriticalFindings
	}
	if patch.HighFindings != nil {
		v.HighFindings = *patch.HighFindings
	}
	if patch.MediumFindings != nil {
		v.MediumFindings = *patch.MediumFindings
	}
	if patch.LowFindings != nil {
		v.LowFindings = *patch.LowFindings
	}
	if patch.Status != nil {
		v.Status = *patch.Status
	}
	return *v, nil
}

// AttachVAPTReport records the uploaded report metadata and marks the
// engagement completed.
func (s *Store) AttachVAPTReport(id uuid.UUID, name string, size int64) (models.VAPTAssessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.vaptIndex(id)
	if i < 0 {
		return models.VAPTAssessment{}, fmt.Errorf("%w: %s", ErrVAPTNotFound, id)
	}

	v := &s.vapt[i]
	v.ReportFileName = name
	v.ReportFileSize = size
	v.Status = models.VAPTStatusCompleted
	return *v, nil
}

func (s *Store) vaptIndex(id uuid.UUID) int {
	for i := range s.vapt {
		if s.vapt[i].ID == id {
			return i
		}
	}
	return -1
}
