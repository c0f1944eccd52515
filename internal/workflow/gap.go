package workflow

import (
	"fmt"

	"isms-lab/internal/domain/models"
)

// AssessmentPatch carries the editable fields of a control assessment.
// Nil fields are left unchanged.
type AssessmentPatch struct {
	Status                *models.ImplementationStatus `json:"status,omitempty"`
	ImplementationDetails *string                      `json:"implementation_details,omitempty"`
	EvidenceDescription   *string                      `json:"evidence_description,omitempty"`
	IdentifiedGaps        *string                      `json:"identified_gaps,omitempty"`
	Priority              *models.Priority             `json:"priority,omitempty"`
}

// Assessments returns a copy of all control assessments in catalog
// order. Copies do not share Answers or EvidenceFiles with the store,
// so callers may read them while other requests keep writing.
func (s *Store) Assessments() []models.ControlAssessment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ControlAssessment, len(s.assessments))
	for i := range s.assessments {
		out[i] = s.assessments[i].Clone()
	}
	return out
}

// Assessment returns the assessment for one control.
func (s *Store) Assessment(controlID string) (models.ControlAssessment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.assessmentIndex(controlID)
	if i < 0 {
		return models.ControlAssessment{}, fmt.Errorf("%w: %s", ErrAssessmentNotFound, controlID)
	}
	return s.assessments[i].Clone(), nil
}

// UpdateAssessment applies a patch to one control's assessment.
func (s *Store) UpdateAssessment(controlID string, patch AssessmentPatch) (models.ControlAssessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.assessmentIndex(controlID)
	if i < 0 {
		return models.ControlAssessment{}, fmt.Errorf("%w: %s", ErrAssessmentNotFound, controlID)
	}

	a := &s.assessments[i]
	if patch.Status != nil {
		a.Status = *patch.Status
	}
	if patch.ImplementationDetails != nil {
		a.ImplementationDetails = *patch.ImplementationDetails
	}
	if patch.EvidenceDescription != nil {
		a.EvidenceDescription = *patch.EvidenceDescription
	}
	if patch.IdentifiedGaps != nil {
		a.IdentifiedGaps = *patch.IdentifiedGaps
	}
	if patch.Priority != nil {
		a.Priority = *patch.Priority
	}
	return a.Clone(), nil
}

// SetAnswers merges follow-up answers for one control. Keys that do
// not match a generated question id are dropped.
func (s *Store) SetAnswers(controlID string, answers map[string]string) (models.ControlAssessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.assessmentIndex(controlID)
	if i < 0 {
		return models.ControlAssessment{}, fmt.Errorf("%w: %s", ErrAssessmentNotFound, controlID)
	}

	a := &s.assessments[i]
	if a.Answers == nil {
		a.Answers = map[string]string{}
	}
	for id, answer := range answers {
		if !hasQuestion(a.Questions, id) {
			continue
		}
		a.Answers[id] = answer
	}
	return a.Clone(), nil
}

// AddEvidenceFiles appends uploaded evidence metadata to a control.
func (s *Store) AddEvidenceFiles(controlID string, files []models.EvidenceFile) (models.ControlAssessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.assessmentIndex(controlID)
	if i < 0 {
		return models.ControlAssessment{}, fmt.Errorf("%w: %s", ErrAssessmentNotFound, controlID)
	}

	a := &s.assessments[i]
	a.EvidenceFiles = append(a.EvidenceFiles, files...)
	return a.Clone(), nil
}

// ApplyEvidence merges rows of a completed evidence template into the
// matching assessments and returns how many rows were applied. Rows
// with unknown control ids are skipped. A row's description falls back
// to the existing value when blank; location, owner and date are taken
// as-is.
func (s *Store) ApplyEvidence(updates []models.EvidenceUpdate) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	applied := 0
	for _, u := range updates {
		i := s.assessmentIndex(u.ControlID)
		if i < 0 {
			continue
		}
		a := &s.assessments[i]
		if u.Description != "" {
			a.EvidenceDescription = u.Description
		}
		a.EvidenceLocation = u.Location
		a.EvidenceOwner = u.Owner
		a.EvidenceUpdated = u.LastUpdated
		applied++
	}

	s.log.Info().
		Int("rows", len(updates)).
		Int("applied", applied).
		Msg("evidence template applied")

	return applied
}

// assessmentIndex is called with the mutex held.
func (s *Store) assessmentIndex(controlID string) int {
	for i := range s.assessments {
		if s.assessments[i].ControlID == controlID {
			return i
		}
	}
	return -1
}

func hasQuestion(questions []models.FollowUpQuestion, id string) bool {
	for _, q := range questions {
		if q.ID == id {
			return true
		}
	}
	return false
}
