package workflow

import (
	"fmt"

	"github.com/google/uuid"

	"isms-lab/internal/domain/models"
	"isms-lab/internal/domain/services"
)

// RiskPatch carries the editable fields of a risk entry. Level is
// absent on purpose: it is recomputed whenever likelihood or impact
// changes.
type RiskPatch struct {
	Asset            *string            `json:"asset,omitempty"`
	Threat           *string            `json:"threat,omitempty"`
	Vulnerability    *string            `json:"vulnerability,omitempty"`
	Likelihood       *models.RiskRating `json:"likelihood,omitempty"`
	Impact           *models.RiskRating `json:"impact,omitempty"`
	Treatment        *string            `json:"treatment,omitempty"`
	Owner            *string            `json:"owner,omitempty"`
	Status           *models.RiskStatus `json:"status,omitempty"`
	ExistingControls *string            `json:"existing_controls,omitempty"`
}

// Risks returns a copy of the risk register in entry order.
func (s *Store) Risks() []models.RiskEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.RiskEntry, len(s.risks))
	copy(out, s.risks)
	return out
}

// AddRisk appends a blank open risk entry and returns it.
func (s *Store) AddRisk() models.RiskEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := blankRisk()
	s.risks = append(s.risks, r)
	return r
}

// UpdateRisk applies a patch and recomputes the risk level.
func (s *Store) UpdateRisk(id uuid.UUID, patch RiskPatch) (models.RiskEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.riskIndex(id)
	if i < 0 {
		return models.RiskEntry{}, fmt.Errorf("%w: %s", ErrRiskNotFound, id)
	}

	r := &s.risks[i]
	if patch.Asset != nil {
		r.Asset = *patch.Asset
	}
	if patch.Threat != nil {
		r.Threat = *patch.Threat
	}
	if patch.Vulnerability != nil {
		r.Vulnerability = *patch.Vulnerability
	}
	if patch.Likelihood != nil {
		r.Likelihood = *patch.Likelihood
	}
	if patch.Impact != nil {
		r.Impact = *patch.Impact
	}
	if patch.Treatment != nil {
		r.Treatment = *patch.Treatment
	}
	if patch.Owner != nil {
		r.Owner = *patch.Owner
	}
	if patch.Status != nil {
		r.Status = *patch.Status
	}
	if patch.ExistingControls != nil {
		r.ExistingControls = *patch.ExistingControls
	}

	r.Level = services.CalculateRiskLevel(r.Likelihood, r.Impact)
	return *r, nil
}

// RemoveRisk deletes an entry. Positional export ids reassign on the
// next report build.
func (s *Store) RemoveRisk(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.riskIndex(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrRiskNotFound, id)
	}
	s.risks = append(s.risks[:i], s.risks[i+1:]...)
	return nil
}

func (s *Store) riskIndex(id uuid.UUID) int {
	for i := range s.risks {
		if s.risks[i].ID == id {
			return i
		}
	}
	return -1
}
