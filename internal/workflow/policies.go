package workflow

import (
	"fmt"

	"github.com/google/uuid"

	"isms-lab/internal/domain/models"
)

// PolicyPatch carries the editable fields of a policy register row.
type PolicyPatch struct {
	Name         *string              `json:"name,omitempty"`
	Version      *string              `json:"version,omitempty"`
	Owner        *string              `json:"owner,omitempty"`
	ApprovedDate *string              `json:"approved_date,omitempty"`
	ReviewDate   *string              `json:"review_date,omitempty"`
	Status       *models.PolicyStatus `json:"status,omitempty"`
}

// Policies returns a copy of the policy register.
func (s *Store) Policies() []models.Policy {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Policy, len(s.policies))
	copy(out, s.policies)
	return out
}

// AddPolicy appends a custom draft policy.
func (s *Store) AddPolicy(name string) models.Policy {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := models.Policy{
		ID:     uuid.New(),
		Name:   name,
		Status: models.PolicyStatusDraft,
	}
	s.policies = append(s.policies, p)
	return p
}

// UpdatePolicy applies a patch to one register row. Renaming a
// required policy is rejected so the seeded set stays intact.
func (s *Store) UpdatePolicy(id uuid.UUID, patch PolicyPatch) (models.Policy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.policyIndex(id)
	if i < 0 {
		return models.Policy{}, fmt.Errorf("%w: %s", ErrPolicyNotFound, id)
	}

	p := &s.policies[i]
	if patch.Name != nil && *patch.Name != p.Name {
		if models.IsRequiredPolicy(p.Name) {
			return models.Policy{}, fmt.Errorf("%w: %s", ErrPolicyRequired, p.Name)
		}
		p.Name = *patch.Name
	}
	if patch.Version != nil {
		p.Version = *patch.Version
	}
	if patch.Owner != nil {
		p.Owner = *patch.Owner
	}
	if patch.ApprovedDate != nil {
		p.ApprovedDate = *patch.ApprovedDate
	}
	if patch.ReviewDate != nil {
		p.ReviewDate = *patch.ReviewDate
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	return *p, nil
}

// RemovePolicy deletes a custom policy. Required policies cannot be
// removed.
func (s *Store) RemovePolicy(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.policyIndex(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrPolicyNotFound, id)
	}
	if models.IsRequiredPolicy(s.policies[i].Name) {
		return fmt.Errorf("%w: %s", ErrPolicyRequired, s.policies[i].Name)
	}
	s.policies = append(s.policies[:i], s.policies[i+1:]...)
	return nil
}

// AttachPolicyFile records uploaded document metadata and marks the
// policy uploaded.
func (s *Store) AttachPolicyFile(id uuid.UUID, name string, size int64) (models.Policy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.policyIndex(id)
	if i < 0 {
		return models.Policy{}, fmt.Errorf("%w: %s", ErrPolicyNotFound, id)
	}

	p := &s.policies[i]
	p.FileName = name
	p.FileSize = size
	p.Status = models.PolicyStatusUploaded
	return *p, nil
}

func (s *Store) policyIndex(id uuid.UUID) int {
	for i := range s.policies {
		if s.policies[i].ID == id {
			return i
		}
	}
	return -1
}
