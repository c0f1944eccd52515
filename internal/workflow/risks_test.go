package workflow

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"isms-lab/internal/domain/models"
)

func TestUpdateRisk_RecomputesLevel(t *testing.T) {
	s := testStore()
	id := s.Risks()[0].ID

	likelihood, impact := models.RatingMedium, models.RatingMedium
	r, err := s.UpdateRisk(id, RiskPatch{Likelihood: &likelihood, Impact: &impact})
	if err != nil {
		t.Fatalf("UpdateRisk: %v", err)
	}
	if r.Level != models.RiskLevelHigh {
		t.Errorf("level = %q, want High", r.Level)
	}

	// Raising impact alone moves the level to Critical.
	impact = models.RatingHigh
	r, err = s.UpdateRisk(id, RiskPatch{Impact: &impact})
	if err != nil {
		t.Fatalf("UpdateRisk: %v", err)
	}
	if r.Level != models.RiskLevelCritical {
		t.Errorf("level = %q, want Critical", r.Level)
	}
}

func TestUpdateRisk_PartialRatingStaysUnscored(t *testing.T) {
	s := testStore()
	id := s.Risks()[0].ID

	likelihood := models.RatingHigh
	r, err := s.UpdateRisk(id, RiskPatch{Likelihood: &likelihood})
	if err != nil {
		t.Fatalf("UpdateRisk: %v", err)
	}
	if r.Level != models.RiskLevelUnscored {
		t.Errorf("level = %q, want unscored with impact unset", r.Level)
	}
}

func TestAddRemoveRisk(t *testing.T) {
	s := testStore()

	added := s.AddRisk()
	if added.Status != models.RiskStatusOpen {
		t.Errorf("added = %+v", added)
	}
	if got := len(s.Risks()); got != 2 {
		t.Fatalf("got %d risks, want 2", got)
	}

	if err := s.RemoveRisk(added.ID); err != nil {
		t.Fatalf("RemoveRisk: %v", err)
	}
	if got := len(s.Risks()); got != 1 {
		t.Errorf("got %d risks after removal, want 1", got)
	}

	if err := s.RemoveRisk(uuid.New()); !errors.Is(err, ErrRiskNotFound) {
		t.Errorf("err = %v, want ErrRiskNotFound", err)
	}
}
