package services

import (
	"testing"

	"isms-lab/internal/domain/models"
)

func TestCalculateRiskLevel_Matrix(t *testing.T) {
	tests := []struct {
		likelihood models.RiskRating
		impact     models.RiskRating
		want       models.RiskLevel
	}{
		{models.RatingLow, models.RatingLow, models.RiskLevelLow},
		{models.RatingLow, models.RatingMedium, models.RiskLevelMedium},
		{models.RatingMedium, models.RatingLow, models.RiskLevelMedium},
		{models.RatingLow, models.RatingHigh, models.RiskLevelMedium},
		{models.RatingHigh, models.RatingLow, models.RiskLevelMedium},
		{models.RatingMedium, models.RatingMedium, models.RiskLevelHigh},
		{models.RatingMedium, models.RatingHigh, models.RiskLevelCritical},
		{models.RatingHigh, models.RatingMedium, models.RiskLevelCritical},
		{models.RatingHigh, models.RatingHigh, models.RiskLevelCritical},
	}

	for _, tt := range tests {
		got := CalculateRiskLevel(tt.likelihood, tt.impact)
		if got != tt.want {
			t.Errorf("CalculateRiskLevel(%q, %q) = %q, want %q", tt.likelihood, tt.impact, got, tt.want)
		}
	}
}

func TestCalculateRiskLevel_Unscored(t *testing.T) {
	tests := []struct {
		name       string
		likelihood models.RiskRating
		impact     models.RiskRating
	}{
		{"both unset", models.RatingUnset, models.RatingUnset},
		{"likelihood unset", models.RatingUnset, models.RatingHigh},
		{"impact unset", models.RatingHigh, models.RatingUnset},
		{"unknown rating", "Severe", models.RatingHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateRiskLevel(tt.likelihood, tt.impact); got != models.RiskLevelUnscored {
				t.Errorf("got %q, want unscored", got)
			}
		})
	}
}
