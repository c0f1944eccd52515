package services

import "isms-lab/internal/domain/models"

// ratingWeight maps a qualitative rating to its numeric weight.
// Unknown or empty ratings carry no weight.
var ratingWeight = map[models.RiskRating]int{
	models.RatingLow:    1,
	models.RatingMedium: 2,
	models.RatingHigh:   3,
}

// CalculateRiskLevel derives a risk level from likelihood and impact
// on a 3x3 matrix. If either factor is unset the risk is unscored and
// the empty level is returned; callers render it as "Not Calculated".
func CalculateRiskLevel(likelihood, impact models.RiskRating) models.RiskLevel {
	l, lok := ratingWeight[likelihood]
	i, iok := ratingWeight[impact]
	if !lok || !iok {
		return models.RiskLevelUnscored
	}

	switch score := l * i; {
	case score >= 6:
		return models.RiskLevelCritical
	case score >= 4:
		return models.RiskLevelHigh
	case score >= 2:
		return models.RiskLevelMedium
	default:
		return models.RiskLevelLow
	}
}
