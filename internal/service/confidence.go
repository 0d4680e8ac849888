package service

import "github.com/symptom-triage-server/internal/domain"

// confidenceSpreadFactor rewards separation between the top match and the
// runner-up: a distinct best match is more trustworthy than a crowded field.
const confidenceSpreadFactor = 0.3

// Confidence combines the top score and the top-to-second spread into a single
// [0,1] value. No matches means no confidence; a single match contributes its
// score with a vanishing spread term.
func Confidence(matches []domain.DiseaseMatch) float64 {
	if len(matches) == 0 {
		return 0.0
	}

	top := matches[0].MatchScore
	second := top
	if len(matches) > 1 {
		second = matches[1].MatchScore
	}

	confidence := top + confidenceSpreadFactor*(top-second)
	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence
}
