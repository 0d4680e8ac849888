package service

import (
	"strings"

	"github.com/symptom-triage-server/internal/domain"
	"github.com/symptom-triage-server/internal/textmatch"
)

// RiskStratifier derives the emergency flag and the urgency/risk levels from a
// ranked match list and the raw query symptoms. It is state-free: thresholds
// come from the scoring policy.
type RiskStratifier struct {
	policy domain.ScoringConfig
}

// NewRiskStratifier creates a stratifier with the given policy thresholds.
func NewRiskStratifier(policy domain.ScoringConfig) *RiskStratifier {
	return &RiskStratifier{policy: policy}
}

// EmergencyRisk reports whether any top-ranked record carries an emergency
// indicator that textually overlaps, in either direction, with any raw query
// symptom string.
func (r *RiskStratifier) EmergencyRisk(topMatches []domain.DiseaseMatch, rawSymptoms []string) bool {
	for _, m := range topMatches {
		for _, indicator := range m.Condition.EmergencyIndicators {
			for _, symptom := range rawSymptoms {
				if textmatch.ContainsEither(indicator, symptom) {
					return true
				}
			}
		}
	}
	return false
}

// Urgency maps the emergency flag and the top score onto the care timeline.
func (r *RiskStratifier) Urgency(emergency bool, matches []domain.DiseaseMatch) domain.UrgencyLevel {
	if emergency {
		return domain.UrgencyEmergency
	}
	top := topScore(matches)
	switch {
	case top > r.policy.UrgentScore:
		return domain.UrgencyUrgent
	case top > r.policy.SameDayScore:
		return domain.UrgencySameDay
	default:
		return domain.UrgencyRoutine
	}
}

// Risk maps the emergency flag and the top score onto an overall risk level,
// escalating to high when a top match's complications mention death or organ
// failure.
func (r *RiskStratifier) Risk(emergency bool, topMatches []domain.DiseaseMatch) domain.RiskLevel {
	if emergency {
		return domain.RiskCritical
	}

	level := domain.RiskLow
	top := topScore(topMatches)
	switch {
	case top > r.policy.UrgentScore:
		level = domain.RiskHigh
	case top > r.policy.SameDayScore:
		level = domain.RiskModerate
	}

	if level != domain.RiskHigh && hasFatalComplication(topMatches) {
		level = domain.RiskHigh
	}
	return level
}

func hasFatalComplication(matches []domain.DiseaseMatch) bool {
	for _, m := range matches {
		for _, complication := range m.Condition.Complications {
			text := strings.ToLower(complication)
			if strings.Contains(text, "death") || strings.Contains(text, "failure") {
				return true
			}
		}
	}
	return false
}

func topScore(matches []domain.DiseaseMatch) float64 {
	if len(matches) == 0 {
		return 0
	}
	return matches[0].MatchScore
}
