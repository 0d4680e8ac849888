package service

import (
	"fmt"
	"strings"

	"github.com/symptom-triage-server/internal/domain"
)

// RecommendationBuilder assembles the ordered, human-readable action list for
// an analysis. It never fails; an empty match list yields a fixed fallback.
type RecommendationBuilder struct {
	policy domain.ScoringConfig
}

// NewRecommendationBuilder creates a builder with the given policy (the top-3
// cutoff and diagnostic/treatment item limits follow it).
func NewRecommendationBuilder(policy domain.ScoringConfig) *RecommendationBuilder {
	return &RecommendationBuilder{policy: policy}
}

// Limits on how many catalog items each recommendation block carries.
const (
	maxDiagnosticItems = 3
	maxTreatmentItems  = 2
	maxPreventionItems = 2
)

var emergencyDirectives = []string{
	"URGENT: Seek emergency medical care immediately.",
	"Call the national emergency line or go to the nearest hospital now.",
}

var noMatchFallback = []string{
	"No clear condition pattern identified from the reported symptoms.",
	"Monitor symptoms and seek care if they worsen or persist beyond 48 hours.",
	"Follow up with the nearest health facility for assessment.",
}

var genericCulturalNotes = []string{
	"Ask about traditional remedies already taken before prescribing.",
	"Involve trusted family members in care decisions where the patient wishes.",
	"Use the patient's preferred language for health instructions.",
}

// regionalNotes is a small static lookup of context notes per region.
var regionalNotes = map[domain.Region][]string{
	domain.RegionCoastal: {
		"Coastal area: consider waterborne disease exposure from flooding and shared wells.",
	},
	domain.RegionNorthern: {
		"Northern area: dry-season heat and dust raise heat illness and respiratory risk.",
	},
	domain.RegionMining: {
		"Mining area: ask about occupational dust exposure and underground work history.",
	},
	domain.RegionRural: {
		"Rural area: factor in travel time to the nearest referral facility when advising follow-up.",
	},
	domain.RegionUrban: {
		"Urban area: crowded housing increases transmission risk for respiratory infections.",
	},
}

// BuildResult is the builder's output: the ordered recommendation list plus
// the regional and cultural note groups surfaced separately on the result.
type BuildResult struct {
	Recommendations []string
	RegionalNotes   []string
	CulturalNotes   []string
}

// Build assembles recommendations from the top matches in deterministic
// order: emergency directives, per-match diagnostic blocks, top-match
// treatment and prevention, then deduplicated regional and cultural notes.
func (b *RecommendationBuilder) Build(topMatches []domain.DiseaseMatch, emergency bool, region domain.Region) BuildResult {
	regional := dedupe(regionalNotes[region])
	cultural := b.culturalNotes(topMatches)

	if len(topMatches) == 0 {
		recs := append([]string{}, noMatchFallback...)
		recs = append(recs, regional...)
		return BuildResult{
			Recommendations: recs,
			RegionalNotes:   regional,
			CulturalNotes:   cultural,
		}
	}

	recs := make([]string, 0, 16)
	if emergency {
		recs = append(recs, emergencyDirectives...)
	}

	for i, m := range topMatches {
		rec := m.Condition
		label := rec.Name("en")
		for _, step := range limit(rec.DiagnosticApproach, maxDiagnosticItems) {
			recs = append(recs, fmt.Sprintf("%s - consider: %s", label, step))
		}
		if i == 0 {
			for _, step := range limit(rec.TreatmentApproach, maxTreatmentItems) {
				recs = append(recs, fmt.Sprintf("%s - treatment: %s", label, step))
			}
			for _, step := range limit(rec.PreventionMeasures, maxPreventionItems) {
				recs = append(recs, fmt.Sprintf("%s - prevention: %s", label, step))
			}
		}
	}

	recs = append(recs, regional...)
	recs = append(recs, cultural...)

	return BuildResult{
		Recommendations: recs,
		RegionalNotes:   regional,
		CulturalNotes:   cultural,
	}
}

// culturalNotes aggregates cultural considerations across the top matches,
// deduplicated, falling back to the generic prompts when no record carries any.
func (b *RecommendationBuilder) culturalNotes(topMatches []domain.DiseaseMatch) []string {
	collected := make([]string, 0)
	for _, m := range topMatches {
		collected = append(collected, m.Condition.CulturalConsiderations...)
	}
	collected = dedupe(collected)
	if len(collected) == 0 {
		return append([]string{}, genericCulturalNotes...)
	}
	return collected
}

func limit(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// dedupe preserves first-seen order while dropping case-insensitive repeats.
func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		key := strings.ToLower(strings.TrimSpace(item))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	return out
}
