package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/symptom-triage-server/internal/domain"
)

func TestBuildFallbackWhenNoMatches(t *testing.T) {
	builder := NewRecommendationBuilder(domain.DefaultScoringConfig())

	out := builder.Build(nil, false, domain.RegionNational)

	require.NotEmpty(t, out.Recommendations)
	assert.Contains(t, out.Recommendations[0], "No clear condition pattern")
	assert.NotEmpty(t, out.CulturalNotes, "generic cultural prompts back the empty case")
}

func TestBuildEmergencyDirectivesFirst(t *testing.T) {
	builder := NewRecommendationBuilder(domain.DefaultScoringConfig())
	matches := []domain.DiseaseMatch{{
		Condition: &domain.ConditionRecord{
			ID:                 "test",
			DisplayNames:       map[string]string{"en": "Test condition"},
			DiagnosticApproach: []string{"step one"},
		},
		MatchScore: 0.9,
	}}

	out := builder.Build(matches, true, domain.RegionUrban)

	require.GreaterOrEqual(t, len(out.Recommendations), 3)
	assert.Contains(t, out.Recommendations[0], "URGENT")
	assert.Contains(t, out.Recommendations[2], "Test condition - consider: step one")
}

func TestBuildTreatmentOnlyForTopMatch(t *testing.T) {
	builder := NewRecommendationBuilder(domain.DefaultScoringConfig())
	matches := []domain.DiseaseMatch{
		{
			Condition: &domain.ConditionRecord{
				ID:                "first",
				DisplayNames:      map[string]string{"en": "First"},
				TreatmentApproach: []string{"treat first"},
			},
			MatchScore: 0.8,
		},
		{
			Condition: &domain.ConditionRecord{
				ID:                "second",
				DisplayNames:      map[string]string{"en": "Second"},
				TreatmentApproach: []string{"treat second"},
			},
			MatchScore: 0.5,
		},
	}

	out := builder.Build(matches, false, domain.RegionNational)

	joined := ""
	for _, r := range out.Recommendations {
		joined += r + "\n"
	}
	assert.Contains(t, joined, "First - treatment: treat first")
	assert.NotContains(t, joined, "treat second", "only the top match contributes treatment steps")
}

func TestBuildRegionalNotesDeduplicated(t *testing.T) {
	builder := NewRecommendationBuilder(domain.DefaultScoringConfig())
	matches := []domain.DiseaseMatch{
		{
			Condition: &domain.ConditionRecord{
				ID:                     "a",
				DisplayNames:           map[string]string{"en": "A"},
				CulturalConsiderations: []string{"Shared note"},
			},
			MatchScore: 0.7,
		},
		{
			Condition: &domain.ConditionRecord{
				ID:                     "b",
				DisplayNames:           map[string]string{"en": "B"},
				CulturalConsiderations: []string{"shared note"},
			},
			MatchScore: 0.6,
		},
	}

	out := builder.Build(matches, false, domain.RegionMining)

	assert.Len(t, out.CulturalNotes, 1, "case-insensitive duplicates collapse")
	require.Len(t, out.RegionalNotes, 1)
	assert.Contains(t, out.RegionalNotes[0], "Mining area")
}
