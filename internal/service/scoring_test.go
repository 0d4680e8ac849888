package service

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/symptom-triage-server/internal/catalog"
	"github.com/symptom-triage-server/internal/domain"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestEngine() *ScoringEngine {
	return NewScoringEngine(domain.DefaultScoringConfig(), testLogger())
}

// fixtureCatalog is a small dependency-injected catalog for scoring tests.
func fixtureCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]*domain.ConditionRecord{
		{
			ID:            "fever-condition",
			DisplayNames:  map[string]string{"en": "Fever condition"},
			Category:      domain.CategoryEndemicInfectious,
			Prevalence:    domain.PrevalenceHigh,
			Region:        domain.RegionNational,
			ResourceLevel: domain.ResourcePrimary,
			Symptoms: []domain.SymptomSpec{
				{Name: "fever", Severity: domain.SeveritySevere, Frequency: domain.FrequencyUniversal, DifferentialImportance: 0.9},
				{Name: "chills", Severity: domain.SeverityModerate, Frequency: domain.FrequencyCommon, DifferentialImportance: 0.6},
			},
			RiskFactors: []string{"standing water", "no bed net"},
		},
		{
			ID:            "skin-condition",
			DisplayNames:  map[string]string{"en": "Skin condition"},
			Category:      domain.CategoryEnvironmental,
			Prevalence:    domain.PrevalenceLow,
			Region:        domain.RegionCoastal,
			ResourceLevel: domain.ResourcePrimary,
			Symptoms: []domain.SymptomSpec{
				{Name: "itchy rash", Severity: domain.SeverityMild, Frequency: domain.FrequencyVeryCommon, DifferentialImportance: 0.8},
			},
		},
	})
	require.NoError(t, err)
	return c
}

func TestScoreBounds(t *testing.T) {
	engine := newTestEngine()
	snapshot := catalog.Default()

	queries := []*domain.Query{
		{Symptoms: []string{"fever"}, Region: domain.RegionNational},
		{Symptoms: []string{"persistent cough", "weight loss"}, Region: domain.RegionMining},
		{Symptoms: []string{"zzz unmatched gibberish"}, Region: domain.RegionCoastal},
		{Symptoms: []string{"chest pain"}, RiskFactors: []string{"smoking", "diabetes"}},
	}

	for _, q := range queries {
		for _, rec := range snapshot.All() {
			score := engine.Score(q, rec)
			assert.GreaterOrEqual(t, score, 0.0, "record %s", rec.ID)
			assert.LessOrEqual(t, score, 1.0, "record %s", rec.ID)
		}
	}
}

func TestRankSortedDescending(t *testing.T) {
	engine := newTestEngine()
	snapshot := catalog.Default()

	matches := engine.Rank(snapshot, &domain.Query{
		Symptoms: []string{"fever", "headache", "cough"},
		Region:   domain.RegionNational,
	})

	require.NotEmpty(t, matches)
	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].MatchScore, matches[i].MatchScore,
			"matches must be sorted descending")
	}
	assert.LessOrEqual(t, len(matches), domain.DefaultScoringConfig().MaxMatches)
}

func TestRankEmptySymptomsYieldsNoMatches(t *testing.T) {
	engine := newTestEngine()

	assert.Empty(t, engine.Rank(catalog.Default(), &domain.Query{}))
	assert.Empty(t, engine.Rank(catalog.Default(), &domain.Query{Symptoms: []string{"", "   "}}))
}

func TestRankCaseInsensitive(t *testing.T) {
	engine := newTestEngine()
	snapshot := catalog.Default()

	upper := engine.Rank(snapshot, &domain.Query{Symptoms: []string{"COUGH"}, Region: domain.RegionNational})
	lower := engine.Rank(snapshot, &domain.Query{Symptoms: []string{"cough"}, Region: domain.RegionNational})

	require.Equal(t, len(upper), len(lower))
	for i := range upper {
		assert.Equal(t, upper[i].Condition.ID, lower[i].Condition.ID)
		assert.Equal(t, upper[i].MatchScore, lower[i].MatchScore)
	}
}

func TestRankInclusionThreshold(t *testing.T) {
	engine := newTestEngine()
	threshold := domain.DefaultScoringConfig().InclusionThreshold

	matches := engine.Rank(catalog.Default(), &domain.Query{
		Symptoms: []string{"fever"},
		Region:   domain.RegionNational,
	})
	for _, m := range matches {
		assert.Greater(t, m.MatchScore, threshold, "record %s below inclusion threshold", m.Condition.ID)
	}
}

func TestRegionalComponentHalvesOnMismatch(t *testing.T) {
	engine := newTestEngine()
	snapshot := fixtureCatalog(t)

	rec, err := snapshot.ByID("skin-condition")
	require.NoError(t, err)

	matchingRegion := engine.Score(&domain.Query{Symptoms: []string{"itchy rash"}, Region: domain.RegionCoastal}, rec)
	mismatchedRegion := engine.Score(&domain.Query{Symptoms: []string{"itchy rash"}, Region: domain.RegionNorthern}, rec)

	assert.Greater(t, matchingRegion, mismatchedRegion,
		"regional mismatch must lower the score, not zero it")
	assert.Greater(t, mismatchedRegion, 0.0)
}

func TestRiskFactorOverlap(t *testing.T) {
	engine := newTestEngine()
	snapshot := fixtureCatalog(t)

	rec, err := snapshot.ByID("fever-condition")
	require.NoError(t, err)

	without := engine.Score(&domain.Query{Symptoms: []string{"fever"}, Region: domain.RegionNational}, rec)
	with := engine.Score(&domain.Query{
		Symptoms:    []string{"fever"},
		Region:      domain.RegionNational,
		RiskFactors: []string{"standing water near the house"},
	}, rec)

	assert.Greater(t, with, without, "overlapping risk factors must raise the score")
}

func TestRiskFactorComponentSkippedWhenRecordDeclaresNone(t *testing.T) {
	engine := newTestEngine()
	snapshot := fixtureCatalog(t)

	rec, err := snapshot.ByID("skin-condition")
	require.NoError(t, err)

	// The record declares no risk factors, so reported factors must not
	// change the score in either direction.
	plain := engine.Score(&domain.Query{Symptoms: []string{"rash"}, Region: domain.RegionCoastal}, rec)
	withFactors := engine.Score(&domain.Query{
		Symptoms:    []string{"rash"},
		Region:      domain.RegionCoastal,
		RiskFactors: []string{"anything at all"},
	}, rec)

	assert.Equal(t, plain, withFactors)
}
