package service

import (
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/symptom-triage-server/internal/catalog"
	"github.com/symptom-triage-server/internal/domain"
	"github.com/symptom-triage-server/internal/textmatch"
)

// ScoringEngine computes the normalized relevance of every catalog record to a
// query. Scoring is a pure computation over the query and an immutable catalog
// snapshot; the engine carries no per-request state.
type ScoringEngine struct {
	logger  *logrus.Logger
	policy  domain.ScoringConfig
	matcher *textmatch.Matcher
}

// NewScoringEngine creates a scoring engine with the given policy knobs.
func NewScoringEngine(policy domain.ScoringConfig, logger *logrus.Logger) *ScoringEngine {
	return &ScoringEngine{
		logger:  logger,
		policy:  policy,
		matcher: textmatch.NewMatcher(policy.SimilarityThreshold),
	}
}

// Rank scores every record in the snapshot against the query, keeps records
// above the inclusion threshold, and returns them sorted by score descending,
// truncated to the configured maximum. An empty symptom list yields no
// matches.
func (e *ScoringEngine) Rank(snapshot *catalog.Catalog, query *domain.Query) []domain.DiseaseMatch {
	symptoms := nonBlank(query.Symptoms)
	if len(symptoms) == 0 {
		return []domain.DiseaseMatch{}
	}

	matches := make([]domain.DiseaseMatch, 0, snapshot.Len())
	for _, rec := range snapshot.All() {
		score := e.Score(query, rec)
		if score > e.policy.InclusionThreshold {
			matches = append(matches, domain.DiseaseMatch{Condition: rec, MatchScore: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})

	if len(matches) > e.policy.MaxMatches {
		matches = matches[:e.policy.MaxMatches]
	}

	e.logger.WithFields(logrus.Fields{
		"catalog_records": snapshot.Len(),
		"matches":         len(matches),
	}).Debug("Ranked catalog against query")

	return matches
}

// Score computes the match score for one (query, record) pair as a weighted
// sum of four components, normalized by the record's maximum possible sum so
// records with sparse dimensions are not penalized structurally. The result is
// always in [0,1].
func (e *ScoringEngine) Score(query *domain.Query, rec *domain.ConditionRecord) float64 {
	symScore, symMax := e.symptomComponent(query.Symptoms, rec)
	regScore, regMax := e.regionComponent(query.Region, rec)
	rfScore, rfMax := e.riskFactorComponent(query.RiskFactors, rec)
	prevScore, prevMax := e.prevalenceComponent(rec)

	total := symScore + regScore + rfScore + prevScore
	maxPossible := symMax + regMax + rfMax + prevMax
	if maxPossible == 0 {
		return 0
	}
	return total / maxPossible
}

// symptomComponent folds over the record's symptom specs: a spec contributes
// when any query symptom matches its canonical name, weighted by differential
// importance, severity and frequency. The max accumulator sums importance over
// every spec regardless of match.
func (e *ScoringEngine) symptomComponent(querySymptoms []string, rec *domain.ConditionRecord) (score, maxPossible float64) {
	for i := range rec.Symptoms {
		spec := &rec.Symptoms[i]
		maxPossible += spec.DifferentialImportance * e.policy.SymptomWeight

		if e.anySymptomMatches(querySymptoms, spec.Name) {
			symptomWeight := spec.Severity.Factor() * spec.Frequency.Factor()
			score += spec.DifferentialImportance * e.policy.SymptomWeight * symptomWeight
		}
	}
	return score, maxPossible
}

func (e *ScoringEngine) anySymptomMatches(querySymptoms []string, canonical string) bool {
	for _, reported := range querySymptoms {
		if e.matcher.Matches(reported, canonical) {
			return true
		}
	}
	return false
}

// regionComponent grants full weight when the record covers the query region
// (the national wildcard covers everything) and half weight otherwise.
func (e *ScoringEngine) regionComponent(queryRegion domain.Region, rec *domain.ConditionRecord) (score, maxPossible float64) {
	maxPossible = e.policy.RegionWeight
	if rec.Region.Covers(queryRegion) {
		return e.policy.RegionWeight, maxPossible
	}
	return 0.5 * e.policy.RegionWeight, maxPossible
}

// riskFactorComponent scores the fraction of the record's declared risk
// factors that textually overlap with any query risk factor. A record that
// declares none contributes nothing to either accumulator.
func (e *ScoringEngine) riskFactorComponent(queryFactors []string, rec *domain.ConditionRecord) (score, maxPossible float64) {
	if len(rec.RiskFactors) == 0 {
		return 0, 0
	}

	maxPossible = e.policy.RiskFactorWeight

	overlapped := 0
	for _, recorded := range rec.RiskFactors {
		for _, reported := range queryFactors {
			if textmatch.ContainsEither(recorded, reported) {
				overlapped++
				break
			}
		}
	}

	fraction := float64(overlapped) / float64(len(rec.RiskFactors))
	return fraction * e.policy.RiskFactorWeight, maxPossible
}

func (e *ScoringEngine) prevalenceComponent(rec *domain.ConditionRecord) (score, maxPossible float64) {
	return rec.Prevalence.Weight() * e.policy.PrevalenceWeight, e.policy.PrevalenceWeight
}

// nonBlank filters empty and whitespace-only entries from reported symptoms.
func nonBlank(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
