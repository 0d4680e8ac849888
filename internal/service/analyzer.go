// Package service implements the symptom-to-condition matching engine: the
// scoring engine, risk stratifier, confidence estimator and recommendation
// builder, orchestrated by the AnalyzerService.
package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/symptom-triage-server/internal/cache"
	"github.com/symptom-triage-server/internal/catalog"
	"github.com/symptom-triage-server/internal/domain"
)

// AnalyzerService ranks the condition catalog against a query and derives
// emergency risk, urgency, confidence and recommendations. The whole pipeline
// is a pure function of the query and one immutable catalog snapshot, so the
// service is safe for arbitrarily many concurrent callers and its results are
// cacheable.
type AnalyzerService struct {
	logger      *logrus.Logger
	store       *catalog.Store
	engine      *ScoringEngine
	stratifier  *RiskStratifier
	builder     *RecommendationBuilder
	resultCache *cache.ResultCache
	policy      domain.ScoringConfig
}

// NewAnalyzerService creates an analyzer. resultCache may be nil to disable
// caching entirely.
func NewAnalyzerService(
	store *catalog.Store,
	policy domain.ScoringConfig,
	resultCache *cache.ResultCache,
	logger *logrus.Logger,
) *AnalyzerService {
	return &AnalyzerService{
		logger:      logger,
		store:       store,
		engine:      NewScoringEngine(policy, logger),
		stratifier:  NewRiskStratifier(policy),
		builder:     NewRecommendationBuilder(policy),
		resultCache: resultCache,
		policy:      policy,
	}
}

// Analyze performs the complete triage workflow. It never returns an error:
// inputs are treated permissively (empty symptoms, unknown regions) and the
// degenerate no-match case yields a well-formed fallback result.
func (a *AnalyzerService) Analyze(ctx context.Context, query *domain.Query) *domain.AnalysisResult {
	startTime := time.Now()

	normalized := a.normalize(query)
	snapshot := a.store.Snapshot()

	cacheKey := ""
	if a.resultCache != nil {
		cacheKey = cache.Key(normalized, snapshot.Fingerprint())
		if cached, ok := a.resultCache.Get(ctx, cacheKey); ok {
			a.logger.WithField("symptom_count", len(normalized.Symptoms)).Debug("Serving analysis from cache")
			return cached
		}
	}

	a.logger.WithFields(logrus.Fields{
		"symptom_count": len(normalized.Symptoms),
		"region":        normalized.Region.String(),
		"risk_factors":  len(normalized.RiskFactors),
	}).Info("Starting symptom analysis")

	allMatches := a.engine.Rank(snapshot, normalized)

	topN := a.policy.TopMatches
	if topN > len(allMatches) {
		topN = len(allMatches)
	}
	topMatches := allMatches[:topN]

	emergency := a.stratifier.EmergencyRisk(topMatches, normalized.Symptoms)
	urgency := a.stratifier.Urgency(emergency, allMatches)
	risk := a.stratifier.Risk(emergency, topMatches)
	confidence := Confidence(allMatches)
	built := a.builder.Build(topMatches, emergency, normalized.Region)

	result := &domain.AnalysisResult{
		TopMatches:      topMatches,
		AllMatches:      allMatches,
		EmergencyRisk:   emergency,
		Urgency:         urgency,
		RiskLevel:       risk,
		Confidence:      confidence,
		Recommendations: built.Recommendations,
		RegionalNotes:   built.RegionalNotes,
		CulturalNotes:   built.CulturalNotes,
	}

	if a.resultCache != nil {
		a.resultCache.Set(ctx, cacheKey, result)
	}

	fields := logrus.Fields{
		"matches":         len(allMatches),
		"emergency_risk":  emergency,
		"confidence":      confidence,
		"processing_time": time.Since(startTime),
	}
	for k, v := range urgency.LogFields() {
		fields[k] = v
	}
	if len(topMatches) > 0 {
		fields["top_condition"] = topMatches[0].Condition.ID
		fields["top_score"] = topMatches[0].MatchScore
	}
	a.logger.WithFields(fields).Info("Symptom analysis completed")

	return result
}

// normalize produces the canonical query the pipeline and the cache key both
// see: trimmed symptoms and a valid region. Age and sex are carried through
// for audit but do not influence scoring.
func (a *AnalyzerService) normalize(query *domain.Query) *domain.Query {
	if query == nil {
		query = &domain.Query{}
	}
	return &domain.Query{
		Symptoms:    nonBlank(query.Symptoms),
		Age:         query.Age,
		Sex:         query.Sex,
		Region:      domain.NormalizeRegion(query.Region),
		RiskFactors: nonBlank(query.RiskFactors),
	}
}
