package domain

import "context"

// ConfigManager provides access to application configuration
type ConfigManager interface {
	GetConfig() *Config
	GetServerConfig() *ServerConfig
	GetScoringConfig() *ScoringConfig
	Reload() error
	Validate() error
}

// CatalogReader exposes the read-only condition catalog accessors
type CatalogReader interface {
	All() []*ConditionRecord
	ByID(id string) (*ConditionRecord, error)
	ByCategory(cat Category) []*ConditionRecord
	ByRegion(region Region) []*ConditionRecord
	Search(text string) []*ConditionRecord
}

// Analyzer is the single logical operation the engine exposes: rank the
// catalog against a query and derive risk, confidence and recommendations.
// It never fails; degenerate input yields a well-formed fallback result.
type Analyzer interface {
	Analyze(ctx context.Context, query *Query) *AnalysisResult
}
