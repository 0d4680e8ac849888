package domain

import (
	"time"
)

// Config represents the main application configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Scoring   ScoringConfig   `mapstructure:"scoring"`
	Cache     CacheConfig     `mapstructure:"cache"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
	TLSEnabled   bool          `mapstructure:"tls_enabled"`
	CertFile     string        `mapstructure:"cert_file"`
	KeyFile      string        `mapstructure:"key_file"`
}

// ScoringConfig holds the scoring policy knobs. The defaults mirror the
// hand-tuned constants the catalog was curated against; they are configuration
// rather than contract and may be overridden per deployment.
type ScoringConfig struct {
	SymptomWeight    float64 `mapstructure:"symptom_weight"`
	RegionWeight     float64 `mapstructure:"region_weight"`
	RiskFactorWeight float64 `mapstructure:"risk_factor_weight"`
	PrevalenceWeight float64 `mapstructure:"prevalence_weight"`

	// SimilarityThreshold is the minimum normalized edit-distance similarity
	// for a fuzzy word match; InclusionThreshold is the minimum match score a
	// record needs to appear in results at all.
	SimilarityThreshold float64 `mapstructure:"similarity_threshold"`
	InclusionThreshold  float64 `mapstructure:"inclusion_threshold"`

	MaxMatches int `mapstructure:"max_matches"`
	TopMatches int `mapstructure:"top_matches"`

	// Urgency score thresholds on the top match.
	UrgentScore  float64 `mapstructure:"urgent_score"`
	SameDayScore float64 `mapstructure:"same_day_score"`
}

// DefaultScoringConfig returns the curated policy defaults.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		SymptomWeight:       0.6,
		RegionWeight:        0.15,
		RiskFactorWeight:    0.15,
		PrevalenceWeight:    0.10,
		SimilarityThreshold: 0.8,
		InclusionThreshold:  0.1,
		MaxMatches:          10,
		TopMatches:          3,
		UrgentScore:         0.8,
		SameDayScore:        0.6,
	}
}

// CacheConfig represents analysis result cache configuration
type CacheConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	MemorySize  int           `mapstructure:"memory_size"`
	RedisURL    string        `mapstructure:"redis_url"`
	DefaultTTL  time.Duration `mapstructure:"default_ttl"`
	PoolSize    int           `mapstructure:"pool_size"`
	PoolTimeout time.Duration `mapstructure:"pool_timeout"`
}

// RateLimitConfig represents API rate limiting configuration
type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
