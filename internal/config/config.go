// Package config loads application configuration from file, environment and
// defaults via Viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/symptom-triage-server/internal/domain"
)

// Manager implements the domain.ConfigManager interface using Viper
type Manager struct {
	config *domain.Config
}

// NewManager creates a new configuration manager
func NewManager() (*Manager, error) {
	m := &Manager{}
	if err := m.loadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return m, nil
}

// loadConfig loads configuration from various sources
func (m *Manager) loadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/symptom-triage-server/")

	viper.SetEnvPrefix("TRIAGE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	m.setDefaults()

	// Config file is optional; defaults and env vars apply without one.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &domain.Config{}
	if err := viper.Unmarshal(config); err != nil {
		return fmt.Errorf("error unmarshaling config: %w", err)
	}

	m.config = config
	return nil
}

// setDefaults sets default configuration values
func (m *Manager) setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")
	viper.SetDefault("server.tls_enabled", false)

	// Scoring policy defaults mirror the values the catalog was curated
	// against; they are tunable, not contractual.
	scoring := domain.DefaultScoringConfig()
	viper.SetDefault("scoring.symptom_weight", scoring.SymptomWeight)
	viper.SetDefault("scoring.region_weight", scoring.RegionWeight)
	viper.SetDefault("scoring.risk_factor_weight", scoring.RiskFactorWeight)
	viper.SetDefault("scoring.prevalence_weight", scoring.PrevalenceWeight)
	viper.SetDefault("scoring.similarity_threshold", scoring.SimilarityThreshold)
	viper.SetDefault("scoring.inclusion_threshold", scoring.InclusionThreshold)
	viper.SetDefault("scoring.max_matches", scoring.MaxMatches)
	viper.SetDefault("scoring.top_matches", scoring.TopMatches)
	viper.SetDefault("scoring.urgent_score", scoring.UrgentScore)
	viper.SetDefault("scoring.same_day_score", scoring.SameDayScore)

	// Cache defaults
	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.memory_size", 512)
	viper.SetDefault("cache.redis_url", "")
	viper.SetDefault("cache.default_ttl", "15m")
	viper.SetDefault("cache.pool_size", 10)
	viper.SetDefault("cache.pool_timeout", "4s")

	// Rate limit defaults
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_second", 20)
	viper.SetDefault("rate_limit.burst", 40)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("logging.output", "stdout")
}

// GetConfig returns the complete configuration
func (m *Manager) GetConfig() *domain.Config {
	return m.config
}

// GetServerConfig returns server configuration
func (m *Manager) GetServerConfig() *domain.ServerConfig {
	return &m.config.Server
}

// GetScoringConfig returns the scoring policy configuration
func (m *Manager) GetScoringConfig() *domain.ScoringConfig {
	return &m.config.Scoring
}

// GetCacheConfig returns cache configuration
func (m *Manager) GetCacheConfig() *domain.CacheConfig {
	return &m.config.Cache
}

// Reload reloads the configuration
func (m *Manager) Reload() error {
	return m.loadConfig()
}

// Validate validates the configuration
func (m *Manager) Validate() error {
	config := m.config

	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	s := config.Scoring
	for name, v := range map[string]float64{
		"symptom_weight":       s.SymptomWeight,
		"region_weight":        s.RegionWeight,
		"risk_factor_weight":   s.RiskFactorWeight,
		"prevalence_weight":    s.PrevalenceWeight,
		"similarity_threshold": s.SimilarityThreshold,
		"inclusion_threshold":  s.InclusionThreshold,
		"urgent_score":         s.UrgentScore,
		"same_day_score":       s.SameDayScore,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("scoring.%s must be in [0,1], got %f", name, v)
		}
	}
	if s.MaxMatches <= 0 {
		return fmt.Errorf("scoring.max_matches must be positive, got %d", s.MaxMatches)
	}
	if s.TopMatches <= 0 || s.TopMatches > s.MaxMatches {
		return fmt.Errorf("scoring.top_matches must be in [1,%d], got %d", s.MaxMatches, s.TopMatches)
	}

	if config.RateLimit.Enabled {
		if config.RateLimit.RequestsPerSecond <= 0 {
			return fmt.Errorf("rate_limit.requests_per_second must be positive")
		}
		if config.RateLimit.Burst <= 0 {
			return fmt.Errorf("rate_limit.burst must be positive")
		}
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true, "fatal": true, "panic": true,
	}
	if !validLogLevels[strings.ToLower(config.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s", config.Logging.Level)
	}

	return nil
}
