package domain

import "testing"

func TestSeverityFactors(t *testing.T) {
	tests := []struct {
		name     string
		value    SymptomSeverity
		expected float64
	}{
		{"critical", SeverityCritical, 1.0},
		{"severe", SeveritySevere, 0.8},
		{"moderate", SeverityModerate, 0.6},
		{"mild", SeverityMild, 0.4},
		{"unknown", SymptomSeverity("bogus"), 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.Factor(); got != tt.expected {
				t.Errorf("Expected %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestFrequencyFactors(t *testing.T) {
	tests := []struct {
		name     string
		value    SymptomFrequency
		expected float64
	}{
		{"universal", FrequencyUniversal, 1.0},
		{"very common", FrequencyVeryCommon, 0.9},
		{"common", FrequencyCommon, 0.7},
		{"occasional", FrequencyOccasional, 0.5},
		{"rare", FrequencyRare, 0.3},
		{"unknown", SymptomFrequency("bogus"), 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.Factor(); got != tt.expected {
				t.Errorf("Expected %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestPrevalenceWeights(t *testing.T) {
	tests := []struct {
		name     string
		value    Prevalence
		expected float64
	}{
		{"very high", PrevalenceVeryHigh, 1.0},
		{"high", PrevalenceHigh, 0.8},
		{"moderate", PrevalenceModerate, 0.6},
		{"low", PrevalenceLow, 0.4},
		{"rare", PrevalenceRare, 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.Weight(); got != tt.expected {
				t.Errorf("Expected %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestRegionCovers(t *testing.T) {
	tests := []struct {
		name     string
		record   Region
		query    Region
		expected bool
	}{
		{"exact match", RegionCoastal, RegionCoastal, true},
		{"record national wildcard", RegionNational, RegionMining, true},
		{"query national wildcard", RegionUrban, RegionNational, true},
		{"both national", RegionNational, RegionNational, true},
		{"mismatch", RegionCoastal, RegionNorthern, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.record.Covers(tt.query); got != tt.expected {
				t.Errorf("%s.Covers(%s) = %v, want %v", tt.record, tt.query, got, tt.expected)
			}
		})
	}
}

func TestNormalizeRegion(t *testing.T) {
	tests := []struct {
		name     string
		input    Region
		expected Region
	}{
		{"empty defaults to national", Region(""), RegionNational},
		{"unknown defaults to national", Region("offshore"), RegionNational},
		{"valid passes through", RegionRural, RegionRural},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeRegion(tt.input); got != tt.expected {
				t.Errorf("NormalizeRegion(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestConditionRecordValidate(t *testing.T) {
	valid := ConditionRecord{
		ID:            "test",
		DisplayNames:  map[string]string{"en": "Test"},
		Category:      CategoryNonCommunicable,
		Prevalence:    PrevalenceLow,
		Region:        RegionNational,
		ResourceLevel: ResourcePrimary,
		Symptoms: []SymptomSpec{
			{Name: "fever", Severity: SeverityMild, Frequency: FrequencyCommon, DifferentialImportance: 0.5},
		},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid record failed validation: %v", err)
	}

	noSymptoms := valid
	noSymptoms.Symptoms = nil
	if err := noSymptoms.Validate(); err == nil {
		t.Error("expected validation error for record without symptoms")
	}

	badRegion := valid
	badRegion.Region = Region("atlantis")
	if err := badRegion.Validate(); err == nil {
		t.Error("expected validation error for unknown region")
	}
}

func TestDefaultScoringConfig(t *testing.T) {
	cfg := DefaultScoringConfig()

	if cfg.SymptomWeight != 0.6 || cfg.RegionWeight != 0.15 || cfg.RiskFactorWeight != 0.15 || cfg.PrevalenceWeight != 0.10 {
		t.Errorf("unexpected default weights: %+v", cfg)
	}
	if cfg.SimilarityThreshold != 0.8 {
		t.Errorf("similarity threshold = %f, want 0.8", cfg.SimilarityThreshold)
	}
	if cfg.InclusionThreshold != 0.1 {
		t.Errorf("inclusion threshold = %f, want 0.1", cfg.InclusionThreshold)
	}
	if cfg.MaxMatches != 10 || cfg.TopMatches != 3 {
		t.Errorf("cutoffs = %d/%d, want 10/3", cfg.MaxMatches, cfg.TopMatches)
	}
}
