package domain

import (
	"errors"
	"fmt"
)

// SymptomSpec describes one symptom as it presents for a specific condition.
// DifferentialImportance in [0,1] grades how diagnostically discriminating the
// symptom is for that condition.
type SymptomSpec struct {
	Name                   string           `json:"name" validate:"required"`
	Severity               SymptomSeverity  `json:"severity" validate:"required"`
	Frequency              SymptomFrequency `json:"frequency" validate:"required"`
	DifferentialImportance float64          `json:"differential_importance" validate:"min=0,max=1"`
}

// Validate ensures the symptom spec is usable by the scoring engine.
func (s *SymptomSpec) Validate() error {
	if s.Name == "" {
		return wrapValidation("symptom spec", errors.New("name is required"))
	}
	if !s.Severity.IsValid() {
		return wrapValidation("symptom spec", ErrInvalidSeverity)
	}
	if !s.Frequency.IsValid() {
		return wrapValidation("symptom spec", ErrInvalidFrequency)
	}
	if s.DifferentialImportance < 0 || s.DifferentialImportance > 1 {
		return wrapValidation("symptom spec", fmt.Errorf("differential importance %f outside [0,1]", s.DifferentialImportance))
	}
	return nil
}

// ConditionRecord is one curated catalog entry. Records are created at load
// time and never mutated afterwards; all request-scoped state lives elsewhere.
type ConditionRecord struct {
	ID           string            `json:"id" validate:"required"`
	DisplayNames map[string]string `json:"display_names" validate:"required"`
	Category     Category          `json:"category" validate:"required"`
	Prevalence   Prevalence        `json:"prevalence" validate:"required"`
	Region       Region            `json:"region" validate:"required"`
	Symptoms     []SymptomSpec     `json:"symptoms" validate:"required,dive"`

	RiskFactors            []string `json:"risk_factors,omitempty"`
	Complications          []string `json:"complications,omitempty"`
	DiagnosticApproach     []string `json:"diagnostic_approach,omitempty"`
	TreatmentApproach      []string `json:"treatment_approach,omitempty"`
	PreventionMeasures     []string `json:"prevention_measures,omitempty"`
	EmergencyIndicators    []string `json:"emergency_indicators,omitempty"`
	CulturalConsiderations []string `json:"cultural_considerations,omitempty"`

	ResourceLevel ResourceLevel `json:"resource_level" validate:"required"`
}

// Name returns the display name for a language tag, falling back to English
// and then to the record ID. Lookup only; no ownership implications.
func (c *ConditionRecord) Name(lang string) string {
	if name, ok := c.DisplayNames[lang]; ok {
		return name
	}
	if name, ok := c.DisplayNames["en"]; ok {
		return name
	}
	return c.ID
}

// Validate ensures the record meets catalog integrity requirements. A failure
// here is a load-time fatal condition, never a runtime one.
func (c *ConditionRecord) Validate() error {
	if c.ID == "" {
		return wrapValidation("condition record", errors.New("ID is required"))
	}
	if len(c.DisplayNames) == 0 {
		return wrapValidation("condition record", fmt.Errorf("record %s: at least one display name is required", c.ID))
	}
	if !c.Category.IsValid() {
		return wrapValidation("condition record", fmt.Errorf("record %s: %w", c.ID, ErrInvalidCategory))
	}
	if !c.Prevalence.IsValid() {
		return wrapValidation("condition record", fmt.Errorf("record %s: %w", c.ID, ErrInvalidPrevalence))
	}
	if !c.Region.IsValid() {
		return wrapValidation("condition record", fmt.Errorf("record %s: %w", c.ID, ErrInvalidRegion))
	}
	if !c.ResourceLevel.IsValid() {
		return wrapValidation("condition record", fmt.Errorf("record %s: %w", c.ID, ErrInvalidResource))
	}
	if len(c.Symptoms) == 0 {
		return wrapValidation("condition record", fmt.Errorf("record %s: at least one symptom is required", c.ID))
	}
	for i := range c.Symptoms {
		if err := c.Symptoms[i].Validate(); err != nil {
			return fmt.Errorf("record %s symptom %d: %w", c.ID, i, err)
		}
	}
	return nil
}

// Query is the per-request input: patient-reported free-text symptoms plus
// optional demographic and regional context. Strings are assumed already
// sanitized by the caller.
type Query struct {
	Symptoms    []string `json:"symptoms"`
	Age         int      `json:"age,omitempty"`
	Sex         string   `json:"sex,omitempty"`
	Region      Region   `json:"region,omitempty"`
	RiskFactors []string `json:"risk_factors,omitempty"`
}

// DiseaseMatch pairs a catalog record with its normalized relevance score.
type DiseaseMatch struct {
	Condition  *ConditionRecord `json:"condition"`
	MatchScore float64          `json:"match_score"`
}

// AnalysisResult is the complete outcome of one analysis. AllMatches is sorted
// by MatchScore descending; every score and Confidence lie in [0,1];
// Recommendations is never empty.
type AnalysisResult struct {
	TopMatches      []DiseaseMatch `json:"top_matches"`
	AllMatches      []DiseaseMatch `json:"all_matches"`
	EmergencyRisk   bool           `json:"emergency_risk"`
	Urgency         UrgencyLevel   `json:"urgency"`
	RiskLevel       RiskLevel      `json:"risk_level"`
	Confidence      float64        `json:"confidence"`
	Recommendations []string       `json:"recommendations"`
	RegionalNotes   []string       `json:"regional_notes"`
	CulturalNotes   []string       `json:"cultural_notes"`
}
