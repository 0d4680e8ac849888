// Package domain contains the core business entities and enumerations for the
// symptom-to-condition triage engine: the curated condition catalog model, the
// per-request query and result structures, and the urgency/risk vocabulary
// shared by every other package.
package domain

// Category classifies a condition record within the curated catalog.
type Category string

const (
	CategoryEndemicInfectious Category = "endemic-infectious"
	CategoryNonCommunicable   Category = "non-communicable"
	CategoryTropicalParasitic Category = "tropical-parasitic"
	CategoryNutritional       Category = "nutritional"
	CategoryEnvironmental     Category = "environmental"
	CategoryMaternalChild     Category = "maternal-child"
	CategoryMentalHealth      Category = "mental-health"
	CategoryOccupational      Category = "occupational"
	CategoryEmergencyTrauma   Category = "emergency-trauma"
)

// Prevalence is the ordered population-level frequency tier of a condition.
type Prevalence string

const (
	PrevalenceRare     Prevalence = "rare"
	PrevalenceLow      Prevalence = "low"
	PrevalenceModerate Prevalence = "moderate"
	PrevalenceHigh     Prevalence = "high"
	PrevalenceVeryHigh Prevalence = "very-high"
)

// Region identifies geographic applicability. RegionNational is the wildcard:
// a record carrying it is relevant everywhere, and a query without an explicit
// region defaults to it.
type Region string

const (
	RegionNational Region = "national"
	RegionCoastal  Region = "coastal"
	RegionNorthern Region = "northern"
	RegionMining   Region = "mining"
	RegionRural    Region = "rural"
	RegionUrban    Region = "urban"
)

// SymptomSeverity grades how severe a symptom presents for a condition.
type SymptomSeverity string

const (
	SeverityMild     SymptomSeverity = "mild"
	SeverityModerate SymptomSeverity = "moderate"
	SeveritySevere   SymptomSeverity = "severe"
	SeverityCritical SymptomSeverity = "critical"
)

// SymptomFrequency grades how often patients with the condition report the symptom.
type SymptomFrequency string

const (
	FrequencyRare       SymptomFrequency = "rare"
	FrequencyOccasional SymptomFrequency = "occasional"
	FrequencyCommon     SymptomFrequency = "common"
	FrequencyVeryCommon SymptomFrequency = "very-common"
	FrequencyUniversal  SymptomFrequency = "universal"
)

// ResourceLevel is the minimum care tier at which the condition is managed.
type ResourceLevel string

const (
	ResourcePrimary    ResourceLevel = "primary"
	ResourceSecondary  ResourceLevel = "secondary"
	ResourceTertiary   ResourceLevel = "tertiary"
	ResourceQuaternary ResourceLevel = "quaternary"
)

// UrgencyLevel is the recommended care timeline derived from an analysis.
type UrgencyLevel string

const (
	UrgencyEmergency UrgencyLevel = "emergency"
	UrgencyUrgent    UrgencyLevel = "urgent"
	UrgencySameDay   UrgencyLevel = "same-day"
	UrgencyRoutine   UrgencyLevel = "routine"
)

// RiskLevel is the overall patient risk derived from an analysis.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// IsValid reports whether the category is part of the fixed enumeration.
func (c Category) IsValid() bool {
	switch c {
	case CategoryEndemicInfectious, CategoryNonCommunicable, CategoryTropicalParasitic,
		CategoryNutritional, CategoryEnvironmental, CategoryMaternalChild,
		CategoryMentalHealth, CategoryOccupational, CategoryEmergencyTrauma:
		return true
	default:
		return false
	}
}

func (c Category) String() string { return string(c) }

// IsValid reports whether the prevalence tier is known.
func (p Prevalence) IsValid() bool {
	switch p {
	case PrevalenceRare, PrevalenceLow, PrevalenceModerate, PrevalenceHigh, PrevalenceVeryHigh:
		return true
	default:
		return false
	}
}

func (p Prevalence) String() string { return string(p) }

// Weight returns the fixed scoring multiplier for the prevalence tier.
func (p Prevalence) Weight() float64 {
	switch p {
	case PrevalenceVeryHigh:
		return 1.0
	case PrevalenceHigh:
		return 0.8
	case PrevalenceModerate:
		return 0.6
	case PrevalenceLow:
		return 0.4
	case PrevalenceRare:
		return 0.2
	default:
		return 0.0
	}
}

// IsValid reports whether the region is known.
func (r Region) IsValid() bool {
	switch r {
	case RegionNational, RegionCoastal, RegionNorthern, RegionMining, RegionRural, RegionUrban:
		return true
	default:
		return false
	}
}

func (r Region) String() string { return string(r) }

// Covers reports whether a record tagged with region r is applicable to a
// query region. The national wildcard covers everything, in both directions.
func (r Region) Covers(query Region) bool {
	return r == query || r == RegionNational || query == RegionNational
}

// NormalizeRegion maps unknown or empty region text to the national wildcard.
// Unknown regions are tolerated rather than rejected.
func NormalizeRegion(r Region) Region {
	if !r.IsValid() {
		return RegionNational
	}
	return r
}

// IsValid reports whether the severity grade is known.
func (s SymptomSeverity) IsValid() bool {
	switch s {
	case SeverityMild, SeverityModerate, SeveritySevere, SeverityCritical:
		return true
	default:
		return false
	}
}

func (s SymptomSeverity) String() string { return string(s) }

// Factor returns the scoring multiplier for the severity grade.
func (s SymptomSeverity) Factor() float64 {
	switch s {
	case SeverityCritical:
		return 1.0
	case SeveritySevere:
		return 0.8
	case SeverityModerate:
		return 0.6
	case SeverityMild:
		return 0.4
	default:
		return 0.0
	}
}

// IsValid reports whether the frequency grade is known.
func (f SymptomFrequency) IsValid() bool {
	switch f {
	case FrequencyRare, FrequencyOccasional, FrequencyCommon, FrequencyVeryCommon, FrequencyUniversal:
		return true
	default:
		return false
	}
}

func (f SymptomFrequency) String() string { return string(f) }

// Factor returns the scoring multiplier for the frequency grade.
func (f SymptomFrequency) Factor() float64 {
	switch f {
	case FrequencyUniversal:
		return 1.0
	case FrequencyVeryCommon:
		return 0.9
	case FrequencyCommon:
		return 0.7
	case FrequencyOccasional:
		return 0.5
	case FrequencyRare:
		return 0.3
	default:
		return 0.0
	}
}

// IsValid reports whether the resource level is known.
func (rl ResourceLevel) IsValid() bool {
	switch rl {
	case ResourcePrimary, ResourceSecondary, ResourceTertiary, ResourceQuaternary:
		return true
	default:
		return false
	}
}

func (rl ResourceLevel) String() string { return string(rl) }

func (u UrgencyLevel) String() string { return string(u) }

func (rk RiskLevel) String() string { return string(rk) }

// LogFields returns structured logging fields for triage audit trails.
func (u UrgencyLevel) LogFields() map[string]any {
	return map[string]any{
		"urgency":          string(u),
		"requires_contact": u == UrgencyEmergency || u == UrgencyUrgent,
	}
}
