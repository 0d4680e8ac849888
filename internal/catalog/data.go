package catalog

import (
	"github.com/symptom-triage-server/internal/domain"
)

// Default returns the compiled-in condition catalog. The content is curated
// data, not logic; a malformed record here aborts startup via MustNew.
func Default() *Catalog {
	return MustNew(defaultRecords())
}

func defaultRecords() []*domain.ConditionRecord {
	return []*domain.ConditionRecord{
		{
			ID: "tuberculosis",
			DisplayNames: map[string]string{
				"en":   "Tuberculosis",
				"krio": "TB sik",
			},
			Category:   domain.CategoryEndemicInfectious,
			Prevalence: domain.PrevalenceHigh,
			Region:     domain.RegionNational,
			Symptoms: []domain.SymptomSpec{
				{Name: "persistent cough", Severity: domain.SeveritySevere, Frequency: domain.FrequencyUniversal, DifferentialImportance: 0.95},
				{Name: "weight loss", Severity: domain.SeveritySevere, Frequency: domain.FrequencyVeryCommon, DifferentialImportance: 0.9},
				{Name: "night sweats", Severity: domain.SeverityModerate, Frequency: domain.FrequencyVeryCommon, DifferentialImportance: 0.9},
				{Name: "coughing up blood", Severity: domain.SeverityCritical, Frequency: domain.FrequencyOccasional, DifferentialImportance: 0.95},
				{Name: "fever", Severity: domain.SeverityModerate, Frequency: domain.FrequencyCommon, DifferentialImportance: 0.4},
				{Name: "fatigue", Severity: domain.SeverityMild, Frequency: domain.FrequencyCommon, DifferentialImportance: 0.3},
			},
			RiskFactors:   []string{"HIV infection", "household TB contact", "overcrowded housing", "malnutrition", "smoking"},
			Complications: []string{"respiratory failure", "miliary spread", "permanent lung damage"},
			DiagnosticApproach: []string{
				"Sputum smear microscopy and GeneXpert testing",
				"Chest X-ray",
				"HIV co-testing",
			},
			TreatmentApproach: []string{
				"Six-month directly observed therapy (DOTS) regimen",
				"Nutritional support during treatment",
			},
			PreventionMeasures: []string{
				"BCG vaccination of infants",
				"Household contact screening",
			},
			EmergencyIndicators:    []string{"coughing up blood", "severe breathing difficulty"},
			CulturalConsiderations: []string{"Address TB stigma that delays care-seeking", "Engage family in treatment adherence support"},
			ResourceLevel:          domain.ResourceSecondary,
		},
		{
			ID: "malaria",
			DisplayNames: map[string]string{
				"en":   "Malaria",
				"krio": "Malaria fiva",
			},
			Category:   domain.CategoryTropicalParasitic,
			Prevalence: domain.PrevalenceVeryHigh,
			Region:     domain.RegionNational,
			Symptoms: []domain.SymptomSpec{
				{Name: "fever", Severity: domain.SeveritySevere, Frequency: domain.FrequencyUniversal, DifferentialImportance: 0.9},
				{Name: "chills", Severity: domain.SeverityModerate, Frequency: domain.FrequencyVeryCommon, DifferentialImportance: 0.85},
				{Name: "headache", Severity: domain.SeverityModerate, Frequency: domain.FrequencyVeryCommon, DifferentialImportance: 0.6},
				{Name: "body aches", Severity: domain.SeverityModerate, Frequency: domain.FrequencyCommon, DifferentialImportance: 0.5},
				{Name: "vomiting", Severity: domain.SeverityModerate, Frequency: domain.FrequencyCommon, DifferentialImportance: 0.4},
			},
			RiskFactors:   []string{"no bed net use", "standing water near home", "rainy season exposure", "pregnancy"},
			Complications: []string{"cerebral malaria", "severe anemia", "organ failure", "death if untreated"},
			DiagnosticApproach: []string{
				"Rapid diagnostic test (RDT)",
				"Blood smear microscopy",
				"Hemoglobin check in severe cases",
			},
			TreatmentApproach: []string{
				"Artemisinin-based combination therapy (ACT)",
				"Paracetamol for fever control",
			},
			PreventionMeasures: []string{
				"Sleep under insecticide-treated bed nets",
				"Drain standing water around the home",
			},
			EmergencyIndicators:    []string{"convulsions", "loss of consciousness", "unable to drink"},
			CulturalConsiderations: []string{"Traditional fever remedies may delay testing; encourage early RDT"},
			ResourceLevel:          domain.ResourcePrimary,
		},
		{
			ID: "typhoid-fever",
			DisplayNames: map[string]string{
				"en": "Typhoid fever",
			},
			Category:   domain.CategoryEndemicInfectious,
			Prevalence: domain.PrevalenceHigh,
			Region:     domain.RegionNational,
			Symptoms: []domain.SymptomSpec{
				{Name: "prolonged fever", Severity: domain.SeveritySevere, Frequency: domain.FrequencyUniversal, DifferentialImportance: 0.85},
				{Name: "abdominal pain", Severity: domain.SeverityModerate, Frequency: domain.FrequencyVeryCommon, DifferentialImportance: 0.7},
				{Name: "headache", Severity: domain.SeverityModerate, Frequency: domain.FrequencyCommon, DifferentialImportance: 0.4},
				{Name: "constipation", Severity: domain.SeverityMild, Frequency: domain.FrequencyCommon, DifferentialImportance: 0.5},
				{Name: "rose spots", Severity: domain.SeverityMild, Frequency: domain.FrequencyOccasional, DifferentialImportance: 0.9},
			},
			RiskFactors:   []string{"unsafe drinking water", "street food", "poor sanitation"},
			Complications: []string{"intestinal perforation", "septic shock"},
			DiagnosticApproach: []string{
				"Blood culture",
				"Widal test where culture unavailable",
			},
			TreatmentApproach: []string{
				"Oral or IV antibiotics per local resistance patterns",
				"Hydration and soft diet",
			},
			PreventionMeasures: []string{
				"Boil or treat drinking water",
				"Typhoid vaccination in outbreak areas",
			},
			EmergencyIndicators:    []string{"severe abdominal pain", "confusion"},
			CulturalConsiderations: []string{"Shared water sources require community-level messaging"},
			ResourceLevel:          domain.ResourceSecondary,
		},
		{
			ID: "cholera",
			DisplayNames: map[string]string{
				"en": "Cholera",
			},
			Category:   domain.CategoryEndemicInfectious,
			Prevalence: domain.PrevalenceModerate,
			Region:     domain.RegionCoastal,
			Symptoms: []domain.SymptomSpec{
				{Name: "profuse watery diarrhea", Severity: domain.SeverityCritical, Frequency: domain.FrequencyUniversal, DifferentialImportance: 0.95},
				{Name: "vomiting", Severity: domain.SeveritySevere, Frequency: domain.FrequencyVeryCommon, DifferentialImportance: 0.6},
				{Name: "leg cramps", Severity: domain.SeverityModerate, Frequency: domain.FrequencyCommon, DifferentialImportance: 0.5},
				{Name: "dehydration", Severity: domain.SeverityCritical, Frequency: domain.FrequencyVeryCommon, DifferentialImportance: 0.8},
			},
			RiskFactors:   []string{"contaminated water", "flooding", "crowded coastal settlements"},
			Complications: []string{"hypovolemic shock", "kidney failure", "death within hours if untreated"},
			DiagnosticApproach: []string{
				"Clinical assessment of dehydration",
				"Stool rapid test during outbreaks",
			},
			TreatmentApproach: []string{
				"Aggressive oral rehydration solution",
				"IV fluids for severe dehydration",
			},
			PreventionMeasures: []string{
				"Safe water storage and chlorination",
				"Handwashing with soap",
			},
			EmergencyIndicators:    []string{"sunken eyes", "unable to drink", "no urine output"},
			CulturalConsiderations: []string{"Funeral practices during outbreaks need sensitive health guidance"},
			ResourceLevel:          domain.ResourcePrimary,
		},
		{
			ID: "hypertension",
			DisplayNames: map[string]string{
				"en": "Hypertension",
			},
			Category:   domain.CategoryNonCommunicable,
			Prevalence: domain.PrevalenceVeryHigh,
			Region:     domain.RegionNational,
			Symptoms: []domain.SymptomSpec{
				{Name: "headache", Severity: domain.SeverityModerate, Frequency: domain.FrequencyCommon, DifferentialImportance: 0.4},
				{Name: "dizziness", Severity: domain.SeverityModerate, Frequency: domain.FrequencyCommon, DifferentialImportance: 0.5},
				{Name: "blurred vision", Severity: domain.SeverityModerate, Frequency: domain.FrequencyOccasional, DifferentialImportance: 0.6},
				{Name: "nosebleeds", Severity: domain.SeverityMild, Frequency: domain.FrequencyOccasional, DifferentialImportance: 0.5},
			},
			RiskFactors:   []string{"high salt diet", "obesity", "family history", "alcohol use", "physical inactivity"},
			Complications: []string{"stroke", "heart failure", "kidney failure"},
			DiagnosticApproach: []string{
				"Repeated blood pressure measurement",
				"Urinalysis and kidney function tests",
			},
			TreatmentApproach: []string{
				"Lifestyle modification plus first-line antihypertensives",
				"Regular follow-up blood pressure checks",
			},
			PreventionMeasures: []string{
				"Reduce dietary salt",
				"Regular physical activity",
			},
			EmergencyIndicators:    []string{"sudden severe headache", "sudden weakness on one side", "chest pain"},
			CulturalConsiderations: []string{"Lifelong daily medication is a new concept for many patients; counsel on adherence"},
			ResourceLevel:          domain.ResourcePrimary,
		},
		{
			ID: "type-2-diabetes",
			DisplayNames: map[string]string{
				"en": "Type 2 diabetes",
			},
			Category:   domain.CategoryNonCommunicable,
			Prevalence: domain.PrevalenceHigh,
			Region:     domain.RegionUrban,
			Symptoms: []domain.SymptomSpec{
				{Name: "excessive thirst", Severity: domain.SeverityModerate, Frequency: domain.FrequencyVeryCommon, DifferentialImportance: 0.8},
				{Name: "frequent urination", Severity: domain.SeverityModerate, Frequency: domain.FrequencyVeryCommon, DifferentialImportance: 0.8},
				{Name: "weight loss", Severity: domain.SeverityModerate, Frequency: domain.FrequencyCommon, DifferentialImportance: 0.6},
				{Name: "blurred vision", Severity: domain.SeverityModerate, Frequency: domain.FrequencyCommon, DifferentialImportance: 0.5},
				{Name: "slow healing wounds", Severity: domain.SeverityModerate, Frequency: domain.FrequencyCommon, DifferentialImportance: 0.7},
			},
			RiskFactors:   []string{"obesity", "family history", "sedentary lifestyle", "age over 40"},
			Complications: []string{"kidney failure", "blindness", "foot ulcers", "heart disease"},
			DiagnosticApproach: []string{
				"Fasting blood glucose",
				"HbA1c where available",
			},
			TreatmentApproach: []string{
				"Metformin with diet and exercise counselling",
				"Foot care education",
			},
			PreventionMeasures: []string{
				"Weight management",
				"Reduce sugary drinks",
			},
			EmergencyIndicators:    []string{"confusion", "deep rapid breathing", "loss of consciousness"},
			CulturalConsiderations: []string{"Dietary advice should work with staple foods, not against them"},
			ResourceLevel:          domain.ResourceSecondary,
		},
		{
			ID: "iron-deficiency-anemia",
			DisplayNames: map[string]string{
				"en": "Iron-deficiency anemia",
			},
			Category:   domain.CategoryNutritional,
			Prevalence: domain.PrevalenceVeryHigh,
			Region:     domain.RegionNational,
			Symptoms: []domain.SymptomSpec{
				{Name: "fatigue", Severity: domain.SeverityModerate, Frequency: domain.FrequencyUniversal, DifferentialImportance: 0.6},
				{Name: "pale skin", Severity: domain.SeverityModerate, Frequency: domain.FrequencyVeryCommon, DifferentialImportance: 0.8},
				{Name: "shortness of breath", Severity: domain.SeverityModerate, Frequency: domain.FrequencyCommon, DifferentialImportance: 0.5},
				{Name: "dizziness", Severity: domain.SeverityMild, Frequency: domain.FrequencyCommon, DifferentialImportance: 0.4},
				{Name: "craving non-food items", Severity: domain.SeverityMild, Frequency: domain.FrequencyOccasional, DifferentialImportance: 0.85},
			},
			RiskFactors:   []string{"pregnancy", "heavy menstrual bleeding", "hookworm infection", "low iron diet"},
			Complications: []string{"pregnancy complications", "severe fatigue limiting work"},
			DiagnosticApproach: []string{
				"Hemoglobin measurement",
				"Stool examination for parasites",
			},
			TreatmentApproach: []string{
				"Oral iron and folate supplementation",
				"Deworming where indicated",
			},
			PreventionMeasures: []string{
				"Iron-rich foods such as leafy greens and beans",
				"Routine antenatal iron supplementation",
			},
			EmergencyIndicators:    []string{"severe breathlessness at rest", "fainting"},
			CulturalConsiderations: []string{"Pica is often normalized; ask directly about clay or chalk craving"},
			ResourceLevel:          domain.ResourcePrimary,
		},
		{
			ID: "heat-stroke",
			DisplayNames: map[string]string{
				"en": "Heat stroke",
			},
			Category:   domain.CategoryEnvironmental,
			Prevalence: domain.PrevalenceLow,
			Region:     domain.RegionNorthern,
			Symptoms: []domain.SymptomSpec{
				{Name: "very high body temperature", Severity: domain.SeverityCritical, Frequency: domain.FrequencyUniversal, DifferentialImportance: 0.9},
				{Name: "hot dry skin", Severity: domain.SeveritySevere, Frequency: domain.FrequencyVeryCommon, DifferentialImportance: 0.85},
				{Name: "confusion", Severity: domain.SeverityCritical, Frequency: domain.FrequencyCommon, DifferentialImportance: 0.8},
				{Name: "rapid pulse", Severity: domain.SeveritySevere, Frequency: domain.FrequencyCommon, DifferentialImportance: 0.5},
			},
			RiskFactors:   []string{"outdoor labor", "dry season heat", "dehydration", "elderly"},
			Complications: []string{"organ failure", "brain damage", "death without rapid cooling"},
			DiagnosticApproach: []string{
				"Core temperature measurement",
				"Assessment of mental status",
			},
			TreatmentApproach: []string{
				"Immediate active cooling with water and fanning",
				"IV fluids",
			},
			PreventionMeasures: []string{
				"Shade breaks and water during peak heat",
				"Avoid strenuous midday work in hot months",
			},
			EmergencyIndicators:    []string{"confusion", "loss of consciousness", "seizures"},
			CulturalConsiderations: []string{"Farm work schedules may need community negotiation in hot season"},
			ResourceLevel:          domain.ResourceSecondary,
		},
		{
			ID: "postpartum-hemorrhage",
			DisplayNames: map[string]string{
				"en": "Postpartum hemorrhage",
			},
			Category:   domain.CategoryMaternalChild,
			Prevalence: domain.PrevalenceModerate,
			Region:     domain.RegionRural,
			Symptoms: []domain.SymptomSpec{
				{Name: "heavy bleeding after delivery", Severity: domain.SeverityCritical, Frequency: domain.FrequencyUniversal, DifferentialImportance: 0.95},
				{Name: "dizziness", Severity: domain.SeveritySevere, Frequency: domain.FrequencyVeryCommon, DifferentialImportance: 0.5},
				{Name: "rapid heartbeat", Severity: domain.SeveritySevere, Frequency: domain.FrequencyCommon, DifferentialImportance: 0.5},
				{Name: "pale skin", Severity: domain.SeveritySevere, Frequency: domain.FrequencyCommon, DifferentialImportance: 0.4},
			},
			RiskFactors:   []string{"home delivery without skilled attendant", "multiple pregnancy", "prolonged labor", "anemia"},
			Complications: []string{"hypovolemic shock", "maternal death", "organ failure"},
			DiagnosticApproach: []string{
				"Estimate blood loss and monitor vital signs",
				"Assess uterine tone",
			},
			TreatmentApproach: []string{
				"Uterotonic drugs and uterine massage",
				"Urgent referral for transfusion",
			},
			PreventionMeasures: []string{
				"Facility delivery with skilled birth attendant",
				"Active management of third stage of labor",
			},
			EmergencyIndicators:    []string{"heavy bleeding", "loss of consciousness", "cold clammy skin"},
			CulturalConsiderations: []string{"Birth attendants and mothers-in-law influence referral decisions; include them"},
			ResourceLevel:          domain.ResourceTertiary,
		},
		{
			ID: "depression",
			DisplayNames: map[string]string{
				"en": "Depression",
			},
			Category:   domain.CategoryMentalHealth,
			Prevalence: domain.PrevalenceModerate,
			Region:     domain.RegionNational,
			Symptoms: []domain.SymptomSpec{
				{Name: "persistent sadness", Severity: domain.SeverityModerate, Frequency: domain.FrequencyUniversal, DifferentialImportance: 0.85},
				{Name: "loss of interest", Severity: domain.SeverityModerate, Frequency: domain.FrequencyVeryCommon, DifferentialImportance: 0.85},
				{Name: "sleep problems", Severity: domain.SeverityModerate, Frequency: domain.FrequencyVeryCommon, DifferentialImportance: 0.5},
				{Name: "poor concentration", Severity: domain.SeverityMild, Frequency: domain.FrequencyCommon, DifferentialImportance: 0.4},
				{Name: "thoughts of self-harm", Severity: domain.SeverityCritical, Frequency: domain.FrequencyOccasional, DifferentialImportance: 0.95},
			},
			RiskFactors:   []string{"recent bereavement", "chronic illness", "unemployment", "social isolation"},
			Complications: []string{"self-harm", "suicide", "functional decline"},
			DiagnosticApproach: []string{
				"Structured screening questionnaire (PHQ-9)",
				"Rule out thyroid disease and anemia",
			},
			TreatmentApproach: []string{
				"Problem-solving therapy and community support",
				"Antidepressants for moderate to severe cases",
			},
			PreventionMeasures: []string{
				"Community mental health awareness",
				"Social reconnection activities",
			},
			EmergencyIndicators:    []string{"thoughts of self-harm", "suicide plan"},
			CulturalConsiderations: []string{"Mental illness may be attributed to spiritual causes; collaborate with trusted community figures", "Screen privately; disclosure carries stigma"},
			ResourceLevel:          domain.ResourceSecondary,
		},
		{
			ID: "silicosis",
			DisplayNames: map[string]string{
				"en": "Silicosis",
			},
			Category:   domain.CategoryOccupational,
			Prevalence: domain.PrevalenceLow,
			Region:     domain.RegionMining,
			Symptoms: []domain.SymptomSpec{
				{Name: "progressive shortness of breath", Severity: domain.SeveritySevere, Frequency: domain.FrequencyUniversal, DifferentialImportance: 0.9},
				{Name: "chronic dry cough", Severity: domain.SeverityModerate, Frequency: domain.FrequencyVeryCommon, DifferentialImportance: 0.7},
				{Name: "chest tightness", Severity: domain.SeverityModerate, Frequency: domain.FrequencyCommon, DifferentialImportance: 0.5},
				{Name: "fatigue", Severity: domain.SeverityMild, Frequency: domain.FrequencyCommon, DifferentialImportance: 0.3},
			},
			RiskFactors:   []string{"mine dust exposure", "quarry work", "sandblasting", "years underground"},
			Complications: []string{"respiratory failure", "increased TB susceptibility"},
			DiagnosticApproach: []string{
				"Occupational history",
				"Chest X-ray with ILO classification",
				"TB screening",
			},
			TreatmentApproach: []string{
				"Remove from further dust exposure",
				"Pulmonary rehabilitation and oxygen in advanced disease",
			},
			PreventionMeasures: []string{
				"Wet drilling and dust suppression",
				"Respirator use underground",
			},
			EmergencyIndicators:    []string{"severe breathlessness at rest"},
			CulturalConsiderations: []string{"Miners may hide symptoms fearing job loss; reassure on confidentiality"},
			ResourceLevel:          domain.ResourceTertiary,
		},
		{
			ID: "acute-myocardial-infarction",
			DisplayNames: map[string]string{
				"en": "Heart attack",
			},
			Category:   domain.CategoryEmergencyTrauma,
			Prevalence: domain.PrevalenceLow,
			Region:     domain.RegionUrban,
			Symptoms: []domain.SymptomSpec{
				{Name: "crushing chest pain", Severity: domain.SeverityCritical, Frequency: domain.FrequencyUniversal, DifferentialImportance: 0.95},
				{Name: "pain spreading to arm or jaw", Severity: domain.SeverityCritical, Frequency: domain.FrequencyCommon, DifferentialImportance: 0.9},
				{Name: "shortness of breath", Severity: domain.SeveritySevere, Frequency: domain.FrequencyVeryCommon, DifferentialImportance: 0.5},
				{Name: "cold sweat", Severity: domain.SeveritySevere, Frequency: domain.FrequencyCommon, DifferentialImportance: 0.6},
				{Name: "nausea", Severity: domain.SeverityModerate, Frequency: domain.FrequencyCommon, DifferentialImportance: 0.3},
			},
			RiskFactors:   []string{"hypertension", "smoking", "diabetes", "high cholesterol", "family history"},
			Complications: []string{"cardiac arrest", "heart failure", "death"},
			DiagnosticApproach: []string{
				"12-lead ECG within 10 minutes",
				"Cardiac troponin",
			},
			TreatmentApproach: []string{
				"Aspirin immediately unless contraindicated",
				"Urgent transfer for reperfusion therapy",
			},
			PreventionMeasures: []string{
				"Blood pressure and cholesterol control",
				"Smoking cessation",
			},
			EmergencyIndicators:    []string{"crushing chest pain", "chest pain", "collapse", "severe shortness of breath"},
			CulturalConsiderations: []string{"Chest pain may first be treated at home as indigestion; stress the time-critical window"},
			ResourceLevel:          domain.ResourceQuaternary,
		},
		{
			ID: "severe-acute-malnutrition",
			DisplayNames: map[string]string{
				"en": "Severe acute malnutrition",
			},
			Category:   domain.CategoryMaternalChild,
			Prevalence: domain.PrevalenceModerate,
			Region:     domain.RegionRural,
			Symptoms: []domain.SymptomSpec{
				{Name: "visible wasting", Severity: domain.SeverityCritical, Frequency: domain.FrequencyVeryCommon, DifferentialImportance: 0.9},
				{Name: "swollen feet", Severity: domain.SeverityCritical, Frequency: domain.FrequencyCommon, DifferentialImportance: 0.85},
				{Name: "poor appetite", Severity: domain.SeveritySevere, Frequency: domain.FrequencyVeryCommon, DifferentialImportance: 0.5},
				{Name: "irritability", Severity: domain.SeverityModerate, Frequency: domain.FrequencyCommon, DifferentialImportance: 0.3},
				{Name: "hair color changes", Severity: domain.SeverityModerate, Frequency: domain.FrequencyOccasional, DifferentialImportance: 0.7},
			},
			RiskFactors:   []string{"food insecurity", "early weaning", "repeated infections", "twin birth"},
			Complications: []string{"hypoglycemia", "hypothermia", "death from intercurrent infection"},
			DiagnosticApproach: []string{
				"Mid-upper arm circumference (MUAC) measurement",
				"Check for bilateral pitting edema",
				"Appetite test with therapeutic food",
			},
			TreatmentApproach: []string{
				"Ready-to-use therapeutic food (RUTF) program",
				"Routine antibiotics per protocol",
			},
			PreventionMeasures: []string{
				"Exclusive breastfeeding to six months",
				"Growth monitoring at community level",
			},
			EmergencyIndicators:    []string{"not able to feed", "lethargy", "convulsions"},
			CulturalConsiderations: []string{"Kwashiorkor swelling may be read as a healthy weight gain; demonstrate MUAC to caregivers"},
			ResourceLevel:          domain.ResourceSecondary,
		},
	}
}
