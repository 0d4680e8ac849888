package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/symptom-triage-server/internal/domain"
)

func TestDefaultCatalogLoads(t *testing.T) {
	c := Default()
	require.NotNil(t, c)
	assert.Greater(t, c.Len(), 10, "curated catalog should carry the full condition set")

	// Every record must survive its own validation.
	for _, rec := range c.All() {
		assert.NoError(t, rec.Validate(), "record %s", rec.ID)
	}
}

func TestNewRejectsMalformedRecords(t *testing.T) {
	tests := []struct {
		name   string
		record *domain.ConditionRecord
	}{
		{
			name:   "missing ID",
			record: &domain.ConditionRecord{},
		},
		{
			name: "invalid category",
			record: &domain.ConditionRecord{
				ID:            "bad",
				DisplayNames:  map[string]string{"en": "Bad"},
				Category:      domain.Category("made-up"),
				Prevalence:    domain.PrevalenceLow,
				Region:        domain.RegionNational,
				ResourceLevel: domain.ResourcePrimary,
				Symptoms:      []domain.SymptomSpec{{Name: "x", Severity: domain.SeverityMild, Frequency: domain.FrequencyRare, DifferentialImportance: 0.5}},
			},
		},
		{
			name: "differential importance out of range",
			record: &domain.ConditionRecord{
				ID:            "bad",
				DisplayNames:  map[string]string{"en": "Bad"},
				Category:      domain.CategoryNonCommunicable,
				Prevalence:    domain.PrevalenceLow,
				Region:        domain.RegionNational,
				ResourceLevel: domain.ResourcePrimary,
				Symptoms:      []domain.SymptomSpec{{Name: "x", Severity: domain.SeverityMild, Frequency: domain.FrequencyRare, DifferentialImportance: 1.5}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New([]*domain.ConditionRecord{tt.record})
			assert.Error(t, err)
		})
	}
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	rec := defaultRecords()[0]
	_, err := New([]*domain.ConditionRecord{rec, rec})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestByRegionNationalWildcard(t *testing.T) {
	c := Default()

	regions := []domain.Region{
		domain.RegionCoastal, domain.RegionNorthern, domain.RegionMining,
		domain.RegionRural, domain.RegionUrban, domain.RegionNational,
	}

	for _, region := range regions {
		matched := c.ByRegion(region)
		ids := make(map[string]bool, len(matched))
		for _, rec := range matched {
			ids[rec.ID] = true
		}
		// National records appear in every region filter.
		for _, rec := range c.All() {
			if rec.Region == domain.RegionNational {
				assert.True(t, ids[rec.ID], "national record %s missing from region %s", rec.ID, region)
			}
		}
	}

	// A national query covers every record.
	assert.Len(t, c.ByRegion(domain.RegionNational), c.Len())
}

func TestByCategory(t *testing.T) {
	c := Default()

	occ := c.ByCategory(domain.CategoryOccupational)
	require.NotEmpty(t, occ)
	for _, rec := range occ {
		assert.Equal(t, domain.CategoryOccupational, rec.Category)
	}
}

func TestByID(t *testing.T) {
	c := Default()

	rec, err := c.ByID("tuberculosis")
	require.NoError(t, err)
	assert.Equal(t, "Tuberculosis", rec.Name("en"))

	_, err = c.ByID("no-such-condition")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSearch(t *testing.T) {
	c := Default()

	tests := []struct {
		name       string
		text       string
		expectedID string
	}{
		{"display name hit", "tubercul", "tuberculosis"},
		{"case insensitive display name", "HEART ATTACK", "acute-myocardial-infarction"},
		{"symptom name hit", "night sweats", "tuberculosis"},
		{"localized name hit", "malaria fiva", "malaria"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := c.Search(tt.text)
			require.NotEmpty(t, results)
			found := false
			for _, rec := range results {
				if rec.ID == tt.expectedID {
					found = true
				}
			}
			assert.True(t, found, "expected %s in results for %q", tt.expectedID, tt.text)
		})
	}

	assert.Empty(t, c.Search(""), "blank search returns nothing")
	assert.Empty(t, c.Search("zzzzzz"))
}

func TestStoreSwapIsAtomic(t *testing.T) {
	first := Default()
	store := NewStore(first, nil)

	snap := store.Snapshot()
	require.Same(t, first, snap)

	second, err := New(defaultRecords()[:3])
	require.NoError(t, err)
	store.Swap(second)

	// The old snapshot is untouched; new readers see the replacement.
	assert.Same(t, first, snap)
	assert.Same(t, second, store.Snapshot())
	assert.Equal(t, 3, store.Snapshot().Len())
}
