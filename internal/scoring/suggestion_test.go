// server/internal/scoring/suggestion_test.go
package scoring

import (
	"math/rand"
	"testing"

	"github.com/arnavbhardwaj457/ecoretail/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleSuggestionsNoDuplicates(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	picked := SampleSuggestions(SuggestionCatalog, 5, rng)
	require.Len(t, picked, 5)

	seen := map[string]bool{}
	for _, tpl := range picked {
		assert.False(t, seen[tpl.Title], "duplicate suggestion %q", tpl.Title)
		seen[tpl.Title] = true
	}
}

func TestSampleSuggestionsClampsCount(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	picked := SampleSuggestions(SuggestionCatalog, len(SuggestionCatalog)+50, rng)
	assert.Len(t, picked, len(SuggestionCatalog))

	picked = SampleSuggestions(SuggestionCatalog, 0, rng)
	assert.Empty(t, picked)

	picked = SampleSuggestions(SuggestionCatalog, -3, rng)
	assert.Empty(t, picked)
}

func TestSampleSuggestionsDoesNotMutateCatalog(t *testing.T) {
	firstTitle := SuggestionCatalog[0].Title
	rng := rand.New(rand.NewSource(99))

	for i := 0; i < 20; i++ {
		SampleSuggestions(SuggestionCatalog, len(SuggestionCatalog), rng)
	}

	assert.Equal(t, firstTitle, SuggestionCatalog[0].Title)
	assert.Len(t, SuggestionCatalog, 8)
}

func TestConfidenceRange(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 100; i++ {
		confidence := Confidence(rng)
		assert.GreaterOrEqual(t, confidence, 0.8)
		assert.Less(t, confidence, 1.0)
	}
}

func TestImpactScore(t *testing.T) {
	// The LED catalog entry: (15000 + 25.5 + 2.1 + 7) / 4 = 3758.65,
	// rounded to one decimal.
	score := ImpactScore(models.ImpactMetrics{
		CostSavings:        15000,
		EmissionsReduction: 25.5,
		WasteReduction:     2.1,
		ImplementationEase: 7,
	})
	assert.Equal(t, 3758.7, score)

	assert.Equal(t, 0.0, ImpactScore(models.ImpactMetrics{}))
}

func TestCatalogCategoriesAreKnown(t *testing.T) {
	known := map[string]bool{}
	for _, c := range models.SuggestionCategories {
		known[c] = true
	}

	for _, tpl := range SuggestionCatalog {
		assert.True(t, known[tpl.Category], "catalog entry %q has unknown category %q", tpl.Title, tpl.Category)
	}
}
