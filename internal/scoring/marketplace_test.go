// server/internal/scoring/marketplace_test.go
package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateImpactPerCategory(t *testing.T) {
	cases := []struct {
		category  string
		quantity  float64
		carbon    float64
		waste     float64
		lifecycle float64
	}{
		{"packaging", 10, 5, 10, 0.1},
		{"electronics", 3, 6, 2, 3},
		{"textiles", 7, 2, 4, 2},
		{"furniture", 4, 6, 5, 5},
		{"construction", 2, 6, 4, 10},
		{"food_waste", 100, 10, 30, 0},
		{"chemicals", 9, 9, 6, 1},
		{"other", 8, 4, 4, 1},
	}

	for _, tc := range cases {
		t.Run(tc.category, func(t *testing.T) {
			impact := EstimateImpact(tc.category, tc.quantity)

			assert.Equal(t, tc.carbon, impact.CarbonSaved.Value)
			assert.Equal(t, "kg CO2e", impact.CarbonSaved.Unit)
			assert.Equal(t, tc.waste, impact.WasteDiverted.Value)
			assert.Equal(t, "kg", impact.WasteDiverted.Unit)
			assert.Equal(t, tc.lifecycle, impact.LifecycleExtension.Value)
			assert.Equal(t, "years", impact.LifecycleExtension.Unit)
		})
	}
}

func TestEstimateImpactUnknownCategoryFallsBack(t *testing.T) {
	unknown := EstimateImpact("plastics", 8)
	other := EstimateImpact("other", 8)

	assert.Equal(t, other, unknown)
}

func TestEstimateImpactScalesWithQuantity(t *testing.T) {
	small := EstimateImpact("construction", 10)
	large := EstimateImpact("construction", 20)

	assert.Equal(t, small.CarbonSaved.Value*2, large.CarbonSaved.Value)
	assert.Equal(t, small.WasteDiverted.Value*2, large.WasteDiverted.Value)
	// Lifecycle extension is a category constant, not a quantity scale.
	assert.Equal(t, small.LifecycleExtension.Value, large.LifecycleExtension.Value)
}

func TestEstimateImpactRoundsToWholeUnits(t *testing.T) {
	impact := EstimateImpact("textiles", 5) // 0.3 * 5 = 1.5 carbon, 0.5 * 5 = 2.5 waste

	assert.Equal(t, 2.0, impact.CarbonSaved.Value)
	assert.Equal(t, 3.0, impact.WasteDiverted.Value)
}

func TestEstimateImpactZeroQuantity(t *testing.T) {
	impact := EstimateImpact("packaging", 0)

	assert.Zero(t, impact.CarbonSaved.Value)
	assert.Zero(t, impact.WasteDiverted.Value)
	assert.Equal(t, 0.1, impact.LifecycleExtension.Value)
}
