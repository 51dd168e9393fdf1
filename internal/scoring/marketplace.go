// server/internal/scoring/marketplace.go
package scoring

import (
	"math"

	"github.com/arnavbhardwaj457/ecoretail/internal/models"
)

// ImpactFactor is the per-category multiplier triple: carbon and waste are
// scaled by the listed quantity, lifecycle is a fixed constant in years.
type ImpactFactor struct {
	Carbon    float64 // kg CO2e per unit
	Waste     float64 // kg per unit
	Lifecycle float64 // years
}

var impactFactors = map[string]ImpactFactor{
	"packaging":    {Carbon: 0.5, Waste: 1.0, Lifecycle: 0.1},
	"electronics":  {Carbon: 2.0, Waste: 0.8, Lifecycle: 3.0},
	"textiles":     {Carbon: 0.3, Waste: 0.5, Lifecycle: 2.0},
	"furniture":    {Carbon: 1.5, Waste: 1.2, Lifecycle: 5.0},
	"construction": {Carbon: 3.0, Waste: 2.0, Lifecycle: 10.0},
	"food_waste":   {Carbon: 0.1, Waste: 0.3, Lifecycle: 0.0},
	"chemicals":    {Carbon: 1.0, Waste: 0.7, Lifecycle: 1.0},
	"other":        {Carbon: 0.5, Waste: 0.5, Lifecycle: 1.0},
}

// EstimateImpact derives the sustainability estimate for a listing from its
// category and material quantity. Unknown categories fall back to "other".
func EstimateImpact(category string, quantity float64) models.SustainabilityImpact {
	factor, ok := impactFactors[category]
	if !ok {
		factor = impactFactors["other"]
	}

	return models.SustainabilityImpact{
		CarbonSaved:        models.ValueUnit{Value: math.Round(factor.Carbon * quantity), Unit: "kg CO2e"},
		WasteDiverted:      models.ValueUnit{Value: math.Round(factor.Waste * quantity), Unit: "kg"},
		LifecycleExtension: models.ValueUnit{Value: factor.Lifecycle, Unit: "years"},
	}
}
