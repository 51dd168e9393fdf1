// server/internal/scoring/freshness.go
package scoring

import (
	"math"
	"time"
)

// Suggested actions, keyed off the clamped score buckets {40, 60, 80}.
const (
	ActionDiscard   = "Discard if unsafe"
	ActionReroute   = "Use for prepared foods or re-route"
	ActionClearance = "Move to clearance section"
	ActionNone      = "No action"
)

// Ideal cold-chain band for perishable produce, in Celsius.
const (
	idealTempMin = 2.0
	idealTempMax = 8.0
)

// FreshnessInput is the perishable-goods telemetry a prediction is made
// from. Numeric inputs are taken as-is; out-of-range values are penalised,
// not rejected.
type FreshnessInput struct {
	HarvestDate          time.Time
	TransportTemperature float64 // Celsius
	StoreTemperature     float64 // Celsius
	StoreHumidity        float64 // percent
	ShelfLife            float64 // days
	SalesVelocity        float64 // units/day
}

type FreshnessResult struct {
	Score              int // 0-100
	PredictedShelfLife int // days, >= 0
	SuggestedAction    string
}

// PredictFreshness scores remaining product quality at the given instant.
// The score starts at 100, decays 5 points per (fractional) day since
// harvest, and takes a flat 10-point penalty for each storage condition
// outside its band: transport or store temperature off [2,8]C, humidity
// above 90%, sales velocity below 2 units/day.
func PredictFreshness(in FreshnessInput, now time.Time) FreshnessResult {
	daysSinceHarvest := now.Sub(in.HarvestDate).Hours() / 24

	score := 100 - daysSinceHarvest*5

	if in.TransportTemperature < idealTempMin || in.TransportTemperature > idealTempMax {
		score -= 10
	}
	if in.StoreTemperature < idealTempMin || in.StoreTemperature > idealTempMax {
		score -= 10
	}
	if in.StoreHumidity > 90 {
		score -= 10
	}
	if in.SalesVelocity < 2 {
		score -= 10
	}

	score = math.Max(0, math.Min(100, math.Round(score)))

	remaining := math.Max(0, math.Round(in.ShelfLife-daysSinceHarvest))

	return FreshnessResult{
		Score:              int(score),
		PredictedShelfLife: int(remaining),
		SuggestedAction:    suggestedAction(int(score)),
	}
}

func suggestedAction(score int) string {
	switch {
	case score < 40:
		return ActionDiscard
	case score < 60:
		return ActionReroute
	case score < 80:
		return ActionClearance
	default:
		return ActionNone
	}
}
