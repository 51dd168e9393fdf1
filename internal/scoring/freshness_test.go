// server/internal/scoring/freshness_test.go
package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var baseTime = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func daysAgo(d float64) time.Time {
	return baseTime.Add(-time.Duration(d * 24 * float64(time.Hour)))
}

func TestPredictFreshnessHealthyProduce(t *testing.T) {
	// Strawberries two days off the field, cold chain intact.
	result := PredictFreshness(FreshnessInput{
		HarvestDate:          daysAgo(2),
		TransportTemperature: 4,
		StoreTemperature:     6,
		StoreHumidity:        85,
		ShelfLife:            7,
		SalesVelocity:        3,
	}, baseTime)

	assert.Equal(t, 90, result.Score)
	assert.Equal(t, 5, result.PredictedShelfLife)
	assert.Equal(t, ActionNone, result.SuggestedAction)
}

func TestPredictFreshnessAllPenalties(t *testing.T) {
	// Spinach five days old with every storage condition out of band:
	// 100 - 25 decay - 4x10 penalties = 35.
	result := PredictFreshness(FreshnessInput{
		HarvestDate:          daysAgo(5),
		TransportTemperature: 10,
		StoreTemperature:     9,
		StoreHumidity:        92,
		ShelfLife:            7,
		SalesVelocity:        1,
	}, baseTime)

	assert.Equal(t, 35, result.Score)
	assert.Equal(t, 2, result.PredictedShelfLife)
	assert.Equal(t, ActionDiscard, result.SuggestedAction)
}

func TestPredictFreshnessFractionalDecay(t *testing.T) {
	// Decay is fractional: 2.5 days costs 12.5 points, rounded to 88.
	result := PredictFreshness(FreshnessInput{
		HarvestDate:          daysAgo(2.5),
		TransportTemperature: 5,
		StoreTemperature:     5,
		StoreHumidity:        80,
		ShelfLife:            7,
		SalesVelocity:        4,
	}, baseTime)

	assert.Equal(t, 88, result.Score)
}

func TestPredictFreshnessActionBuckets(t *testing.T) {
	cases := []struct {
		name     string
		days     float64
		velocity float64
		score    int
		action   string
	}{
		{"score 80 keeps product on shelf", 4, 5, 80, ActionNone},
		{"slow seller drops to clearance", 4, 1, 70, ActionClearance},
		{"score 60 goes to clearance", 8, 5, 60, ActionClearance},
		{"score below 60 is re-routed", 10, 5, 50, ActionReroute},
		{"score 40 is re-routed", 12, 5, 40, ActionReroute},
		{"score below 40 is discarded", 13, 5, 35, ActionDiscard},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := PredictFreshness(FreshnessInput{
				HarvestDate:          daysAgo(tc.days),
				TransportTemperature: 5,
				StoreTemperature:     5,
				StoreHumidity:        80,
				ShelfLife:            20,
				SalesVelocity:        tc.velocity,
			}, baseTime)

			assert.Equal(t, tc.score, result.Score)
			assert.Equal(t, tc.action, result.SuggestedAction)
		})
	}
}

func TestPredictFreshnessTemperatureBand(t *testing.T) {
	base := FreshnessInput{
		HarvestDate:   daysAgo(1),
		StoreHumidity: 80,
		ShelfLife:     7,
		SalesVelocity: 5,
	}

	// The band is inclusive at both ends.
	for _, temp := range []float64{2, 8} {
		in := base
		in.TransportTemperature = temp
		in.StoreTemperature = temp
		assert.Equal(t, 95, PredictFreshness(in, baseTime).Score, "temp %v", temp)
	}

	for _, temp := range []float64{1.9, 8.1, -5} {
		in := base
		in.TransportTemperature = temp
		in.StoreTemperature = 5
		assert.Equal(t, 85, PredictFreshness(in, baseTime).Score, "temp %v", temp)
	}
}

func TestPredictFreshnessScoreClamping(t *testing.T) {
	// Very old stock bottoms out at zero.
	old := PredictFreshness(FreshnessInput{
		HarvestDate:          daysAgo(60),
		TransportTemperature: 5,
		StoreTemperature:     5,
		StoreHumidity:        80,
		ShelfLife:            7,
		SalesVelocity:        5,
	}, baseTime)
	assert.Equal(t, 0, old.Score)
	assert.Equal(t, 0, old.PredictedShelfLife)
	assert.Equal(t, ActionDiscard, old.SuggestedAction)

	// A future-dated harvest cannot push the score above 100.
	future := PredictFreshness(FreshnessInput{
		HarvestDate:          baseTime.Add(48 * time.Hour),
		TransportTemperature: 5,
		StoreTemperature:     5,
		StoreHumidity:        80,
		ShelfLife:            7,
		SalesVelocity:        5,
	}, baseTime)
	assert.Equal(t, 100, future.Score)
}

func TestPredictFreshnessShelfLifeNeverNegative(t *testing.T) {
	result := PredictFreshness(FreshnessInput{
		HarvestDate:          daysAgo(10),
		TransportTemperature: 5,
		StoreTemperature:     5,
		StoreHumidity:        80,
		ShelfLife:            7,
		SalesVelocity:        5,
	}, baseTime)

	assert.Equal(t, 0, result.PredictedShelfLife)
}
