// server/internal/scoring/supplier_test.go
package scoring

import (
	"testing"
	"time"

	"github.com/arnavbhardwaj457/ecoretail/internal/models"

	"github.com/stretchr/testify/assert"
)

func certs(statuses ...string) []models.Certification {
	out := make([]models.Certification, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, models.Certification{Name: "cert", Status: s})
	}
	return out
}

func TestScoreSupplierReferenceCase(t *testing.T) {
	// 85% renewable (+30), energy efficient (+15), waste reduction (+15),
	// fair trade (+25), two active certifications (40).
	score := ScoreSupplier(
		models.SustainabilityMetrics{RenewableEnergy: models.RenewableEnergy{Percentage: 85}},
		models.Practices{EnergyEfficient: true, WasteReduction: true, FairTrade: true},
		certs("active", "active"),
		time.Now(),
	)

	assert.Equal(t, 60, score.Environmental)
	assert.Equal(t, 25, score.Social)
	assert.Equal(t, 40, score.Governance)
	assert.Equal(t, 42, score.Overall)
}

func TestScoreSupplierRenewableTiers(t *testing.T) {
	cases := []struct {
		percentage float64
		points     int
	}{
		{100, 30},
		{81, 30},
		{80, 20}, // the tiers are exclusive at their upper bound
		{51, 20},
		{50, 10},
		{21, 10},
		{20, 0},
		{0, 0},
	}

	for _, tc := range cases {
		score := ScoreSupplier(
			models.SustainabilityMetrics{RenewableEnergy: models.RenewableEnergy{Percentage: tc.percentage}},
			models.Practices{},
			nil,
			time.Now(),
		)
		assert.Equal(t, tc.points, score.Environmental, "renewable %v%%", tc.percentage)
	}
}

func TestScoreSupplierSubScoreMaxima(t *testing.T) {
	score := ScoreSupplier(
		models.SustainabilityMetrics{RenewableEnergy: models.RenewableEnergy{Percentage: 100}},
		models.Practices{
			FairTrade:         true,
			Organic:           true,
			LocalSourcing:     true,
			RecycledMaterials: true,
			EnergyEfficient:   true,
			WasteReduction:    true,
		},
		certs("active", "active", "active", "active", "active", "active"),
		time.Now(),
	)

	// Environmental and social top out below 100 while governance caps at
	// 100. The overall average reflects that.
	assert.Equal(t, 70, score.Environmental)
	assert.Equal(t, 60, score.Social)
	assert.Equal(t, 100, score.Governance)
	assert.Equal(t, 77, score.Overall)
}

func TestScoreSupplierOnlyActiveCertificationsCount(t *testing.T) {
	score := ScoreSupplier(
		models.SustainabilityMetrics{},
		models.Practices{},
		certs("active", "expired", "pending", "active"),
		time.Now(),
	)

	assert.Equal(t, 40, score.Governance)
}

func TestScoreSupplierIsDeterministic(t *testing.T) {
	metrics := models.SustainabilityMetrics{RenewableEnergy: models.RenewableEnergy{Percentage: 60}}
	practices := models.Practices{Organic: true, LocalSourcing: true}
	certifications := certs("active")
	now := time.Now()

	first := ScoreSupplier(metrics, practices, certifications, now)
	second := ScoreSupplier(metrics, practices, certifications, now)

	assert.Equal(t, first, second)
}

func TestScoreSupplierEmptyInputs(t *testing.T) {
	score := ScoreSupplier(models.SustainabilityMetrics{}, models.Practices{}, nil, time.Now())

	assert.Zero(t, score.Environmental)
	assert.Zero(t, score.Social)
	assert.Zero(t, score.Governance)
	assert.Zero(t, score.Overall)
}
