// server/internal/scoring/supplier.go
package scoring

import (
	"math"
	"time"

	"github.com/arnavbhardwaj457/ecoretail/internal/models"
)

// ScoreSupplier recomputes the ESG score record from the supplier's current
// metrics, practice flags and certifications. Points accumulate
// independently per rule; only the renewable-energy tiers are mutually
// exclusive. The environmental and social sub-scores top out below 100
// (70 and 60) while governance can reach 100, and the overall score is
// still the plain average of the three. That asymmetry is inherited from
// the original rating scheme and kept on purpose.
func ScoreSupplier(metrics models.SustainabilityMetrics, practices models.Practices, certifications []models.Certification, now time.Time) models.SustainabilityScore {
	environmental := 0
	social := 0

	switch {
	case metrics.RenewableEnergy.Percentage > 80:
		environmental += 30
	case metrics.RenewableEnergy.Percentage > 50:
		environmental += 20
	case metrics.RenewableEnergy.Percentage > 20:
		environmental += 10
	}

	if practices.EnergyEfficient {
		environmental += 15
	}
	if practices.WasteReduction {
		environmental += 15
	}
	if practices.RecycledMaterials {
		environmental += 10
	}

	if practices.FairTrade {
		social += 25
	}
	if practices.Organic {
		social += 20
	}
	if practices.LocalSourcing {
		social += 15
	}

	activeCertifications := 0
	for _, cert := range certifications {
		if cert.Status == "active" {
			activeCertifications++
		}
	}
	governance := activeCertifications * 20
	if governance > 100 {
		governance = 100
	}

	overall := int(math.Round(float64(environmental+social+governance) / 3))

	return models.SustainabilityScore{
		Environmental:  environmental,
		Social:         social,
		Governance:     governance,
		Overall:        overall,
		LastCalculated: now,
	}
}
