// server/internal/scoring/suggestion.go
package scoring

import (
	"math"
	"math/rand"

	"github.com/arnavbhardwaj457/ecoretail/internal/models"
)

// SuggestionModelName is stamped into the metadata of every generated
// suggestion.
const SuggestionModelName = "sustainability-ai-v1"

// SuggestionTemplate is one candidate entry in the generation catalog.
type SuggestionTemplate struct {
	Title                 string
	Description           string
	Category              string
	Priority              string
	ImpactMetrics         models.ImpactMetrics
	ImplementationDetails models.ImplementationDetails
}

// SuggestionCatalog is the fixed candidate list "generation" samples from.
// It is never mutated; SampleSuggestions copies entries out by value.
var SuggestionCatalog = []SuggestionTemplate{
	{
		Title:       "Implement LED Lighting System",
		Description: "Replace traditional lighting with energy-efficient LED bulbs throughout your facility. This can reduce energy consumption by up to 75% and significantly lower electricity costs.",
		Category:    "Energy Efficiency",
		Priority:    "high",
		ImpactMetrics: models.ImpactMetrics{
			CostSavings:        15000,
			EmissionsReduction: 25.5,
			WasteReduction:     2.1,
			ImplementationEase: 7,
		},
		ImplementationDetails: models.ImplementationDetails{
			TimeRequired:  "2-4 months",
			EstimatedCost: 5000,
			Steps: []string{
				"Conduct energy audit",
				"Select LED products",
				"Install new lighting",
				"Monitor energy savings",
			},
		},
	},
	{
		Title:       "Switch to Sustainable Packaging",
		Description: "Replace plastic packaging with biodegradable or recyclable alternatives. This reduces waste sent to landfills and improves your brand's environmental reputation.",
		Category:    "Packaging",
		Priority:    "medium",
		ImpactMetrics: models.ImpactMetrics{
			CostSavings:        8000,
			EmissionsReduction: 12.3,
			WasteReduction:     15.7,
			ImplementationEase: 6,
		},
		ImplementationDetails: models.ImplementationDetails{
			TimeRequired:  "3-6 months",
			EstimatedCost: 3000,
			Steps: []string{
				"Audit current packaging",
				"Research alternatives",
				"Test new materials",
				"Implement changes",
			},
		},
	},
	{
		Title:       "Optimize Delivery Routes",
		Description: "Use route optimization software to reduce fuel consumption and emissions from delivery vehicles. This can save fuel costs and reduce your carbon footprint.",
		Category:    "Transportation",
		Priority:    "high",
		ImpactMetrics: models.ImpactMetrics{
			CostSavings:        12000,
			EmissionsReduction: 18.9,
			WasteReduction:     1.2,
			ImplementationEase: 8,
		},
		ImplementationDetails: models.ImplementationDetails{
			TimeRequired:  "1-3 months",
			EstimatedCost: 2000,
			Steps: []string{
				"Analyze current routes",
				"Implement routing software",
				"Train drivers",
				"Monitor results",
			},
		},
	},
	{
		Title:       "Install Water-Saving Fixtures",
		Description: "Replace standard faucets and toilets with low-flow alternatives to reduce water consumption and lower utility bills.",
		Category:    "Water Conservation",
		Priority:    "medium",
		ImpactMetrics: models.ImpactMetrics{
			CostSavings:        5000,
			EmissionsReduction: 3.2,
			WasteReduction:     0.8,
			ImplementationEase: 9,
		},
		ImplementationDetails: models.ImplementationDetails{
			TimeRequired:  "1-2 months",
			EstimatedCost: 1500,
			Steps: []string{
				"Audit water usage",
				"Select fixtures",
				"Install new fixtures",
				"Monitor water savings",
			},
		},
	},
	{
		Title:       "Implement Waste Segregation",
		Description: "Set up proper waste segregation systems to improve recycling rates and reduce landfill waste.",
		Category:    "Waste Reduction",
		Priority:    "medium",
		ImpactMetrics: models.ImpactMetrics{
			CostSavings:        6000,
			EmissionsReduction: 8.7,
			WasteReduction:     22.3,
			ImplementationEase: 6,
		},
		ImplementationDetails: models.ImplementationDetails{
			TimeRequired:  "2-4 months",
			EstimatedCost: 2500,
			Steps: []string{
				"Design segregation system",
				"Purchase bins",
				"Train staff",
				"Monitor compliance",
			},
		},
	},
	{
		Title:       "Employee Sustainability Training",
		Description: "Conduct regular training sessions to educate employees about sustainability practices and waste reduction techniques.",
		Category:    "Employee Training",
		Priority:    "low",
		ImpactMetrics: models.ImpactMetrics{
			CostSavings:        3000,
			EmissionsReduction: 5.1,
			WasteReduction:     8.9,
			ImplementationEase: 8,
		},
		ImplementationDetails: models.ImplementationDetails{
			TimeRequired:  "1-2 months",
			EstimatedCost: 1000,
			Steps: []string{
				"Develop training materials",
				"Schedule sessions",
				"Conduct training",
				"Assess effectiveness",
			},
		},
	},
	{
		Title:       "Install Solar Panels",
		Description: "Install solar panels on your facility roof to generate renewable energy and reduce dependence on grid electricity.",
		Category:    "Energy Efficiency",
		Priority:    "high",
		ImpactMetrics: models.ImpactMetrics{
			CostSavings:        25000,
			EmissionsReduction: 45.2,
			WasteReduction:     3.4,
			ImplementationEase: 4,
		},
		ImplementationDetails: models.ImplementationDetails{
			TimeRequired:  "6-12 months",
			EstimatedCost: 15000,
			Steps: []string{
				"Conduct feasibility study",
				"Obtain permits",
				"Install panels",
				"Connect to grid",
			},
		},
	},
	{
		Title:       "Digital Document Management",
		Description: "Implement paperless systems to reduce paper waste and improve operational efficiency.",
		Category:    "Technology",
		Priority:    "medium",
		ImpactMetrics: models.ImpactMetrics{
			CostSavings:        7000,
			EmissionsReduction: 6.8,
			WasteReduction:     12.5,
			ImplementationEase: 7,
		},
		ImplementationDetails: models.ImplementationDetails{
			TimeRequired:  "3-5 months",
			EstimatedCost: 4000,
			Steps: []string{
				"Audit paper usage",
				"Select software",
				"Migrate documents",
				"Train staff",
			},
		},
	},
}

// SampleSuggestions picks count entries from the catalog in randomized
// order without replacement. A count above the catalog size is clamped, so
// at most one copy of each entry is ever returned. A nil rng uses the
// shared math/rand source.
func SampleSuggestions(catalog []SuggestionTemplate, count int, rng *rand.Rand) []SuggestionTemplate {
	if count < 0 {
		count = 0
	}
	if count > len(catalog) {
		count = len(catalog)
	}

	var order []int
	if rng != nil {
		order = rng.Perm(len(catalog))
	} else {
		order = rand.Perm(len(catalog))
	}

	picked := make([]SuggestionTemplate, 0, count)
	for _, idx := range order[:count] {
		picked = append(picked, catalog[idx])
	}
	return picked
}

// Confidence draws a generation confidence in [0.8, 1.0). A nil rng uses
// the shared math/rand source.
func Confidence(rng *rand.Rand) float64 {
	if rng != nil {
		return 0.8 + rng.Float64()*0.2
	}
	return 0.8 + rand.Float64()*0.2
}

// ImpactScore is the unweighted mean of the four impact metrics, rounded
// to one decimal. The metrics carry incompatible units (currency, CO2e,
// waste mass, an ease rating); the averaging is inherited behaviour and
// kept as-is.
func ImpactScore(m models.ImpactMetrics) float64 {
	total := (m.CostSavings + m.EmissionsReduction + m.WasteReduction + m.ImplementationEase) / 4
	return math.Round(total*10) / 10
}
