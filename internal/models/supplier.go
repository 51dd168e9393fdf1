// server/internal/models/supplier.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SupplierCategories are the accepted values for Supplier.Category.
var SupplierCategories = []string{"raw_materials", "packaging", "electronics", "textiles", "food", "chemicals", "other"}

type SupplierContact struct {
	Email   string  `bson:"email" json:"email"`
	Phone   string  `bson:"phone,omitempty" json:"phone"`
	Address Address `bson:"address,omitempty" json:"address"`
}

// MetricValue is a tracked sustainability measurement.
type MetricValue struct {
	Value       float64   `bson:"value" json:"value"`
	Unit        string    `bson:"unit,omitempty" json:"unit"`
	LastUpdated time.Time `bson:"lastUpdated,omitempty" json:"lastUpdated"`
}

type RenewableEnergy struct {
	Percentage  float64   `bson:"percentage" json:"percentage"` // 0-100
	LastUpdated time.Time `bson:"lastUpdated,omitempty" json:"lastUpdated"`
}

type SustainabilityMetrics struct {
	CarbonFootprint MetricValue     `bson:"carbonFootprint" json:"carbonFootprint"` // kg CO2e
	WaterUsage      MetricValue     `bson:"waterUsage" json:"waterUsage"`           // liters
	WasteGenerated  MetricValue     `bson:"wasteGenerated" json:"wasteGenerated"`   // kg
	RenewableEnergy RenewableEnergy `bson:"renewableEnergy" json:"renewableEnergy"`
}

type Certification struct {
	Name       string     `bson:"name" json:"name"`
	Issuer     string     `bson:"issuer" json:"issuer"`
	IssueDate  time.Time  `bson:"issueDate" json:"issueDate"`
	ExpiryDate *time.Time `bson:"expiryDate,omitempty" json:"expiryDate,omitempty"`
	Status     string     `bson:"status" json:"status"` // "active", "expired", "pending"
}

// Practices are the boolean sustainability practice flags.
type Practices struct {
	FairTrade         bool `bson:"fairTrade" json:"fairTrade"`
	Organic           bool `bson:"organic" json:"organic"`
	LocalSourcing     bool `bson:"localSourcing" json:"localSourcing"`
	RecycledMaterials bool `bson:"recycledMaterials" json:"recycledMaterials"`
	EnergyEfficient   bool `bson:"energyEfficient" json:"energyEfficient"`
	WasteReduction    bool `bson:"wasteReduction" json:"wasteReduction"`
}

// SustainabilityScore is the derived ESG score record, recomputed on every
// create/update and via the explicit recalculation endpoint.
type SustainabilityScore struct {
	Environmental  int       `bson:"environmental" json:"environmental"`
	Social         int       `bson:"social" json:"social"`
	Governance     int       `bson:"governance" json:"governance"`
	Overall        int       `bson:"overall" json:"overall"`
	LastCalculated time.Time `bson:"lastCalculated" json:"lastCalculated"`
}

type Supplier struct {
	ID                    primitive.ObjectID    `bson:"_id,omitempty" json:"id"`
	Name                  string                `bson:"name" json:"name"`
	Company               string                `bson:"company" json:"company"`
	Contact               SupplierContact       `bson:"contact" json:"contact"`
	Category              string                `bson:"category" json:"category"`
	SustainabilityMetrics SustainabilityMetrics `bson:"sustainabilityMetrics" json:"sustainabilityMetrics"`
	Certifications        []Certification       `bson:"certifications" json:"certifications"`
	SustainabilityScore   SustainabilityScore   `bson:"sustainabilityScore" json:"sustainabilityScore"`
	Practices             Practices             `bson:"practices" json:"practices"`
	Status                string                `bson:"status" json:"status"` // "active", "inactive", "pending_review"
	Notes                 string                `bson:"notes,omitempty" json:"notes"`
	AddedBy               primitive.ObjectID    `bson:"addedBy" json:"addedBy"`
	CreatedAt             time.Time             `bson:"createdAt" json:"createdAt"`
	UpdatedAt             time.Time             `bson:"updatedAt" json:"updatedAt"`
}
