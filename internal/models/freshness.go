// server/internal/models/freshness.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FreshnessRecord is written once per prediction request and never
// mutated. PredictedScore is 0-100, PredictedShelfLife is >= 0 days.
type FreshnessRecord struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RecordID             string             `bson:"recordID" json:"recordID"` // e.g. "FRS-1a2b3c4d"
	ProductName          string             `bson:"productName" json:"productName"`
	HarvestDate          time.Time          `bson:"harvestDate" json:"harvestDate"`
	TransportTemperature float64            `bson:"transportTemperature" json:"transportTemperature"` // Celsius
	StoreTemperature     float64            `bson:"storeTemperature" json:"storeTemperature"`         // Celsius
	StoreHumidity        float64            `bson:"storeHumidity" json:"storeHumidity"`               // percent
	ShelfLife            float64            `bson:"shelfLife" json:"shelfLife"`                       // days
	SalesVelocity        float64            `bson:"salesVelocity" json:"salesVelocity"`               // units/day
	PredictedScore       int                `bson:"predictedScore" json:"predictedScore"`
	PredictedShelfLife   int                `bson:"predictedShelfLife" json:"predictedShelfLife"`
	SuggestedAction      string             `bson:"suggestedAction" json:"suggestedAction"`
	CreatedBy            primitive.ObjectID `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt            time.Time          `bson:"createdAt" json:"createdAt"`
}
