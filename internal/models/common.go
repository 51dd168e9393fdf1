// server/internal/models/common.go
package models

// ValueUnit pairs a numeric value with its unit, e.g. {120, "kg CO2e"}.
type ValueUnit struct {
	Value float64 `bson:"value" json:"value"`
	Unit  string  `bson:"unit,omitempty" json:"unit"`
}

// Money pairs an amount with a currency code.
type Money struct {
	Value    float64 `bson:"value" json:"value"`
	Currency string  `bson:"currency,omitempty" json:"currency"`
}

// Address is a structured postal address.
type Address struct {
	Street  string `bson:"street,omitempty" json:"street"`
	City    string `bson:"city,omitempty" json:"city"`
	State   string `bson:"state,omitempty" json:"state"`
	ZipCode string `bson:"zipCode,omitempty" json:"zipCode"`
	Country string `bson:"country,omitempty" json:"country"`
}

// Coordinates is a lat/lng pair.
type Coordinates struct {
	Lat float64 `bson:"lat,omitempty" json:"lat"`
	Lng float64 `bson:"lng,omitempty" json:"lng"`
}
