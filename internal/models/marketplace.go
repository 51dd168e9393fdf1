// server/internal/models/marketplace.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ListingCategories are the accepted values for Listing.Category. The
// impact estimator has a factor entry for each of them.
var ListingCategories = []string{"packaging", "electronics", "textiles", "furniture", "construction", "food_waste", "chemicals", "other"}

type Dimensions struct {
	Length float64 `bson:"length,omitempty" json:"length"`
	Width  float64 `bson:"width,omitempty" json:"width"`
	Height float64 `bson:"height,omitempty" json:"height"`
	Unit   string  `bson:"unit,omitempty" json:"unit"` // e.g. "cm"
}

type MaterialSpecifications struct {
	Dimensions Dimensions `bson:"dimensions,omitempty" json:"dimensions"`
	Weight     ValueUnit  `bson:"weight,omitempty" json:"weight"`
	Material   string     `bson:"material,omitempty" json:"material"`
	Color      string     `bson:"color,omitempty" json:"color"`
	Brand      string     `bson:"brand,omitempty" json:"brand"`
}

type Material struct {
	Type           string                 `bson:"type" json:"type"`
	Quantity       ValueUnit              `bson:"quantity" json:"quantity"`
	Condition      string                 `bson:"condition" json:"condition"` // "new", "like_new", "good", "fair", "poor"
	Specifications MaterialSpecifications `bson:"specifications,omitempty" json:"specifications"`
}

type ListingLocation struct {
	Address      Address     `bson:"address" json:"address"`
	Coordinates  Coordinates `bson:"coordinates,omitempty" json:"coordinates"`
	PickupRadius ValueUnit   `bson:"pickupRadius,omitempty" json:"pickupRadius"`
}

type Pricing struct {
	Type          string `bson:"type" json:"type"` // "free", "negotiable", "fixed"
	Amount        Money  `bson:"amount" json:"amount"`
	OriginalValue Money  `bson:"originalValue,omitempty" json:"originalValue"`
}

// SustainabilityImpact is derived from category and quantity only.
type SustainabilityImpact struct {
	CarbonSaved        ValueUnit `bson:"carbonSaved" json:"carbonSaved"`               // kg CO2e
	WasteDiverted      ValueUnit `bson:"wasteDiverted" json:"wasteDiverted"`           // kg
	LifecycleExtension ValueUnit `bson:"lifecycleExtension" json:"lifecycleExtension"` // years
}

type ListingImage struct {
	URL       string `bson:"url" json:"url"`
	Caption   string `bson:"caption,omitempty" json:"caption"`
	IsPrimary bool   `bson:"isPrimary" json:"isPrimary"`
}

type InquiryContact struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Phone string `bson:"phone,omitempty" json:"phone"`
}

type Inquiry struct {
	Message     string         `bson:"message" json:"message"`
	ContactInfo InquiryContact `bson:"contactInfo" json:"contactInfo"`
	Date        time.Time      `bson:"date" json:"date"`
	Status      string         `bson:"status" json:"status"` // "pending", "responded", "accepted", "declined"
}

type ListingContact struct {
	Name    string `bson:"name" json:"name"`
	Email   string `bson:"email" json:"email"`
	Phone   string `bson:"phone,omitempty" json:"phone"`
	Company string `bson:"company,omitempty" json:"company"`
}

type Listing struct {
	ID             primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title          string               `bson:"title" json:"title"`
	Description    string               `bson:"description" json:"description"`
	Category       string               `bson:"category" json:"category"`
	Material       Material             `bson:"material" json:"material"`
	Location       ListingLocation      `bson:"location" json:"location"`
	Pricing        Pricing              `bson:"pricing" json:"pricing"`
	Sustainability SustainabilityImpact `bson:"sustainability" json:"sustainability"`
	Images         []ListingImage       `bson:"images" json:"images"`
	Status         string               `bson:"status" json:"status"` // "available", "reserved", "sold", "expired"
	ExpiryDate     time.Time            `bson:"expiryDate" json:"expiryDate"`
	Contact        ListingContact       `bson:"contact" json:"contact"`
	Tags           []string             `bson:"tags" json:"tags"`
	Views          int64                `bson:"views" json:"views"`
	Inquiries      []Inquiry            `bson:"inquiries" json:"inquiries"`
	CreatedBy      primitive.ObjectID   `bson:"createdBy" json:"createdBy"`
	CreatedAt      time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// IsExpired reports whether the listing is past its expiry date.
func (l *Listing) IsExpired() bool {
	return time.Now().After(l.ExpiryDate)
}
