// server/internal/models/suggestion.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SuggestionCategories are the fixed categories the suggestion catalog
// draws from.
var SuggestionCategories = []string{
	"Waste Reduction",
	"Energy Efficiency",
	"Supply Chain",
	"Packaging",
	"Transportation",
	"Water Conservation",
	"Employee Training",
	"Technology",
}

const (
	SuggestionStatusPending     = "pending"
	SuggestionStatusImplemented = "implemented"
	SuggestionStatusRejected    = "rejected"
)

type ImpactMetrics struct {
	CostSavings        float64 `bson:"costSavings" json:"costSavings"`               // currency/year
	EmissionsReduction float64 `bson:"emissionsReduction" json:"emissionsReduction"` // tonnes CO2e/year
	WasteReduction     float64 `bson:"wasteReduction" json:"wasteReduction"`         // tonnes/year
	ImplementationEase float64 `bson:"implementationEase" json:"implementationEase"` // 1-10
}

type ImplementationDetails struct {
	TimeRequired  string   `bson:"timeRequired" json:"timeRequired"`
	Resources     []string `bson:"resources" json:"resources"`
	Steps         []string `bson:"steps" json:"steps"`
	EstimatedCost float64  `bson:"estimatedCost" json:"estimatedCost"`
}

type UserFeedback struct {
	Rating          int        `bson:"rating,omitempty" json:"rating,omitempty"` // 1-5
	Comment         string     `bson:"comment,omitempty" json:"comment,omitempty"`
	ImplementedDate *time.Time `bson:"implementedDate,omitempty" json:"implementedDate,omitempty"`
	RejectionReason string     `bson:"rejectionReason,omitempty" json:"rejectionReason,omitempty"`
}

type SuggestionMetadata struct {
	AIModel        string    `bson:"aiModel" json:"aiModel"`
	Confidence     float64   `bson:"confidence" json:"confidence"` // 0-1
	GenerationDate time.Time `bson:"generationDate" json:"generationDate"`
}

// AiSuggestion is a generated sustainability recommendation. Status moves
// pending -> implemented or pending -> rejected; both are terminal.
type AiSuggestion struct {
	ID                    primitive.ObjectID    `bson:"_id,omitempty" json:"id"`
	UserID                primitive.ObjectID    `bson:"userId" json:"userId"`
	Title                 string                `bson:"title" json:"title"`
	Description           string                `bson:"description" json:"description"`
	Category              string                `bson:"category" json:"category"`
	Priority              string                `bson:"priority" json:"priority"` // "low", "medium", "high"
	Status                string                `bson:"status" json:"status"`
	ImpactMetrics         ImpactMetrics         `bson:"impactMetrics" json:"impactMetrics"`
	ImplementationDetails ImplementationDetails `bson:"implementationDetails" json:"implementationDetails"`
	Tags                  []string              `bson:"tags" json:"tags"`
	AIGenerated           bool                  `bson:"aiGenerated" json:"aiGenerated"`
	UserFeedback          UserFeedback          `bson:"userFeedback,omitempty" json:"userFeedback"`
	Metadata              SuggestionMetadata    `bson:"metadata" json:"metadata"`
	CreatedAt             time.Time             `bson:"createdAt" json:"createdAt"`
	UpdatedAt             time.Time             `bson:"updatedAt" json:"updatedAt"`
}
