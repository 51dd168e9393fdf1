// server/internal/models/logistics.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	TransportModes         = []string{"truck", "train", "ship", "plane", "electric_vehicle", "bicycle", "walking"}
	FuelTypes              = []string{"diesel", "gasoline", "electric", "hybrid", "biodiesel", "hydrogen", "none"}
	OptimizationTypes      = []string{"route_change", "mode_change", "vehicle_upgrade", "schedule_optimization"}
	ScheduleFrequencies    = []string{"daily", "weekly", "monthly", "quarterly", "on_demand"}
	LogisticsRouteStatuses = []string{"active", "inactive", "optimized", "pending_optimization"}
)

type RouteEndpoint struct {
	Location    string      `bson:"location" json:"location"`
	Coordinates Coordinates `bson:"coordinates,omitempty" json:"coordinates"`
}

type RouteGeometry struct {
	Name        string        `bson:"name" json:"name"`
	Origin      RouteEndpoint `bson:"origin" json:"origin"`
	Destination RouteEndpoint `bson:"destination" json:"destination"`
	Distance    ValueUnit     `bson:"distance" json:"distance"` // km
}

type Transport struct {
	Mode        string    `bson:"mode" json:"mode"`
	VehicleType string    `bson:"vehicleType,omitempty" json:"vehicleType"`
	FuelType    string    `bson:"fuelType" json:"fuelType"`
	Capacity    ValueUnit `bson:"capacity,omitempty" json:"capacity"` // kg
}

// Emissions holds current and alternative-scenario emissions. Saved is
// derived (current - alternative) and recomputed on save when an
// alternative value is present.
type Emissions struct {
	Current     ValueUnit `bson:"current" json:"current"`
	Alternative ValueUnit `bson:"alternative" json:"alternative"`
	Saved       ValueUnit `bson:"saved" json:"saved"`
}

type RouteCosts struct {
	Current     Money `bson:"current" json:"current"`
	Alternative Money `bson:"alternative" json:"alternative"`
	Savings     Money `bson:"savings" json:"savings"`
}

type Schedule struct {
	Frequency string     `bson:"frequency" json:"frequency"`
	LastTrip  *time.Time `bson:"lastTrip,omitempty" json:"lastTrip,omitempty"`
	NextTrip  *time.Time `bson:"nextTrip,omitempty" json:"nextTrip,omitempty"`
}

type PotentialSavings struct {
	Emissions float64 `bson:"emissions" json:"emissions"`
	Cost      float64 `bson:"cost" json:"cost"`
}

type OptimizationSuggestion struct {
	Type               string           `bson:"type" json:"type"`
	Description        string           `bson:"description" json:"description"`
	PotentialSavings   PotentialSavings `bson:"potentialSavings" json:"potentialSavings"`
	ImplementationCost float64          `bson:"implementationCost" json:"implementationCost"`
	PaybackPeriod      float64          `bson:"paybackPeriod" json:"paybackPeriod"`
}

type ImplementedOptimization struct {
	Type            string           `bson:"type" json:"type"`
	Description     string           `bson:"description" json:"description"`
	ImplementedDate time.Time        `bson:"implementedDate" json:"implementedDate"`
	ActualSavings   PotentialSavings `bson:"actualSavings" json:"actualSavings"`
}

type Optimization struct {
	Suggestions []OptimizationSuggestion  `bson:"suggestions" json:"suggestions"`
	Implemented []ImplementedOptimization `bson:"implemented" json:"implemented"`
}

type LogisticsRoute struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Route        RouteGeometry      `bson:"route" json:"route"`
	Transport    Transport          `bson:"transport" json:"transport"`
	Emissions    Emissions          `bson:"emissions" json:"emissions"`
	Costs        RouteCosts         `bson:"costs" json:"costs"`
	Schedule     Schedule           `bson:"schedule" json:"schedule"`
	Status       string             `bson:"status" json:"status"`
	Optimization Optimization       `bson:"optimization" json:"optimization"`
	Notes        string             `bson:"notes,omitempty" json:"notes"`
	CreatedBy    primitive.ObjectID `bson:"createdBy" json:"createdBy"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
