// server/internal/api/handlers/logistics_handler.go
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/arnavbhardwaj457/ecoretail/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type LogisticsHandler struct {
	DB *mongo.Database
}

type RouteGeometryRequest struct {
	Name        string               `json:"name" binding:"required"`
	Origin      models.RouteEndpoint `json:"origin" binding:"required"`
	Destination models.RouteEndpoint `json:"destination" binding:"required"`
	Distance    models.ValueUnit     `json:"distance"`
}

type TransportRequest struct {
	Mode        string           `json:"mode" binding:"required"`
	VehicleType string           `json:"vehicleType"`
	FuelType    string           `json:"fuelType"`
	Capacity    models.ValueUnit `json:"capacity"`
}

type LogisticsRouteRequest struct {
	Route     RouteGeometryRequest `json:"route" binding:"required"`
	Transport TransportRequest     `json:"transport" binding:"required"`
	Emissions models.Emissions     `json:"emissions"`
	Costs     models.RouteCosts    `json:"costs"`
	Schedule  models.Schedule      `json:"schedule"`
	Status    string               `json:"status" binding:"omitempty,oneof=active inactive optimized pending_optimization"`
	Notes     string               `json:"notes"`
}

// validateRouteRequest checks the enum-valued fields against the known
// value lists the routes are stored with.
func validateRouteRequest(req *LogisticsRouteRequest) error {
	if !validEnum(req.Transport.Mode, models.TransportModes) {
		return fmt.Errorf("unknown transport mode %q", req.Transport.Mode)
	}
	if !validEnum(req.Transport.FuelType, models.FuelTypes) {
		return fmt.Errorf("unknown fuel type %q", req.Transport.FuelType)
	}
	if !validEnum(req.Schedule.Frequency, models.ScheduleFrequencies) {
		return fmt.Errorf("unknown schedule frequency %q", req.Schedule.Frequency)
	}
	return nil
}

// applySavings derives the saved emissions and cost deltas whenever an
// alternative scenario is present. Routes without an alternative keep
// whatever the client sent.
func applySavings(route *models.LogisticsRoute) {
	if route.Emissions.Alternative.Value > 0 {
		route.Emissions.Saved = models.ValueUnit{
			Value: route.Emissions.Current.Value - route.Emissions.Alternative.Value,
			Unit:  route.Emissions.Current.Unit,
		}
	}
	if route.Costs.Alternative.Value > 0 {
		route.Costs.Savings = models.Money{
			Value:    route.Costs.Current.Value - route.Costs.Alternative.Value,
			Currency: route.Costs.Current.Currency,
		}
	}
}

// CreateRoute records a logistics route for the caller.
func (h *LogisticsHandler) CreateRoute(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user context"})
		return
	}

	var req LogisticsRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "message": err.Error()})
		return
	}
	if err := validateRouteRequest(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "message": err.Error()})
		return
	}

	now := time.Now()
	route := models.LogisticsRoute{
		Route: models.RouteGeometry{
			Name:        req.Route.Name,
			Origin:      req.Route.Origin,
			Destination: req.Route.Destination,
			Distance:    req.Route.Distance,
		},
		Transport: models.Transport{
			Mode:        req.Transport.Mode,
			VehicleType: req.Transport.VehicleType,
			FuelType:    req.Transport.FuelType,
			Capacity:    req.Transport.Capacity,
		},
		Emissions: req.Emissions,
		Costs:     req.Costs,
		Schedule:  req.Schedule,
		Status:    req.Status,
		Optimization: models.Optimization{
			Suggestions: []models.OptimizationSuggestion{},
			Implemented: []models.ImplementedOptimization{},
		},
		Notes:     req.Notes,
		CreatedBy: userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if route.Status == "" {
		route.Status = "active"
	}
	applySavings(&route)

	result, err := h.DB.Collection("logistics_routes").InsertOne(context.Background(), route)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create route", "message": err.Error()})
		return
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		route.ID = oid
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Route created successfully",
		"route":   route,
	})
}

// GetRoutes lists the caller's routes with pagination and optional
// status/mode filters.
func (h *LogisticsHandler) GetRoutes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user context"})
		return
	}

	page, limit := parsePagination(c, 10)

	query := bson.M{"createdBy": userID}
	if status := c.Query("status"); status != "" {
		if !validEnum(status, models.LogisticsRouteStatuses) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "message": "unknown status " + status})
			return
		}
		query["status"] = status
	}
	if mode := c.Query("mode"); mode != "" {
		if !validEnum(mode, models.TransportModes) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "message": "unknown transport mode " + mode})
			return
		}
		query["transport.mode"] = mode
	}
	if search := c.Query("search"); search != "" {
		query["$or"] = []bson.M{
			{"route.name": bson.M{"$regex": search, "$options": "i"}},
			{"route.origin.location": bson.M{"$regex": search, "$options": "i"}},
			{"route.destination.location": bson.M{"$regex": search, "$options": "i"}},
		}
	}

	collection := h.DB.Collection("logistics_routes")

	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetLimit(limit).
		SetSkip((page - 1) * limit)

	cursor, err := collection.Find(context.Background(), query, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch routes", "message": err.Error()})
		return
	}
	defer cursor.Close(context.Background())

	var routes []models.LogisticsRoute
	if err := cursor.All(context.Background(), &routes); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode routes", "message": err.Error()})
		return
	}
	if routes == nil {
		routes = []models.LogisticsRoute{}
	}

	total, err := collection.CountDocuments(context.Background(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count routes", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"routes":      routes,
		"totalPages":  totalPages(total, limit),
		"currentPage": page,
		"total":       total,
	})
}

// GetRouteByID fetches one route owned by the caller.
func (h *LogisticsHandler) GetRouteByID(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user context"})
		return
	}

	routeID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		return
	}

	var route models.LogisticsRoute
	err = h.DB.Collection("logistics_routes").FindOne(context.Background(), bson.M{"_id": routeID, "createdBy": userID}).Decode(&route)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch route", "message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"route": route})
}

// UpdateRoute replaces the route's mutable fields and rederives savings.
func (h *LogisticsHandler) UpdateRoute(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user context"})
		return
	}

	routeID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		return
	}

	var req LogisticsRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "message": err.Error()})
		return
	}
	if err := validateRouteRequest(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "message": err.Error()})
		return
	}

	collection := h.DB.Collection("logistics_routes")

	var route models.LogisticsRoute
	err = collection.FindOne(context.Background(), bson.M{"_id": routeID, "createdBy": userID}).Decode(&route)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch route", "message": err.Error()})
		}
		return
	}

	route.Route = models.RouteGeometry{
		Name:        req.Route.Name,
		Origin:      req.Route.Origin,
		Destination: req.Route.Destination,
		Distance:    req.Route.Distance,
	}
	route.Transport = models.Transport{
		Mode:        req.Transport.Mode,
		VehicleType: req.Transport.VehicleType,
		FuelType:    req.Transport.FuelType,
		Capacity:    req.Transport.Capacity,
	}
	route.Emissions = req.Emissions
	route.Costs = req.Costs
	route.Schedule = req.Schedule
	route.Notes = req.Notes
	if req.Status != "" {
		route.Status = req.Status
	}
	applySavings(&route)
	route.UpdatedAt = time.Now()

	_, err = collection.ReplaceOne(context.Background(), bson.M{"_id": routeID, "createdBy": userID}, route)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update route", "message": err.Error()})
		return
	}
	route.ID = routeID

	c.JSON(http.StatusOK, gin.H{
		"message": "Route updated successfully",
		"route":   route,
	})
}

// DeleteRoute removes one route owned by the caller.
func (h *LogisticsHandler) DeleteRoute(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user context"})
		return
	}

	routeID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		return
	}

	result, err := h.DB.Collection("logistics_routes").DeleteOne(context.Background(), bson.M{"_id": routeID, "createdBy": userID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete route", "message": err.Error()})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Route deleted successfully"})
}

type OptimizationSuggestionRequest struct {
	Type               string                  `json:"type" binding:"required"`
	Description        string                  `json:"description" binding:"required"`
	PotentialSavings   models.PotentialSavings `json:"potentialSavings"`
	ImplementationCost float64                 `json:"implementationCost"`
	PaybackPeriod      float64                 `json:"paybackPeriod"`
}

// AddOptimizationSuggestion appends a suggestion and flags the route as
// pending optimization.
func (h *LogisticsHandler) AddOptimizationSuggestion(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user context"})
		return
	}

	routeID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		return
	}

	var req OptimizationSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "message": err.Error()})
		return
	}
	if !validEnum(req.Type, models.OptimizationTypes) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "message": "unknown optimization type " + req.Type})
		return
	}

	suggestion := models.OptimizationSuggestion{
		Type:               req.Type,
		Description:        req.Description,
		PotentialSavings:   req.PotentialSavings,
		ImplementationCost: req.ImplementationCost,
		PaybackPeriod:      req.PaybackPeriod,
	}

	result, err := h.DB.Collection("logistics_routes").UpdateOne(context.Background(),
		bson.M{"_id": routeID, "createdBy": userID},
		bson.M{
			"$push": bson.M{"optimization.suggestions": suggestion},
			"$set":  bson.M{"status": "pending_optimization", "updatedAt": time.Now()},
		})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add suggestion", "message": err.Error()})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Optimization suggestion added", "suggestion": suggestion})
}

type ImplementOptimizationRequest struct {
	Type          string                  `json:"type" binding:"required"`
	Description   string                  `json:"description" binding:"required"`
	ActualSavings models.PotentialSavings `json:"actualSavings"`
}

// ImplementOptimization records an applied optimization and marks the route
// as optimized.
func (h *LogisticsHandler) ImplementOptimization(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user context"})
		return
	}

	routeID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		return
	}

	var req ImplementOptimizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "message": err.Error()})
		return
	}
	if !validEnum(req.Type, models.OptimizationTypes) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "message": "unknown optimization type " + req.Type})
		return
	}

	implemented := models.ImplementedOptimization{
		Type:            req.Type,
		Description:     req.Description,
		ImplementedDate: time.Now(),
		ActualSavings:   req.ActualSavings,
	}

	result, err := h.DB.Collection("logistics_routes").UpdateOne(context.Background(),
		bson.M{"_id": routeID, "createdBy": userID},
		bson.M{
			"$push": bson.M{"optimization.implemented": implemented},
			"$set":  bson.M{"status": "optimized", "updatedAt": time.Now()},
		})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to implement optimization", "message": err.Error()})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Optimization implemented", "optimization": implemented})
}

// GetEmissionsAnalytics aggregates emissions, savings and mode stats over
// the caller's routes.
func (h *LogisticsHandler) GetEmissionsAnalytics(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user context"})
		return
	}

	cursor, err := h.DB.Collection("logistics_routes").Find(context.Background(), bson.M{"createdBy": userID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analytics", "message": err.Error()})
		return
	}
	defer cursor.Close(context.Background())

	var routes []models.LogisticsRoute
	if err := cursor.All(context.Background(), &routes); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode routes", "message": err.Error()})
		return
	}

	var currentEmissions, savedEmissions, totalDistance, costSavings float64
	modeCounts := map[string]int{}
	statusCounts := map[string]int{}
	monthlyEmissions := map[string]float64{}
	implementedCount := 0

	type opportunity struct {
		RouteID          string                        `json:"routeId"`
		RouteName        string                        `json:"routeName"`
		Suggestion       models.OptimizationSuggestion `json:"suggestion"`
		EmissionsSavings float64                       `json:"emissionsSavings"`
	}
	var opportunities []opportunity

	for _, route := range routes {
		currentEmissions += route.Emissions.Current.Value
		savedEmissions += route.Emissions.Saved.Value
		totalDistance += route.Route.Distance.Value
		costSavings += route.Costs.Savings.Value
		modeCounts[route.Transport.Mode]++
		statusCounts[route.Status]++
		monthlyEmissions[route.CreatedAt.Format("2006-01")] += route.Emissions.Current.Value
		implementedCount += len(route.Optimization.Implemented)

		for _, suggestion := range route.Optimization.Suggestions {
			opportunities = append(opportunities, opportunity{
				RouteID:          route.ID.Hex(),
				RouteName:        route.Route.Name,
				Suggestion:       suggestion,
				EmissionsSavings: suggestion.PotentialSavings.Emissions,
			})
		}
	}

	// Biggest emissions wins first.
	sort.Slice(opportunities, func(i, j int) bool {
		return opportunities[i].EmissionsSavings > opportunities[j].EmissionsSavings
	})
	if opportunities == nil {
		opportunities = []opportunity{}
	}

	c.JSON(http.StatusOK, gin.H{
		"analytics": gin.H{
			"totalRoutes":               len(routes),
			"totalDistance":             gin.H{"value": totalDistance, "unit": "km"},
			"currentEmissions":          gin.H{"value": currentEmissions, "unit": "kg CO2e"},
			"savedEmissions":            gin.H{"value": savedEmissions, "unit": "kg CO2e"},
			"costSavings":               costSavings,
			"modeCounts":                modeCounts,
			"statusCounts":              statusCounts,
			"monthlyEmissions":          monthlyEmissions,
			"implementedOptimizations":  implementedCount,
			"optimizationOpportunities": opportunities,
		},
	})
}
