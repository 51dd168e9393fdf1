// server/internal/api/handlers/freshness_handler.go
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/arnavbhardwaj457/ecoretail/internal/models"
	"github.com/arnavbhardwaj457/ecoretail/internal/scoring"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FreshnessHandler struct {
	DB *mongo.Database
}

// Numeric telemetry is accepted as-is: out-of-range readings are penalised
// by the predictor, not rejected here.
type PredictFreshnessRequest struct {
	ProductName          string    `json:"productName" binding:"required"`
	HarvestDate          time.Time `json:"harvestDate" binding:"required"`
	TransportTemperature float64   `json:"transportTemperature"`
	StoreTemperature     float64   `json:"storeTemperature"`
	StoreHumidity        float64   `json:"storeHumidity"`
	ShelfLife            float64   `json:"shelfLife"`
	SalesVelocity        float64   `json:"salesVelocity"`
}

// Predict scores the product's remaining freshness and persists one record
// per call.
func (h *FreshnessHandler) Predict(c *gin.Context) {
	var req PredictFreshnessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prediction failed", "message": err.Error()})
		return
	}

	result := scoring.PredictFreshness(scoring.FreshnessInput{
		HarvestDate:          req.HarvestDate,
		TransportTemperature: req.TransportTemperature,
		StoreTemperature:     req.StoreTemperature,
		StoreHumidity:        req.StoreHumidity,
		ShelfLife:            req.ShelfLife,
		SalesVelocity:        req.SalesVelocity,
	}, time.Now())

	record := models.FreshnessRecord{
		RecordID:             "FRS-" + uuid.New().String()[:8],
		ProductName:          req.ProductName,
		HarvestDate:          req.HarvestDate,
		TransportTemperature: req.TransportTemperature,
		StoreTemperature:     req.StoreTemperature,
		StoreHumidity:        req.StoreHumidity,
		ShelfLife:            req.ShelfLife,
		SalesVelocity:        req.SalesVelocity,
		PredictedScore:       result.Score,
		PredictedShelfLife:   result.PredictedShelfLife,
		SuggestedAction:      result.SuggestedAction,
		CreatedAt:            time.Now(),
	}

	if userID, ok := currentUserID(c); ok {
		record.CreatedBy = userID
	}

	insertResult, err := h.DB.Collection("freshness_predictions").InsertOne(context.Background(), record)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prediction failed", "message": err.Error()})
		return
	}
	if oid, ok := insertResult.InsertedID.(primitive.ObjectID); ok {
		record.ID = oid
	}

	c.JSON(http.StatusOK, record)
}

// GetMyPredictions returns the caller's most recent predictions.
func (h *FreshnessHandler) GetMyPredictions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user context"})
		return
	}

	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetLimit(20)

	cursor, err := h.DB.Collection("freshness_predictions").Find(context.Background(), bson.M{"createdBy": userID}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch predictions", "message": err.Error()})
		return
	}
	defer cursor.Close(context.Background())

	var records []models.FreshnessRecord
	if err := cursor.All(context.Background(), &records); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode predictions", "message": err.Error()})
		return
	}

	if records == nil {
		records = []models.FreshnessRecord{}
	}

	c.JSON(http.StatusOK, gin.H{"predictions": records, "total": len(records)})
}
