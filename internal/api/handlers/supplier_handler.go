// server/internal/api/handlers/supplier_handler.go
package handlers

import (
	"context"
	"math"
	"net/http"
	"time"

	"github.com/arnavbhardwaj457/ecoretail/internal/models"
	"github.com/arnavbhardwaj457/ecoretail/internal/scoring"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SupplierHandler struct {
	DB *mongo.Database
}

type SupplierContactRequest struct {
	Email   string         `json:"email" binding:"required,email"`
	Phone   string         `json:"phone"`
	Address models.Address `json:"address"`
}

type SupplierRequest struct {
	Name                  string                       `json:"name" binding:"required"`
	Company               string                       `json:"company" binding:"required"`
	Contact               SupplierContactRequest       `json:"contact" binding:"required"`
	Category              string                       `json:"category" binding:"required,oneof=raw_materials packaging electronics textiles food chemicals other"`
	SustainabilityMetrics models.SustainabilityMetrics `json:"sustainabilityMetrics"`
	Certifications        []models.Certification       `json:"certifications"`
	Practices             models.Practices             `json:"practices"`
	Status                string                       `json:"status" binding:"omitempty,oneof=active inactive pending_review"`
	Notes                 string                       `json:"notes"`
}

// CreateSupplier registers a supplier for the caller and computes its
// initial sustainability score.
func (h *SupplierHandler) CreateSupplier(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user context"})
		return
	}

	var req SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "message": err.Error()})
		return
	}

	now := time.Now()
	supplier := models.Supplier{
		Name:    req.Name,
		Company: req.Company,
		Contact: models.SupplierContact{
			Email:   req.Contact.Email,
			Phone:   req.Contact.Phone,
			Address: req.Contact.Address,
		},
		Category:              req.Category,
		SustainabilityMetrics: req.SustainabilityMetrics,
		Certifications:        req.Certifications,
		Practices:             req.Practices,
		Status:                req.Status,
		Notes:                 req.Notes,
		AddedBy:               userID,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if supplier.Status == "" {
		supplier.Status = "active"
	}
	if supplier.Certifications == nil {
		supplier.Certifications = []models.Certification{}
	}

	supplier.SustainabilityScore = scoring.ScoreSupplier(supplier.SustainabilityMetrics, supplier.Practices, supplier.Certifications, now)

	result, err := h.DB.Collection("suppliers").InsertOne(context.Background(), supplier)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create supplier", "message": err.Error()})
		return
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		supplier.ID = oid
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Supplier created successfully",
		"supplier": supplier,
	})
}

// GetSuppliers lists the caller's suppliers with pagination and optional
// category/status/search filters.
func (h *SupplierHandler) GetSuppliers(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user context"})
		return
	}

	page, limit := parsePagination(c, 10)

	query := bson.M{"addedBy": userID}
	if category := c.Query("category"); category != "" {
		if !validEnum(category, models.SupplierCategories) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "message": "unknown category " + category})
			return
		}
		query["category"] = category
	}
	if status := c.Query("status"); status != "" {
		query["status"] = status
	}
	if search := c.Query("search"); search != "" {
		query["$or"] = []bson.M{
			{"name": bson.M{"$regex": search, "$options": "i"}},
			{"company": bson.M{"$regex": search, "$options": "i"}},
		}
	}

	collection := h.DB.Collection("suppliers")

	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetLimit(limit).
		SetSkip((page - 1) * limit)

	cursor, err := collection.Find(context.Background(), query, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch suppliers", "message": err.Error()})
		return
	}
	defer cursor.Close(context.Background())

	var suppliers []models.Supplier
	if err := cursor.All(context.Background(), &suppliers); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode suppliers", "message": err.Error()})
		return
	}
	if suppliers == nil {
		suppliers = []models.Supplier{}
	}

	total, err := collection.CountDocuments(context.Background(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count suppliers", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"suppliers":   suppliers,
		"totalPages":  totalPages(total, limit),
		"currentPage": page,
		"total":       total,
	})
}

// GetSupplierByID fetches one supplier owned by the caller.
func (h *SupplierHandler) GetSupplierByID(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user context"})
		return
	}

	supplierID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
		return
	}

	var supplier models.Supplier
	err = h.DB.Collection("suppliers").FindOne(context.Background(), bson.M{"_id": supplierID, "addedBy": userID}).Decode(&supplier)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch supplier", "message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"supplier": supplier})
}

// UpdateSupplier replaces the supplier's mutable fields and recomputes the
// sustainability score.
func (h *SupplierHandler) UpdateSupplier(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user context"})
		return
	}

	supplierID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
		return
	}

	var req SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "message": err.Error()})
		return
	}

	collection := h.DB.Collection("suppliers")

	var supplier models.Supplier
	err = collection.FindOne(context.Background(), bson.M{"_id": supplierID, "addedBy": userID}).Decode(&supplier)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch supplier", "message": err.Error()})
		}
		return
	}

	now := time.Now()
	supplier.Name = req.Name
	supplier.Company = req.Company
	supplier.Contact = models.SupplierContact{
		Email:   req.Contact.Email,
		Phone:   req.Contact.Phone,
		Address: req.Contact.Address,
	}
	supplier.Category = req.Category
	supplier.SustainabilityMetrics = req.SustainabilityMetrics
	supplier.Certifications = req.Certifications
	supplier.Practices = req.Practices
	supplier.Notes = req.Notes
	if req.Status != "" {
		supplier.Status = req.Status
	}
	if supplier.Certifications == nil {
		supplier.Certifications = []models.Certification{}
	}
	supplier.SustainabilityScore = scoring.ScoreSupplier(supplier.SustainabilityMetrics, supplier.Practices, supplier.Certifications, now)
	supplier.UpdatedAt = now

	_, err = collection.ReplaceOne(context.Background(), bson.M{"_id": supplierID, "addedBy": userID}, supplier)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update supplier", "message": err.Error()})
		return
	}
	supplier.ID = supplierID

	c.JSON(http.StatusOK, gin.H{
		"message":  "Supplier updated successfully",
		"supplier": supplier,
	})
}

// DeleteSupplier removes one supplier owned by the caller.
func (h *SupplierHandler) DeleteSupplier(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user context"})
		return
	}

	supplierID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
		return
	}

	result, err := h.DB.Collection("suppliers").DeleteOne(context.Background(), bson.M{"_id": supplierID, "addedBy": userID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete supplier", "message": err.Error()})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Supplier deleted successfully"})
}

// RecalculateScore recomputes the sustainability score from the stored
// fields on demand.
func (h *SupplierHandler) RecalculateScore(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user context"})
		return
	}

	supplierID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
		return
	}

	collection := h.DB.Collection("suppliers")

	var supplier models.Supplier
	err = collection.FindOne(context.Background(), bson.M{"_id": supplierID, "addedBy": userID}).Decode(&supplier)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch supplier", "message": err.Error()})
		}
		return
	}

	newScore := scoring.ScoreSupplier(supplier.SustainabilityMetrics, supplier.Practices, supplier.Certifications, time.Now())

	_, err = collection.UpdateOne(context.Background(),
		bson.M{"_id": supplierID, "addedBy": userID},
		bson.M{"$set": bson.M{"sustainabilityScore": newScore, "updatedAt": time.Now()}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to recalculate score", "message": err.Error()})
		return
	}
	supplier.SustainabilityScore = newScore

	c.JSON(http.StatusOK, gin.H{
		"message":  "Sustainability score recalculated",
		"supplier": supplier,
		"newScore": newScore,
	})
}

type supplierCategoryStats struct {
	Count        int `json:"count"`
	AverageScore int `json:"averageScore"`
	TotalScore   int `json:"totalScore"`
}

// GetSustainabilityAnalytics aggregates score and certification stats over
// the caller's suppliers.
func (h *SupplierHandler) GetSustainabilityAnalytics(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user context"})
		return
	}

	cursor, err := h.DB.Collection("suppliers").Find(context.Background(), bson.M{"addedBy": userID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analytics", "message": err.Error()})
		return
	}
	defer cursor.Close(context.Background())

	var suppliers []models.Supplier
	if err := cursor.All(context.Background(), &suppliers); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode suppliers", "message": err.Error()})
		return
	}

	scoreDistribution := gin.H{"excellent": 0, "good": 0, "fair": 0, "poor": 0}
	categoryBreakdown := map[string]*supplierCategoryStats{}
	certTotal, certActive, certExpired := 0, 0, 0
	averageScore := 0

	if len(suppliers) > 0 {
		totalScore := 0
		excellent, good, fair, poor := 0, 0, 0, 0

		for _, supplier := range suppliers {
			overall := supplier.SustainabilityScore.Overall
			totalScore += overall

			switch {
			case overall >= 80:
				excellent++
			case overall >= 60:
				good++
			case overall >= 40:
				fair++
			default:
				poor++
			}

			stats, found := categoryBreakdown[supplier.Category]
			if !found {
				stats = &supplierCategoryStats{}
				categoryBreakdown[supplier.Category] = stats
			}
			stats.Count++
			stats.TotalScore += overall

			for _, cert := range supplier.Certifications {
				certTotal++
				switch cert.Status {
				case "active":
					certActive++
				case "expired":
					certExpired++
				}
			}
		}

		averageScore = int(math.Round(float64(totalScore) / float64(len(suppliers))))
		scoreDistribution = gin.H{"excellent": excellent, "good": good, "fair": fair, "poor": poor}

		for _, stats := range categoryBreakdown {
			stats.AverageScore = int(math.Round(float64(stats.TotalScore) / float64(stats.Count)))
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"analytics": gin.H{
			"totalSuppliers":    len(suppliers),
			"averageScore":      averageScore,
			"scoreDistribution": scoreDistribution,
			"categoryBreakdown": categoryBreakdown,
			"certifications": gin.H{
				"total":   certTotal,
				"active":  certActive,
				"expired": certExpired,
			},
		},
	})
}
