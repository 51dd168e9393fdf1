// server/internal/api/handlers/marketplace_handler.go
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/arnavbhardwaj457/ecoretail/internal/models"
	"github.com/arnavbhardwaj457/ecoretail/internal/s3"
	"github.com/arnavbhardwaj457/ecoretail/internal/scoring"
	"github.com/arnavbhardwaj457/ecoretail/internal/socket"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const listingLifetime = 30 * 24 * time.Hour

type MarketplaceHandler struct {
	DB       *mongo.Database
	Hub      *socket.Hub
	Uploader *s3.Uploader
}

type ListingMaterialRequest struct {
	Type           string                        `json:"type" binding:"required"`
	Quantity       models.ValueUnit              `json:"quantity" binding:"required"`
	Condition      string                        `json:"condition" binding:"omitempty,oneof=new like_new good fair poor"`
	Specifications models.MaterialSpecifications `json:"specifications"`
}

type ListingRequest struct {
	Title       string                 `json:"title" binding:"required"`
	Description string                 `json:"description" binding:"required"`
	Category    string                 `json:"category" binding:"required,oneof=packaging electronics textiles furniture construction food_waste chemicals other"`
	Material    ListingMaterialRequest `json:"material" binding:"required"`
	Location    models.ListingLocation `json:"location"`
	Pricing     models.Pricing         `json:"pricing"`
	Contact     models.ListingContact  `json:"contact"`
	Tags        []string               `json:"tags"`
	ExpiryDate  *time.Time             `json:"expiryDate"`
}

// CreateListing publishes a marketplace listing and derives its
// sustainability estimate from category and quantity.
func (h *MarketplaceHandler) CreateListing(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user context"})
		return
	}

	var req ListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "message": err.Error()})
		return
	}

	now := time.Now()
	listing := models.Listing{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Material: models.Material{
			Type:           req.Material.Type,
			Quantity:       req.Material.Quantity,
			Condition:      req.Material.Condition,
			Specifications: req.Material.Specifications,
		},
		Location:       req.Location,
		Pricing:        req.Pricing,
		Sustainability: scoring.EstimateImpact(req.Category, req.Material.Quantity.Value),
		Images:         []models.ListingImage{},
		Status:         "available",
		ExpiryDate:     now.Add(listingLifetime),
		Contact:        req.Contact,
		Tags:           req.Tags,
		Views:          0,
		Inquiries:      []models.Inquiry{},
		CreatedBy:      userID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if listing.Material.Condition == "" {
		listing.Material.Condition = "good"
	}
	if req.ExpiryDate != nil {
		listing.ExpiryDate = *req.ExpiryDate
	}
	if listing.Tags == nil {
		listing.Tags = []string{}
	}

	result, err := h.DB.Collection("listings").InsertOne(context.Background(), listing)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create listing", "message": err.Error()})
		return
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		listing.ID = oid
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Listing created successfully",
		"listing": listing,
	})
}

// listingBrowseQuery builds the public browse filter: available and
// unexpired only, with optional category/condition/location/search
// narrowing. A category outside the known list is a bad request rather
// than a silently empty page.
func listingBrowseQuery(c *gin.Context, now time.Time) (bson.M, error) {
	query := bson.M{
		"status":     "available",
		"expiryDate": bson.M{"$gt": now},
	}

	if category := c.Query("category"); category != "" {
		if !validEnum(category, models.ListingCategories) {
			return nil, fmt.Errorf("unknown category %q", category)
		}
		query["category"] = category
	}
	if condition := c.Query("condition"); condition != "" {
		query["material.condition"] = condition
	}
	if location := c.Query("location"); location != "" {
		query["location.address.city"] = bson.M{"$regex": location, "$options": "i"}
	}
	if search := c.Query("search"); search != "" {
		query["$or"] = []bson.M{
			{"title": bson.M{"$regex": search, "$options": "i"}},
			{"description": bson.M{"$regex": search, "$options": "i"}},
			{"material.type": bson.M{"$regex": search, "$options": "i"}},
			{"tags": bson.M{"$regex": search, "$options": "i"}},
		}
	}

	return query, nil
}

// GetListings is the public browse endpoint. Expired listings are excluded
// regardless of their stored status.
func (h *MarketplaceHandler) GetListings(c *gin.Context) {
	page, limit := parsePagination(c, 12)

	query, err := listingBrowseQuery(c, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "message": err.Error()})
		return
	}

	collection := h.DB.Collection("listings")

	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetLimit(limit).
		SetSkip((page - 1) * limit)

	cursor, err := collection.Find(context.Background(), query, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch listings", "message": err.Error()})
		return
	}
	defer cursor.Close(context.Background())

	var listings []models.Listing
	if err := cursor.All(context.Background(), &listings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode listings", "message": err.Error()})
		return
	}
	if listings == nil {
		listings = []models.Listing{}
	}

	total, err := collection.CountDocuments(context.Background(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count listings", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"listings":    listings,
		"totalPages":  totalPages(total, limit),
		"currentPage": page,
		"total":       total,
	})
}

// GetListingByID returns one listing and bumps its view counter.
func (h *MarketplaceHandler) GetListingByID(c *gin.Context) {
	listingID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	var listing models.Listing
	err = h.DB.Collection("listings").FindOneAndUpdate(
		context.Background(),
		bson.M{"_id": listingID},
		bson.M{"$inc": bson.M{"views": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&listing)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch listing", "message": err.Error()})
		}
		return
	}

	// A listing past its expiry may still carry a stale stored status;
	// present it as expired.
	if listing.Status == "available" && listing.IsExpired() {
		listing.Status = "expired"
	}

	c.JSON(http.StatusOK, gin.H{"listing": listing})
}

// GetMyListings lists the caller's own listings in any status.
func (h *MarketplaceHandler) GetMyListings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user context"})
		return
	}

	page, limit := parsePagination(c, 10)

	query := bson.M{"createdBy": userID}
	if status := c.Query("status"); status != "" {
		query["status"] = status
	}

	collection := h.DB.Collection("listings")

	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetLimit(limit).
		SetSkip((page - 1) * limit)

	cursor, err := collection.Find(context.Background(), query, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch listings", "message": err.Error()})
		return
	}
	defer cursor.Close(context.Background())

	var listings []models.Listing
	if err := cursor.All(context.Background(), &listings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode listings", "message": err.Error()})
		return
	}
	if listings == nil {
		listings = []models.Listing{}
	}

	total, err := collection.CountDocuments(context.Background(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count listings", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"listings":    listings,
		"totalPages":  totalPages(total, limit),
		"currentPage": page,
		"total":       total,
	})
}

// UpdateListing replaces the listing's mutable fields and recomputes the
// sustainability estimate when category or quantity change.
func (h *MarketplaceHandler) UpdateListing(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user context"})
		return
	}

	listingID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	var req ListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "message": err.Error()})
		return
	}

	collection := h.DB.Collection("listings")

	var listing models.Listing
	err = collection.FindOne(context.Background(), bson.M{"_id": listingID, "createdBy": userID}).Decode(&listing)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch listing", "message": err.Error()})
		}
		return
	}

	listing.Title = req.Title
	listing.Description = req.Description
	listing.Category = req.Category
	listing.Material = models.Material{
		Type:           req.Material.Type,
		Quantity:       req.Material.Quantity,
		Condition:      req.Material.Condition,
		Specifications: req.Material.Specifications,
	}
	if listing.Material.Condition == "" {
		listing.Material.Condition = "good"
	}
	listing.Location = req.Location
	listing.Pricing = req.Pricing
	listing.Contact = req.Contact
	listing.Tags = req.Tags
	if listing.Tags == nil {
		listing.Tags = []string{}
	}
	if req.ExpiryDate != nil {
		listing.ExpiryDate = *req.ExpiryDate
	}
	listing.Sustainability = scoring.EstimateImpact(listing.Category, listing.Material.Quantity.Value)
	listing.UpdatedAt = time.Now()

	_, err = collection.ReplaceOne(context.Background(), bson.M{"_id": listingID, "createdBy": userID}, listing)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update listing", "message": err.Error()})
		return
	}
	listing.ID = listingID

	c.JSON(http.StatusOK, gin.H{
		"message": "Listing updated successfully",
		"listing": listing,
	})
}

type ListingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=available reserved sold expired"`
}

// UpdateListingStatus moves a listing through its lifecycle.
func (h *MarketplaceHandler) UpdateListingStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user context"})
		return
	}

	listingID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	var req ListingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "message": err.Error()})
		return
	}

	result, err := h.DB.Collection("listings").UpdateOne(context.Background(),
		bson.M{"_id": listingID, "createdBy": userID},
		bson.M{"$set": bson.M{"status": req.Status, "updatedAt": time.Now()}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status", "message": err.Error()})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Listing status updated", "status": req.Status})
}

// DeleteListing removes one listing owned by the caller.
func (h *MarketplaceHandler) DeleteListing(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user context"})
		return
	}

	listingID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	result, err := h.DB.Collection("listings").DeleteOne(context.Background(), bson.M{"_id": listingID, "createdBy": userID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete listing", "message": err.Error()})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Listing deleted successfully"})
}

type InquiryRequest struct {
	Message     string                `json:"message" binding:"required"`
	ContactInfo models.InquiryContact `json:"contactInfo" binding:"required"`
}

// AddInquiry records a buyer inquiry on a listing. Public endpoint, the
// listing owner is notified over their websocket if connected.
func (h *MarketplaceHandler) AddInquiry(c *gin.Context) {
	listingID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	var req InquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "message": err.Error()})
		return
	}
	if req.ContactInfo.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "message": "contactInfo.email is required"})
		return
	}

	inquiry := models.Inquiry{
		Message:     req.Message,
		ContactInfo: req.ContactInfo,
		Date:        time.Now(),
		Status:      "pending",
	}

	var listing models.Listing
	err = h.DB.Collection("listings").FindOneAndUpdate(
		context.Background(),
		bson.M{"_id": listingID, "status": "available"},
		bson.M{"$push": bson.M{"inquiries": inquiry}, "$set": bson.M{"updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&listing)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found or no longer available"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit inquiry", "message": err.Error()})
		}
		return
	}

	if h.Hub != nil {
		h.Hub.Notify(listing.CreatedBy.Hex(), "listing_inquiry", gin.H{
			"listingId": listing.ID.Hex(),
			"title":     listing.Title,
			"message":   inquiry.Message,
			"from":      inquiry.ContactInfo.Name,
		})
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Inquiry submitted successfully"})
}

// UploadListingImage stores an image for the listing and appends its URL.
func (h *MarketplaceHandler) UploadListingImage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user context"})
		return
	}

	listingID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	if h.Uploader == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Image storage is not configured"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "message": "image file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read image", "message": err.Error()})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	objectKey := fmt.Sprintf("listings/%s/%s%s", listingID.Hex(), uuid.New().String()[:8], ext)

	url, err := h.Uploader.UploadFile(c.Request.Context(), file, objectKey, contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image", "message": err.Error()})
		return
	}

	image := models.ListingImage{
		URL:       url,
		Caption:   c.PostForm("caption"),
		IsPrimary: c.PostForm("isPrimary") == "true",
	}

	result, err := h.DB.Collection("listings").UpdateOne(context.Background(),
		bson.M{"_id": listingID, "createdBy": userID},
		bson.M{"$push": bson.M{"images": image}, "$set": bson.M{"updatedAt": time.Now()}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to attach image", "message": err.Error()})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Image uploaded successfully", "image": image})
}

// GetMarketplaceAnalytics aggregates impact and engagement stats over the
// caller's listings.
func (h *MarketplaceHandler) GetMarketplaceAnalytics(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user context"})
		return
	}

	cursor, err := h.DB.Collection("listings").Find(context.Background(), bson.M{"createdBy": userID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analytics", "message": err.Error()})
		return
	}
	defer cursor.Close(context.Background())

	var listings []models.Listing
	if err := cursor.All(context.Background(), &listings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode listings", "message": err.Error()})
		return
	}

	var totalViews, totalInquiries int64
	var carbonSaved, wasteDiverted float64
	statusCounts := map[string]int{}
	categoryCounts := map[string]int{}

	for _, listing := range listings {
		totalViews += listing.Views
		totalInquiries += int64(len(listing.Inquiries))
		carbonSaved += listing.Sustainability.CarbonSaved.Value
		wasteDiverted += listing.Sustainability.WasteDiverted.Value
		statusCounts[listing.Status]++
		categoryCounts[listing.Category]++
	}

	c.JSON(http.StatusOK, gin.H{
		"analytics": gin.H{
			"totalListings":  len(listings),
			"totalViews":     totalViews,
			"totalInquiries": totalInquiries,
			"statusCounts":   statusCounts,
			"categoryCounts": categoryCounts,
			"impact": gin.H{
				"carbonSaved":   gin.H{"value": carbonSaved, "unit": "kg CO2e"},
				"wasteDiverted": gin.H{"value": wasteDiverted, "unit": "kg"},
			},
		},
	})
}
