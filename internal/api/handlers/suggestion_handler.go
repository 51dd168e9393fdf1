// server/internal/api/handlers/suggestion_handler.go
package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/arnavbhardwaj457/ecoretail/internal/models"
	"github.com/arnavbhardwaj457/ecoretail/internal/scoring"
	"github.com/arnavbhardwaj457/ecoretail/internal/socket"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultGenerationCount = 5

type SuggestionHandler struct {
	DB  *mongo.Database
	Hub *socket.Hub
}

// suggestionResponse attaches the derived impact score to a stored
// suggestion. The score is never persisted.
type suggestionResponse struct {
	models.AiSuggestion
	ImpactScore float64 `json:"impactScore"`
}

func withImpactScores(suggestions []models.AiSuggestion) []suggestionResponse {
	out := make([]suggestionResponse, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, suggestionResponse{AiSuggestion: s, ImpactScore: scoring.ImpactScore(s.ImpactMetrics)})
	}
	return out
}

type GenerateSuggestionsRequest struct {
	Count *int `json:"count"`
}

// generationCount resolves the batch size from the JSON body, then the
// query string, then the default. A body without a count still means the
// default.
func generationCount(c *gin.Context) (int, error) {
	if c.Request.ContentLength > 0 {
		var req GenerateSuggestionsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return 0, err
		}
		if req.Count != nil {
			return *req.Count, nil
		}
		return defaultGenerationCount, nil
	}

	if raw := c.Query("count"); raw != "" {
		return strconv.Atoi(raw)
	}

	return defaultGenerationCount, nil
}

// GenerateSuggestions samples the catalog and stores a fresh batch of
// pending suggestions for the caller.
func (h *SuggestionHandler) GenerateSuggestions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user context"})
		return
	}

	count, err := generationCount(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "message": "count must be an integer"})
		return
	}

	templates := scoring.SampleSuggestions(scoring.SuggestionCatalog, count, nil)

	now := time.Now()
	suggestions := make([]models.AiSuggestion, 0, len(templates))
	docs := make([]interface{}, 0, len(templates))
	for _, tpl := range templates {
		suggestion := models.AiSuggestion{
			UserID:                userID,
			Title:                 tpl.Title,
			Description:           tpl.Description,
			Category:              tpl.Category,
			Priority:              tpl.Priority,
			Status:                models.SuggestionStatusPending,
			ImpactMetrics:         tpl.ImpactMetrics,
			ImplementationDetails: tpl.ImplementationDetails,
			Tags:                  []string{},
			AIGenerated:           true,
			Metadata: models.SuggestionMetadata{
				AIModel:        scoring.SuggestionModelName,
				Confidence:     scoring.Confidence(nil),
				GenerationDate: now,
			},
			CreatedAt: now,
			UpdatedAt: now,
		}
		suggestions = append(suggestions, suggestion)
		docs = append(docs, suggestion)
	}

	if len(docs) > 0 {
		result, err := h.DB.Collection("suggestions").InsertMany(context.Background(), docs)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate suggestions", "message": err.Error()})
			return
		}
		for i, id := range result.InsertedIDs {
			if oid, ok := id.(primitive.ObjectID); ok && i < len(suggestions) {
				suggestions[i].ID = oid
			}
		}
	}

	if h.Hub != nil && len(suggestions) > 0 {
		h.Hub.Notify(userID.Hex(), "suggestions_generated", gin.H{"count": len(suggestions)})
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Suggestions generated successfully",
		"suggestions": withImpactScores(suggestions),
	})
}

// GetPersonalizedSuggestions lists the caller's suggestions with optional
// status/category/priority filters.
func (h *SuggestionHandler) GetPersonalizedSuggestions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user context"})
		return
	}

	page, limit := parsePagination(c, 20)

	query := bson.M{"userId": userID}
	if status := c.Query("status"); status != "" {
		query["status"] = status
	}
	if category := c.Query("category"); category != "" {
		query["category"] = category
	}
	if priority := c.Query("priority"); priority != "" {
		query["priority"] = priority
	}

	collection := h.DB.Collection("suggestions")

	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetLimit(limit).
		SetSkip((page - 1) * limit)

	cursor, err := collection.Find(context.Background(), query, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch suggestions", "message": err.Error()})
		return
	}
	defer cursor.Close(context.Background())

	var suggestions []models.AiSuggestion
	if err := cursor.All(context.Background(), &suggestions); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode suggestions", "message": err.Error()})
		return
	}

	total, err := collection.CountDocuments(context.Background(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count suggestions", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"suggestions": withImpactScores(suggestions),
		"totalPages":  totalPages(total, limit),
		"currentPage": page,
		"total":       total,
	})
}

// GetSuggestionsByCategory lists the caller's suggestions in one category.
func (h *SuggestionHandler) GetSuggestionsByCategory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user context"})
		return
	}

	category := c.Param("category")

	cursor, err := h.DB.Collection("suggestions").Find(context.Background(),
		bson.M{"userId": userID, "category": category},
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch suggestions", "message": err.Error()})
		return
	}
	defer cursor.Close(context.Background())

	var suggestions []models.AiSuggestion
	if err := cursor.All(context.Background(), &suggestions); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode suggestions", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"suggestions": withImpactScores(suggestions),
		"category":    category,
		"total":       len(suggestions),
	})
}

// GetCategories returns the fixed category list with the caller's
// suggestion count per category. Categories without suggestions appear
// with a zero count.
func (h *SuggestionHandler) GetCategories(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user context"})
		return
	}

	cursor, err := h.DB.Collection("suggestions").Find(context.Background(), bson.M{"userId": userID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories", "message": err.Error()})
		return
	}
	defer cursor.Close(context.Background())

	var suggestions []models.AiSuggestion
	if err := cursor.All(context.Background(), &suggestions); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode suggestions", "message": err.Error()})
		return
	}

	counts := map[string]int{}
	for _, s := range suggestions {
		counts[s.Category]++
	}

	categories := make([]gin.H, 0, len(models.SuggestionCategories))
	for _, name := range models.SuggestionCategories {
		categories = append(categories, gin.H{"name": name, "suggestionCount": counts[name]})
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

type ImplementSuggestionRequest struct {
	Rating  int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment string `json:"comment"`
}

// ImplementSuggestion marks a pending suggestion as implemented. The state
// is terminal; repeated calls fail.
func (h *SuggestionHandler) ImplementSuggestion(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user context"})
		return
	}

	suggestionID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Suggestion not found"})
		return
	}

	// Feedback body is optional.
	var req ImplementSuggestionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "message": err.Error()})
			return
		}
	}

	now := time.Now()
	update := bson.M{
		"status":                       models.SuggestionStatusImplemented,
		"userFeedback.implementedDate": now,
		"updatedAt":                    now,
	}
	if req.Rating > 0 {
		update["userFeedback.rating"] = req.Rating
	}
	if req.Comment != "" {
		update["userFeedback.comment"] = req.Comment
	}

	collection := h.DB.Collection("suggestions")

	var suggestion models.AiSuggestion
	err = collection.FindOneAndUpdate(
		context.Background(),
		bson.M{"_id": suggestionID, "userId": userID, "status": models.SuggestionStatusPending},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&suggestion)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			// Distinguish a missing suggestion from one already resolved.
			count, countErr := collection.CountDocuments(context.Background(), bson.M{"_id": suggestionID, "userId": userID})
			if countErr == nil && count > 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Suggestion already resolved", "message": "only pending suggestions can be implemented"})
				return
			}
			c.JSON(http.StatusNotFound, gin.H{"error": "Suggestion not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to implement suggestion", "message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Suggestion marked as implemented",
		"suggestion": suggestionResponse{AiSuggestion: suggestion, ImpactScore: scoring.ImpactScore(suggestion.ImpactMetrics)},
	})
}

type RejectSuggestionRequest struct {
	Reason string `json:"reason"`
}

// RejectSuggestion marks a pending suggestion as rejected. The state is
// terminal; repeated calls fail.
func (h *SuggestionHandler) RejectSuggestion(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user context"})
		return
	}

	suggestionID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Suggestion not found"})
		return
	}

	// Reason body is optional.
	var req RejectSuggestionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "message": err.Error()})
			return
		}
	}

	now := time.Now()
	update := bson.M{
		"status":    models.SuggestionStatusRejected,
		"updatedAt": now,
	}
	if req.Reason != "" {
		update["userFeedback.rejectionReason"] = req.Reason
	}

	collection := h.DB.Collection("suggestions")

	var suggestion models.AiSuggestion
	err = collection.FindOneAndUpdate(
		context.Background(),
		bson.M{"_id": suggestionID, "userId": userID, "status": models.SuggestionStatusPending},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&suggestion)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			count, countErr := collection.CountDocuments(context.Background(), bson.M{"_id": suggestionID, "userId": userID})
			if countErr == nil && count > 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Suggestion already resolved", "message": "only pending suggestions can be rejected"})
				return
			}
			c.JSON(http.StatusNotFound, gin.H{"error": "Suggestion not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject suggestion", "message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Suggestion rejected",
		"suggestion": suggestionResponse{AiSuggestion: suggestion, ImpactScore: scoring.ImpactScore(suggestion.ImpactMetrics)},
	})
}

// GetSuggestionStats aggregates status, category and projected-impact
// totals over the caller's suggestions.
func (h *SuggestionHandler) GetSuggestionStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user context"})
		return
	}

	cursor, err := h.DB.Collection("suggestions").Find(context.Background(), bson.M{"userId": userID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats", "message": err.Error()})
		return
	}
	defer cursor.Close(context.Background())

	var suggestions []models.AiSuggestion
	if err := cursor.All(context.Background(), &suggestions); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode suggestions", "message": err.Error()})
		return
	}

	pending, implemented, rejected := 0, 0, 0
	categoryCounts := map[string]int{}
	priorityCounts := map[string]int{}
	var implementedCostSavings, implementedEmissionsReduction, implementedWasteReduction float64

	for _, s := range suggestions {
		switch s.Status {
		case models.SuggestionStatusPending:
			pending++
		case models.SuggestionStatusImplemented:
			implemented++
			implementedCostSavings += s.ImpactMetrics.CostSavings
			implementedEmissionsReduction += s.ImpactMetrics.EmissionsReduction
			implementedWasteReduction += s.ImpactMetrics.WasteReduction
		case models.SuggestionStatusRejected:
			rejected++
		}
		categoryCounts[s.Category]++
		priorityCounts[s.Priority]++
	}

	c.JSON(http.StatusOK, gin.H{
		"stats": gin.H{
			"total":          len(suggestions),
			"pending":        pending,
			"implemented":    implemented,
			"rejected":       rejected,
			"categoryCounts": categoryCounts,
			"priorityCounts": priorityCounts,
			"implementedImpact": gin.H{
				"costSavings":        implementedCostSavings,
				"emissionsReduction": implementedEmissionsReduction,
				"wasteReduction":     implementedWasteReduction,
			},
		},
	})
}
