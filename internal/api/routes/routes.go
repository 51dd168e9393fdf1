// server/internal/api/routes/routes.go
package routes

import (
	"net/http"
	"time"

	"github.com/arnavbhardwaj457/ecoretail/config"
	"github.com/arnavbhardwaj457/ecoretail/internal/api/handlers"
	"github.com/arnavbhardwaj457/ecoretail/internal/api/middleware"
	"github.com/arnavbhardwaj457/ecoretail/internal/s3"
	"github.com/arnavbhardwaj457/ecoretail/internal/socket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupRouter wires every endpoint. Listing browse and inquiries are
// public; everything else requires a retailer or admin token.
func SetupRouter(cfg config.Config, db *mongo.Database, uploader *s3.Uploader, hub *socket.Hub) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORS.Origin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	userHandler := &handlers.UserHandler{DB: db}
	freshnessHandler := &handlers.FreshnessHandler{DB: db}
	supplierHandler := &handlers.SupplierHandler{DB: db}
	marketplaceHandler := &handlers.MarketplaceHandler{DB: db, Hub: hub, Uploader: uploader}
	logisticsHandler := &handlers.LogisticsHandler{DB: db}
	suggestionHandler := &handlers.SuggestionHandler{DB: db, Hub: hub}
	wsHandler := &handlers.WebSocketHandler{Hub: hub}

	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		apiV1.GET("/ws", wsHandler.ServeWs)

		// Prediction is open; the record is tagged with the caller's id
		// only when a valid token happens to be present.
		apiV1.POST("/predict-freshness", middleware.OptionalAuthenticate(), freshnessHandler.Predict)

		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", userHandler.Register)
			authRoutes.POST("/login", userHandler.Login)
		}

		// Browsing and inquiries are open to unauthenticated buyers.
		marketplacePublic := apiV1.Group("/marketplace")
		{
			marketplacePublic.GET("", marketplaceHandler.GetListings)
			marketplacePublic.GET("/:id", marketplaceHandler.GetListingByID)
			marketplacePublic.POST("/:id/inquiry", marketplaceHandler.AddInquiry)
		}

		protected := apiV1.Group("/")
		protected.Use(middleware.Authenticate(), middleware.Authorize("retailer", "admin"))
		{
			account := protected.Group("/auth")
			{
				account.GET("/profile", userHandler.GetProfile)
				account.PUT("/profile", userHandler.UpdateProfile)
				account.PUT("/change-password", userHandler.ChangePassword)
				account.POST("/logout", userHandler.Logout)
			}

			suppliers := protected.Group("/suppliers")
			{
				suppliers.GET("", supplierHandler.GetSuppliers)
				suppliers.POST("", supplierHandler.CreateSupplier)
				suppliers.GET("/analytics/sustainability", supplierHandler.GetSustainabilityAnalytics)
				suppliers.GET("/:id", supplierHandler.GetSupplierByID)
				suppliers.PUT("/:id", supplierHandler.UpdateSupplier)
				suppliers.DELETE("/:id", supplierHandler.DeleteSupplier)
				suppliers.POST("/:id/recalculate-score", supplierHandler.RecalculateScore)
			}

			logistics := protected.Group("/logistics")
			{
				logistics.GET("", logisticsHandler.GetRoutes)
				logistics.POST("", logisticsHandler.CreateRoute)
				logistics.GET("/analytics/emissions", logisticsHandler.GetEmissionsAnalytics)
				logistics.GET("/:id", logisticsHandler.GetRouteByID)
				logistics.PUT("/:id", logisticsHandler.UpdateRoute)
				logistics.DELETE("/:id", logisticsHandler.DeleteRoute)
				logistics.POST("/:id/optimization", logisticsHandler.AddOptimizationSuggestion)
				logistics.POST("/:id/implement-optimization", logisticsHandler.ImplementOptimization)
			}

			marketplace := protected.Group("/marketplace")
			{
				marketplace.POST("", marketplaceHandler.CreateListing)
				marketplace.GET("/user/listings", marketplaceHandler.GetMyListings)
				marketplace.GET("/analytics/impact", marketplaceHandler.GetMarketplaceAnalytics)
				marketplace.PUT("/:id", marketplaceHandler.UpdateListing)
				marketplace.PATCH("/:id/status", marketplaceHandler.UpdateListingStatus)
				marketplace.DELETE("/:id", marketplaceHandler.DeleteListing)
				marketplace.POST("/:id/images", marketplaceHandler.UploadListingImage)
			}

			suggestions := protected.Group("/suggestions")
			{
				suggestions.GET("/personalized", suggestionHandler.GetPersonalizedSuggestions)
				suggestions.POST("/generate", suggestionHandler.GenerateSuggestions)
				suggestions.GET("/categories", suggestionHandler.GetCategories)
				suggestions.GET("/category/:category", suggestionHandler.GetSuggestionsByCategory)
				suggestions.GET("/stats", suggestionHandler.GetSuggestionStats)
				suggestions.PUT("/:id/implement", suggestionHandler.ImplementSuggestion)
				suggestions.PUT("/:id/reject", suggestionHandler.RejectSuggestion)
			}

			protected.GET("/predict-freshness/history", freshnessHandler.GetMyPredictions)
		}
	}

	return router
}
