// server/internal/database/seeder.go
package database

import (
	"context"
	"log"
	"time"

	"github.com/arnavbhardwaj457/ecoretail/internal/auth"
	"github.com/arnavbhardwaj457/ecoretail/internal/models"
	"github.com/arnavbhardwaj457/ecoretail/internal/scoring"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SeedAdmin creates the default admin account if it does not exist yet.
func SeedAdmin(db *mongo.Database) error {
	userCollection := db.Collection("users")
	adminEmail := "admin@ecoretail.local"

	count, err := userCollection.CountDocuments(context.Background(), bson.M{"email": adminEmail})
	if err != nil {
		return err
	}

	if count > 0 {
		log.Println("Admin already exists. Seeding skipped.")
		return nil
	}

	log.Println("Admin not found. Seeding...")
	hashedPassword, err := auth.HashPassword("adminpassword")
	if err != nil {
		return err
	}

	now := time.Now()
	admin := models.User{
		Username:  "admin",
		Email:     adminEmail,
		Password:  hashedPassword,
		Role:      "admin",
		Company:   models.UserCompany{Name: "EcoRetail"},
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err = userCollection.InsertOne(context.Background(), admin)
	if err != nil {
		return err
	}

	log.Println("Admin seeded successfully.")
	return nil
}

// SeedFreshnessRecords inserts a handful of demo predictions so the
// dashboard has data on first run. Scores are recomputed from the inputs
// rather than hardcoded, so the stored values always match the predictor.
func SeedFreshnessRecords(db *mongo.Database) error {
	collection := db.Collection("freshness_predictions")

	count, err := collection.CountDocuments(context.Background(), bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	samples := []struct {
		Product string
		Input   scoring.FreshnessInput
	}{
		{"Strawberries", scoring.FreshnessInput{
			HarvestDate:          now.AddDate(0, 0, -2),
			TransportTemperature: 4,
			StoreTemperature:     6,
			StoreHumidity:        85,
			ShelfLife:            7,
			SalesVelocity:        3,
		}},
		{"Spinach", scoring.FreshnessInput{
			HarvestDate:          now.AddDate(0, 0, -5),
			TransportTemperature: 10,
			StoreTemperature:     9,
			StoreHumidity:        92,
			ShelfLife:            7,
			SalesVelocity:        1,
		}},
		{"Bananas", scoring.FreshnessInput{
			HarvestDate:          now.AddDate(0, 0, -7),
			TransportTemperature: 12,
			StoreTemperature:     12,
			StoreHumidity:        80,
			ShelfLife:            10,
			SalesVelocity:        2,
		}},
	}

	records := make([]interface{}, 0, len(samples))
	for _, s := range samples {
		result := scoring.PredictFreshness(s.Input, now)
		records = append(records, models.FreshnessRecord{
			RecordID:             "FRS-" + uuid.New().String()[:8],
			ProductName:          s.Product,
			HarvestDate:          s.Input.HarvestDate,
			TransportTemperature: s.Input.TransportTemperature,
			StoreTemperature:     s.Input.StoreTemperature,
			StoreHumidity:        s.Input.StoreHumidity,
			ShelfLife:            s.Input.ShelfLife,
			SalesVelocity:        s.Input.SalesVelocity,
			PredictedScore:       result.Score,
			PredictedShelfLife:   result.PredictedShelfLife,
			SuggestedAction:      result.SuggestedAction,
			CreatedAt:            now,
		})
	}

	if _, err := collection.InsertMany(context.Background(), records); err != nil {
		return err
	}

	log.Printf("Seeded %d freshness predictions", len(records))
	return nil
}
