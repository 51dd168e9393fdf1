// server/cmd/api/main.go
package main

import (
	"log"

	"github.com/arnavbhardwaj457/ecoretail/config"
	"github.com/arnavbhardwaj457/ecoretail/internal/api/routes"
	"github.com/arnavbhardwaj457/ecoretail/internal/auth"
	"github.com/arnavbhardwaj457/ecoretail/internal/database"
	"github.com/arnavbhardwaj457/ecoretail/internal/s3"
	"github.com/arnavbhardwaj457/ecoretail/internal/socket"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatalf("Could not load configuration: %v", err)
	}

	if cfg.JWT.Secret != "" {
		auth.JwtSecret = []byte(cfg.JWT.Secret)
	}

	db, err := database.Connect(cfg.Mongo)
	if err != nil {
		log.Fatalf("Could not connect to MongoDB: %v", err)
	}
	log.Println("Connected to MongoDB, database:", cfg.Mongo.DBName)

	if err := database.SeedAdmin(db); err != nil {
		log.Fatalf("Could not seed admin account: %v", err)
	}
	if err := database.SeedFreshnessRecords(db); err != nil {
		log.Fatalf("Could not seed freshness records: %v", err)
	}

	hub := socket.NewHub()

	// Image uploads stay disabled when no bucket is configured.
	var uploader *s3.Uploader
	if cfg.S3.Bucket != "" {
		uploader, err = s3.NewUploader(cfg.S3)
		if err != nil {
			log.Fatalf("Could not initialize S3 uploader: %v", err)
		}
	}

	router := routes.SetupRouter(cfg, db, uploader, hub)

	log.Println("Server starting on port", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
