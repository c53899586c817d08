package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/fairwaysim/backend/internal/api"
	"github.com/fairwaysim/backend/internal/config"
	"github.com/fairwaysim/backend/internal/middleware"
	"github.com/fairwaysim/backend/internal/sim"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize configuration
	cfg := config.Load()

	// Build the simulation engine once; it is immutable and shared by all
	// requests.
	simulator := sim.NewSimulatorWith(sim.NewAero(), cfg.SimMaxSamples)
	log.Printf("[SIM] Engine ready (surface default: %s, max samples: %d)",
		cfg.RangeSurface, cfg.SimMaxSamples)

	// Set up Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(middleware.CORSMiddleware(cfg))

	api.SetupRoutes(router, simulator, cfg)

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting FairwaySim server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
