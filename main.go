package main

import (
	"fmt"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"medical-backend-server/internal/config"
	"medical-backend-server/internal/middleware"
	"medical-backend-server/internal/models"
	"medical-backend-server/internal/routes"
)

func main() {
	// Load environment variables; a missing .env is fine in production
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize database connection
	db, err := models.InitDB(models.DatabaseConfig{DSN: cfg.Database.DSN})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	// Initialize Gin router
	router := gin.Default()

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	if cfg.Origin == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = []string{cfg.Origin}
		corsConfig.AllowCredentials = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Per-IP rate limiting
	limiter := middleware.NewRateLimiter(5, 10)
	router.Use(limiter.LimitMiddleware())

	// Set up routes - passing DB and config to let routes.go create the handlers
	routes.SetupRoutes(router, db, cfg)

	// Start server
	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	fmt.Printf("Server running on port %s\n", cfg.Port)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
