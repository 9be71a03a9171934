package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	v1 "github.com/postboard-simple/api/v1"
	"github.com/postboard-simple/config"
	"github.com/postboard-simple/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to database, migrate and seed the provisioned admin
	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Initialize router
	router := gin.Default()

	// CORS configuration: only the configured client origin, with credentials
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.ClientURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Uploaded profile photos are served as static files
	router.Static("/uploads", cfg.UploadDir)

	// API routes
	v1.RegisterRoutes(router.Group("/api"), db, cfg)

	// Start server
	log.Printf("🚀 Postboard API starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
