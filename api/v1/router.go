package v1

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/postboard-simple/config"
	"github.com/postboard-simple/repositories"
	"github.com/postboard-simple/services"
	"gorm.io/gorm"
)

// RegisterRoutes wires the repositories, services and controllers and
// registers every v1 API route on the group
func RegisterRoutes(router *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	userRepo := repositories.NewUserRepository(db)
	postRepo := repositories.NewPostRepository(db)

	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	userService := services.NewUserService(userRepo)
	postService := services.NewPostService(postRepo)

	// Health check endpoint
	router.GET("/health", HealthCheck)

	NewAuthController(authService, userService, cfg.UploadDir).RegisterRoutes(router)
	NewPostController(postService, authService).RegisterRoutes(router)
	NewAdminController(userService, authService).RegisterRoutes(router)
}

// serverError is the unclassified 500 fallback for collaborator failures
func serverError(c *gin.Context, err error) {
	log.Printf("server error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
}
