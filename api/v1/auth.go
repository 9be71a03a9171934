package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/postboard-simple/dto"
	"github.com/postboard-simple/middleware"
	"github.com/postboard-simple/services"
	"github.com/postboard-simple/utils"
)

// AuthController handles registration, login, profile and settings endpoints
type AuthController struct {
	authService *services.AuthService
	userService *services.UserService
	uploadDir   string
}

// NewAuthController creates a new auth controller
func NewAuthController(authService *services.AuthService, userService *services.UserService, uploadDir string) *AuthController {
	return &AuthController{
		authService: authService,
		userService: userService,
		uploadDir:   uploadDir,
	}
}

// RegisterRoutes registers auth routes
func (ac *AuthController) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", ac.Register)
		auth.POST("/login", ac.Login)
		auth.GET("/me", middleware.AuthMiddleware(ac.authService), ac.GetCurrentUser)
		auth.PUT("/settings", middleware.AuthMiddleware(ac.authService), ac.UpdateSettings)
	}
}

// Register handles user registration
func (ac *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Validation failed",
			"errors":  utils.ValidationErrors(err),
		})
		return
	}

	authResponse, err := ac.authService.Register(req)
	if err != nil {
		if errors.Is(err, services.ErrUserExists) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, authResponse)
}

// Login handles user authentication
func (ac *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Validation failed",
			"errors":  utils.ValidationErrors(err),
		})
		return
	}

	authResponse, err := ac.authService.Login(req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
		case errors.Is(err, services.ErrAccountBlocked):
			c.JSON(http.StatusForbidden, gin.H{"message": "Your account has been blocked by admin."})
		default:
			serverError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, authResponse)
}

// GetCurrentUser returns the authenticated user's record, password excluded
func (ac *AuthController) GetCurrentUser(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	// Re-read so the contract holds even if the record went away after the
	// token was resolved
	current, err := ac.userService.GetByID(user.ID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, current)
}

// UpdateSettings applies a partial multipart update of profile fields and
// optionally stores an uploaded profile photo
func (ac *AuthController) UpdateSettings(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	var req dto.SettingsRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	photoPath := ""
	if file, err := c.FormFile("profilePhoto"); err == nil {
		photoPath, err = utils.SaveProfilePhoto(c, file, ac.uploadDir, user.ID)
		if err != nil {
			serverError(c, err)
			return
		}
	}

	updated, err := ac.userService.UpdateSettings(user.ID, req, photoPath)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Settings updated successfully",
		"user": dto.SettingsResponse{
			Name:         updated.Name,
			Email:        updated.Email,
			Theme:        updated.Theme,
			ProfilePhoto: updated.ProfilePhoto,
		},
	})
}
