package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/postboard-simple/middleware"
	"github.com/postboard-simple/services"
)

// AdminController handles the admin-only user management endpoints
type AdminController struct {
	userService *services.UserService
	authService *services.AuthService
}

// NewAdminController creates a new admin controller
func NewAdminController(userService *services.UserService, authService *services.AuthService) *AdminController {
	return &AdminController{
		userService: userService,
		authService: authService,
	}
}

// RegisterRoutes registers admin routes behind the auth and admin guards
func (adc *AdminController) RegisterRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(adc.authService), middleware.AdminMiddleware())
	{
		admin.GET("/users", adc.ListUsers)
		admin.PUT("/users/:id/block", adc.BlockUser)
		admin.PUT("/users/:id/unblock", adc.UnblockUser)
	}
}

// ListUsers returns every user record, password hashes excluded
func (adc *AdminController) ListUsers(c *gin.Context) {
	users, err := adc.userService.ListAll()
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// BlockUser sets the block flag on the target user
func (adc *AdminController) BlockUser(c *gin.Context) {
	adc.setBlocked(c, true, "User blocked successfully")
}

// UnblockUser clears the block flag on the target user
func (adc *AdminController) UnblockUser(c *gin.Context) {
	adc.setBlocked(c, false, "User unblocked successfully")
}

func (adc *AdminController) setBlocked(c *gin.Context, blocked bool, message string) {
	err := adc.userService.SetBlocked(c.Param("id"), blocked)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}
