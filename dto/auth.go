package dto

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/postboard-simple/models"
)

// TokenClaims represents our custom JWT claims. The payload carries only
// the user id; role and block state are resolved against the store on use.
type TokenClaims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// RegisterRequest represents registration data
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// FieldError is a single field-level validation failure
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// UserProjection is the subset of a user record safe to return to clients
type UserProjection struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	IsBlocked bool        `json:"isBlocked"`
}

// AuthResponse represents the response after registration or login
type AuthResponse struct {
	Token string         `json:"token"`
	User  UserProjection `json:"user"`
}

// NewUserProjection builds the public projection of a user record
func NewUserProjection(u *models.User) UserProjection {
	return UserProjection{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		IsBlocked: u.IsBlocked,
	}
}

// SettingsRequest represents the optional fields of a settings update.
// All fields may be empty; empty fields leave the stored value unchanged.
type SettingsRequest struct {
	Name     string `form:"name"`
	Email    string `form:"email"`
	Password string `form:"password"`
	Theme    string `form:"theme"`
}

// SettingsResponse echoes the updated profile fields
type SettingsResponse struct {
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Theme        models.Theme `json:"theme"`
	ProfilePhoto string       `json:"profilePhoto"`
}
