package services

import (
	"errors"

	"github.com/postboard-simple/dto"
	"github.com/postboard-simple/models"
	"github.com/postboard-simple/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService handles profile reads, settings updates and the admin
// block/unblock operations
type UserService struct {
	users *repositories.UserRepository
}

// NewUserService creates a new user service instance
func NewUserService(users *repositories.UserRepository) *UserService {
	return &UserService{users: users}
}

// GetByID retrieves a user by id
func (s *UserService) GetByID(id string) (*models.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateSettings applies a partial settings update: provided fields
// overwrite the stored values, empty fields are left unchanged. A new
// password is re-hashed before storage. photoPath, when non-empty, is the
// served path of a freshly uploaded profile photo.
func (s *UserService) UpdateSettings(userID string, req dto.SettingsRequest, photoPath string) (*models.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hash)
	}
	if req.Theme != "" {
		user.Theme = models.Theme(req.Theme)
	}
	if photoPath != "" {
		user.ProfilePhoto = photoPath
	}

	if err := s.users.Update(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListAll retrieves every user record for the admin listing
func (s *UserService) ListAll() ([]models.User, error) {
	return s.users.FindAll()
}

// SetBlocked sets the block flag on the target user. Idempotent: blocking
// an already-blocked user succeeds with the same result.
func (s *UserService) SetBlocked(id string, blocked bool) error {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	user.IsBlocked = blocked
	return s.users.Update(&user)
}
