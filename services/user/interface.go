package user

import (
	"context"
	"time"

	userRepo "tripcraft/database/repository/user"
	"tripcraft/models"
	"tripcraft/utils"
)

type UserService interface {
	// Registration and authentication
	Register(ctx context.Context, req models.UserRegistrationRequest) (*AuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	RevokeToken(ctx context.Context, userID string) error

	// User management
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (*models.User, error)
	UpdatePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo      userRepo.UserRepository
	AuthCache utils.AuthCache
	TokenTTL  time.Duration
}

// AuthResponse contains the user's ID, token, and additional details.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}
