package userRepo

import (
	"context"
	"errors"

	"tripcraft/models"
)

var (
	// ErrUserNotFound is returned when no row matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Create inserts a new user record.
	Create(ctx context.Context, user *models.User) error
	// GetByID retrieves a user by its unique ID.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// UpdateProfile applies the non-nil fields of the update and returns the stored user.
	UpdateProfile(ctx context.Context, id string, update models.ProfileUpdate) (*models.User, error)
	// SetTokenHash stores the hash of the user's active token; empty revokes it.
	SetTokenHash(ctx context.Context, id, tokenHash string) error
	// GetTokenHash returns the stored token hash.
	GetTokenHash(ctx context.Context, id string) (string, error)
	// UpdatePasswordHash replaces the password hash.
	UpdatePasswordHash(ctx context.Context, id, passwordHash string) error
}
