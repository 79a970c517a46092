package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	userRepo "tripcraft/database/repository/user"
	"tripcraft/models"
	"tripcraft/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// GetUserByID returns the user's profile.
func (s *DefaultUserService) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if errors.Is(err, userRepo.ErrUserNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return u, nil
}

// UpdateProfile applies the provided profile fields.
func (s *DefaultUserService) UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (*models.User, error) {
	if update.Empty() {
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}
	if update.FirstName != nil && strings.TrimSpace(*update.FirstName) == "" {
		return nil, fmt.Errorf("%w: first name cannot be empty", ErrInvalidInput)
	}
	trimAll(&update)

	u, err := s.Repo.UpdateProfile(ctx, userID, update)
	if errors.Is(err, userRepo.ErrUserNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		utils.GetLogger().Error("UpdateProfile: failed to update user", zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return u, nil
}

// UpdatePassword changes the password after checking the current one.
func (s *DefaultUserService) UpdatePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	u, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}
	if err := VerifyPasswordComplexity(newPassword); err != nil {
		return err
	}
	if currentPassword == newPassword {
		return fmt.Errorf("%w: new password must differ from the current one", ErrInvalidInput)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("UpdatePassword: failed to hash password", zap.Error(err))
		return fmt.Errorf("failed to update password")
	}
	if err := s.Repo.UpdatePasswordHash(ctx, userID, string(hashed)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

func trimAll(update *models.ProfileUpdate) {
	for _, field := range []*string{
		update.FirstName, update.LastName, update.Phone,
		update.City, update.Country, update.AdditionalInfo,
	} {
		if field != nil {
			*field = strings.TrimSpace(*field)
		}
	}
}
