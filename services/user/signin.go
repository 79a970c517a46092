package user

import (
	"context"
	"errors"
	"fmt"

	userRepo "tripcraft/database/repository/user"
	"tripcraft/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Authenticate checks the credentials and rotates the user's token.
func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	userRec, err := s.Repo.GetByEmail(ctx, email)
	if errors.Is(err, userRepo.ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(ctx, userRec.ID, userRec.Email)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		ID:    userRec.ID,
		Token: token,
		Name:  userRec.DisplayName(),
		Email: userRec.Email,
	}, nil
}

// RevokeToken signs the user out by forgetting the active token.
func (s *DefaultUserService) RevokeToken(ctx context.Context, userID string) error {
	if err := s.Repo.SetTokenHash(ctx, userID, ""); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return ErrUserNotFound
		}
		utils.GetLogger().Error("RevokeToken: failed to clear token hash", zap.String("userID", userID), zap.Error(err))
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	s.clearAuthCache(ctx, userID)
	return nil
}
