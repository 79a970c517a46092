package user

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"tripcraft/utils"

	"go.uber.org/zap"
)

const defaultTokenTTL = 72 * time.Hour

var (
	letterPattern = regexp.MustCompile(`[A-Za-z]`)
	digitPattern  = regexp.MustCompile(`[0-9]`)
)

// VerifyPasswordComplexity checks that the password meets complexity requirements.
func VerifyPasswordComplexity(pw string) error {
	if len(pw) < 8 {
		return PasswordPolicyError{Reason: "must be at least 8 characters long"}
	}
	if !letterPattern.MatchString(pw) {
		return PasswordPolicyError{Reason: "must include at least one letter"}
	}
	if !digitPattern.MatchString(pw) {
		return PasswordPolicyError{Reason: "must include at least one number"}
	}
	return nil
}

func (s *DefaultUserService) tokenTTL() time.Duration {
	if s.TokenTTL > 0 {
		return s.TokenTTL
	}
	return defaultTokenTTL
}

// issueToken signs a new token for the user and stores its hash, replacing any previous one.
func (s *DefaultUserService) issueToken(ctx context.Context, userID, email string) (string, error) {
	token, err := utils.GenerateToken(userID, email, s.tokenTTL())
	if err != nil {
		utils.GetLogger().Error("issueToken: failed to sign token", zap.Error(err))
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	if err := s.Repo.SetTokenHash(ctx, userID, utils.HashToken(token)); err != nil {
		utils.GetLogger().Error("issueToken: failed to store token hash", zap.String("userID", userID), zap.Error(err))
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	s.clearAuthCache(ctx, userID)
	return token, nil
}

func (s *DefaultUserService) clearAuthCache(ctx context.Context, userID string) {
	if s.AuthCache == nil {
		return
	}
	if err := s.AuthCache.Clear(ctx, userID); err != nil {
		utils.GetLogger().Warn("Failed to clear auth cache", zap.String("userID", userID), zap.Error(err))
	}
}
