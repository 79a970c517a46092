package middleware

import (
	"errors"
	"net/http"
	"strings"

	userRepo "tripcraft/database/repository/user"
	"tripcraft/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message})
}

// JWTAuthUserMiddleware accepts a bearer token whose hash matches the user's active token.
// The hash is looked up in the auth cache first and in the users table on a miss.
func JWTAuthUserMiddleware(repo userRepo.UserRepository, authCache utils.AuthCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		logger := utils.GetLogger()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			unauthorized(c, "Missing or invalid Authorization header")
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tokenString == "" {
			unauthorized(c, "Missing or invalid Authorization header")
			return
		}

		// Validates signature and expiry.
		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			unauthorized(c, "Invalid token")
			return
		}
		computedHash := utils.HashToken(tokenString)

		if authCache != nil {
			cachedHash, found, err := authCache.Get(ctx, userID)
			switch {
			case err != nil:
				logger.Warn("Auth cache read failed, falling back to database", zap.Error(err))
			case found && cachedHash == computedHash:
				if err := authCache.Touch(ctx, userID); err != nil {
					logger.Warn("Auth cache refresh failed", zap.Error(err))
				}
				c.Set("userID", userID)
				c.Next()
				return
			case found:
				unauthorized(c, "Token mismatch")
				return
			}
		}

		storedHash, err := repo.GetTokenHash(ctx, userID)
		if err != nil {
			if !errors.Is(err, userRepo.ErrUserNotFound) {
				logger.Error("Auth token lookup failed", zap.String("userID", userID), zap.Error(err))
			}
			unauthorized(c, "Authentication error")
			return
		}
		if storedHash == "" || storedHash != computedHash {
			unauthorized(c, "Token mismatch")
			return
		}

		if authCache != nil {
			if err := authCache.Set(ctx, userID, computedHash); err != nil {
				logger.Warn("Auth cache write failed", zap.Error(err))
			}
		}

		c.Set("userID", userID)
		c.Next()
	}
}
