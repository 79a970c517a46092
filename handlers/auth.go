package handlers

import (
	"net/http"

	"tripcraft/models"
	userService "tripcraft/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves registration, sign-in and profile endpoints.
type UserHandler struct {
	UserService userService.UserService
}

func NewUserHandler(svc userService.UserService) *UserHandler {
	return &UserHandler{UserService: svc}
}

// RegisterHandler handles POST /api/users/register.
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.UserRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	resp, err := h.UserService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Registration failed")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler handles POST /api/users/login.
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	resp, err := h.UserService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "Authentication failed")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LogoutHandler handles DELETE /api/users/me/session.
func (h *UserHandler) LogoutHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if err := h.UserService.RevokeToken(c.Request.Context(), userID); err != nil {
		respondError(c, err, "Failed to revoke token")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}
