package user

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	userRepo "tripcraft/database/repository/user"
	"tripcraft/models"
	"tripcraft/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register creates the account and signs the user in.
func (s *DefaultUserService) Register(ctx context.Context, req models.UserRegistrationRequest) (*AuthResponse, error) {
	email := userRepo.NormalizeEmail(req.Email)
	firstName := strings.TrimSpace(req.FirstName)
	if email == "" || req.Password == "" || firstName == "" {
		return nil, fmt.Errorf("%w: email, password and first name are required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: email address is not valid", ErrInvalidInput)
	}
	if err := VerifyPasswordComplexity(req.Password); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Register: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	userObj := models.User{
		ID:             uuid.New().String(),
		Email:          email,
		FirstName:      firstName,
		LastName:       strings.TrimSpace(req.LastName),
		Phone:          strings.TrimSpace(req.Phone),
		City:           strings.TrimSpace(req.City),
		Country:        strings.TrimSpace(req.Country),
		AdditionalInfo: strings.TrimSpace(req.AdditionalInfo),
		PasswordHash:   string(hashedPassword),
	}

	if err := s.Repo.Create(ctx, &userObj); err != nil {
		if errors.Is(err, userRepo.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		utils.GetLogger().Error("Register: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	token, err := s.issueToken(ctx, userObj.ID, userObj.Email)
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Info("User registered", zap.String("userID", userObj.ID))

	return &AuthResponse{
		ID:    userObj.ID,
		Token: token,
		Name:  userObj.DisplayName(),
		Email: userObj.Email,
	}, nil
}
