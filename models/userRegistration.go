package models

// UserRegistrationRequest is the sign-up payload.
type UserRegistrationRequest struct {
	Email          string `json:"email" binding:"required"`
	Password       string `json:"password" binding:"required"`
	FirstName      string `json:"firstName" binding:"required"`
	LastName       string `json:"lastName"`
	Phone          string `json:"phone"`
	City           string `json:"city"`
	Country        string `json:"country"`
	AdditionalInfo string `json:"additionalInfo"`
}

// LoginRequest is the sign-in payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// PasswordUpdateRequest changes the password of the signed-in user.
type PasswordUpdateRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}
