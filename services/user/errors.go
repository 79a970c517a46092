package user

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("a user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidInput       = errors.New("invalid input")
)

// PasswordPolicyError explains why a password was rejected. It matches ErrInvalidInput.
type PasswordPolicyError struct {
	Reason string
}

func (e PasswordPolicyError) Error() string {
	return fmt.Sprintf("password %s", e.Reason)
}

func (e PasswordPolicyError) Is(target error) bool {
	return target == ErrInvalidInput
}
