package authenticating

import (
	"errors"
	"fmt"
)

var (
	// Authentication
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrBusinessNotFound      = errors.New("business not found")
	ErrInvalidToken          = errors.New("invalid token")
	ErrExpiredToken          = errors.New("expired token")
	ErrInsufficientPrivilege = errors.New("insufficient privilege")
	ErrUserAlreadyExists     = errors.New("username already registered")

	// Validation
	ErrMissingRequiredData = errors.New("missing required data")

	// Database
	ErrDatabaseOperation = errors.New("database operation error")
)

// AuthError is an authentication error with the API code and business involved.
type AuthError struct {
	Err        error
	Code       string
	BusinessID int64
	Details    string
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsAuthorizationError reports token and scope failures.
func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrInsufficientPrivilege) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken)
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

func NewBusinessAuthError(baseErr error, code string, businessID int64, details string) *AuthError {
	return &AuthError{
		Err:        baseErr,
		Code:       code,
		BusinessID: businessID,
		Details:    details,
	}
}
