package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Error codes returned to API clients
const (
	// Authentication
	ErrInvalidCredentials    = "AUTH_001" // Invalid username or password
	ErrBusinessNotAuthorized = "AUTH_003" // Token business no longer exists
	ErrInvalidToken          = "AUTH_006" // Invalid token
	ErrExpiredToken          = "AUTH_007" // Expired token
	ErrInsufficientPrivilege = "AUTH_008" // Business scope mismatch
	ErrUserAlreadyExists     = "AUTH_009" // Username taken

	// Business
	ErrBusinessNotFound = "BIZ_001"
	ErrInvoiceNotFound  = "BIZ_002"

	// Validation
	ErrInvalidRequest      = "VAL_001" // Malformed body
	ErrMissingRequiredData = "VAL_002" // Required field missing
	ErrInvalidFormat       = "VAL_003" // Field has the wrong format

	// Server
	ErrInternalServer    = "SRV_001"
	ErrDatabaseOperation = "SRV_002"
	ErrExternalService   = "SRV_003"
	ErrCommunication     = "SRV_004"
)

var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrBusinessNotAuthorized: http.StatusUnauthorized,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrUserAlreadyExists:     http.StatusBadRequest,
	ErrBusinessNotFound:      http.StatusNotFound,
	ErrInvoiceNotFound:       http.StatusNotFound,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
	ErrCommunication:         http.StatusServiceUnavailable,
}

// APIError is the body of every error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// StatusFor returns the HTTP status of an error code, 500 when unknown.
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError writes the standard error body with the status mapped from code
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	_ = json.NewEncoder(w).Encode(apiErr)
}
