package aggregating

import (
	"errors"
	"fmt"
)

var (
	ErrBusinessNotFound  = errors.New("business not found")
	ErrDatabaseOperation = errors.New("database operation error")
)

// MetricsError carries the API code of a failed aggregation.
type MetricsError struct {
	Err        error
	Code       string
	BusinessID int64
	Details    string
}

func (e *MetricsError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *MetricsError) Unwrap() error {
	return e.Err
}

func NewMetricsError(err error, code string, businessID int64, details string) *MetricsError {
	return &MetricsError{
		Err:        err,
		Code:       code,
		BusinessID: businessID,
		Details:    details,
	}
}
