package reminding

import (
	"errors"
	"fmt"
)

var (
	ErrBusinessNotFound  = errors.New("business not found")
	ErrDatabaseOperation = errors.New("database operation error")
)

type ReminderError struct {
	Err        error
	Code       string
	BusinessID int64
	Details    string
}

func (e *ReminderError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReminderError) Unwrap() error {
	return e.Err
}

func NewReminderError(err error, code string, businessID int64, details string) *ReminderError {
	return &ReminderError{
		Err:        err,
		Code:       code,
		BusinessID: businessID,
		Details:    details,
	}
}
