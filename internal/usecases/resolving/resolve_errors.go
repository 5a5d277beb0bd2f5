package resolving

import (
	"errors"
	"fmt"
)

var (
	ErrBusinessNotFound = errors.New("business not found")
	ErrEmptyText        = errors.New("raw text is empty")
	ErrNoRows           = errors.New("no rows to ingest")
	ErrPersistence      = errors.New("failed to persist ingestion")
)

// ResolveError carries the API code and business of a failed ingestion.
type ResolveError struct {
	Err        error
	Code       string
	BusinessID int64
	Details    string
}

func (e *ResolveError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}

func NewResolveError(err error, code string, businessID int64, details string) *ResolveError {
	return &ResolveError{
		Err:        err,
		Code:       code,
		BusinessID: businessID,
		Details:    details,
	}
}
