package insighting

import (
	"errors"
	"fmt"
)

var ErrLedgerLoad = errors.New("error loading ledger")

// InsightError carries the API code of a failed consumer call.
type InsightError struct {
	Err        error
	Code       string
	BusinessID int64
	Details    string
}

func (e *InsightError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *InsightError) Unwrap() error {
	return e.Err
}

func NewInsightError(err error, code string, businessID int64, details string) *InsightError {
	return &InsightError{
		Err:        err,
		Code:       code,
		BusinessID: businessID,
		Details:    details,
	}
}
