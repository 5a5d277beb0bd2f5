package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

var ErrDuplicate = errors.New("duplicate record")

// wrapError adds the SQLSTATE code to postgres errors and maps unique violations to ErrDuplicate.
func wrapError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code == uniqueViolation {
			return fmt.Errorf("%s: %w: %s", op, ErrDuplicate, pqErr.Constraint)
		}
		return fmt.Errorf("%s: database error: %w (code: %s)", op, pqErr, pqErr.Code)
	}
	return fmt.Errorf("%s: failed to execute query: %w", op, err)
}
