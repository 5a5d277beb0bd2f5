package llm

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/vfg2006/verity-api/infrastructure/integrator/llm/llmclient"
)

type ErrorKind string

const (
	ErrorKindNoProvider      ErrorKind = "no_provider"
	ErrorKindUnavailable     ErrorKind = "unavailable"
	ErrorKindUnauthenticated ErrorKind = "unauthenticated"
	ErrorKindProvider        ErrorKind = "provider"
	ErrorKindMalformed       ErrorKind = "malformed"
)

var ErrNoProvider = errors.New("no llm provider configured")

// ExtractionError tags a failed attempt with the provider that produced it.
type ExtractionError struct {
	Kind     ErrorKind
	Provider string
	Err      error
}

func (e *ExtractionError) Error() string {
	if e.Provider == "" {
		return fmt.Sprintf("extraction %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("extraction %s (%s): %v", e.Kind, e.Provider, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// Result is what every Generate call returns. Err is nil only when Value holds a decoded object.
type Result struct {
	Value    map[string]any
	Provider string
	Err      error
}

func (r Result) OK() bool {
	return r.Err == nil && r.Value != nil
}

// IsKind reports whether any tagged error aggregated in err has the given kind.
func IsKind(err error, kind ErrorKind) bool {
	for _, e := range flatten(err) {
		var extractionErr *ExtractionError
		if errors.As(e, &extractionErr) && extractionErr.Kind == kind {
			return true
		}
	}
	return false
}

func flatten(err error) []error {
	if err == nil {
		return nil
	}
	if multi, ok := err.(interface{ Errors() []error }); ok {
		return multi.Errors()
	}
	if multi, ok := err.(interface{ Unwrap() []error }); ok {
		return multi.Unwrap()
	}
	return []error{err}
}

func classify(provider string, err error) *ExtractionError {
	var statusErr *llmclient.StatusError
	if errors.As(err, &statusErr) {
		if statusErr.Unauthenticated() {
			return &ExtractionError{Kind: ErrorKindUnauthenticated, Provider: provider, Err: err}
		}
		return &ExtractionError{Kind: ErrorKindProvider, Provider: provider, Err: err}
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) || errors.As(err, &netErr) {
		return &ExtractionError{Kind: ErrorKindUnavailable, Provider: provider, Err: err}
	}

	return &ExtractionError{Kind: ErrorKindProvider, Provider: provider, Err: err}
}
