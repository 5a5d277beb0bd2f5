package llmclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/vfg2006/verity-api/internal/config"
)

// Request is a single completion call. System carries the instruction and Prompt the user content.
type Request struct {
	System      string
	Prompt      string
	Model       string
	Temperature float64
	JSON        bool
}

//go:generate mockgen -source=client.go -destination=mocks/client_mock.go -package=mocks
type Client interface {
	Name() string
	Kind() config.ProviderKind
	Model() string
	Complete(ctx context.Context, req Request) (string, error)
}

// StatusError is returned when the provider answered with a non-success status.
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: request failed with status %d: %s", e.Provider, e.StatusCode, e.Body)
}

func (e *StatusError) Unauthenticated() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// NewClient builds the client for one configured provider.
func NewClient(ctx context.Context, provider config.Provider, timeout time.Duration) (Client, error) {
	httpClient := &http.Client{
		Timeout: timeout,
	}

	switch provider.Kind {
	case config.ProviderOpenAI, config.ProviderGroq, config.ProviderXAI, config.ProviderOpenRouter:
		return NewOpenAICompatibleClient(provider, httpClient), nil
	case config.ProviderGoogle:
		return NewGoogleClient(ctx, provider, httpClient)
	default:
		return nil, fmt.Errorf("llmclient: unsupported provider kind %q", provider.Kind)
	}
}
