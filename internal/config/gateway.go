package config

import (
	"fmt"
	"strings"
	"time"
)

type ProviderKind string

const (
	ProviderOpenAI     ProviderKind = "openai"
	ProviderGroq       ProviderKind = "groq"
	ProviderXAI        ProviderKind = "xai"
	ProviderOpenRouter ProviderKind = "openrouter"
	ProviderGoogle     ProviderKind = "google"
)

var knownProviders = map[ProviderKind]string{
	ProviderOpenAI:     "https://api.openai.com/v1",
	ProviderGroq:       "https://api.groq.com/openai/v1",
	ProviderXAI:        "https://api.x.ai/v1",
	ProviderOpenRouter: "https://openrouter.ai/api/v1",
	ProviderGoogle:     "",
}

// DefaultBaseURL returns the public endpoint for the provider kind.
func DefaultBaseURL(kind ProviderKind) string {
	return knownProviders[kind]
}

// Provider is one entry of the ordered fallback chain.
type Provider struct {
	Kind    ProviderKind
	APIKey  string
	BaseURL string
	Model   string
}

// Gateway is built once at startup and passed to the extraction gateway.
type Gateway struct {
	Providers   []Provider
	Model       string
	Temperature float64
	Timeout     time.Duration
}

// Enabled returns the providers that have credentials, in configured order.
func (g Gateway) Enabled() []Provider {
	enabled := make([]Provider, 0, len(g.Providers))
	for _, p := range g.Providers {
		if p.APIKey == "" {
			continue
		}
		enabled = append(enabled, p)
	}
	return enabled
}

// buildGateway resolves the ordered provider list. Per-kind settings are read as
// <KIND>_API_KEY, <KIND>_BASE_URL and <KIND>_MODEL.
func buildGateway(llm LLM, lookup func(string) string) (Gateway, error) {
	gw := Gateway{
		Model:       llm.Model,
		Temperature: llm.Temperature,
		Timeout:     llm.Timeout,
	}

	if gw.Timeout <= 0 {
		gw.Timeout = 30 * time.Second
	}

	for _, name := range normalizeKinds(llm.Providers) {
		kind := ProviderKind(name)
		defaultURL, ok := knownProviders[kind]
		if !ok {
			return Gateway{}, fmt.Errorf("config: unknown llm provider %q", name)
		}

		prefix := strings.ToUpper(name)
		provider := Provider{
			Kind:    kind,
			APIKey:  lookup(prefix + "_API_KEY"),
			BaseURL: lookup(prefix + "_BASE_URL"),
			Model:   lookup(prefix + "_MODEL"),
		}
		if provider.BaseURL == "" {
			provider.BaseURL = defaultURL
		}

		gw.Providers = append(gw.Providers, provider)
	}

	return gw, nil
}
