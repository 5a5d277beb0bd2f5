package llmclient

import (
	"strings"

	"github.com/vfg2006/verity-api/internal/config"
)

var defaultModels = map[config.ProviderKind]string{
	config.ProviderOpenAI:     "gpt-4o",
	config.ProviderGroq:       "llama3-8b-8192",
	config.ProviderXAI:        "grok-2-latest",
	config.ProviderOpenRouter: "openai/gpt-4o-mini",
	config.ProviderGoogle:     "gemini-2.5-flash",
}

// DefaultModel is the model a provider falls back to when the requested one is not served.
func DefaultModel(kind config.ProviderKind) string {
	return defaultModels[kind]
}

// Supports reports whether the provider kind serves the model identifier.
func Supports(kind config.ProviderKind, model string) bool {
	m := strings.ToLower(strings.TrimSpace(model))
	if m == "" {
		return false
	}

	switch kind {
	case config.ProviderOpenAI:
		return strings.HasPrefix(m, "gpt") || strings.HasPrefix(m, "chatgpt") ||
			strings.HasPrefix(m, "o1") || strings.HasPrefix(m, "o3") || strings.HasPrefix(m, "o4")
	case config.ProviderGroq:
		return !strings.Contains(m, "gpt") && !strings.Contains(m, "grok") && !strings.HasPrefix(m, "gemini")
	case config.ProviderXAI:
		return strings.HasPrefix(m, "grok")
	case config.ProviderOpenRouter:
		return strings.Contains(m, "/")
	case config.ProviderGoogle:
		return strings.HasPrefix(m, "gemini")
	}

	return false
}

// ResolveModel returns the model to send and whether it had to be substituted.
func ResolveModel(kind config.ProviderKind, model string) (string, bool) {
	if Supports(kind, model) {
		return strings.TrimSpace(model), false
	}
	return DefaultModel(kind), strings.TrimSpace(model) != ""
}
