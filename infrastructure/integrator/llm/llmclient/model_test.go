package llmclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/verity-api/internal/config"
)

func TestResolveModel(t *testing.T) {
	tests := []struct {
		name          string
		kind          config.ProviderKind
		model         string
		wantModel     string
		wantCorrected bool
	}{
		{name: "openai keeps gpt models", kind: config.ProviderOpenAI, model: "gpt-4o-mini", wantModel: "gpt-4o-mini"},
		{name: "groq rewrites gpt models", kind: config.ProviderGroq, model: "gpt-4o", wantModel: "llama3-8b-8192", wantCorrected: true},
		{name: "groq rewrites grok models", kind: config.ProviderGroq, model: "grok-2", wantModel: "llama3-8b-8192", wantCorrected: true},
		{name: "groq keeps llama", kind: config.ProviderGroq, model: "llama-3.1-70b-versatile", wantModel: "llama-3.1-70b-versatile"},
		{name: "xai requires grok", kind: config.ProviderXAI, model: "gpt-4o", wantModel: "grok-2-latest", wantCorrected: true},
		{name: "openrouter requires vendor prefix", kind: config.ProviderOpenRouter, model: "gpt-4o", wantModel: "openai/gpt-4o-mini", wantCorrected: true},
		{name: "google requires gemini", kind: config.ProviderGoogle, model: "gemini-2.0-flash", wantModel: "gemini-2.0-flash"},
		{name: "empty model uses default silently", kind: config.ProviderGoogle, model: "", wantModel: "gemini-2.5-flash"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model, corrected := ResolveModel(tt.kind, tt.model)
			assert.Equal(t, tt.wantModel, model)
			assert.Equal(t, tt.wantCorrected, corrected)
		})
	}
}
