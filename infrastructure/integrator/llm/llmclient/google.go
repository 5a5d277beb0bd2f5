package llmclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/vfg2006/verity-api/internal/config"
	"google.golang.org/genai"
)

// GoogleClient calls the Gemini API through the genai SDK.
type GoogleClient struct {
	client *genai.Client
	model  string
}

func NewGoogleClient(ctx context.Context, provider config.Provider, httpClient *http.Client) (*GoogleClient, error) {
	clientConfig := &genai.ClientConfig{
		APIKey:     provider.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	}
	if provider.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: provider.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("google: create genai client: %w", err)
	}

	return &GoogleClient{
		client: client,
		model:  provider.Model,
	}, nil
}

func (c *GoogleClient) Name() string {
	return string(config.ProviderGoogle)
}

func (c *GoogleClient) Kind() config.ProviderKind {
	return config.ProviderGoogle
}

func (c *GoogleClient) Model() string {
	return c.model
}

func (c *GoogleClient) Complete(ctx context.Context, req Request) (string, error) {
	generateConfig := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(req.Temperature)),
	}
	if req.System != "" {
		generateConfig.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.JSON {
		generateConfig.ResponseMIMEType = "application/json"
	}

	resp, err := c.client.Models.GenerateContent(ctx, req.Model, genai.Text(req.Prompt), generateConfig)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", &StatusError{Provider: c.Name(), StatusCode: apiErr.Code, Body: apiErr.Message}
		}
		return "", fmt.Errorf("google: generate content: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("google: empty response from model")
	}

	return text, nil
}
