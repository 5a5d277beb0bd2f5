package llmclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/verity-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// OpenAICompatibleClient talks to any /chat/completions endpoint (OpenAI, Groq, xAI, OpenRouter).
type OpenAICompatibleClient struct {
	httpClient *http.Client
	kind       config.ProviderKind
	apiKey     string
	baseURL    string
	model      string
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

func NewOpenAICompatibleClient(provider config.Provider, httpClient *http.Client) *OpenAICompatibleClient {
	baseURL := provider.BaseURL
	if baseURL == "" {
		baseURL = config.DefaultBaseURL(provider.Kind)
	}

	return &OpenAICompatibleClient{
		httpClient: httpClient,
		kind:       provider.Kind,
		apiKey:     provider.APIKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      provider.Model,
	}
}

func (c *OpenAICompatibleClient) Name() string {
	return string(c.kind)
}

func (c *OpenAICompatibleClient) Kind() config.ProviderKind {
	return c.kind
}

func (c *OpenAICompatibleClient) Model() string {
	return c.model
}

func (c *OpenAICompatibleClient) Complete(ctx context.Context, req Request) (string, error) {
	messages := make([]chatMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, chatMessage{Role: "system", Content: req.System})
	}
	messages = append(messages, chatMessage{Role: "user", Content: req.Prompt})

	payload := chatRequest{
		Model:       req.Model,
		Messages:    messages,
		Temperature: req.Temperature,
	}
	if req.JSON {
		payload.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%s: marshaling request: %w", c.Name(), err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%s: creating request: %w", c.Name(), err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%s: sending request: %w", c.Name(), err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%s: reading response: %w", c.Name(), err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{Provider: c.Name(), StatusCode: resp.StatusCode, Body: truncate(string(respBody), 512)}
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("%s: parsing response: %w", c.Name(), err)
	}

	if parsed.Error != nil {
		return "", &StatusError{Provider: c.Name(), StatusCode: resp.StatusCode, Body: parsed.Error.Message}
	}

	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("%s: empty choices in response", c.Name())
	}

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
