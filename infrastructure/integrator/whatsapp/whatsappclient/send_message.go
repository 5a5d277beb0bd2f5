package whatsappclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type SendMessageParams struct {
	To   string
	Body string
}

type SendMessageResponse struct {
	SID    string `json:"sid"`
	To     string `json:"to"`
	Status string `json:"status"`
}

func (c *TwilioClient) SendMessage(ctx context.Context, params SendMessageParams) (SendMessageResponse, error) {
	var response SendMessageResponse

	endpoint, err := url.JoinPath(c.config.BaseURL, "Accounts", c.config.AccountSID, "Messages.json")
	if err != nil {
		return response, fmt.Errorf("failed to build twilio url: %w", err)
	}

	form := url.Values{}
	form.Set("From", c.config.From)
	form.Set("To", params.To)
	form.Set("Body", params.Body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return response, fmt.Errorf("failed to create request: %w", err)
	}

	req.SetBasicAuth(c.config.AccountSID, c.config.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return response, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		_ = json.Unmarshal(body, apiErr)
		return response, apiErr
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return response, fmt.Errorf("failed to decode response: %w", err)
	}

	return response, nil
}
