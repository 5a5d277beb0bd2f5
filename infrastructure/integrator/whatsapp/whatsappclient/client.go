package whatsappclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/vfg2006/verity-api/internal/config"
)

//go:generate mockgen -source=client.go -destination=../mocks/client_mock.go -package=mocks
type Client interface {
	SendMessage(ctx context.Context, params SendMessageParams) (SendMessageResponse, error)
}

type TwilioClient struct {
	httpClient *http.Client
	config     config.WhatsApp
}

func NewClient(cfg config.WhatsApp) Client {
	return &TwilioClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}

// APIError is the error body Twilio returns on non-2xx responses.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       int    `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("twilio request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("twilio error %d (status %d): %s", e.Code, e.StatusCode, e.Message)
}
