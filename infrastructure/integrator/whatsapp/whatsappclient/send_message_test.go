package whatsappclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/verity-api/internal/config"
)

func newTestClient(serverURL string) Client {
	return NewClient(config.WhatsApp{
		AccountSID: "AC123",
		AuthToken:  "secret",
		From:       "whatsapp:+14155238886",
		BaseURL:    serverURL,
	})
}

func TestSendMessage(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		validate func(t *testing.T, resp SendMessageResponse, err error)
	}{
		{
			name: "sends form encoded message with basic auth",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/Accounts/AC123/Messages.json", r.URL.Path)

				user, pass, ok := r.BasicAuth()
				assert.True(t, ok)
				assert.Equal(t, "AC123", user)
				assert.Equal(t, "secret", pass)

				require.NoError(t, r.ParseForm())
				assert.Equal(t, "whatsapp:+14155238886", r.PostForm.Get("From"))
				assert.Equal(t, "whatsapp:+919876543210", r.PostForm.Get("To"))
				assert.Equal(t, "Hello", r.PostForm.Get("Body"))

				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte(`{"sid":"SM1","to":"whatsapp:+919876543210","status":"queued"}`))
			},
			validate: func(t *testing.T, resp SendMessageResponse, err error) {
				require.NoError(t, err)
				assert.Equal(t, "SM1", resp.SID)
				assert.Equal(t, "queued", resp.Status)
			},
		},
		{
			name: "api error body is decoded",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"code":21211,"message":"Invalid 'To' Phone Number"}`))
			},
			validate: func(t *testing.T, resp SendMessageResponse, err error) {
				var apiErr *APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, 21211, apiErr.Code)
				assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
				assert.Contains(t, err.Error(), "Invalid 'To' Phone Number")
			},
		},
		{
			name: "error without body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			validate: func(t *testing.T, resp SendMessageResponse, err error) {
				require.Error(t, err)
				assert.Equal(t, "twilio request failed with status 500", err.Error())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			resp, err := newTestClient(server.URL).SendMessage(context.Background(), SendMessageParams{
				To:   "whatsapp:+919876543210",
				Body: "Hello",
			})

			tt.validate(t, resp, err)
		})
	}
}
