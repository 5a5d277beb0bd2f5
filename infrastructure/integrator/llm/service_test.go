package llm

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/verity-api/infrastructure/integrator/llm/llmclient"
	"github.com/vfg2006/verity-api/infrastructure/integrator/llm/llmclient/mocks"
	"github.com/vfg2006/verity-api/internal/config"
	"go.uber.org/mock/gomock"
)

func newMockClient(ctrl *gomock.Controller, kind config.ProviderKind, model string) *mocks.MockClient {
	client := mocks.NewMockClient(ctrl)
	client.EXPECT().Name().Return(string(kind)).AnyTimes()
	client.EXPECT().Kind().Return(kind).AnyTimes()
	client.EXPECT().Model().Return(model).AnyTimes()
	return client
}

func TestGateway_Generate(t *testing.T) {
	cfg := config.Gateway{Model: "gpt-4o", Temperature: 0.1, Timeout: time.Second}

	tests := []struct {
		name     string
		setup    func(ctrl *gomock.Controller) []llmclient.Client
		validate func(t *testing.T, result Result)
	}{
		{
			name: "no providers returns tagged error",
			setup: func(ctrl *gomock.Controller) []llmclient.Client {
				return nil
			},
			validate: func(t *testing.T, result Result) {
				require.Error(t, result.Err)
				assert.False(t, result.OK())
				assert.True(t, IsKind(result.Err, ErrorKindNoProvider))
				assert.ErrorIs(t, result.Err, ErrNoProvider)
			},
		},
		{
			name: "first provider success stops the chain",
			setup: func(ctrl *gomock.Controller) []llmclient.Client {
				first := newMockClient(ctrl, config.ProviderOpenAI, "")
				first.EXPECT().Complete(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req llmclient.Request) (string, error) {
						assert.Equal(t, "parse this", req.System)
						assert.Equal(t, "INPUT_DATA:\nhello", req.Prompt)
						assert.Equal(t, "gpt-4o", req.Model)
						assert.Equal(t, 0.1, req.Temperature)
						assert.True(t, req.JSON)
						return "```json\n{\"amount\": 10}\n```", nil
					})
				second := newMockClient(ctrl, config.ProviderGroq, "")
				return []llmclient.Client{first, second}
			},
			validate: func(t *testing.T, result Result) {
				require.NoError(t, result.Err)
				assert.Equal(t, "openai", result.Provider)
				assert.Equal(t, float64(10), result.Value["amount"])
			},
		},
		{
			name: "falls back to the next provider and corrects its model",
			setup: func(ctrl *gomock.Controller) []llmclient.Client {
				first := newMockClient(ctrl, config.ProviderOpenAI, "")
				first.EXPECT().Complete(gomock.Any(), gomock.Any()).
					Return("", &llmclient.StatusError{Provider: "openai", StatusCode: http.StatusUnauthorized})
				second := newMockClient(ctrl, config.ProviderGroq, "")
				second.EXPECT().Complete(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req llmclient.Request) (string, error) {
						assert.Equal(t, "llama3-8b-8192", req.Model)
						return `{"ok": true}`, nil
					})
				return []llmclient.Client{first, second}
			},
			validate: func(t *testing.T, result Result) {
				require.NoError(t, result.Err)
				assert.Equal(t, "groq", result.Provider)
				assert.Equal(t, true, result.Value["ok"])
			},
		},
		{
			name: "aggregates every provider error",
			setup: func(ctrl *gomock.Controller) []llmclient.Client {
				first := newMockClient(ctrl, config.ProviderOpenAI, "")
				first.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("", context.DeadlineExceeded)
				second := newMockClient(ctrl, config.ProviderXAI, "")
				second.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("not json at all", nil)
				third := newMockClient(ctrl, config.ProviderOpenRouter, "")
				third.EXPECT().Complete(gomock.Any(), gomock.Any()).
					Return("", &llmclient.StatusError{Provider: "openrouter", StatusCode: http.StatusInternalServerError})
				return []llmclient.Client{first, second, third}
			},
			validate: func(t *testing.T, result Result) {
				require.Error(t, result.Err)
				assert.Nil(t, result.Value)
				assert.True(t, IsKind(result.Err, ErrorKindUnavailable))
				assert.True(t, IsKind(result.Err, ErrorKindMalformed))
				assert.True(t, IsKind(result.Err, ErrorKindProvider))
				assert.False(t, IsKind(result.Err, ErrorKindUnauthenticated))
			},
		},
		{
			name: "json arrays are malformed",
			setup: func(ctrl *gomock.Controller) []llmclient.Client {
				client := newMockClient(ctrl, config.ProviderOpenAI, "")
				client.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(`[1, 2]`, nil)
				return []llmclient.Client{client}
			},
			validate: func(t *testing.T, result Result) {
				require.Error(t, result.Err)
				assert.True(t, IsKind(result.Err, ErrorKindMalformed))
			},
		},
		{
			name: "a panicking client is reported, not raised",
			setup: func(ctrl *gomock.Controller) []llmclient.Client {
				client := newMockClient(ctrl, config.ProviderOpenAI, "")
				client.EXPECT().Complete(gomock.Any(), gomock.Any()).
					DoAndReturn(func(context.Context, llmclient.Request) (string, error) {
						panic("boom")
					})
				return []llmclient.Client{client}
			},
			validate: func(t *testing.T, result Result) {
				require.Error(t, result.Err)
				assert.True(t, IsKind(result.Err, ErrorKindProvider))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			gateway := NewGateway(cfg, tt.setup(ctrl))
			result := gateway.Generate(context.Background(), Request{Instruction: "parse this", Input: "hello"})
			tt.validate(t, result)
		})
	}
}

func TestGateway_ModelPrecedence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := newMockClient(ctrl, config.ProviderOpenAI, "gpt-4o-mini")
	client.EXPECT().Complete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req llmclient.Request) (string, error) {
			assert.Equal(t, "gpt-4.1", req.Model)
			return `{}`, nil
		})
	client.EXPECT().Complete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req llmclient.Request) (string, error) {
			assert.Equal(t, "gpt-4o-mini", req.Model)
			return `{}`, nil
		})

	gateway := NewGateway(config.Gateway{Model: "gpt-4o"}, []llmclient.Client{client})

	assert.NoError(t, gateway.Generate(context.Background(), Request{ModelHint: "gpt-4.1"}).Err)
	assert.NoError(t, gateway.Generate(context.Background(), Request{}).Err)
}

func TestGateway_CancelledRequestStillCalls(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := newMockClient(ctrl, config.ProviderOpenAI, "")
	client.EXPECT().Complete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ llmclient.Request) (string, error) {
			assert.NoError(t, ctx.Err())
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			return `{"done": 1}`, nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := NewGateway(config.Gateway{Timeout: time.Second}, []llmclient.Client{client}).
		Generate(ctx, Request{Input: "x"})
	assert.NoError(t, result.Err)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, ErrorKindUnauthenticated, classify("openai", &llmclient.StatusError{StatusCode: http.StatusForbidden}).Kind)
	assert.Equal(t, ErrorKindProvider, classify("openai", &llmclient.StatusError{StatusCode: http.StatusTooManyRequests}).Kind)
	assert.Equal(t, ErrorKindUnavailable, classify("openai", context.DeadlineExceeded).Kind)
	assert.Equal(t, ErrorKindProvider, classify("openai", errors.New("weird")).Kind)
}
