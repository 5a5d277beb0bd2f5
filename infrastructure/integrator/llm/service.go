package llm

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/verity-api/infrastructure/integrator/llm/llmclient"
	"github.com/vfg2006/verity-api/internal/config"
	"github.com/vfg2006/verity-api/pkg/metrics"
	"go.uber.org/multierr"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const inputPrefix = "INPUT_DATA:\n"

// Request is one structured extraction call.
type Request struct {
	Instruction string
	Input       string
	ModelHint   string
}

//go:generate mockgen -source=service.go -destination=mocks/generator_mock.go -package=mocks
type Generator interface {
	Generate(ctx context.Context, req Request) Result
}

// Gateway tries its clients in order and returns the first decoded JSON object.
type Gateway struct {
	clients     []llmclient.Client
	model       string
	temperature float64
	timeout     time.Duration
}

func NewGateway(cfg config.Gateway, clients []llmclient.Client) *Gateway {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Gateway{
		clients:     clients,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		timeout:     timeout,
	}
}

// NewClients builds one client per provider that has credentials, keeping the configured order.
func NewClients(ctx context.Context, cfg config.Gateway) ([]llmclient.Client, error) {
	enabled := cfg.Enabled()
	clients := make([]llmclient.Client, 0, len(enabled))

	for _, provider := range enabled {
		client, err := llmclient.NewClient(ctx, provider, cfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("building %s client: %w", provider.Kind, err)
		}
		clients = append(clients, client)
	}

	return clients, nil
}

func (g *Gateway) Providers() []string {
	names := make([]string, 0, len(g.clients))
	for _, c := range g.clients {
		names = append(names, c.Name())
	}
	return names
}

func (g *Gateway) Generate(ctx context.Context, req Request) Result {
	if len(g.clients) == 0 {
		return Result{Err: &ExtractionError{Kind: ErrorKindNoProvider, Err: ErrNoProvider}}
	}

	var errs error
	for _, client := range g.clients {
		value, err := g.attempt(ctx, client, req)
		if err != nil {
			metrics.GatewayAttemptsTotal.WithLabelValues(client.Name(), string(err.Kind)).Inc()
			logrus.WithFields(logrus.Fields{
				"provider": client.Name(),
				"kind":     err.Kind,
			}).WithError(err.Err).Warn("extraction provider attempt failed")
			errs = multierr.Append(errs, err)
			continue
		}

		metrics.GatewayAttemptsTotal.WithLabelValues(client.Name(), "success").Inc()
		return Result{Value: value, Provider: client.Name()}
	}

	return Result{Err: errs}
}

func (g *Gateway) attempt(ctx context.Context, client llmclient.Client, req Request) (value map[string]any, extractionErr *ExtractionError) {
	defer func() {
		if r := recover(); r != nil {
			value = nil
			extractionErr = &ExtractionError{Kind: ErrorKindProvider, Provider: client.Name(), Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	model := g.selectModel(client, req.ModelHint)

	// The call is not cancelled with the request; it is bounded by the gateway timeout only.
	callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), g.timeout)
	defer cancel()

	raw, err := client.Complete(callCtx, llmclient.Request{
		System:      req.Instruction,
		Prompt:      inputPrefix + req.Input,
		Model:       model,
		Temperature: g.temperature,
		JSON:        true,
	})
	if err != nil {
		return nil, classify(client.Name(), err)
	}

	value, err = decodeObject(raw)
	if err != nil {
		return nil, &ExtractionError{Kind: ErrorKindMalformed, Provider: client.Name(), Err: err}
	}

	return value, nil
}

func (g *Gateway) selectModel(client llmclient.Client, hint string) string {
	requested := hint
	if requested == "" {
		requested = client.Model()
	}
	if requested == "" {
		requested = g.model
	}

	model, corrected := llmclient.ResolveModel(client.Kind(), requested)
	if corrected {
		logrus.WithFields(logrus.Fields{
			"provider":  client.Name(),
			"requested": requested,
			"model":     model,
		}).Warn("model not served by provider, using its default")
	}

	return model
}

func decodeObject(raw string) (map[string]any, error) {
	cleaned := StripCodeFence(raw)
	if cleaned == "" {
		return nil, fmt.Errorf("empty model output")
	}

	var value map[string]any
	if err := json.Unmarshal([]byte(cleaned), &value); err != nil {
		return nil, fmt.Errorf("decoding model output: %w", err)
	}
	if value == nil {
		return nil, fmt.Errorf("model output is not a JSON object")
	}

	return value, nil
}
