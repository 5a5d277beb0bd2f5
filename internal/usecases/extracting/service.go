package extracting

import (
	"context"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/verity-api/infrastructure/integrator/llm"
	"github.com/vfg2006/verity-api/internal/domain"
	"github.com/vfg2006/verity-api/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Extractor turns text and metrics payloads into typed results. No method returns an
// error: failures are reported through the result's Degradation and a safe default.
//
//go:generate mockgen -source=service.go -destination=mocks/extractor_mock.go -package=mocks
type Extractor interface {
	ParseTransaction(ctx context.Context, rawText string) domain.ParsedTransaction
	ParseInvoice(ctx context.Context, ocrText string) domain.ParsedInvoice
	MapColumns(ctx context.Context, headers []string, sampleRows []map[string]string) domain.ColumnMapping
	MatchLedger(ctx context.Context, tx domain.ParsedTransaction, snapshot domain.LedgerSnapshot) domain.LedgerMatch
	Categorize(ctx context.Context, input domain.CategorizationInput) domain.Categorization
	AnalyzeRisk(ctx context.Context, input domain.RiskInput) domain.RiskSignals
	GenerateInsights(ctx context.Context, snapshot *domain.MetricsSnapshot) domain.InsightSet
	ExplainForecast(ctx context.Context, input domain.ForecastInput) domain.ForecastExplanation
	DraftReminder(ctx context.Context, rc domain.ReminderContext) domain.ReminderText
	OutlinePitchDeck(ctx context.Context, snapshot *domain.MetricsSnapshot) domain.PitchDeckOutline
	GenerateReport(ctx context.Context, snapshot *domain.MetricsSnapshot) domain.Report
}

type Service struct {
	generator llm.Generator
	catalog   Catalog
	now       func() time.Time
}

func NewService(generator llm.Generator, catalog Catalog) *Service {
	return &Service{
		generator: generator,
		catalog:   catalog,
		now:       time.Now,
	}
}

// WithClock replaces the clock used for due date arithmetic.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// generate encodes payload as the model input and runs the task's instruction.
func (s *Service) generate(ctx context.Context, task string, payload any) llm.Result {
	var input string
	switch p := payload.(type) {
	case string:
		input = p
	default:
		encoded, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return llm.Result{Err: &llm.ExtractionError{Kind: llm.ErrorKindMalformed, Err: err}}
		}
		input = string(encoded)
	}

	prompt := s.catalog[task]
	return s.generator.Generate(ctx, llm.Request{
		Instruction: prompt.Instruction,
		Input:       input,
		ModelHint:   prompt.Model,
	})
}

func fallback(task string, err error) {
	metrics.ExtractionFallbacksTotal.WithLabelValues(task).Inc()
	logrus.WithField("task", task).WithError(err).Warn("extraction degraded, using default")
}
