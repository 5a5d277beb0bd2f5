package insighting

import (
	"context"

	"github.com/vfg2006/verity-api/internal/domain"
)

// Insighter serves every consumer of the metrics snapshot.
//
//go:generate mockgen -source=interfaces.go -destination=mocks/insighter_mock.go -package=mocks
type Insighter interface {
	// Metrics returns the raw snapshot
	Metrics(ctx context.Context, businessID int64) (*domain.MetricsSnapshot, error)

	Insights(ctx context.Context, businessID int64) (*domain.InsightSet, error)
	Forecast(ctx context.Context, businessID int64, horizonDays int) (*ForecastResult, error)
	Report(ctx context.Context, businessID int64) (*domain.Report, error)
	PitchDeck(ctx context.Context, businessID int64) (*domain.PitchDeckOutline, error)
	Cashflow(ctx context.Context, businessID int64) (*domain.CashflowSummary, error)

	// Risk analyses the business's recent transactions against its metrics
	Risk(ctx context.Context, businessID int64, extra map[string]any) (*domain.RiskSignals, error)

	// MatchTransaction matches a transaction against the business's contacts and open invoices
	MatchTransaction(ctx context.Context, businessID int64, tx domain.ParsedTransaction) (*domain.LedgerMatch, error)
	Categorize(ctx context.Context, input domain.CategorizationInput) *domain.Categorization
}

type ForecastResult struct {
	Data        domain.ForecastInput       `json:"forecast_data"`
	Explanation domain.ForecastExplanation `json:"explanation"`
}
