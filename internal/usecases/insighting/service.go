package insighting

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/verity-api/infrastructure/repository"
	"github.com/vfg2006/verity-api/internal/domain"
	"github.com/vfg2006/verity-api/internal/usecases/aggregating"
	"github.com/vfg2006/verity-api/internal/usecases/extracting"
	"github.com/vfg2006/verity-api/pkg/apiErrors"
	"github.com/vfg2006/verity-api/pkg/utils"
)

const (
	DefaultHorizonDays = 90
	riskHistoryLimit   = 200
)

// Risk flags passed to the forecast explainer.
const (
	FlagOverdueReceivables = "overdue_receivables"
	FlagDecliningRevenue   = "declining_revenue"
	FlagNegativeCashflow   = "negative_net_cashflow"
	FlagNoHistory          = "no_transaction_history"
)

type Service struct {
	aggregator      aggregating.Aggregator
	extractor       extracting.Extractor
	contactRepo     repository.ContactRepository
	invoiceRepo     repository.InvoiceRepository
	transactionRepo repository.TransactionRepository
}

func NewService(
	aggregator aggregating.Aggregator,
	extractor extracting.Extractor,
	contactRepo repository.ContactRepository,
	invoiceRepo repository.InvoiceRepository,
	transactionRepo repository.TransactionRepository,
) *Service {
	return &Service{
		aggregator:      aggregator,
		extractor:       extractor,
		contactRepo:     contactRepo,
		invoiceRepo:     invoiceRepo,
		transactionRepo: transactionRepo,
	}
}

func (s *Service) Metrics(ctx context.Context, businessID int64) (*domain.MetricsSnapshot, error) {
	return s.aggregator.ComputeMetrics(ctx, businessID)
}

func (s *Service) Insights(ctx context.Context, businessID int64) (*domain.InsightSet, error) {
	snapshot, err := s.aggregator.ComputeMetrics(ctx, businessID)
	if err != nil {
		return nil, err
	}

	insights := s.extractor.GenerateInsights(ctx, snapshot)
	return &insights, nil
}

func (s *Service) Forecast(ctx context.Context, businessID int64, horizonDays int) (*ForecastResult, error) {
	snapshot, err := s.aggregator.ComputeMetrics(ctx, businessID)
	if err != nil {
		return nil, err
	}

	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}

	data := BuildForecastInput(snapshot, horizonDays)
	return &ForecastResult{
		Data:        data,
		Explanation: s.extractor.ExplainForecast(ctx, data),
	}, nil
}

func (s *Service) Report(ctx context.Context, businessID int64) (*domain.Report, error) {
	snapshot, err := s.aggregator.ComputeMetrics(ctx, businessID)
	if err != nil {
		return nil, err
	}

	report := s.extractor.GenerateReport(ctx, snapshot)
	return &report, nil
}

func (s *Service) PitchDeck(ctx context.Context, businessID int64) (*domain.PitchDeckOutline, error) {
	snapshot, err := s.aggregator.ComputeMetrics(ctx, businessID)
	if err != nil {
		return nil, err
	}

	outline := s.extractor.OutlinePitchDeck(ctx, snapshot)
	if outline.Degraded() {
		logrus.WithField("business_id", businessID).WithError(outline.Err).Info("serving offline pitch deck outline")
	}
	return &outline, nil
}

// Cashflow summarizes the metrics window. Net balance is inflow minus outflow.
func (s *Service) Cashflow(ctx context.Context, businessID int64) (*domain.CashflowSummary, error) {
	snapshot, err := s.aggregator.ComputeMetrics(ctx, businessID)
	if err != nil {
		return nil, err
	}

	return &domain.CashflowSummary{
		BusinessID:   businessID,
		TotalInflow:  snapshot.TotalInflowWindow,
		TotalOutflow: snapshot.TotalOutflowWindow,
		NetBalance:   utils.RoundWithTwoDecimalPlace(snapshot.TotalInflowWindow - snapshot.TotalOutflowWindow),
	}, nil
}

func (s *Service) Risk(ctx context.Context, businessID int64, extra map[string]any) (*domain.RiskSignals, error) {
	snapshot, err := s.aggregator.ComputeMetrics(ctx, businessID)
	if err != nil {
		return nil, err
	}

	history, err := s.transactionRepo.ListRecentTransactions(ctx, businessID, riskHistoryLimit)
	if err != nil {
		return nil, NewInsightError(ErrLedgerLoad, apiErrors.ErrDatabaseOperation, businessID, err.Error())
	}

	signals := s.extractor.AnalyzeRisk(ctx, domain.RiskInput{
		RecentTransactions: history,
		Metrics:            snapshot,
		Context:            extra,
	})
	return &signals, nil
}

func (s *Service) MatchTransaction(ctx context.Context, businessID int64, tx domain.ParsedTransaction) (*domain.LedgerMatch, error) {
	contacts, err := s.contactRepo.ListContacts(ctx, businessID)
	if err != nil {
		return nil, NewInsightError(ErrLedgerLoad, apiErrors.ErrDatabaseOperation, businessID, fmt.Sprintf("contacts: %v", err))
	}

	invoices, err := s.invoiceRepo.ListInvoices(ctx, businessID, domain.InvoiceStatusPending, domain.InvoiceStatusOverdue)
	if err != nil {
		return nil, NewInsightError(ErrLedgerLoad, apiErrors.ErrDatabaseOperation, businessID, fmt.Sprintf("invoices: %v", err))
	}

	match := s.extractor.MatchLedger(ctx, tx, domain.LedgerSnapshot{
		Contacts: contacts,
		Invoices: invoices,
	})
	return &match, nil
}

func (s *Service) Categorize(ctx context.Context, input domain.CategorizationInput) *domain.Categorization {
	categorization := s.extractor.Categorize(ctx, input)
	return &categorization
}

// BuildForecastInput derives the explainer payload from a snapshot.
func BuildForecastInput(snapshot *domain.MetricsSnapshot, horizonDays int) domain.ForecastInput {
	flags := make([]string, 0, 4)
	if len(snapshot.WindowMonths) == 0 {
		flags = append(flags, FlagNoHistory)
	}
	if snapshot.OverdueAmount > 0 {
		flags = append(flags, FlagOverdueReceivables)
	}
	if snapshot.RevenueGrowthPercent != nil && *snapshot.RevenueGrowthPercent < 0 {
		flags = append(flags, FlagDecliningRevenue)
	}
	if snapshot.TotalOutflowWindow > snapshot.TotalInflowWindow {
		flags = append(flags, FlagNegativeCashflow)
	}

	assumptions := []string{
		fmt.Sprintf("Based on %d month(s) of recorded transactions", len(snapshot.WindowMonths)),
		"Recent monthly patterns continue over the horizon",
	}

	return domain.ForecastInput{
		BusinessName:         snapshot.BusinessName,
		HorizonDays:          horizonDays,
		MonthlyRevenue:       snapshot.MonthlyRevenue,
		MonthlyOutflow:       snapshot.MonthlyOutflow,
		TotalInflowWindow:    snapshot.TotalInflowWindow,
		TotalOutflowWindow:   snapshot.TotalOutflowWindow,
		RevenueGrowthPercent: snapshot.RevenueGrowthPercent,
		OverdueAmount:        snapshot.OverdueAmount,
		RiskFlags:            flags,
		Assumptions:          assumptions,
	}
}
