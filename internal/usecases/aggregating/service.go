package aggregating

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/verity-api/infrastructure/repository"
	"github.com/vfg2006/verity-api/internal/domain"
	"github.com/vfg2006/verity-api/pkg/apiErrors"
	"github.com/vfg2006/verity-api/pkg/utils"
)

// WindowSize is the number of trailing month buckets the window totals and growth use.
const WindowSize = 3

//go:generate mockgen -source=service.go -destination=mocks/aggregator_mock.go -package=mocks
type Aggregator interface {
	ComputeMetrics(ctx context.Context, businessID int64) (*domain.MetricsSnapshot, error)
}

type Service struct {
	businessRepo    repository.BusinessRepository
	transactionRepo repository.TransactionRepository
	invoiceRepo     repository.InvoiceRepository
}

func NewService(
	businessRepo repository.BusinessRepository,
	transactionRepo repository.TransactionRepository,
	invoiceRepo repository.InvoiceRepository,
) *Service {
	return &Service{
		businessRepo:    businessRepo,
		transactionRepo: transactionRepo,
		invoiceRepo:     invoiceRepo,
	}
}

// ComputeMetrics rebuilds the snapshot from every stored transaction and overdue invoice.
func (s *Service) ComputeMetrics(ctx context.Context, businessID int64) (*domain.MetricsSnapshot, error) {
	business, err := s.businessRepo.GetBusinessByID(ctx, businessID)
	if err != nil {
		return nil, NewMetricsError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, businessID, err.Error())
	}
	if business == nil {
		return nil, NewMetricsError(ErrBusinessNotFound, apiErrors.ErrBusinessNotFound, businessID, "")
	}

	transactions, err := s.transactionRepo.ListTransactions(ctx, businessID)
	if err != nil {
		return nil, NewMetricsError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, businessID, err.Error())
	}

	overdue, err := s.invoiceRepo.ListInvoices(ctx, businessID, domain.InvoiceStatusOverdue)
	if err != nil {
		return nil, NewMetricsError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, businessID, err.Error())
	}

	snapshot := Aggregate(business, transactions, overdue)

	logrus.WithFields(logrus.Fields{
		"business_id": businessID,
		"months":      len(snapshot.WindowMonths),
		"overdue":     snapshot.OverdueAmount,
	}).Debug("metrics computed")

	return snapshot, nil
}

// Aggregate is the pure part of ComputeMetrics. Only invoices with status overdue count
// towards the overdue amount.
func Aggregate(business *domain.Business, transactions []*domain.Transaction, invoices []*domain.Invoice) *domain.MetricsSnapshot {
	revenue := make(map[string]decimal.Decimal)
	outflow := make(map[string]decimal.Decimal)

	for _, tx := range transactions {
		key := utils.MonthKey(tx.Date)
		amount := decimal.NewFromFloat(tx.Amount)

		switch tx.Direction {
		case domain.DirectionInflow:
			revenue[key] = revenue[key].Add(amount)
		case domain.DirectionOutflow:
			outflow[key] = outflow[key].Add(amount)
		}
	}

	window := trailingWindow(monthKeys(revenue, outflow), WindowSize)

	totalInflow := decimal.Zero
	totalOutflow := decimal.Zero
	for _, key := range window {
		totalInflow = totalInflow.Add(revenue[key])
		totalOutflow = totalOutflow.Add(outflow[key])
	}

	overdue := decimal.Zero
	for _, inv := range invoices {
		if inv.Status == domain.InvoiceStatusOverdue {
			overdue = overdue.Add(decimal.NewFromFloat(inv.Amount))
		}
	}

	return &domain.MetricsSnapshot{
		BusinessID:           business.ID,
		BusinessName:         business.Name,
		Industry:             business.Industry,
		Location:             business.Location,
		MonthlyRevenue:       toFloats(revenue),
		MonthlyOutflow:       toFloats(outflow),
		WindowMonths:         window,
		TotalInflowWindow:    totalInflow.InexactFloat64(),
		TotalOutflowWindow:   totalOutflow.InexactFloat64(),
		RevenueGrowthPercent: growth(window, revenue),
		OverdueAmount:        overdue.InexactFloat64(),
	}
}

// growth compares the last two window months. A missing or non-positive base month
// yields nil.
func growth(window []string, revenue map[string]decimal.Decimal) *float64 {
	if len(window) < 2 {
		return nil
	}

	last := revenue[window[len(window)-1]]
	prev := revenue[window[len(window)-2]]
	if !prev.IsPositive() {
		return nil
	}

	percent := last.Sub(prev).Div(prev).Mul(decimal.NewFromInt(100)).InexactFloat64()
	return &percent
}

func monthKeys(buckets ...map[string]decimal.Decimal) []string {
	seen := make(map[string]struct{})
	for _, bucket := range buckets {
		for key := range bucket {
			seen[key] = struct{}{}
		}
	}

	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}

func trailingWindow(keys []string, size int) []string {
	if len(keys) <= size {
		return keys
	}
	return keys[len(keys)-size:]
}

func toFloats(bucket map[string]decimal.Decimal) map[string]float64 {
	out := make(map[string]float64, len(bucket))
	for key, value := range bucket {
		out[key] = value.InexactFloat64()
	}
	return out
}
