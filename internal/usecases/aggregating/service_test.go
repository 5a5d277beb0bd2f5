package aggregating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	repomocks "github.com/vfg2006/verity-api/infrastructure/repository/mocks"
	"github.com/vfg2006/verity-api/internal/domain"
	"github.com/vfg2006/verity-api/pkg/apiErrors"
)

var business = &domain.Business{ID: 1, Name: "Sharma Traders"}

func tx(direction domain.Direction, amount float64, year int, month time.Month, day int) *domain.Transaction {
	return &domain.Transaction{
		BusinessID: 1,
		Direction:  direction,
		Amount:     amount,
		Date:       time.Date(year, month, day, 12, 0, 0, 0, time.UTC),
	}
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name         string
		transactions []*domain.Transaction
		invoices     []*domain.Invoice
		validate     func(t *testing.T, m *domain.MetricsSnapshot)
	}{
		{
			name: "two months of revenue give fifty percent growth",
			transactions: []*domain.Transaction{
				tx(domain.DirectionInflow, 1000, 2024, time.January, 10),
				tx(domain.DirectionInflow, 1500, 2024, time.February, 10),
			},
			validate: func(t *testing.T, m *domain.MetricsSnapshot) {
				assert.Equal(t, 2500.0, m.TotalInflowWindow)
				require.NotNil(t, m.RevenueGrowthPercent)
				assert.Equal(t, 50.0, *m.RevenueGrowthPercent)
				assert.Equal(t, []string{"2024-01", "2024-02"}, m.WindowMonths)
			},
		},
		{
			name: "growth keeps full precision",
			transactions: []*domain.Transaction{
				tx(domain.DirectionInflow, 3, 2024, time.January, 10),
				tx(domain.DirectionInflow, 4, 2024, time.February, 10),
			},
			validate: func(t *testing.T, m *domain.MetricsSnapshot) {
				require.NotNil(t, m.RevenueGrowthPercent)
				assert.InDelta(t, 100.0/3, *m.RevenueGrowthPercent, 1e-9)
				assert.NotEqual(t, 33.33, *m.RevenueGrowthPercent)
			},
		},
		{
			name: "window keeps only the last three months",
			transactions: []*domain.Transaction{
				tx(domain.DirectionInflow, 100, 2023, time.November, 1),
				tx(domain.DirectionInflow, 200, 2023, time.December, 1),
				tx(domain.DirectionOutflow, 50, 2024, time.January, 1),
				tx(domain.DirectionInflow, 400, 2024, time.February, 1),
				tx(domain.DirectionOutflow, 30, 2024, time.February, 2),
			},
			validate: func(t *testing.T, m *domain.MetricsSnapshot) {
				assert.Equal(t, []string{"2023-12", "2024-01", "2024-02"}, m.WindowMonths)
				assert.Equal(t, 600.0, m.TotalInflowWindow)
				assert.Equal(t, 80.0, m.TotalOutflowWindow)
				// January has no revenue, so there is no base to compare with.
				assert.Nil(t, m.RevenueGrowthPercent)
			},
		},
		{
			name: "single month has no growth",
			transactions: []*domain.Transaction{
				tx(domain.DirectionInflow, 700, 2024, time.March, 3),
			},
			validate: func(t *testing.T, m *domain.MetricsSnapshot) {
				assert.Nil(t, m.RevenueGrowthPercent)
				assert.Equal(t, 700.0, m.TotalInflowWindow)
			},
		},
		{
			name: "no transactions",
			validate: func(t *testing.T, m *domain.MetricsSnapshot) {
				assert.Empty(t, m.MonthlyRevenue)
				assert.Empty(t, m.MonthlyOutflow)
				assert.Empty(t, m.WindowMonths)
				assert.Nil(t, m.RevenueGrowthPercent)
				assert.Zero(t, m.TotalInflowWindow)
			},
		},
		{
			name: "decimal sums avoid float drift",
			transactions: []*domain.Transaction{
				tx(domain.DirectionInflow, 0.1, 2024, time.April, 1),
				tx(domain.DirectionInflow, 0.2, 2024, time.April, 2),
			},
			validate: func(t *testing.T, m *domain.MetricsSnapshot) {
				assert.Equal(t, 0.3, m.MonthlyRevenue["2024-04"])
			},
		},
		{
			name: "overdue amount sums only overdue invoices",
			invoices: []*domain.Invoice{
				{Amount: 1200, Status: domain.InvoiceStatusOverdue},
				{Amount: 300.5, Status: domain.InvoiceStatusOverdue},
				{Amount: 999, Status: domain.InvoiceStatusPending},
			},
			validate: func(t *testing.T, m *domain.MetricsSnapshot) {
				assert.Equal(t, 1500.5, m.OverdueAmount)
			},
		},
		{
			name: "month keys come from the UTC date",
			transactions: []*domain.Transaction{
				{Direction: domain.DirectionInflow, Amount: 10, Date: time.Date(2024, 5, 1, 2, 0, 0, 0, time.FixedZone("IST", 19800))},
			},
			validate: func(t *testing.T, m *domain.MetricsSnapshot) {
				assert.Contains(t, m.MonthlyRevenue, "2024-04")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Aggregate(business, tt.transactions, tt.invoices)

			assert.Equal(t, business.ID, m.BusinessID)
			assert.Equal(t, business.Name, m.BusinessName)
			tt.validate(t, m)
		})
	}
}

func TestAggregate_BucketsCoverEveryTransactionMonth(t *testing.T) {
	transactions := []*domain.Transaction{
		tx(domain.DirectionInflow, 10, 2023, time.June, 5),
		tx(domain.DirectionOutflow, 20, 2023, time.August, 5),
		tx(domain.DirectionInflow, 30, 2024, time.January, 5),
		tx(domain.DirectionOutflow, 40, 2024, time.January, 6),
	}

	m := Aggregate(business, transactions, nil)

	keys := map[string]bool{}
	for k := range m.MonthlyRevenue {
		keys[k] = true
	}
	for k := range m.MonthlyOutflow {
		keys[k] = true
	}
	assert.Equal(t, map[string]bool{"2023-06": true, "2023-08": true, "2024-01": true}, keys)
}

func TestComputeMetrics(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(b *repomocks.MockBusinessRepository, tr *repomocks.MockTransactionRepository, inv *repomocks.MockInvoiceRepository)
		validate func(t *testing.T, m *domain.MetricsSnapshot, err error)
	}{
		{
			name: "business not found",
			setup: func(b *repomocks.MockBusinessRepository, tr *repomocks.MockTransactionRepository, inv *repomocks.MockInvoiceRepository) {
				b.EXPECT().GetBusinessByID(gomock.Any(), int64(1)).Return(nil, nil)
			},
			validate: func(t *testing.T, m *domain.MetricsSnapshot, err error) {
				assert.Nil(t, m)
				assert.ErrorIs(t, err, ErrBusinessNotFound)
				var metricsErr *MetricsError
				require.ErrorAs(t, err, &metricsErr)
				assert.Equal(t, apiErrors.ErrBusinessNotFound, metricsErr.Code)
			},
		},
		{
			name: "transaction load failure",
			setup: func(b *repomocks.MockBusinessRepository, tr *repomocks.MockTransactionRepository, inv *repomocks.MockInvoiceRepository) {
				b.EXPECT().GetBusinessByID(gomock.Any(), int64(1)).Return(business, nil)
				tr.EXPECT().ListTransactions(gomock.Any(), int64(1)).Return(nil, errors.New("timeout"))
			},
			validate: func(t *testing.T, m *domain.MetricsSnapshot, err error) {
				assert.ErrorIs(t, err, ErrDatabaseOperation)
			},
		},
		{
			name: "computes from stored rows",
			setup: func(b *repomocks.MockBusinessRepository, tr *repomocks.MockTransactionRepository, inv *repomocks.MockInvoiceRepository) {
				b.EXPECT().GetBusinessByID(gomock.Any(), int64(1)).Return(business, nil)
				tr.EXPECT().ListTransactions(gomock.Any(), int64(1)).Return([]*domain.Transaction{
					tx(domain.DirectionInflow, 1000, 2024, time.January, 10),
					tx(domain.DirectionInflow, 1500, 2024, time.February, 10),
				}, nil)
				inv.EXPECT().ListInvoices(gomock.Any(), int64(1), domain.InvoiceStatusOverdue).
					Return([]*domain.Invoice{{Amount: 250, Status: domain.InvoiceStatusOverdue}}, nil)
			},
			validate: func(t *testing.T, m *domain.MetricsSnapshot, err error) {
				require.NoError(t, err)
				assert.Equal(t, 2500.0, m.TotalInflowWindow)
				assert.Equal(t, 250.0, m.OverdueAmount)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			b := repomocks.NewMockBusinessRepository(ctrl)
			tr := repomocks.NewMockTransactionRepository(ctrl)
			inv := repomocks.NewMockInvoiceRepository(ctrl)
			tt.setup(b, tr, inv)

			m, err := NewService(b, tr, inv).ComputeMetrics(context.Background(), 1)

			tt.validate(t, m, err)
		})
	}
}

func TestComputeMetrics_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	b := repomocks.NewMockBusinessRepository(ctrl)
	tr := repomocks.NewMockTransactionRepository(ctrl)
	inv := repomocks.NewMockInvoiceRepository(ctrl)

	rows := []*domain.Transaction{
		tx(domain.DirectionInflow, 420, 2024, time.January, 2),
		tx(domain.DirectionOutflow, 120, 2024, time.February, 2),
		tx(domain.DirectionInflow, 900, 2024, time.March, 2),
	}
	b.EXPECT().GetBusinessByID(gomock.Any(), int64(1)).Return(business, nil).Times(2)
	tr.EXPECT().ListTransactions(gomock.Any(), int64(1)).Return(rows, nil).Times(2)
	inv.EXPECT().ListInvoices(gomock.Any(), int64(1), domain.InvoiceStatusOverdue).Return(nil, nil).Times(2)

	service := NewService(b, tr, inv)
	first, err := service.ComputeMetrics(context.Background(), 1)
	require.NoError(t, err)
	second, err := service.ComputeMetrics(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
