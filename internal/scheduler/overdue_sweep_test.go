package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/verity-api/infrastructure/repository/mocks"
	"github.com/vfg2006/verity-api/internal/config"
	"github.com/vfg2006/verity-api/internal/domain"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestOverdueSweepService_Sweep(t *testing.T) {
	now := time.Date(2024, 3, 20, 2, 0, 0, 0, time.UTC)
	today := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		setup    func(repo *mocks.MockInvoiceRepository)
		validate func(t *testing.T, result SweepResult, err error)
	}{
		{
			name: "past due pending invoices become overdue",
			setup: func(repo *mocks.MockInvoiceRepository) {
				repo.EXPECT().ListInvoicesDueBefore(gomock.Any(), domain.InvoiceStatusPending, today).
					Return([]*domain.Invoice{
						{ID: 1, BusinessID: 10, Status: domain.InvoiceStatusPending, DueDate: datePtr(2024, 3, 1)},
						{ID: 2, BusinessID: 11, Status: domain.InvoiceStatusPending, DueDate: datePtr(2024, 3, 19)},
					}, nil)
				repo.EXPECT().UpdateInvoiceStatus(gomock.Any(), int64(10), int64(1), domain.InvoiceStatusOverdue).Return(nil)
				repo.EXPECT().UpdateInvoiceStatus(gomock.Any(), int64(11), int64(2), domain.InvoiceStatusOverdue).Return(nil)
			},
			validate: func(t *testing.T, result SweepResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, SweepResult{Checked: 2, Updated: 2}, result)
			},
		},
		{
			name: "a failed update does not stop the sweep",
			setup: func(repo *mocks.MockInvoiceRepository) {
				repo.EXPECT().ListInvoicesDueBefore(gomock.Any(), domain.InvoiceStatusPending, today).
					Return([]*domain.Invoice{
						{ID: 1, BusinessID: 10, Status: domain.InvoiceStatusPending, DueDate: datePtr(2024, 3, 1)},
						{ID: 2, BusinessID: 10, Status: domain.InvoiceStatusPending, DueDate: datePtr(2024, 3, 2)},
					}, nil)
				repo.EXPECT().UpdateInvoiceStatus(gomock.Any(), int64(10), int64(1), domain.InvoiceStatusOverdue).Return(errors.New("deadlock"))
				repo.EXPECT().UpdateInvoiceStatus(gomock.Any(), int64(10), int64(2), domain.InvoiceStatusOverdue).Return(nil)
			},
			validate: func(t *testing.T, result SweepResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, SweepResult{Checked: 2, Updated: 1, Failed: 1}, result)
			},
		},
		{
			name: "unchanged status is not written",
			setup: func(repo *mocks.MockInvoiceRepository) {
				repo.EXPECT().ListInvoicesDueBefore(gomock.Any(), domain.InvoiceStatusPending, today).
					Return([]*domain.Invoice{
						{ID: 3, BusinessID: 10, Status: domain.InvoiceStatusPending},
					}, nil)
			},
			validate: func(t *testing.T, result SweepResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, SweepResult{Checked: 1}, result)
			},
		},
		{
			name: "list failure",
			setup: func(repo *mocks.MockInvoiceRepository) {
				repo.EXPECT().ListInvoicesDueBefore(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("down"))
			},
			validate: func(t *testing.T, result SweepResult, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockInvoiceRepository(gomock.NewController(t))
			tt.setup(repo)

			service := NewOverdueSweepService(repo, &config.Config{})
			service.now = func() time.Time { return now }

			result, err := service.Sweep(context.Background())

			tt.validate(t, result, err)
			assert.False(t, service.GetStatus()["sync_running"].(bool))
		})
	}
}

func TestOverdueSweepService_StartDisabled(t *testing.T) {
	service := NewOverdueSweepService(nil, &config.Config{})

	assert.NoError(t, service.Start(context.Background()))
	assert.Equal(t, false, service.GetStatus()["sync_enabled"])
}
