package reminding

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	wamocks "github.com/vfg2006/verity-api/infrastructure/integrator/whatsapp/mocks"
	repomocks "github.com/vfg2006/verity-api/infrastructure/repository/mocks"
	"github.com/vfg2006/verity-api/internal/domain"
	extractmocks "github.com/vfg2006/verity-api/internal/usecases/extracting/mocks"
)

func request() *domain.SendReminderRequest {
	return &domain.SendReminderRequest{
		BusinessID:    1,
		CustomerName:  "Ramesh",
		CustomerPhone: "+919876543210",
		InvoiceNumber: "INV-7",
		AmountDue:     4500,
		DueDate:       "2024-03-01",
	}
}

func TestSendReminder(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(e *extractmocks.MockExtractor, s *wamocks.MockSender, b *repomocks.MockBusinessRepository)
		validate func(t *testing.T, resp *domain.SendReminderResponse, err error)
	}{
		{
			name: "drafts with the stored business name and sends",
			setup: func(e *extractmocks.MockExtractor, s *wamocks.MockSender, b *repomocks.MockBusinessRepository) {
				b.EXPECT().GetBusinessByID(gomock.Any(), int64(1)).Return(&domain.Business{ID: 1, Name: "Sharma Traders"}, nil)
				e.EXPECT().DraftReminder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, rc domain.ReminderContext) domain.ReminderText {
						assert.Equal(t, "Sharma Traders", rc.BusinessName)
						assert.Equal(t, "Ramesh", rc.CustomerName)
						assert.Equal(t, 4500.0, rc.AmountDue)
						return domain.ReminderText{Message: "Hi Ramesh, ₹4500.00 is due."}
					})
				s.EXPECT().Send(gomock.Any(), "+919876543210", "Hi Ramesh, ₹4500.00 is due.").
					Return(domain.Delivery{Status: domain.DeliveryMock, To: "whatsapp:+919876543210"})
			},
			validate: func(t *testing.T, resp *domain.SendReminderResponse, err error) {
				require.NoError(t, err)
				assert.Equal(t, "Hi Ramesh, ₹4500.00 is due.", resp.Message)
				assert.Equal(t, domain.DeliveryMock, resp.Delivery.Status)
			},
		},
		{
			name: "delivery errors are returned in the response",
			setup: func(e *extractmocks.MockExtractor, s *wamocks.MockSender, b *repomocks.MockBusinessRepository) {
				b.EXPECT().GetBusinessByID(gomock.Any(), int64(1)).Return(&domain.Business{ID: 1, Name: "Sharma Traders"}, nil)
				e.EXPECT().DraftReminder(gomock.Any(), gomock.Any()).Return(domain.ReminderText{Message: "msg", Templated: true})
				failure := "invalid number"
				s.EXPECT().Send(gomock.Any(), gomock.Any(), "msg").
					Return(domain.Delivery{Status: domain.DeliveryError, Error: &failure})
			},
			validate: func(t *testing.T, resp *domain.SendReminderResponse, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.DeliveryError, resp.Delivery.Status)
			},
		},
		{
			name: "unknown business",
			setup: func(e *extractmocks.MockExtractor, s *wamocks.MockSender, b *repomocks.MockBusinessRepository) {
				b.EXPECT().GetBusinessByID(gomock.Any(), int64(1)).Return(nil, nil)
			},
			validate: func(t *testing.T, resp *domain.SendReminderResponse, err error) {
				assert.Nil(t, resp)
				assert.ErrorIs(t, err, ErrBusinessNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			e := extractmocks.NewMockExtractor(ctrl)
			s := wamocks.NewMockSender(ctrl)
			b := repomocks.NewMockBusinessRepository(ctrl)
			tt.setup(e, s, b)

			resp, err := NewService(e, s, b).SendReminder(context.Background(), request())

			tt.validate(t, resp, err)
		})
	}
}
