package whatsapp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/verity-api/infrastructure/integrator/whatsapp/mocks"
	"github.com/vfg2006/verity-api/infrastructure/integrator/whatsapp/whatsappclient"
	"github.com/vfg2006/verity-api/internal/domain"
)

func TestSend(t *testing.T) {
	t.Run("without client the message is mocked", func(t *testing.T) {
		delivery := New(nil).Send(context.Background(), "+919876543210", "Hi")

		assert.Equal(t, domain.DeliveryMock, delivery.Status)
		assert.Equal(t, "whatsapp:+919876543210", delivery.To)
		require.NotNil(t, delivery.Body)
		assert.Equal(t, "Hi", *delivery.Body)
	})

	t.Run("sent", func(t *testing.T) {
		client := mocks.NewMockClient(gomock.NewController(t))
		client.EXPECT().SendMessage(gomock.Any(), whatsappclient.SendMessageParams{To: "whatsapp:+919876543210", Body: "Hi"}).
			Return(whatsappclient.SendMessageResponse{SID: "SM9", To: "whatsapp:+919876543210"}, nil)

		delivery := New(client).Send(context.Background(), "whatsapp:+919876543210", "Hi")

		assert.Equal(t, domain.DeliverySent, delivery.Status)
		require.NotNil(t, delivery.SID)
		assert.Equal(t, "SM9", *delivery.SID)
	})

	t.Run("client failure becomes an error delivery", func(t *testing.T) {
		client := mocks.NewMockClient(gomock.NewController(t))
		client.EXPECT().SendMessage(gomock.Any(), gomock.Any()).
			Return(whatsappclient.SendMessageResponse{}, errors.New("connection refused"))

		delivery := New(client).Send(context.Background(), "+919876543210", "Hi")

		assert.Equal(t, domain.DeliveryError, delivery.Status)
		require.NotNil(t, delivery.Error)
		assert.Equal(t, "connection refused", *delivery.Error)
	})
}

func TestAddress(t *testing.T) {
	assert.Equal(t, "whatsapp:+1555", Address(" +1555 "))
	assert.Equal(t, "whatsapp:+1555", Address("whatsapp:+1555"))
}
