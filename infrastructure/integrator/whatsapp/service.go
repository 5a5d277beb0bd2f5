package whatsapp

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/verity-api/infrastructure/integrator/whatsapp/whatsappclient"
	"github.com/vfg2006/verity-api/internal/domain"
)

const addressPrefix = "whatsapp:"

//go:generate mockgen -source=service.go -destination=mocks/sender_mock.go -package=mocks
type Sender interface {
	Send(ctx context.Context, to, body string) domain.Delivery
}

type WhatsAppService struct {
	client whatsappclient.Client
}

// New returns a sender backed by client. A nil client logs messages and reports them as mock.
func New(client whatsappclient.Client) Sender {
	return &WhatsAppService{client: client}
}

func (s *WhatsAppService) Send(ctx context.Context, to, body string) domain.Delivery {
	address := Address(to)

	if s.client == nil {
		logrus.WithFields(logrus.Fields{
			"to":   address,
			"body": body,
		}).Info("whatsapp not configured, message not sent")
		return domain.Delivery{Status: domain.DeliveryMock, To: address, Body: &body}
	}

	resp, err := s.client.SendMessage(ctx, whatsappclient.SendMessageParams{To: address, Body: body})
	if err != nil {
		logrus.WithField("to", address).WithError(err).Error("failed to send whatsapp message")
		msg := err.Error()
		return domain.Delivery{Status: domain.DeliveryError, To: address, Error: &msg}
	}

	logrus.WithFields(logrus.Fields{
		"to":  resp.To,
		"sid": resp.SID,
	}).Info("whatsapp message sent")

	sent := domain.Delivery{Status: domain.DeliverySent, To: address, SID: &resp.SID}
	if resp.To != "" {
		sent.To = resp.To
	}
	return sent
}

// Address prefixes an E.164 number with the whatsapp channel unless it already has it.
func Address(phone string) string {
	phone = strings.TrimSpace(phone)
	if strings.HasPrefix(phone, addressPrefix) {
		return phone
	}
	return addressPrefix + phone
}
