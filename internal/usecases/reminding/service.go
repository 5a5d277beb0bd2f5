package reminding

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/verity-api/infrastructure/integrator/whatsapp"
	"github.com/vfg2006/verity-api/infrastructure/repository"
	"github.com/vfg2006/verity-api/internal/domain"
	"github.com/vfg2006/verity-api/internal/usecases/extracting"
	"github.com/vfg2006/verity-api/pkg/apiErrors"
)

//go:generate mockgen -source=service.go -destination=mocks/reminder_mock.go -package=mocks
type Reminder interface {
	SendReminder(ctx context.Context, req *domain.SendReminderRequest) (*domain.SendReminderResponse, error)
	ReceiveMessage(ctx context.Context, msg domain.IncomingMessage)
}

type Service struct {
	extractor    extracting.Extractor
	sender       whatsapp.Sender
	businessRepo repository.BusinessRepository
}

func NewService(extractor extracting.Extractor, sender whatsapp.Sender, businessRepo repository.BusinessRepository) *Service {
	return &Service{
		extractor:    extractor,
		sender:       sender,
		businessRepo: businessRepo,
	}
}

// SendReminder drafts the payment reminder and delivers it over WhatsApp. A failed delivery
// is reported in the response, not as an error.
func (s *Service) SendReminder(ctx context.Context, req *domain.SendReminderRequest) (*domain.SendReminderResponse, error) {
	business, err := s.businessRepo.GetBusinessByID(ctx, req.BusinessID)
	if err != nil {
		return nil, NewReminderError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, req.BusinessID, err.Error())
	}
	if business == nil {
		return nil, NewReminderError(ErrBusinessNotFound, apiErrors.ErrBusinessNotFound, req.BusinessID, "")
	}

	draft := s.extractor.DraftReminder(ctx, domain.ReminderContext{
		BusinessName:      business.Name,
		CustomerName:      req.CustomerName,
		InvoiceNumber:     req.InvoiceNumber,
		DueDate:           req.DueDate,
		AmountDue:         req.AmountDue,
		DaysOverdue:       req.DaysOverdue,
		PreferredTone:     req.PreferredTone,
		PreferredLanguage: req.PreferredLanguage,
	})

	delivery := s.sender.Send(ctx, req.CustomerPhone, draft.Message)

	logrus.WithFields(logrus.Fields{
		"business_id": req.BusinessID,
		"invoice":     req.InvoiceNumber,
		"templated":   draft.Templated,
		"delivery":    delivery.Status,
	}).Info("payment reminder processed")

	return &domain.SendReminderResponse{
		Message:  draft.Message,
		Delivery: delivery,
	}, nil
}

// ReceiveMessage records an incoming WhatsApp reply.
func (s *Service) ReceiveMessage(ctx context.Context, msg domain.IncomingMessage) {
	logrus.WithFields(logrus.Fields{
		"from": msg.From,
		"body": msg.Body,
	}).Info("incoming whatsapp message")
}
