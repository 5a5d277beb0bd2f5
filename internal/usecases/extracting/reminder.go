package extracting

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vfg2006/verity-api/internal/domain"
	"github.com/vfg2006/verity-api/pkg/utils"
)

var (
	ErrMissingMessage   = errors.New("model returned no message")
	ErrIncompleteResult = errors.New("model result is missing required fields")
)

const (
	ToneFriendly = "friendly"
	ToneFirm     = "firm"
	ToneUrgent   = "urgent"
)

// DraftReminder writes a payment reminder. The result always has a non-empty message:
// when the model fails or omits it, a local template is used.
func (s *Service) DraftReminder(ctx context.Context, rc domain.ReminderContext) domain.ReminderText {
	if rc.PreferredTone == "" {
		rc.PreferredTone = ToneFriendly
	}
	if rc.PreferredLanguage == "" {
		rc.PreferredLanguage = "English"
	}
	if rc.DaysOverdue == nil {
		rc.DaysOverdue = s.daysOverdue(rc.DueDate)
	}

	result := s.generate(ctx, taskDraftReminder, rc)

	err := result.Err
	if err == nil {
		if message := str(result.Value["message"]); message != "" {
			return domain.ReminderText{Message: message}
		}
		err = ErrMissingMessage
	}

	fallback(taskDraftReminder, err)
	return domain.ReminderText{
		Degradation: domain.Degradation{Err: err},
		Message:     ReminderTemplate(rc),
		Templated:   true,
	}
}

func (s *Service) daysOverdue(dueDate string) *int {
	due, err := utils.ParseDate(dueDate)
	if err != nil || due == nil {
		return nil
	}

	days := int(utils.StartOfDay(s.now()).Sub(utils.StartOfDay(*due)).Hours() / 24)
	if days <= 0 {
		return nil
	}
	return &days
}

// ReminderTemplate renders the deterministic reminder. The customer name and the
// amount appear exactly as given.
func ReminderTemplate(rc domain.ReminderContext) string {
	var b strings.Builder

	switch strings.ToLower(rc.PreferredTone) {
	case ToneUrgent:
		fmt.Fprintf(&b, "URGENT: %s, ", rc.CustomerName)
	case ToneFirm:
		fmt.Fprintf(&b, "Dear %s, ", rc.CustomerName)
	default:
		fmt.Fprintf(&b, "Hi %s, ", rc.CustomerName)
	}

	business := strings.TrimSpace(rc.BusinessName)
	if business == "" {
		business = "us"
	}
	fmt.Fprintf(&b, "this is a reminder from %s that ", business)

	if invoice := strings.TrimSpace(rc.InvoiceNumber); invoice != "" {
		fmt.Fprintf(&b, "invoice %s ", invoice)
	} else {
		b.WriteString("your payment ")
	}
	fmt.Fprintf(&b, "for ₹%s", FormatAmount(rc.AmountDue))

	if due := strings.TrimSpace(rc.DueDate); due != "" {
		fmt.Fprintf(&b, " was due on %s", due)
	} else {
		b.WriteString(" is pending")
	}
	if rc.DaysOverdue != nil && *rc.DaysOverdue > 0 {
		fmt.Fprintf(&b, " (%d days overdue)", *rc.DaysOverdue)
	}
	b.WriteString(". ")

	switch strings.ToLower(rc.PreferredTone) {
	case ToneUrgent:
		b.WriteString("Please clear the payment today to avoid further action.")
	case ToneFirm:
		b.WriteString("Please settle the amount at the earliest.")
	default:
		b.WriteString("Please arrange the payment when convenient. Thank you!")
	}

	return b.String()
}

// FormatAmount prints two decimals unless the value carries more precision, so the
// shortest representation of the amount is always a prefix of the output.
func FormatAmount(v float64) string {
	if math.Round(v*100)/100 == v {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
