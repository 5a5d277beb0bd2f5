package domain

type DeliveryStatus string

const (
	DeliveryMock  DeliveryStatus = "mock"
	DeliverySent  DeliveryStatus = "sent"
	DeliveryError DeliveryStatus = "error"
)

// Delivery is the outcome of one outbound message. Failures are reported here, never raised.
type Delivery struct {
	Status DeliveryStatus `json:"status"`
	To     string         `json:"to"`
	SID    *string        `json:"sid,omitempty"`
	Body   *string        `json:"body,omitempty"`
	Error  *string        `json:"error,omitempty"`
}

type SendReminderRequest struct {
	BusinessID        int64   `json:"business_id" validate:"required,gt=0"`
	CustomerName      string  `json:"customer_name" validate:"required"`
	CustomerPhone     string  `json:"customer_phone" validate:"required,e164|startswith=whatsapp:+"`
	InvoiceNumber     string  `json:"invoice_number" validate:"required"`
	AmountDue         float64 `json:"amount_due" validate:"gte=0"`
	DueDate           string  `json:"due_date" validate:"required"`
	DaysOverdue       *int    `json:"days_overdue"`
	PreferredTone     string  `json:"preferred_tone"`
	PreferredLanguage string  `json:"preferred_language"`
}

type SendReminderResponse struct {
	Message  string   `json:"message"`
	Delivery Delivery `json:"delivery"`
}

// IncomingMessage is a message received on the WhatsApp webhook.
type IncomingMessage struct {
	From string
	Body string
}
