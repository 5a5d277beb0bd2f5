package domain

import "time"

type InvoiceKind string

const (
	InvoiceKindReceivable InvoiceKind = "receivable"
	InvoiceKindPayable    InvoiceKind = "payable"
)

type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

type Invoice struct {
	ID          int64         `json:"id"`
	BusinessID  int64         `json:"business_id"`
	ContactID   *int64        `json:"contact_id"`
	Number      *string       `json:"invoice_number"`
	Amount      float64       `json:"amount"`
	Kind        InvoiceKind   `json:"type"`
	Status      InvoiceStatus `json:"status"`
	DueDate     *time.Time    `json:"due_date"`
	Description *string       `json:"description"`
	CreatedAt   time.Time     `json:"created_at"`
}

// InvoiceKindFor maps a transaction direction to the invoice side it settles.
func InvoiceKindFor(direction Direction) InvoiceKind {
	if direction == DirectionOutflow {
		return InvoiceKindPayable
	}
	return InvoiceKindReceivable
}
