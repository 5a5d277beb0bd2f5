package domain

import "time"

type ContactKind string

const (
	ContactKindCustomer ContactKind = "customer"
	ContactKindSupplier ContactKind = "supplier"
)

// Contact names are not unique within a business.
type Contact struct {
	ID         int64       `json:"id"`
	BusinessID int64       `json:"business_id"`
	Name       string      `json:"name"`
	Kind       ContactKind `json:"type"`
	Phone      *string     `json:"phone"`
	CreatedAt  time.Time   `json:"created_at"`
}
