package domain

import "time"

type Direction string

const (
	DirectionInflow  Direction = "inflow"
	DirectionOutflow Direction = "outflow"
)

type Source string

const (
	SourceManual   Source = "manual"
	SourceWhatsApp Source = "whatsapp"
	SourceSMS      Source = "sms"
	SourceEmail    Source = "email"
	SourceCSV      Source = "csv"
)

// Transactions are immutable once stored; corrections are new transactions.
type Transaction struct {
	ID         int64     `json:"id"`
	BusinessID int64     `json:"business_id"`
	InvoiceID  *int64    `json:"invoice_id"`
	Direction  Direction `json:"direction"`
	Amount     float64   `json:"amount"`
	Currency   string    `json:"currency"`
	Method     string    `json:"method"`
	Category   string    `json:"category"`
	Date       time.Time `json:"date"`
	RawText    *string   `json:"raw_text"`
	Source     Source    `json:"source"`
	CreatedAt  time.Time `json:"created_at"`
}

type RawEvent struct {
	ID         int64     `json:"id"`
	BusinessID int64     `json:"business_id"`
	Source     Source    `json:"source"`
	RawText    string    `json:"raw_text"`
	CreatedAt  time.Time `json:"created_at"`
}
