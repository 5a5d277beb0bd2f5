package extracting

import (
	"context"
	"errors"
	"strings"

	"github.com/vfg2006/verity-api/internal/domain"
)

var ErrEmptyInput = errors.New("empty input")

func defaultParsedTransaction(err error) domain.ParsedTransaction {
	return domain.ParsedTransaction{
		Degradation: domain.Degradation{Err: err},
		Direction:   domain.DirectionInflow,
		Amount:      0,
		Currency:    domain.DefaultCurrency,
		Method:      domain.MethodOther,
		Category:    domain.DefaultCategory,
		Invoice:     domain.InvoiceReference{HasInvoice: false},
	}
}

// ParseTransaction extracts a bookkeeping entry from a free text message.
func (s *Service) ParseTransaction(ctx context.Context, rawText string) domain.ParsedTransaction {
	if strings.TrimSpace(rawText) == "" {
		fallback(taskParseTransaction, ErrEmptyInput)
		return defaultParsedTransaction(ErrEmptyInput)
	}

	result := s.generate(ctx, taskParseTransaction, rawText)
	if !result.OK() {
		fallback(taskParseTransaction, result.Err)
		return defaultParsedTransaction(result.Err)
	}

	return normalizeParsedTransaction(result.Value)
}

func normalizeParsedTransaction(v map[string]any) domain.ParsedTransaction {
	parsed := defaultParsedTransaction(nil)

	parsed.Direction = enum(v["direction"], domain.DirectionInflow, domain.DirectionInflow, domain.DirectionOutflow)
	parsed.Amount = amount(v["amount"])
	parsed.Method = enum(v["method"], domain.MethodOther,
		domain.MethodUPI, domain.MethodPOS, domain.MethodCash, domain.MethodBank, domain.MethodOther)
	parsed.CounterpartyName = optStr(first(v, "counterparty_name", "counterparty"))
	parsed.Notes = optStr(v["notes"])
	parsed.Date = date(v["date"])

	if currency := strings.ToUpper(str(v["currency"])); len(currency) == 3 {
		parsed.Currency = currency
	}
	if category := strings.ToLower(str(v["category"])); category != "" {
		parsed.Category = category
	}

	invoice := object(v["invoice"])
	parsed.Invoice = domain.InvoiceReference{
		HasInvoice:    boolean(invoice["has_invoice"]),
		InvoiceNumber: optStr(invoice["invoice_number"]),
		DueDate:       date(invoice["due_date"]),
	}

	return parsed
}
