package extracting

import (
	"context"
	"strings"

	"github.com/vfg2006/verity-api/internal/domain"
)

// ParseInvoice extracts header fields and line items from OCR text.
// Missing header fields stay nil and Items is never nil.
func (s *Service) ParseInvoice(ctx context.Context, ocrText string) domain.ParsedInvoice {
	if strings.TrimSpace(ocrText) == "" {
		fallback(taskParseInvoice, ErrEmptyInput)
		return domain.ParsedInvoice{Degradation: domain.Degradation{Err: ErrEmptyInput}, Items: []domain.InvoiceItem{}}
	}

	result := s.generate(ctx, taskParseInvoice, ocrText)
	if !result.OK() {
		fallback(taskParseInvoice, result.Err)
		return domain.ParsedInvoice{Degradation: domain.Degradation{Err: result.Err}, Items: []domain.InvoiceItem{}}
	}

	v := result.Value
	parsed := domain.ParsedInvoice{
		InvoiceNumber: optStr(v["invoice_number"]),
		Seller:        optStr(v["seller"]),
		Buyer:         optStr(v["buyer"]),
		TotalAmount:   amount(first(v, "total_amount", "total")),
		DueDate:       date(v["due_date"]),
		IssueDate:     date(v["issue_date"]),
		Items:         []domain.InvoiceItem{},
	}

	for _, item := range objects(v["items"]) {
		name := str(first(item, "name", "description"))
		if name == "" {
			continue
		}
		parsed.Items = append(parsed.Items, domain.InvoiceItem{
			Name:   name,
			Amount: amount(first(item, "amount", "total")),
		})
	}

	return parsed
}
