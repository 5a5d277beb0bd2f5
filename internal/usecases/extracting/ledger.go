package extracting

import (
	"context"
	"strings"

	"github.com/vfg2006/verity-api/internal/domain"
)

func defaultLedgerMatch(err error) domain.LedgerMatch {
	return domain.LedgerMatch{
		Degradation:  domain.Degradation{Err: err},
		ContactMatch: domain.ContactMatch{MatchType: domain.MatchNew, Confidence: 0},
		InvoiceMatch: domain.InvoiceMatch{MatchType: domain.MatchNone},
	}
}

// MatchLedger suggests the contact and open invoice a transaction belongs to.
// Ids that are not part of the snapshot are discarded.
func (s *Service) MatchLedger(ctx context.Context, tx domain.ParsedTransaction, snapshot domain.LedgerSnapshot) domain.LedgerMatch {
	result := s.generate(ctx, taskMatchLedger, map[string]any{
		"transaction": tx,
		"snapshot":    snapshot,
	})
	if !result.OK() {
		fallback(taskMatchLedger, result.Err)
		return defaultLedgerMatch(result.Err)
	}

	contacts := make(map[int64]*domain.Contact, len(snapshot.Contacts))
	for _, c := range snapshot.Contacts {
		contacts[c.ID] = c
	}
	invoices := make(map[int64]bool, len(snapshot.Invoices))
	for _, inv := range snapshot.Invoices {
		invoices[inv.ID] = true
	}

	match := defaultLedgerMatch(nil)

	contactMatch := object(result.Value["contact_match"])
	match.ContactMatch.MatchType = enum(contactMatch["match_type"], domain.MatchNew,
		domain.MatchExact, domain.MatchFuzzy, domain.MatchNew)
	match.ContactMatch.Confidence = clamp01(contactMatch["confidence"])
	match.ContactMatch.ContactName = optStr(contactMatch["contact_name"])

	if id := optID(contactMatch["contact_id"]); id != nil {
		if contact, ok := contacts[*id]; ok {
			match.ContactMatch.ContactID = id
			name := contact.Name
			match.ContactMatch.ContactName = &name
		}
	}
	switch {
	case match.ContactMatch.ContactID == nil:
		match.ContactMatch.MatchType = domain.MatchNew
	case match.ContactMatch.MatchType == domain.MatchNew:
		match.ContactMatch.MatchType = domain.MatchFuzzy
	}
	if match.ContactMatch.ContactName == nil && tx.CounterpartyName != nil {
		name := strings.TrimSpace(*tx.CounterpartyName)
		match.ContactMatch.ContactName = &name
	}

	invoiceMatch := object(result.Value["invoice_match"])
	defaultInvoiceType := domain.MatchNone
	if boolean(invoiceMatch["matched"]) {
		defaultInvoiceType = domain.MatchExact
	}
	match.InvoiceMatch.MatchType = enum(invoiceMatch["match_type"], defaultInvoiceType,
		domain.MatchExact, domain.MatchFuzzy, domain.MatchNone)

	if id := optID(invoiceMatch["invoice_id"]); id != nil && invoices[*id] {
		match.InvoiceMatch.InvoiceID = id
	}
	if match.InvoiceMatch.InvoiceID == nil {
		match.InvoiceMatch.MatchType = domain.MatchNone
	}

	return match
}

// Categorize assigns a bookkeeping category to a transaction description.
func (s *Service) Categorize(ctx context.Context, input domain.CategorizationInput) domain.Categorization {
	result := s.generate(ctx, taskCategorize, input)
	if !result.OK() {
		fallback(taskCategorize, result.Err)
		return domain.Categorization{
			Degradation: domain.Degradation{Err: result.Err},
			Category:    domain.DefaultCategory,
			SubCategory: domain.DefaultCategory,
		}
	}

	v := result.Value
	categorization := domain.Categorization{
		Category:    strings.ToLower(str(v["category"])),
		SubCategory: strings.ToLower(str(first(v, "sub_category", "subcategory"))),
		TaxCode:     optStr(v["tax_code"]),
		IsRecurring: boolean(v["is_recurring"]),
		Confidence:  clamp01(v["confidence"]),
	}
	if categorization.Category == "" {
		categorization.Category = domain.DefaultCategory
	}
	if categorization.SubCategory == "" {
		categorization.SubCategory = domain.DefaultCategory
	}

	return categorization
}
