package extracting

import (
	"context"
	"errors"
	"strings"

	"github.com/vfg2006/verity-api/internal/domain"
)

const sampleRowLimit = 5

var ErrNoHeaders = errors.New("no headers")

// Header synonyms used when the model is unavailable or leaves a field unmapped.
var columnSynonyms = map[string][]string{
	domain.ColumnDate:         {"date", "txn date", "transaction date", "value date", "posting date", "posted", "created"},
	domain.ColumnAmount:       {"amount", "amt", "amount (inr)", "value", "total", "net amount"},
	domain.ColumnDescription:  {"description", "narration", "details", "particulars", "remarks", "memo", "note"},
	domain.ColumnDirection:    {"type", "direction", "dr/cr", "cr/dr", "credit/debit", "transaction type", "txn type"},
	domain.ColumnCounterparty: {"counterparty", "party", "customer", "vendor", "supplier", "payee", "payer", "name"},
}

// MapColumns finds which source header holds each canonical field.
func (s *Service) MapColumns(ctx context.Context, headers []string, sampleRows []map[string]string) domain.ColumnMapping {
	if len(headers) == 0 {
		fallback(taskMapColumns, ErrNoHeaders)
		return domain.ColumnMapping{Degradation: domain.Degradation{Err: ErrNoHeaders}}
	}

	if len(sampleRows) > sampleRowLimit {
		sampleRows = sampleRows[:sampleRowLimit]
	}

	result := s.generate(ctx, taskMapColumns, map[string]any{
		"headers":     headers,
		"sample_rows": sampleRows,
	})
	if !result.OK() {
		fallback(taskMapColumns, result.Err)
		mapping := heuristicMapping(headers)
		mapping.Err = result.Err
		return mapping
	}

	known := make(map[string]string, len(headers))
	for _, h := range headers {
		known[strings.ToLower(strings.TrimSpace(h))] = h
	}
	pick := func(v any) *string {
		name := optStr(v)
		if name == nil {
			return nil
		}
		if header, ok := known[strings.ToLower(*name)]; ok {
			return &header
		}
		return nil
	}

	v := result.Value
	mapping := domain.ColumnMapping{
		DateColumn:         pick(v["date_column"]),
		AmountColumn:       pick(v["amount_column"]),
		DescriptionColumn:  pick(v["description_column"]),
		TypeColumn:         pick(v["type_column"]),
		CounterpartyColumn: pick(v["counterparty_column"]),
	}

	return fillFromHeuristic(mapping, headers)
}

func heuristicMapping(headers []string) domain.ColumnMapping {
	return fillFromHeuristic(domain.ColumnMapping{}, headers)
}

func fillFromHeuristic(mapping domain.ColumnMapping, headers []string) domain.ColumnMapping {
	used := make(map[string]bool)
	for _, source := range mapping.Fields() {
		used[source] = true
	}

	guess := func(current *string, canonical string) *string {
		if current != nil {
			return current
		}
		for _, synonym := range columnSynonyms[canonical] {
			for _, h := range headers {
				if used[h] || strings.ToLower(strings.TrimSpace(h)) != synonym {
					continue
				}
				header := h
				used[h] = true
				return &header
			}
		}
		return nil
	}

	mapping.DateColumn = guess(mapping.DateColumn, domain.ColumnDate)
	mapping.AmountColumn = guess(mapping.AmountColumn, domain.ColumnAmount)
	mapping.DescriptionColumn = guess(mapping.DescriptionColumn, domain.ColumnDescription)
	mapping.TypeColumn = guess(mapping.TypeColumn, domain.ColumnDirection)
	mapping.CounterpartyColumn = guess(mapping.CounterpartyColumn, domain.ColumnCounterparty)

	return mapping
}

// RemapRow re-keys a row to canonical field names. Columns that are not mapped pass
// through under their original name.
func RemapRow(mapping domain.ColumnMapping, row map[string]string) map[string]string {
	fields := mapping.Fields()
	sources := make(map[string]bool, len(fields))
	out := make(map[string]string, len(row))

	for _, source := range fields {
		sources[source] = true
	}
	for column, value := range row {
		if !sources[column] {
			out[column] = value
		}
	}
	for canonical, source := range fields {
		if value, ok := row[source]; ok {
			out[canonical] = value
		}
	}

	return out
}
