package utils

import (
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var dateLayouts = []string{
	DateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"02/01/2006",
}

// ParseDate accepts a plain date, an RFC3339 timestamp or a dd/mm/yyyy date.
// An empty string yields nil.
func ParseDate(dateStr string) (*time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return nil, nil
	}

	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, dateStr); err == nil {
			return &date, nil
		}
	}

	return nil, fmt.Errorf("unsupported date format: %q", dateStr)
}

// MonthKey buckets a time into its YYYY-MM calendar month (UTC).
func MonthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}

// StartOfDay truncates t to midnight UTC.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
