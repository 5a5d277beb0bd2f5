package extracting

import (
	"context"
	"fmt"
	"strings"

	"github.com/vfg2006/verity-api/internal/domain"
)

const notAvailable = "N/A"

// OutlinePitchDeck drafts a deck outline from the metrics snapshot.
func (s *Service) OutlinePitchDeck(ctx context.Context, snapshot *domain.MetricsSnapshot) domain.PitchDeckOutline {
	result := s.generate(ctx, taskOutlinePitchDeck, snapshot)
	if !result.OK() {
		fallback(taskOutlinePitchDeck, result.Err)
		outline := OfflineOutline(snapshot)
		outline.Err = result.Err
		return outline
	}

	outline := domain.PitchDeckOutline{
		Title:    str(result.Value["title"]),
		Subtitle: optStr(result.Value["subtitle"]),
		Slides:   []domain.Slide{},
	}
	for _, item := range objects(result.Value["slides"]) {
		title := str(item["title"])
		if title == "" {
			continue
		}
		outline.Slides = append(outline.Slides, domain.Slide{Title: title, Bullets: stringsList(item["bullets"])})
	}

	if outline.Title == "" || len(outline.Slides) == 0 {
		fallback(taskOutlinePitchDeck, ErrIncompleteResult)
		offline := OfflineOutline(snapshot)
		offline.Err = ErrIncompleteResult
		return offline
	}

	return outline
}

// OfflineOutline builds the deck from the snapshot alone.
func OfflineOutline(snapshot *domain.MetricsSnapshot) domain.PitchDeckOutline {
	if snapshot == nil {
		snapshot = &domain.MetricsSnapshot{}
	}

	name := strings.TrimSpace(snapshot.BusinessName)
	if name == "" {
		name = "Business"
	}

	growth := "Revenue growth: data not available"
	if snapshot.RevenueGrowthPercent != nil {
		growth = fmt.Sprintf("Revenue growth (month over month): %.1f%%", *snapshot.RevenueGrowthPercent)
	}

	subtitle := "Demo pitchdeck (offline mode)"
	return domain.PitchDeckOutline{
		Title:    name + " – Financial Overview",
		Subtitle: &subtitle,
		Slides: []domain.Slide{
			{
				Title: "Business Overview",
				Bullets: []string{
					"Industry: " + valueOr(snapshot.Industry, notAvailable),
					"Location: " + valueOr(snapshot.Location, notAvailable),
				},
			},
			{
				Title: "Financial Snapshot",
				Bullets: []string{
					fmt.Sprintf("Revenue (last %d months): ₹%.0f", len(snapshot.WindowMonths), snapshot.TotalInflowWindow),
					fmt.Sprintf("Outflow (last %d months): ₹%.0f", len(snapshot.WindowMonths), snapshot.TotalOutflowWindow),
					growth,
					fmt.Sprintf("Overdue receivables: ₹%.0f", snapshot.OverdueAmount),
				},
			},
		},
	}
}

func valueOr(s *string, def string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return def
	}
	return *s
}
