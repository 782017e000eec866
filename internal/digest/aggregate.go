// Package digest derives summary views over enriched feedback items.
package digest

import (
	"sort"
	"time"

	"github.com/feedworks/feedlens/pkg/analysis"
	"github.com/feedworks/feedlens/pkg/types"
)

// topThemesCap bounds the theme ranking in every digest.
const topThemesCap = 5

// Aggregate builds a DigestView from a batch of items. The input is
// expected pre-sorted most-recent first; the urgent list preserves that
// order. The theme ranking counts ALL items, is sorted by descending count
// with ties kept in first-encountered order, and is capped at five entries.
// An empty batch yields an empty, valid view.
func Aggregate(items []types.FeedbackItem) types.DigestView {
	urgent := []types.FeedbackItem{}
	for _, item := range items {
		if item.Urgency == analysis.UrgencyHigh {
			urgent = append(urgent, item)
		}
	}

	counts := make(map[string]int)
	order := []string{}
	for _, item := range items {
		if _, known := counts[item.Theme]; !known {
			order = append(order, item.Theme)
		}
		counts[item.Theme]++
	}

	topThemes := make([]types.ThemeCount, 0, len(order))
	for _, theme := range order {
		topThemes = append(topThemes, types.ThemeCount{Theme: theme, Count: counts[theme]})
	}
	sort.SliceStable(topThemes, func(i, j int) bool {
		return topThemes[i].Count > topThemes[j].Count
	})
	if len(topThemes) > topThemesCap {
		topThemes = topThemes[:topThemesCap]
	}

	return types.DigestView{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Urgent:      urgent,
		TopThemes:   topThemes,
		Total:       len(items),
	}
}
