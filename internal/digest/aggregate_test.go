package digest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedworks/feedlens/pkg/types"
)

func item(id, theme, urgency string) types.FeedbackItem {
	return types.FeedbackItem{
		ID:        id,
		Source:    "test",
		Text:      "text " + id,
		Timestamp: "2025-06-01T12:00:00Z",
		Urgency:   urgency,
		Sentiment: "neutral",
		Theme:     theme,
		Summary:   "summary " + id,
	}
}

func TestAggregateEmpty(t *testing.T) {
	view := Aggregate(nil)

	assert.Empty(t, view.Urgent)
	assert.Empty(t, view.TopThemes)
	assert.Equal(t, 0, view.Total)
	assert.NotEmpty(t, view.GeneratedAt)
}

func TestAggregateFourDistinctThemes(t *testing.T) {
	items := []types.FeedbackItem{
		item("1", "performance", "high"),
		item("2", "ui", "low"),
		item("3", "bug", "medium"),
		item("4", "feature", "low"),
	}

	view := Aggregate(items)

	require.Len(t, view.Urgent, 1)
	assert.Equal(t, "1", view.Urgent[0].ID)
	assert.Len(t, view.TopThemes, 4, "below the cap, all themes listed")
	assert.Equal(t, 4, view.Total)
}

func TestAggregateTopThemesCapAndTieBreak(t *testing.T) {
	// "bug" appears three times; five other themes appear once each. The
	// cap keeps five entries: bug first, then the single-count themes in
	// first-encountered order, dropping the last-encountered one.
	items := []types.FeedbackItem{
		item("1", "bug", "low"),
		item("2", "performance", "low"),
		item("3", "bug", "low"),
		item("4", "ui", "low"),
		item("5", "feature", "low"),
		item("6", "bug", "low"),
		item("7", "billing", "low"),
		item("8", "docs", "low"),
	}

	view := Aggregate(items)

	require.Len(t, view.TopThemes, 5)
	assert.Equal(t, types.ThemeCount{Theme: "bug", Count: 3}, view.TopThemes[0])
	assert.Equal(t, "performance", view.TopThemes[1].Theme)
	assert.Equal(t, "ui", view.TopThemes[2].Theme)
	assert.Equal(t, "feature", view.TopThemes[3].Theme)
	assert.Equal(t, "billing", view.TopThemes[4].Theme)
	// "docs" was encountered last among the ties and falls off the cap.
	assert.Equal(t, 8, view.Total)
}

func TestAggregateUrgentPreservesInputOrder(t *testing.T) {
	items := []types.FeedbackItem{
		item("newest", "bug", "high"),
		item("middle", "ui", "low"),
		item("older", "bug", "high"),
	}

	view := Aggregate(items)

	require.Len(t, view.Urgent, 2)
	assert.Equal(t, "newest", view.Urgent[0].ID)
	assert.Equal(t, "older", view.Urgent[1].ID)
}

func TestAggregateCountsAllItemsNotJustUrgent(t *testing.T) {
	items := []types.FeedbackItem{
		item("1", "bug", "high"),
		item("2", "bug", "low"),
		item("3", "bug", "medium"),
	}

	view := Aggregate(items)

	require.Len(t, view.TopThemes, 1)
	assert.Equal(t, 3, view.TopThemes[0].Count)
}
