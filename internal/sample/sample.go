// Package sample holds the built-in feedback batch used for seeding and the
// pre-enriched items served when the store is empty or unreachable.
package sample

import "github.com/feedworks/feedlens/pkg/types"

// SeedBatch returns the raw feedback used by the seed endpoint.
func SeedBatch() []types.RawFeedback {
	return []types.RawFeedback{
		{
			Source: "Support Ticket",
			Text:   "The dashboard is failing to load when I try to view analytics data for the past hour.",
		},
		{
			Source: "Twitter/X",
			Text:   "Just discovered your product and I'm loving it! The UI is so intuitive and clean.",
		},
		{
			Source: "GitHub Issue",
			Text:   "Bug: The export functionality fails when trying to download CSV files with special characters.",
		},
		{
			Source: "Community Forum",
			Text:   "Would be great to have dark mode support. My eyes get tired during late night coding sessions.",
		},
	}
}

// MockItems returns pre-enriched items for read paths when no stored data is
// available. The analyses here were produced once and frozen so local
// development works without a database or an LLM.
func MockItems() []types.FeedbackItem {
	return []types.FeedbackItem{
		{
			ID:        "1",
			Source:    "Support Ticket",
			Text:      "The dashboard is failing to load when I try to view analytics data for the past hour.",
			Timestamp: "2025-01-23T20:00:00.000Z",
			Urgency:   "high",
			Sentiment: "negative",
			Theme:     "performance",
			Summary:   "Dashboard performance issues with analytics loading",
		},
		{
			ID:        "2",
			Source:    "Twitter/X",
			Text:      "Just discovered your product and I'm loving it! The UI is so intuitive and clean.",
			Timestamp: "2025-01-23T20:01:00.000Z",
			Urgency:   "low",
			Sentiment: "positive",
			Theme:     "UI",
			Summary:   "Positive feedback on UI design and intuitiveness",
		},
		{
			ID:        "3",
			Source:    "GitHub Issue",
			Text:      "Bug: The export functionality fails when trying to download CSV files with special characters.",
			Timestamp: "2025-01-23T20:02:00.000Z",
			Urgency:   "medium",
			Sentiment: "negative",
			Theme:     "bug",
			Summary:   "CSV export fails with special characters",
		},
		{
			ID:        "4",
			Source:    "Community Forum",
			Text:      "Would be great to have dark mode support. My eyes get tired during late night coding sessions.",
			Timestamp: "2025-01-23T20:03:00.000Z",
			Urgency:   "low",
			Sentiment: "neutral",
			Theme:     "feature",
			Summary:   "Request for dark mode feature",
		},
	}
}
