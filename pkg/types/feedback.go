package types

// RawFeedback is a single piece of user feedback before enrichment.
// It is ephemeral: only the enriched FeedbackItem is ever persisted.
type RawFeedback struct {
	Source string `json:"source"`
	Text   string `json:"text"`
}

// FeedbackItem is an enriched feedback record as stored in the database.
// Items are created once at enrichment time and never mutated; corrections
// require a new record.
type FeedbackItem struct {
	ID        string `json:"id"`
	Source    string `json:"source"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"` // RFC 3339 UTC instant
	Urgency   string `json:"urgency"`
	Sentiment string `json:"sentiment"`
	Theme     string `json:"theme"`
	Summary   string `json:"summary"`
}

// ThemeCount is one entry of the digest's theme ranking.
type ThemeCount struct {
	Theme string `json:"theme"`
	Count int    `json:"count"`
}

// DigestView is a point-in-time summary over a batch of feedback items.
// It is recomputed on every request and never stored.
type DigestView struct {
	GeneratedAt string         `json:"date"`
	Urgent      []FeedbackItem `json:"urgent"`
	TopThemes   []ThemeCount   `json:"topThemes"`
	Total       int            `json:"total"`
}

// SeedResult reports the outcome of a seed request.
type SeedResult struct {
	Seeded bool `json:"seeded"`
	Count  int  `json:"count"`
}
