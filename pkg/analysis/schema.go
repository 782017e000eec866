package analysis

// Urgency levels the LLM is asked to choose from.
const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)

// Sentiment labels the LLM is asked to choose from.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Result is the structured analysis extracted from the LLM's response.
type Result struct {
	Urgency   string `json:"urgency"`
	Sentiment string `json:"sentiment"`
	Theme     string `json:"theme"`
	Summary   string `json:"summary"`
}

// Fallback is returned whenever the LLM response cannot be parsed into a
// Result. Keeping it a single named value avoids scattering the magic
// strings across call sites.
var Fallback = Result{
	Urgency:   UrgencyMedium,
	Sentiment: SentimentNeutral,
	Theme:     "general",
	Summary:   "Analysis failed - could not parse AI response",
}

var validUrgencies = map[string]bool{
	UrgencyLow: true, UrgencyMedium: true, UrgencyHigh: true,
}

var validSentiments = map[string]bool{
	SentimentPositive: true, SentimentNegative: true, SentimentNeutral: true,
}

// ValidUrgency reports whether u is one of the known urgency levels.
func ValidUrgency(u string) bool {
	return validUrgencies[u]
}

// ValidSentiment reports whether s is one of the known sentiment labels.
func ValidSentiment(s string) bool {
	return validSentiments[s]
}
