package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCleanJSON(t *testing.T) {
	result := Normalize(`{"urgency":"high","sentiment":"negative","theme":"performance","summary":"x"}`)

	assert.Equal(t, Result{
		Urgency:   "high",
		Sentiment: "negative",
		Theme:     "performance",
		Summary:   "x",
	}, result)
}

func TestNormalizeJSONWrappedInProse(t *testing.T) {
	result := Normalize(`Sure! Here you go: {"urgency":"low","sentiment":"positive","theme":"ui","summary":"nice"}`)

	assert.Equal(t, "low", result.Urgency)
	assert.Equal(t, "positive", result.Sentiment)
	assert.Equal(t, "ui", result.Theme)
	assert.Equal(t, "nice", result.Summary)
}

func TestNormalizeGarbageReturnsFallback(t *testing.T) {
	result := Normalize("not json at all")

	assert.Equal(t, Fallback, result)
}

func TestNormalizeNeverFails(t *testing.T) {
	inputs := []string{
		"",
		"null",
		"42",
		`"just a string"`,
		"{",
		"}{",
		"{broken json}",
		"prose before {still broken} prose after",
		"```json\n{\"urgency\":\"high\",\"sentiment\":\"negative\",\"theme\":\"bug\",\"summary\":\"s\"}\n```",
	}

	for _, input := range inputs {
		result := Normalize(input)
		require.NotEmpty(t, result.Urgency, "input %q", input)
		require.NotEmpty(t, result.Sentiment, "input %q", input)
	}
}

func TestNormalizeFencedJSONExtracted(t *testing.T) {
	// Markdown code fences are prose as far as the parser is concerned;
	// the embedded object should still come out.
	result := Normalize("```json\n{\"urgency\":\"medium\",\"sentiment\":\"neutral\",\"theme\":\"billing\",\"summary\":\"invoice q\"}\n```")

	assert.Equal(t, "billing", result.Theme)
	assert.Equal(t, "invoice q", result.Summary)
}

func TestNormalizeAcceptsOutOfEnumValues(t *testing.T) {
	// A parsed object is taken at face value even when its fields are not
	// in the enumerations. Documented behavior, not an accident.
	result := Normalize(`{"urgency":"urgent","sentiment":"angry","theme":"bug","summary":"s"}`)

	assert.Equal(t, "urgent", result.Urgency)
	assert.False(t, ValidUrgency(result.Urgency))
	assert.False(t, ValidSentiment(result.Sentiment))
}

func TestValidators(t *testing.T) {
	assert.True(t, ValidUrgency(UrgencyLow))
	assert.True(t, ValidUrgency(UrgencyMedium))
	assert.True(t, ValidUrgency(UrgencyHigh))
	assert.False(t, ValidUrgency("critical"))

	assert.True(t, ValidSentiment(SentimentPositive))
	assert.True(t, ValidSentiment(SentimentNegative))
	assert.True(t, ValidSentiment(SentimentNeutral))
	assert.False(t, ValidSentiment("mixed"))
}
