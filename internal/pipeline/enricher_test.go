package pipeline

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedworks/feedlens/pkg/analysis"
	"github.com/feedworks/feedlens/pkg/store"
	"github.com/feedworks/feedlens/pkg/types"
)

// fakeProvider returns canned responses keyed by a substring of the prompt,
// or a fixed response for everything.
type fakeProvider struct {
	response string
	err      error
}

func (f *fakeProvider) Analyze(ctx context.Context, prompt string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeProvider) Name() string { return "fake" }

// failingStore rejects every insert.
type failingStore struct {
	store.Store
}

func (failingStore) Insert(ctx context.Context, item types.FeedbackItem) error {
	return fmt.Errorf("disk on fire")
}

func batch(n int) []types.RawFeedback {
	items := make([]types.RawFeedback, n)
	for i := range items {
		items[i] = types.RawFeedback{
			Source: fmt.Sprintf("source-%d", i),
			Text:   fmt.Sprintf("feedback number %d", i),
		}
	}
	return items
}

func TestEnrichProducesOneItemPerInput(t *testing.T) {
	provider := &fakeProvider{
		response: `{"urgency":"high","sentiment":"negative","theme":"performance","summary":"slow"}`,
	}
	st := store.NewMemory()
	enricher := NewEnricher(provider, st)

	items, err := enricher.Enrich(context.Background(), batch(8))
	require.NoError(t, err)
	require.Len(t, items, 8)

	seen := make(map[string]bool)
	for i, item := range items {
		assert.Equal(t, fmt.Sprintf("source-%d", i), item.Source, "input order preserved")
		assert.Equal(t, "high", item.Urgency)
		assert.Equal(t, "performance", item.Theme)
		assert.NotEmpty(t, item.ID)
		assert.False(t, seen[item.ID], "duplicate id %s", item.ID)
		seen[item.ID] = true
		assert.NotEmpty(t, item.Timestamp)
	}

	count, err := st.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 8, count, "every item persisted")
}

func TestEnrichAbsorbsMalformedResponses(t *testing.T) {
	provider := &fakeProvider{response: "I'm sorry, I can't produce JSON today."}
	st := store.NewMemory()
	enricher := NewEnricher(provider, st)

	items, err := enricher.Enrich(context.Background(), batch(3))
	require.NoError(t, err, "parse failures must not fail the batch")
	require.Len(t, items, 3)

	for _, item := range items {
		assert.Equal(t, analysis.Fallback.Urgency, item.Urgency)
		assert.Equal(t, analysis.Fallback.Sentiment, item.Sentiment)
		assert.Equal(t, analysis.Fallback.Theme, item.Theme)
		assert.Equal(t, analysis.Fallback.Summary, item.Summary)
	}
}

func TestEnrichProviderFaultAbortsBatch(t *testing.T) {
	provider := &fakeProvider{err: fmt.Errorf("connection refused")}
	enricher := NewEnricher(provider, store.NewMemory())

	items, err := enricher.Enrich(context.Background(), batch(4))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Nil(t, items)
}

func TestEnrichStoreFaultAbortsBatch(t *testing.T) {
	provider := &fakeProvider{
		response: `{"urgency":"low","sentiment":"neutral","theme":"general","summary":"ok"}`,
	}
	enricher := NewEnricher(provider, failingStore{})

	_, err := enricher.Enrich(context.Background(), batch(2))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestEnrichEmptyBatch(t *testing.T) {
	enricher := NewEnricher(&fakeProvider{}, store.NewMemory())

	items, err := enricher.Enrich(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, items)
}
