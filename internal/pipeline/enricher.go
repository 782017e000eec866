// Package pipeline turns raw feedback into persisted, enriched records.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/feedworks/feedlens/pkg/analysis"
	"github.com/feedworks/feedlens/pkg/llm"
	"github.com/feedworks/feedlens/pkg/store"
	"github.com/feedworks/feedlens/pkg/types"
)

// Enricher runs the per-item enrichment fan-out: prompt the LLM, normalize
// its response, stamp identity and time, persist.
type Enricher struct {
	provider llm.Provider
	store    store.Store
}

// NewEnricher creates a new enricher
func NewEnricher(provider llm.Provider, st store.Store) *Enricher {
	return &Enricher{
		provider: provider,
		store:    st,
	}
}

// Enrich processes every item concurrently and returns once all items are
// done. Results keep the input order regardless of completion order.
//
// A malformed LLM response is not an error: normalization resolves it to the
// schema fallback. A provider transport fault or a store write fault is
// fatal to the whole batch; items already inserted by sibling tasks stay in
// the store (best effort, no rollback).
func (e *Enricher) Enrich(ctx context.Context, items []types.RawFeedback) ([]types.FeedbackItem, error) {
	enriched := make([]types.FeedbackItem, len(items))

	g, gctx := errgroup.WithContext(ctx)
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			result, err := e.enrichOne(gctx, item)
			if err != nil {
				return err
			}
			enriched[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return enriched, nil
}

// Analyze runs the same fan-out as Enrich but does not persist anything.
// Used by the ad-hoc analyze endpoint.
func (e *Enricher) Analyze(ctx context.Context, items []types.RawFeedback) ([]types.FeedbackItem, error) {
	analyzed := make([]types.FeedbackItem, len(items))

	g, gctx := errgroup.WithContext(ctx)
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			result, err := e.analyzeOne(gctx, item)
			if err != nil {
				return err
			}
			analyzed[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return analyzed, nil
}

// enrichOne analyzes and persists a single feedback item
func (e *Enricher) enrichOne(ctx context.Context, raw types.RawFeedback) (types.FeedbackItem, error) {
	item, err := e.analyzeOne(ctx, raw)
	if err != nil {
		return types.FeedbackItem{}, err
	}

	if err := e.store.Insert(ctx, item); err != nil {
		return types.FeedbackItem{}, fmt.Errorf("failed to store feedback item %s: %w", item.ID, err)
	}

	return item, nil
}

// analyzeOne builds the prompt, calls the LLM and assembles a fully-formed
// item with a fresh id and timestamp. Parse failures are absorbed by the
// normalizer; only transport faults come back as errors.
func (e *Enricher) analyzeOne(ctx context.Context, raw types.RawFeedback) (types.FeedbackItem, error) {
	prompt := llm.BuildAnalysisPrompt(raw.Text)

	response, err := e.provider.Analyze(ctx, prompt)
	if err != nil {
		return types.FeedbackItem{}, fmt.Errorf("failed to analyze feedback from %s: %w", raw.Source, err)
	}

	result := analysis.Normalize(response)
	if result == analysis.Fallback {
		log.Printf("Could not parse analysis for %q, using fallback", raw.Source)
	}

	return types.FeedbackItem{
		ID:        uuid.New().String(),
		Source:    raw.Source,
		Text:      raw.Text,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Urgency:   result.Urgency,
		Sentiment: result.Sentiment,
		Theme:     result.Theme,
		Summary:   result.Summary,
	}, nil
}
