// Package seeder populates an empty store with the built-in feedback batch.
package seeder

import (
	"context"
	"fmt"
	"log"

	"github.com/feedworks/feedlens/internal/pipeline"
	"github.com/feedworks/feedlens/internal/sample"
	"github.com/feedworks/feedlens/pkg/store"
	"github.com/feedworks/feedlens/pkg/types"
)

// Seeder runs the enrichment pipeline over the sample batch, at most once.
type Seeder struct {
	store    store.Store
	enricher *pipeline.Enricher
}

// NewSeeder creates a new seeder
func NewSeeder(st store.Store, enricher *pipeline.Enricher) *Seeder {
	return &Seeder{
		store:    st,
		enricher: enricher,
	}
}

// ShouldSeed reports whether the store is still empty. This is a coarse
// check-then-act guard: two concurrent seed requests can both pass it and
// seed twice. Good enough for a manually-triggered endpoint.
func (s *Seeder) ShouldSeed(ctx context.Context) (bool, error) {
	count, err := s.store.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check existing feedback: %w", err)
	}
	return count == 0, nil
}

// Seed enriches and stores the sample batch unless the store already holds
// data. The returned SeedResult reports whether seeding ran and how many
// items the store gained or already had.
func (s *Seeder) Seed(ctx context.Context) (types.SeedResult, error) {
	shouldSeed, err := s.ShouldSeed(ctx)
	if err != nil {
		return types.SeedResult{}, err
	}

	if !shouldSeed {
		count, err := s.store.Count(ctx)
		if err != nil {
			return types.SeedResult{}, fmt.Errorf("failed to count existing feedback: %w", err)
		}
		log.Printf("Store already seeded with %d items, skipping", count)
		return types.SeedResult{Seeded: false, Count: count}, nil
	}

	items, err := s.enricher.Enrich(ctx, sample.SeedBatch())
	if err != nil {
		return types.SeedResult{}, err
	}

	log.Printf("Seeded store with %d enriched items", len(items))
	return types.SeedResult{Seeded: true, Count: len(items)}, nil
}
