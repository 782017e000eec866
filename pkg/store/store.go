// Package store persists enriched feedback items. The rest of the system
// only ever touches the Store interface: one count, one insert per item,
// and a per-day read ordered most-recent first.
package store

import (
	"context"
	"time"

	"github.com/feedworks/feedlens/pkg/types"
)

// Store is the persistence boundary for feedback items.
type Store interface {
	// Count returns the number of stored items.
	Count(ctx context.Context) (int, error)

	// Insert stores a single enriched item. Items are keyed by their own
	// ID; inserts from concurrent enrichment tasks may land in any order.
	Insert(ctx context.Context, item types.FeedbackItem) error

	// QueryByDay returns the items whose timestamp falls on the given UTC
	// day, ordered by timestamp descending.
	QueryByDay(ctx context.Context, day time.Time) ([]types.FeedbackItem, error)
}
