package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/feedworks/feedlens/pkg/types"
)

// Memory is an in-process Store used for tests and for local runs without a
// configured database. Behavior mirrors Postgres: per-day reads, newest
// first.
type Memory struct {
	mu    sync.RWMutex
	items []types.FeedbackItem
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{}
}

// Count returns the number of stored feedback items
func (m *Memory) Count(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items), nil
}

// Insert stores a single feedback item
func (m *Memory) Insert(ctx context.Context, item types.FeedbackItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, item)
	return nil
}

// QueryByDay returns the items stored on the given UTC day, newest first
func (m *Memory) QueryByDay(ctx context.Context, day time.Time) ([]types.FeedbackItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	prefix := day.UTC().Format("2006-01-02")

	var items []types.FeedbackItem
	for _, item := range m.items {
		if strings.HasPrefix(item.Timestamp, prefix) {
			items = append(items, item)
		}
	}

	// RFC 3339 UTC strings sort chronologically
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Timestamp > items[j].Timestamp
	})

	return items, nil
}
