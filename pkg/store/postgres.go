package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/feedworks/feedlens/pkg/types"
)

// Postgres stores feedback items in a PostgreSQL table, one row per item.
type Postgres struct {
	db *sql.DB
}

// NewPostgres connects to the database and creates the feedback table if it
// does not exist yet.
func NewPostgres(databaseURL string) (*Postgres, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL is required")
	}

	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	schema := `
		CREATE TABLE IF NOT EXISTS feedback (
			id TEXT PRIMARY KEY,
			source TEXT NOT NULL,
			text TEXT NOT NULL,
			timestamp TEXT NOT NULL,
			urgency TEXT NOT NULL,
			sentiment TEXT NOT NULL,
			theme TEXT NOT NULL,
			summary TEXT NOT NULL
		)
	`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create feedback table: %w", err)
	}

	return &Postgres{db: db}, nil
}

// Close closes the database connection
func (s *Postgres) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Count returns the number of stored feedback items
func (s *Postgres) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM feedback").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count feedback: %w", err)
	}
	return count, nil
}

// Insert stores a single feedback item
func (s *Postgres) Insert(ctx context.Context, item types.FeedbackItem) error {
	query := `
		INSERT INTO feedback (id, source, text, timestamp, urgency, sentiment, theme, summary)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := s.db.ExecContext(ctx, query,
		item.ID,
		item.Source,
		item.Text,
		item.Timestamp,
		item.Urgency,
		item.Sentiment,
		item.Theme,
		item.Summary,
	)
	if err != nil {
		return fmt.Errorf("failed to insert feedback item: %w", err)
	}

	return nil
}

// QueryByDay returns the items stored on the given UTC day, newest first.
// Timestamps are RFC 3339 UTC strings, so their first ten bytes are the day
// and lexicographic order matches chronological order.
func (s *Postgres) QueryByDay(ctx context.Context, day time.Time) ([]types.FeedbackItem, error) {
	query := `
		SELECT id, source, text, timestamp, urgency, sentiment, theme, summary
		FROM feedback
		WHERE substr(timestamp, 1, 10) = $1
		ORDER BY timestamp DESC
	`

	rows, err := s.db.QueryContext(ctx, query, day.UTC().Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to query feedback: %w", err)
	}
	defer rows.Close()

	var items []types.FeedbackItem
	for rows.Next() {
		var item types.FeedbackItem
		err := rows.Scan(
			&item.ID,
			&item.Source,
			&item.Text,
			&item.Timestamp,
			&item.Urgency,
			&item.Sentiment,
			&item.Theme,
			&item.Summary,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan feedback row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return items, nil
}
