package repository

import (
	"context"
	"time"

	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/domain"
)

// CountsQuery selects the events to aggregate from the durable store.
type CountsQuery struct {
	Category domain.Category
	From     time.Time
	To       time.Time
	GroupBy  string // "category", "hour" or "day"; empty for totals only
}

// CountsGroupResult is one aggregation bucket.
type CountsGroupResult struct {
	GroupValue string
	TotalCount uint64
}

// CountsResult is the result of an event-counts query.
type CountsResult struct {
	TotalCount  uint64
	UniqueUsers uint64
	Groups      []CountsGroupResult
}

// EventRepository defines the interface for durable event storage.
type EventRepository interface {
	// InsertBatch inserts a batch of events into the storage
	InsertBatch(ctx context.Context, events []*domain.Event) (int, error)

	// InitSchema initializes the database schema (creates tables if they don't exist)
	InitSchema(ctx context.Context) error

	// Ping checks if the database connection is alive
	Ping(ctx context.Context) error

	// Close closes the repository and releases resources
	Close() error

	// GetEventCounts aggregates stored events over a time range
	GetEventCounts(ctx context.Context, query CountsQuery) (*CountsResult, error)
}
