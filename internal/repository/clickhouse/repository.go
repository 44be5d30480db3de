package clickhouse

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"go.uber.org/zap"

	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/domain"
	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/repository"
)

// Repository implements EventRepository for ClickHouse
type Repository struct {
	client *Client
	log    *zap.Logger
}

// NewRepository creates a new ClickHouse repository
func NewRepository(client *Client, log *zap.Logger) *Repository {
	return &Repository{
		client: client,
		log:    log,
	}
}

// InitSchema initializes the ClickHouse schema. ReplacingMergeTree on
// event_id collapses redelivered events the idempotency filter let through.
func (r *Repository) InitSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS platform_events (
		event_id String,
		event_name LowCardinality(String),
		category LowCardinality(String),
		user_id String,
		session_id String,
		properties String,
		user_agent String,
		ip String,
		country LowCardinality(String),
		referrer String,
		timestamp DateTime64(3),
		processed_at DateTime64(3) DEFAULT now64(3),
		version UInt64
	) ENGINE = ReplacingMergeTree(version)
	PRIMARY KEY (event_id)
	ORDER BY (event_id, timestamp)
	PARTITION BY toYYYYMM(timestamp)
	SETTINGS index_granularity = 8192
	`

	if err := r.client.Conn().Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create platform_events table: %w", err)
	}

	r.log.Info("ClickHouse schema initialized")
	return nil
}

// InsertBatch inserts a batch of events into ClickHouse
func (r *Repository) InsertBatch(ctx context.Context, events []*domain.Event) (int, error) {
	if len(events) == 0 {
		return 0, nil
	}

	batch, err := r.client.Conn().PrepareBatch(ctx, "INSERT INTO platform_events")
	if err != nil {
		return 0, fmt.Errorf("failed to prepare batch: %w", err)
	}

	insertedCount := 0
	for _, event := range events {
		propertiesJSON := "{}"
		if len(event.Properties) > 0 {
			raw, err := json.Marshal(event.Properties)
			if err != nil {
				return 0, fmt.Errorf("failed to marshal properties for event %s: %w", event.EventID, err)
			}
			propertiesJSON = string(raw)
		}

		err := batch.Append(
			event.EventID,
			event.EventName,
			string(event.Category),
			event.UserID,
			event.SessionID,
			propertiesJSON,
			event.UserAgent,
			event.IP,
			event.Country,
			event.Referrer,
			event.Timestamp,
			time.Now(),
			uint64(time.Now().UnixNano()),
		)

		if err != nil {
			return 0, fmt.Errorf("failed to append event to batch: %w", err)
		}
		insertedCount++
	}

	if err := batch.Send(); err != nil {
		return 0, fmt.Errorf("failed to send batch: %w", err)
	}

	return insertedCount, nil
}

// Ping checks if the ClickHouse connection is alive
func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Conn().Ping(ctx)
}

// Close closes the ClickHouse connection
func (r *Repository) Close() error {
	return r.client.Close()
}

// GetEventCounts aggregates stored events over a time range
func (r *Repository) GetEventCounts(ctx context.Context, query repository.CountsQuery) (*repository.CountsResult, error) {
	result := &repository.CountsResult{
		Groups: []repository.CountsGroupResult{},
	}

	whereClause := "WHERE timestamp >= ? AND timestamp <= ?"
	args := []interface{}{query.From, query.To}
	if query.Category != "" {
		whereClause += " AND category = ?"
		args = append(args, string(query.Category))
	}

	overallQuery := fmt.Sprintf(`
		SELECT
			count() as total_count,
			uniq(user_id) as unique_users
		FROM platform_events FINAL
		%s
	`, whereClause)

	row := r.client.Conn().QueryRow(ctx, overallQuery, args...)
	if err := row.Scan(&result.TotalCount, &result.UniqueUsers); err != nil {
		return nil, fmt.Errorf("failed to query overall counts: %w", err)
	}

	if query.GroupBy != "" {
		var selectField string
		var groupByClause string
		var orderBy string

		switch query.GroupBy {
		case "category":
			selectField = "category"
			groupByClause = "GROUP BY category"
			orderBy = "ORDER BY total_count DESC"
		case "hour":
			selectField = "formatDateTime(toStartOfHour(timestamp), '%Y-%m-%d %H:00:00')"
			groupByClause = "GROUP BY toStartOfHour(timestamp)"
			orderBy = "ORDER BY group_value ASC"
		case "day":
			selectField = "formatDateTime(toStartOfDay(timestamp), '%Y-%m-%d')"
			groupByClause = "GROUP BY toStartOfDay(timestamp)"
			orderBy = "ORDER BY group_value ASC"
		default:
			return nil, fmt.Errorf("unsupported group_by value: %s (supported: category, hour, day)", query.GroupBy)
		}

		groupedQuery := fmt.Sprintf(`
			SELECT
				%s as group_value,
				count() as total_count
			FROM platform_events FINAL
			%s
			%s
			%s
		`, selectField, whereClause, groupByClause, orderBy)

		rows, err := r.client.Conn().Query(ctx, groupedQuery, args...)
		if err != nil {
			return nil, fmt.Errorf("failed to query grouped counts: %w", err)
		}
		defer func(rows driver.Rows) {
			if err := rows.Close(); err != nil {
				r.log.Error("Failed to close grouped counts rows", zap.Error(err))
			}
		}(rows)

		for rows.Next() {
			var group repository.CountsGroupResult
			if err := rows.Scan(&group.GroupValue, &group.TotalCount); err != nil {
				return nil, fmt.Errorf("failed to scan grouped counts row: %w", err)
			}
			result.Groups = append(result.Groups, group)
		}

		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("error iterating grouped counts rows: %w", err)
		}
	}

	return result, nil
}
