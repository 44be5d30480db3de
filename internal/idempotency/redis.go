package idempotency

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Checker reports whether an event ID has been processed before. The first
// call for an ID marks it seen.
type Checker interface {
	Seen(ctx context.Context, eventID string) (bool, error)
	Close() error
}

// RedisChecker marks event IDs with SET NX under a TTL. IDs older than the
// TTL can be processed again; the ClickHouse ReplacingMergeTree collapses
// those stragglers on merge.
type RedisChecker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisChecker creates a checker and verifies the connection.
func NewRedisChecker(ctx context.Context, addr string, ttl time.Duration) (*RedisChecker, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &RedisChecker{client: client, ttl: ttl}, nil
}

// Seen atomically marks eventID and reports whether it was already marked.
func (c *RedisChecker) Seen(ctx context.Context, eventID string) (bool, error) {
	set, err := c.client.SetNX(ctx, "evt:"+eventID, 1, c.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check event id: %w", err)
	}
	return !set, nil
}

// Close releases the redis connection.
func (c *RedisChecker) Close() error {
	return c.client.Close()
}
