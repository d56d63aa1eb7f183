package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/minitweet/api/internal/api/metrics"
	"github.com/minitweet/api/internal/core/domain"
)

const defaultTimelineTTL = 30 * time.Second

// TimelineCache caches aggregated timelines per user with a short TTL.
// Key format: timeline:<user_id>, value: JSON-encoded entries.
//
// The cache is strictly best-effort: any Redis or codec error is treated as
// a miss and the caller falls through to the relational store.
type TimelineCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTimelineCache creates a TimelineCache wrapping the given Redis client.
// A non-positive ttl falls back to defaultTimelineTTL.
func NewTimelineCache(client *redis.Client, ttl time.Duration) *TimelineCache {
	if ttl <= 0 {
		ttl = defaultTimelineTTL
	}
	return &TimelineCache{client: client, ttl: ttl}
}

// Get returns the cached timeline and whether a fresh copy existed.
func (c *TimelineCache) Get(ctx context.Context, userID int64) ([]domain.TimelineEntry, bool) {
	raw, err := c.client.Get(ctx, c.key(userID)).Bytes()
	if err != nil {
		metrics.TimelineCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	var entries []domain.TimelineEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		metrics.TimelineCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	metrics.TimelineCacheTotal.WithLabelValues("hit").Inc()
	return entries, true
}

// Set stores the timeline, expiring after the configured TTL.
func (c *TimelineCache) Set(ctx context.Context, userID int64, entries []domain.TimelineEntry) {
	raw, err := json.Marshal(entries)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, c.key(userID), raw, c.ttl).Err()
}

// Invalidate drops the cached timeline for the given user.
func (c *TimelineCache) Invalidate(ctx context.Context, userID int64) {
	_ = c.client.Del(ctx, c.key(userID)).Err()
}

func (c *TimelineCache) key(userID int64) string {
	return fmt.Sprintf("timeline:%d", userID)
}
