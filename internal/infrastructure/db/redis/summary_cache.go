package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gescar/dealership-system/internal/core/ports"
)

const (
	summaryKey = "dashboard:summary"
	summaryTTL = 30 * time.Second
)

// SummaryCache caches the dashboard summary for a short TTL so the
// aggregation pipelines are not re-run on every dashboard load.
type SummaryCache struct {
	client *redis.Client
}

// NewSummaryCache creates a SummaryCache wrapping the given Redis client.
func NewSummaryCache(client *redis.Client) *SummaryCache {
	return &SummaryCache{client: client}
}

// Get returns the cached summary, or (nil, nil) on a miss. A corrupt
// cached value is treated as a miss.
func (c *SummaryCache) Get(ctx context.Context) (*ports.DashboardSummary, error) {
	raw, err := c.client.Get(ctx, summaryKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("summary cache get: %w", err)
	}

	var summary ports.DashboardSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, nil
	}
	return &summary, nil
}

// Set stores the summary with the cache TTL.
func (c *SummaryCache) Set(ctx context.Context, summary *ports.DashboardSummary) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("summary cache marshal: %w", err)
	}
	return c.client.Set(ctx, summaryKey, raw, summaryTTL).Err()
}
