package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/glowdesk/salon-api/internal/core/ports"
)

const reportTTL = 5 * time.Minute

// ReportCache stores computed report results for a short TTL so repeated
// dashboard refreshes don't re-scan the transactions collection.
type ReportCache struct {
	client *redis.Client
}

// NewReportCache creates a ReportCache wrapping the given Redis client.
func NewReportCache(client *redis.Client) *ReportCache {
	return &ReportCache{client: client}
}

// Get returns the cached result for key, or (nil, nil) on a miss.
func (c *ReportCache) Get(ctx context.Context, key string) (*ports.ReportResult, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("report cache get: %w", err)
	}

	var result ports.ReportResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("report cache decode: %w", err)
	}
	return &result, nil
}

// Set stores result under key with the cache TTL.
func (c *ReportCache) Set(ctx context.Context, key string, result *ports.ReportResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("report cache encode: %w", err)
	}
	if err := c.client.Set(ctx, key, raw, reportTTL).Err(); err != nil {
		return fmt.Errorf("report cache set: %w", err)
	}
	return nil
}
