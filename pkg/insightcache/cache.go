// Package insightcache fronts InsightEngine's computed cards with a Redis
// read-through cache. It is a pure optimization: a miss, a decode failure,
// or Redis being unreachable all fall through to a live recompute, never
// to an error.
package insightcache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/meetingscribe/api/internal/pkg/logger"
	"github.com/meetingscribe/api/pkg/insight"
	"github.com/redis/go-redis/v9"
)

// Cache wraps a *redis.Client that may be nil or unreachable; every method
// degrades to a cache miss rather than propagating a Redis error.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.ILogger
}

func NewCache(client *redis.Client, ttl time.Duration, appLogger logger.ILogger) *Cache {
	return &Cache{client: client, ttl: ttl, logger: appLogger}
}

// key includes the meeting's updated_at so an edited meeting (transcript
// or extraction rewrite) never serves a stale cards response; there is no
// explicit invalidation path because the key itself rotates on every write.
func key(meetingId uuid.UUID, updatedAt time.Time) string {
	return fmt.Sprintf("insights:%s:%d", meetingId, updatedAt.UnixNano())
}

func (c *Cache) Get(ctx context.Context, meetingId uuid.UUID, updatedAt time.Time) ([]insight.Card, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, key(meetingId, updatedAt)).Bytes()
	if err != nil {
		return nil, false
	}
	var cards []insight.Card
	if err := json.Unmarshal(raw, &cards); err != nil {
		return nil, false
	}
	return cards, true
}

func (c *Cache) Set(ctx context.Context, meetingId uuid.UUID, updatedAt time.Time, cards []insight.Card) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(cards)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key(meetingId, updatedAt), raw, c.ttl).Err(); err != nil {
		if c.logger != nil {
			c.logger.Warn("insightcache", "failed to write insights cache entry", map[string]interface{}{"error": err.Error()})
		}
	}
}
