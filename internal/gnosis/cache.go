package gnosis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ccarella/app.charmverse.io/internal/gnosis/models"
	"github.com/ccarella/app.charmverse.io/pkg/domain"
)

// CachedClient is a read-through cache in front of a Client. Cache failures
// degrade to the underlying client; a broken cache must never block digests.
type CachedClient struct {
	inner  Client
	redis  *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedClient(inner Client, rdb *redis.Client, ttl time.Duration, logger *slog.Logger) *CachedClient {
	return &CachedClient{inner: inner, redis: rdb, ttl: ttl, logger: logger}
}

func (c *CachedClient) PendingTasks(ctx context.Context, userID domain.UserID) ([]models.SafeTask, error) {
	key := cacheKey(userID)

	raw, err := c.redis.Get(ctx, key).Bytes()
	if err == nil {
		var tasks []models.SafeTask
		if err := json.Unmarshal(raw, &tasks); err == nil {
			return tasks, nil
		}
		// Unreadable entry: fall through and overwrite it.
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warn("safe task cache read failed", "error", err)
	}

	tasks, err := c.inner.PendingTasks(ctx, userID)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(tasks)
	if err == nil {
		if err := c.redis.Set(ctx, key, encoded, c.ttl).Err(); err != nil {
			c.logger.Warn("safe task cache write failed", "error", err)
		}
	}
	return tasks, nil
}

func cacheKey(userID domain.UserID) string {
	return "gnosis:pending-tasks:" + userID.String()
}
