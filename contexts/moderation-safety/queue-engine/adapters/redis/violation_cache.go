package redisadapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"vigil/contexts/moderation-safety/queue-engine/domain/entities"
)

// ViolationCache keeps violator history counts in Redis so repeat enqueues do
// not re-count the ledger. Entries expire on TTL and are invalidated when a
// new violation is recorded.
type ViolationCache struct {
	client *redis.Client
	logger *slog.Logger
}

func NewViolationCache(client *redis.Client, logger *slog.Logger) *ViolationCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &ViolationCache{
		client: client,
		logger: logger,
	}
}

func violationCountKey(violator entities.ViolatorRef) string {
	return fmt.Sprintf("modq:violations:%s:%s", violator.Type, violator.ID)
}

func (c *ViolationCache) GetCount(ctx context.Context, violator entities.ViolatorRef) (int, bool, error) {
	count, err := c.client.Get(ctx, violationCountKey(violator)).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return count, true, nil
}

func (c *ViolationCache) SetCount(
	ctx context.Context,
	violator entities.ViolatorRef,
	count int,
	ttl time.Duration,
) error {
	return c.client.Set(ctx, violationCountKey(violator), count, ttl).Err()
}

func (c *ViolationCache) InvalidateCount(ctx context.Context, violator entities.ViolatorRef) error {
	err := c.client.Del(ctx, violationCountKey(violator)).Err()
	if err != nil {
		c.logger.Warn("violation count invalidation failed",
			"event", "violation_cache_invalidate_failed",
			"module", "moderation-safety/queue-engine",
			"layer", "adapter",
			"violator_type", string(violator.Type),
			"violator_id", violator.ID,
			"error", err.Error(),
		)
	}
	return err
}
