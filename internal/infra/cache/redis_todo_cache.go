package cache

import (
	"context"
	"errors"
	"time"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/cache"
	"todo-api/pkg/redis"
)

const listingKey = "todo:listing"

// RedisTodoCache caches the public todo listing in Redis. Read failures
// degrade to a miss so listing availability never depends on Redis.
type RedisTodoCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ cache.TodoCache = (*RedisTodoCache)(nil)

func NewRedisTodoCache(client *redis.Client, ttl time.Duration) *RedisTodoCache {
	return &RedisTodoCache{client: client, ttl: ttl}
}

func (c *RedisTodoCache) GetListing(ctx context.Context) ([]entity.Todo, error) {
	var todos []entity.Todo
	if err := c.client.GetJSON(ctx, listingKey, &todos); err != nil {
		if errors.Is(err, redis.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return todos, nil
}

func (c *RedisTodoCache) SetListing(ctx context.Context, todos []entity.Todo) error {
	return c.client.SetJSON(ctx, listingKey, todos, c.ttl)
}

func (c *RedisTodoCache) Invalidate(ctx context.Context) error {
	return c.client.Delete(ctx, listingKey)
}
