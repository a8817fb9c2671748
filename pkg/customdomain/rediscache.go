package customdomain

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisCache stores resolutions in Redis so every process in a deployment
// shares one cache and one invalidation.
type redisCache struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisCache creates a Redis-backed resolution cache. keyPrefix
// namespaces the keys (default "customdomain:").
func NewRedisCache(client *redis.Client, keyPrefix string) Cache {
	if keyPrefix == "" {
		keyPrefix = "customdomain:"
	}
	return &redisCache{client: client, keyPrefix: keyPrefix}
}

func (c *redisCache) key(hostname string) string {
	return c.keyPrefix + hostname
}

func (c *redisCache) Get(ctx context.Context, hostname string) (*Resolution, bool) {
	data, err := c.client.Get(ctx, c.key(hostname)).Bytes()
	if err != nil {
		return nil, false
	}
	var res Resolution
	if err := json.Unmarshal(data, &res); err != nil {
		// Corrupt entry; drop it so the next lookup repopulates.
		c.client.Del(ctx, c.key(hostname))
		return nil, false
	}
	return &res, true
}

func (c *redisCache) Set(ctx context.Context, hostname string, res *Resolution, ttl time.Duration) {
	data, err := json.Marshal(res)
	if err != nil {
		return
	}
	c.client.Set(ctx, c.key(hostname), data, ttl)
}

func (c *redisCache) Delete(ctx context.Context, hostname string) {
	c.client.Del(ctx, c.key(hostname))
}

func (c *redisCache) Close() error {
	// The client is owned by the caller; nothing to release here.
	return nil
}
