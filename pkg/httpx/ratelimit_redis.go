package httpx

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter is a fixed-window counter shared by every replica pointing at
// the same Redis. Burst is ignored: a window admits RequestsPerWindow hits.
type RedisLimiter struct {
	client *redis.Client
	prefix string
	limit  int64
	window time.Duration
}

// NewRedisLimiter creates a limiter whose keys live under "rl:<name>:".
func NewRedisLimiter(client *redis.Client, config RateLimitConfig) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		prefix: "rl:" + config.Name + ":",
		limit:  int64(config.RequestsPerWindow),
		window: config.Window,
	}
}

// RedisLimiterFactory plugs Redis into a RateLimiter.
func RedisLimiterFactory(client *redis.Client) LimiterFactory {
	return func(config RateLimitConfig) Limiter {
		return NewRedisLimiter(client, config)
	}
}

// Allow increments the window counter for key.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	k := l.prefix + key

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.ExpireNX(ctx, k, l.window)
	ttl := pipe.PTTL(ctx, k)
	if _, err := pipe.Exec(ctx); err != nil {
		return true, 0, fmt.Errorf("redis rate limit: %w", err)
	}

	if incr.Val() <= l.limit {
		return true, 0, nil
	}

	retry := ttl.Val()
	if retry <= 0 {
		retry = l.window
	}
	return false, retry, nil
}
