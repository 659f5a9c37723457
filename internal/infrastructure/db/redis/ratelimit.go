package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dishdash/dish-service/internal/core/ports"
)

// FixedWindowLimiter caps requests per key within fixed windows shared across
// process instances. The counter is created by the first INCR, which also
// fixes the window start by setting the TTL; later requests in the same
// window only increment.
// Key format: ratelimit:<key>
type FixedWindowLimiter struct {
	client   *redis.Client
	capacity int
	window   time.Duration
}

func NewFixedWindowLimiter(client *redis.Client, capacity int, window time.Duration) *FixedWindowLimiter {
	if capacity < 1 {
		capacity = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &FixedWindowLimiter{client: client, capacity: capacity, window: window}
}

func (l *FixedWindowLimiter) Allow(ctx context.Context, key string) (ports.Decision, error) {
	rkey := "ratelimit:" + key

	count, err := l.client.Incr(ctx, rkey).Result()
	if err != nil {
		return ports.Decision{}, fmt.Errorf("ratelimit incr: %w", err)
	}
	if count == 1 {
		if err := l.client.Expire(ctx, rkey, l.window).Err(); err != nil {
			return ports.Decision{}, fmt.Errorf("ratelimit expire: %w", err)
		}
	}

	if count > int64(l.capacity) {
		retry := l.window
		if ttl, err := l.client.TTL(ctx, rkey).Result(); err == nil && ttl > 0 {
			retry = ttl
		}
		return ports.Decision{Allowed: false, Remaining: 0, RetryAfter: retry}, nil
	}

	return ports.Decision{Allowed: true, Remaining: l.capacity - int(count)}, nil
}
