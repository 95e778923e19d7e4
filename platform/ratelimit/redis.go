package ratelimit

import (
	"context"
	"fmt"
	"github.com/go-redis/redis/v8"
	"time"
)

const windowKey = "ratelimit.%s"

// Redis is a fixed window counter shared by every process pointing at the same redis
type Redis struct {
	client  redis.Cmdable
	limit   int
	window  time.Duration
	timeout time.Duration
}

// NewRedis builds a limiter admitting limit requests per window for each key
func NewRedis(client redis.Cmdable, limit int, window, operationTimeout time.Duration) *Redis {
	return &Redis{
		client:  client,
		limit:   limit,
		window:  window,
		timeout: operationTimeout,
	}
}

func (r *Redis) Allow(ctx context.Context, key string) (Decision, error) {
	k := fmt.Sprintf(windowKey, key)

	rdsCtx, rdsCancel := context.WithTimeout(ctx, r.timeout)
	defer rdsCancel()

	count, err := r.client.Incr(rdsCtx, k).Result()
	if err != nil {
		return Decision{}, fmt.Errorf("failed to increment window %s: %w", k, err)
	}
	if count == 1 {
		if err := r.client.PExpire(rdsCtx, k, r.window).Err(); err != nil {
			return Decision{}, fmt.Errorf("failed to set window %s expiration: %w", k, err)
		}
		return decide(r.limit, count, r.window), nil
	}

	ttl, err := r.client.PTTL(rdsCtx, k).Result()
	if err != nil {
		return Decision{}, fmt.Errorf("failed to read window %s ttl: %w", k, err)
	}
	// a window left without expiration would never reset
	if ttl < 0 {
		if err := r.client.PExpire(rdsCtx, k, r.window).Err(); err != nil {
			return Decision{}, fmt.Errorf("failed to set window %s expiration: %w", k, err)
		}
		ttl = r.window
	}

	return decide(r.limit, count, ttl), nil
}
