// Package ratelimit implements the attempt counter behind the password
// reset request endpoint.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/redis/go-redis/v9"
)

type redisLimiter struct {
	client *redis.Client
}

// NewRedisLimiter creates a fixed-window rate limiter backed by Redis.
func NewRedisLimiter(client *redis.Client) service.RateLimiter {
	return &redisLimiter{client: client}
}

// Allow increments the key's counter and reports whether the caller is still
// within limit attempts per window. The window TTL is set on the first
// attempt only, so the window is fixed rather than sliding.
func (l *redisLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	redisKey := fmt.Sprintf("ratelimit:%s", key)

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, errors.Wrap(err, "rate limit incr failed")
	}

	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, window).Err(); err != nil {
			return false, errors.Wrap(err, "rate limit expire failed")
		}
	}

	return count <= int64(limit), nil
}
