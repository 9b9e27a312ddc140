package service

import (
	"context"
	"time"
)

// RateLimiter counts attempts per key within a fixed window.
type RateLimiter interface {
	// Allow records one attempt for the key and reports whether it is still
	// within limit attempts per window.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}
