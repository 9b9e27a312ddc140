// Package cache provides the Redis-backed catalog read cache.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when the key is absent so callers fall through to
// the database.
var ErrCacheMiss = errors.New("cache miss")

const baseTTL = 15 * time.Minute

// ProductCache caches catalog reads. Writers invalidate after every change
// that touches a product's derived rating.
type ProductCache struct {
	client *redis.Client
}

// NewProductCache creates a ProductCache on the shared Redis client.
func NewProductCache(client *redis.Client) *ProductCache {
	return &ProductCache{client: client}
}

// Get returns the cached product or ErrCacheMiss.
func (c *ProductCache) Get(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	data, err := c.client.Get(ctx, productKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, errors.Wrap(err, "redis get failed")
	}

	var product entity.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, errors.Wrap(err, "unmarshal product failed")
	}

	return &product, nil
}

// Set stores the product with a jittered TTL so hot keys do not expire in
// lockstep.
func (c *ProductCache) Set(ctx context.Context, product *entity.Product) error {
	data, err := json.Marshal(product)
	if err != nil {
		return errors.Wrap(err, "marshal product failed")
	}

	jitter := time.Duration(rand.Intn(5)) * time.Minute
	if err := c.client.Set(ctx, productKey(product.ID), data, baseTTL+jitter).Err(); err != nil {
		return errors.Wrap(err, "redis set failed")
	}

	return nil
}

// Delete drops the cached product after a rating recompute or catalog write.
func (c *ProductCache) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.client.Del(ctx, productKey(id)).Err(); err != nil {
		return errors.Wrap(err, "redis delete failed")
	}

	return nil
}

func productKey(id uuid.UUID) string {
	return fmt.Sprintf("product:%s", id)
}
