package cache

import (
	"context"
	"encoding/json"
	"time"

	dom "github.com/chiragnagar2708/Outfitz-backend/internal/domain"

	"github.com/redis/go-redis/v9"
)

const keyAllProducts = "products:all"

// ProductCache caches the full catalog listing in Redis. The derived views
// (new collection, related, popular) are slices of the same listing, so one
// key covers all of them.
type ProductCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewProductCache returns a new ProductCache.
func NewProductCache(rdb *redis.Client, ttl time.Duration) *ProductCache {
	return &ProductCache{rdb: rdb, ttl: ttl}
}

// GetAll returns the cached listing or nil if miss.
func (c *ProductCache) GetAll(ctx context.Context) ([]dom.Product, error) {
	b, err := c.rdb.Get(ctx, keyAllProducts).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []dom.Product
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SetAll stores the listing in cache.
func (c *ProductCache) SetAll(ctx context.Context, list []dom.Product) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyAllProducts, b, c.ttl).Err()
}

// Invalidate drops the cached listing (called on add/remove).
func (c *ProductCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, keyAllProducts).Err()
}
