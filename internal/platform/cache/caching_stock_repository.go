// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"stocks_api/internal/feature/stocks/domain/entity"
	"stocks_api/internal/feature/stocks/usecase"
)

// CachingStockRepository decorates a StockRepository with Redis caching of the
// current-stock listing. It implements the decorator pattern, transparently
// adding caching without modifying the underlying repository. Every mutation
// invalidates the listing so reads never observe a stale stock set.
type CachingStockRepository struct {
	inner     usecase.StockRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.StockRepository = (*CachingStockRepository)(nil)

// NewCachingStockRepository decorates a StockRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "stocks".
func NewCachingStockRepository(rdb *redis.Client, ttl time.Duration, inner usecase.StockRepository, namespace string) *CachingStockRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "stocks"
	}
	return &CachingStockRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// ListCurrent retrieves the current stocks, checking cache first then falling
// back to the database.
func (c *CachingStockRepository) ListCurrent(ctx context.Context) ([]entity.Stock, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.ListCurrent(ctx)
	}

	key := c.listKey()

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Stock
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.ListCurrent(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// FindCurrent delegates to the underlying repository. Single-row lookups are
// cheap and feed updates, so they always read the store directly.
func (c *CachingStockRepository) FindCurrent(ctx context.Context, id uint) (*entity.Stock, error) {
	return c.inner.FindCurrent(ctx, id)
}

// Create persists a stock and invalidates the cached listing.
func (c *CachingStockRepository) Create(ctx context.Context, stock *entity.Stock) error {
	if err := c.inner.Create(ctx, stock); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// Update persists stock changes and invalidates the cached listing.
func (c *CachingStockRepository) Update(ctx context.Context, stock *entity.Stock) error {
	if err := c.inner.Update(ctx, stock); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// SoftDelete tombstones a stock and invalidates the cached listing.
func (c *CachingStockRepository) SoftDelete(ctx context.Context, id uint, at time.Time) error {
	if err := c.inner.SoftDelete(ctx, id, at); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// listKey generates the cache key for the current-stock listing.
func (c *CachingStockRepository) listKey() string {
	return c.namespace + ":current"
}

// invalidate drops the cached listing. Best effort: a failed delete only means
// a stale read until the TTL expires.
func (c *CachingStockRepository) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.listKey()).Err()
}
