package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/venkatesh141/Ecom/internal/model"
	"github.com/venkatesh141/Ecom/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const (
	productKeyFmt   = "catalog:product:%d"
	categoryListKey = "catalog:categories"
)

// CatalogCache is a read-through cache for catalog lookups. A nil
// *CatalogCache is valid and caches nothing, so callers never branch on
// whether redis is configured.
type CatalogCache struct {
	rdb redis.UniversalClient
	ttl time.Duration
}

func NewCatalogCache(rdb redis.UniversalClient, ttl time.Duration) *CatalogCache {
	if rdb == nil || ttl <= 0 {
		return nil
	}
	return &CatalogCache{rdb: rdb, ttl: ttl}
}

// GetProduct returns the cached product or nil on miss.
func (c *CatalogCache) GetProduct(ctx context.Context, id int64) *model.Product {
	if c == nil {
		return nil
	}
	raw, err := c.rdb.Get(ctx, fmt.Sprintf(productKeyFmt, id)).Bytes()
	if err != nil {
		return nil
	}
	var p model.Product
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil
	}
	return &p
}

func (c *CatalogCache) SetProduct(ctx context.Context, p *model.Product) {
	if c == nil || p == nil {
		return
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, fmt.Sprintf(productKeyFmt, p.ID), raw, c.ttl).Err(); err != nil {
		logger.Warn("cache set product failed", "product_id", p.ID, "err", err)
	}
}

// InvalidateProduct drops a product entry after a mutation.
func (c *CatalogCache) InvalidateProduct(ctx context.Context, id int64) {
	if c == nil {
		return
	}
	if err := c.rdb.Del(ctx, fmt.Sprintf(productKeyFmt, id)).Err(); err != nil {
		logger.Warn("cache invalidate product failed", "product_id", id, "err", err)
	}
}

// GetCategories returns the cached category list or nil on miss.
func (c *CatalogCache) GetCategories(ctx context.Context) []*model.Category {
	if c == nil {
		return nil
	}
	raw, err := c.rdb.Get(ctx, categoryListKey).Bytes()
	if err != nil {
		return nil
	}
	var categories []*model.Category
	if err := json.Unmarshal(raw, &categories); err != nil {
		return nil
	}
	return categories
}

func (c *CatalogCache) SetCategories(ctx context.Context, categories []*model.Category) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(categories)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, categoryListKey, raw, c.ttl).Err(); err != nil {
		logger.Warn("cache set categories failed", "err", err)
	}
}

func (c *CatalogCache) InvalidateCategories(ctx context.Context) {
	if c == nil {
		return
	}
	if err := c.rdb.Del(ctx, categoryListKey).Err(); err != nil {
		logger.Warn("cache invalidate categories failed", "err", err)
	}
}
