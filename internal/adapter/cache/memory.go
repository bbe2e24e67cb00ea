package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"shoplist/internal/core/domain"
	"shoplist/internal/core/ports"
)

const categoriesKey = "categories:list"

// MemoryCategoryCache keeps the category listing in process. Entries expire
// after the configured TTL even without an explicit invalidation.
type MemoryCategoryCache struct {
	entries *expirable.LRU[string, []domain.Category]
}

var _ ports.CategoryCache = (*MemoryCategoryCache)(nil)

func NewMemoryCategoryCache(size int, ttl time.Duration) *MemoryCategoryCache {
	if size <= 0 {
		size = 1
	}
	return &MemoryCategoryCache{
		entries: expirable.NewLRU[string, []domain.Category](size, nil, ttl),
	}
}

func (c *MemoryCategoryCache) GetList(_ context.Context) ([]domain.Category, bool) {
	categories, ok := c.entries.Get(categoriesKey)
	if !ok {
		return nil, false
	}
	return cloneCategories(categories), true
}

func (c *MemoryCategoryCache) SetList(_ context.Context, categories []domain.Category) {
	c.entries.Add(categoriesKey, cloneCategories(categories))
}

func (c *MemoryCategoryCache) Invalidate(_ context.Context) {
	c.entries.Remove(categoriesKey)
}

// cloneCategories copies the slice and the per-row counters so callers cannot
// mutate what is cached.
func cloneCategories(categories []domain.Category) []domain.Category {
	out := make([]domain.Category, len(categories))
	for i, category := range categories {
		if category.ItemsCount != nil {
			count := *category.ItemsCount
			category.ItemsCount = &count
		}
		out[i] = category
	}
	return out
}
