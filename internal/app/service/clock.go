package service

import (
	"context"
	"time"

	"shoplist/internal/core/domain"
	"shoplist/internal/core/ports"

	"github.com/google/uuid"
)

// Timestamps are stored with millisecond precision by both supported stores.
func defaultNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func defaultNewID() string {
	return uuid.NewString()
}

type noopCategoryCache struct{}

func (noopCategoryCache) GetList(context.Context) ([]domain.Category, bool) { return nil, false }
func (noopCategoryCache) SetList(context.Context, []domain.Category)       {}
func (noopCategoryCache) Invalidate(context.Context)                        {}

func cacheOrNoop(cache ports.CategoryCache) ports.CategoryCache {
	if cache == nil {
		return noopCategoryCache{}
	}
	return cache
}
