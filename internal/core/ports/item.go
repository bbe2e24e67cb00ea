package ports

import (
	"context"
	"time"

	"shoplist/internal/core/domain"
	"shoplist/internal/core/query"
)

type ItemRepository interface {
	Find(ctx context.Context, filter query.Filter, ordering query.Ordering, window query.Window) ([]domain.Item, error)
	Count(ctx context.Context, filter query.Filter) (int, error)
	GetByID(ctx context.Context, id string) (domain.Item, error)
	Create(ctx context.Context, item domain.Item) (domain.Item, error)
	Update(ctx context.Context, id string, input domain.UpdateItemInput, updatedAt time.Time) (domain.Item, error)
	Delete(ctx context.Context, id string) error
}

type ItemService interface {
	ListItems(ctx context.Context, q domain.ItemQuery) (domain.Page[domain.Item], error)
	GetItem(ctx context.Context, id string) (domain.Item, error)
	CreateItem(ctx context.Context, input domain.CreateItemInput) (domain.Item, error)
	UpdateItem(ctx context.Context, id string, input domain.UpdateItemInput) (domain.Item, error)
	DeleteItem(ctx context.Context, id string) error
}
