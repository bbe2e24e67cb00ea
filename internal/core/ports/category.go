package ports

import (
	"context"
	"time"

	"shoplist/internal/core/domain"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id string) (domain.Category, error)
	// FindByName returns domain.ErrCategoryNotFound when no category has
	// exactly this name.
	FindByName(ctx context.Context, name string) (domain.Category, error)
	Create(ctx context.Context, category domain.Category) (domain.Category, error)
	Rename(ctx context.Context, id, name string, updatedAt time.Time) (domain.Category, error)
	// DeleteUnreferenced removes the category only if no item references it,
	// checking and deleting atomically.
	DeleteUnreferenced(ctx context.Context, id string) error
}

type CategoryService interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, id string) (domain.Category, error)
	CreateCategory(ctx context.Context, name string) (domain.Category, error)
	RenameCategory(ctx context.Context, id, name string) (domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	SeedCategories(ctx context.Context, names []string) (int, error)
}

// CategoryCache holds the rendered category listing between writes.
type CategoryCache interface {
	GetList(ctx context.Context) ([]domain.Category, bool)
	SetList(ctx context.Context, categories []domain.Category)
	Invalidate(ctx context.Context)
}
