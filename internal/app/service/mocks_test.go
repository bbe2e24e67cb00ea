package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"shoplist/internal/core/domain"
	"shoplist/internal/core/query"
)

type itemRepositoryMock struct {
	mock.Mock
}

func (m *itemRepositoryMock) Find(ctx context.Context, filter query.Filter, ordering query.Ordering, window query.Window) ([]domain.Item, error) {
	args := m.Called(ctx, filter, ordering, window)

	var items []domain.Item
	if value := args.Get(0); value != nil {
		items = value.([]domain.Item)
	}
	return items, args.Error(1)
}

func (m *itemRepositoryMock) Count(ctx context.Context, filter query.Filter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *itemRepositoryMock) GetByID(ctx context.Context, id string) (domain.Item, error) {
	return itemResult(m.Called(ctx, id))
}

func (m *itemRepositoryMock) Create(ctx context.Context, item domain.Item) (domain.Item, error) {
	return itemResult(m.Called(ctx, item))
}

func (m *itemRepositoryMock) Update(ctx context.Context, id string, input domain.UpdateItemInput, updatedAt time.Time) (domain.Item, error) {
	return itemResult(m.Called(ctx, id, input, updatedAt))
}

func (m *itemRepositoryMock) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func itemResult(args mock.Arguments) (domain.Item, error) {
	var item domain.Item
	if value := args.Get(0); value != nil {
		item = value.(domain.Item)
	}
	return item, args.Error(1)
}

type categoryRepositoryMock struct {
	mock.Mock
}

func (m *categoryRepositoryMock) List(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)

	var categories []domain.Category
	if value := args.Get(0); value != nil {
		categories = value.([]domain.Category)
	}
	return categories, args.Error(1)
}

func (m *categoryRepositoryMock) GetByID(ctx context.Context, id string) (domain.Category, error) {
	return categoryResult(m.Called(ctx, id))
}

func (m *categoryRepositoryMock) FindByName(ctx context.Context, name string) (domain.Category, error) {
	return categoryResult(m.Called(ctx, name))
}

func (m *categoryRepositoryMock) Create(ctx context.Context, category domain.Category) (domain.Category, error) {
	return categoryResult(m.Called(ctx, category))
}

func (m *categoryRepositoryMock) Rename(ctx context.Context, id, name string, updatedAt time.Time) (domain.Category, error) {
	return categoryResult(m.Called(ctx, id, name, updatedAt))
}

func (m *categoryRepositoryMock) DeleteUnreferenced(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func categoryResult(args mock.Arguments) (domain.Category, error) {
	var category domain.Category
	if value := args.Get(0); value != nil {
		category = value.(domain.Category)
	}
	return category, args.Error(1)
}

// recordingCache counts invalidations and serves whatever was last stored.
type recordingCache struct {
	list          []domain.Category
	cached        bool
	invalidations int
}

func (c *recordingCache) GetList(context.Context) ([]domain.Category, bool) {
	return c.list, c.cached
}

func (c *recordingCache) SetList(_ context.Context, categories []domain.Category) {
	c.list = categories
	c.cached = true
}

func (c *recordingCache) Invalidate(context.Context) {
	c.list = nil
	c.cached = false
	c.invalidations++
}
