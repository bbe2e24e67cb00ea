package tests

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	httpadapter "shoplist/internal/adapter/http"
	"shoplist/internal/adapter/http/handlers"
	"shoplist/internal/core/domain"
)

type itemServiceMock struct {
	mock.Mock
}

func (m *itemServiceMock) ListItems(ctx context.Context, q domain.ItemQuery) (domain.Page[domain.Item], error) {
	args := m.Called(ctx, q)

	var page domain.Page[domain.Item]
	if value := args.Get(0); value != nil {
		page = value.(domain.Page[domain.Item])
	}
	return page, args.Error(1)
}

func (m *itemServiceMock) GetItem(ctx context.Context, id string) (domain.Item, error) {
	args := m.Called(ctx, id)
	return itemResult(args)
}

func (m *itemServiceMock) CreateItem(ctx context.Context, input domain.CreateItemInput) (domain.Item, error) {
	args := m.Called(ctx, input)
	return itemResult(args)
}

func (m *itemServiceMock) UpdateItem(ctx context.Context, id string, input domain.UpdateItemInput) (domain.Item, error) {
	args := m.Called(ctx, id, input)
	return itemResult(args)
}

func (m *itemServiceMock) DeleteItem(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func itemResult(args mock.Arguments) (domain.Item, error) {
	var item domain.Item
	if value := args.Get(0); value != nil {
		item = value.(domain.Item)
	}
	return item, args.Error(1)
}

type categoryServiceMock struct {
	mock.Mock
}

func (m *categoryServiceMock) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)

	var categories []domain.Category
	if value := args.Get(0); value != nil {
		categories = value.([]domain.Category)
	}
	return categories, args.Error(1)
}

func (m *categoryServiceMock) GetCategory(ctx context.Context, id string) (domain.Category, error) {
	args := m.Called(ctx, id)
	return categoryResult(args)
}

func (m *categoryServiceMock) CreateCategory(ctx context.Context, name string) (domain.Category, error) {
	args := m.Called(ctx, name)
	return categoryResult(args)
}

func (m *categoryServiceMock) RenameCategory(ctx context.Context, id, name string) (domain.Category, error) {
	args := m.Called(ctx, id, name)
	return categoryResult(args)
}

func (m *categoryServiceMock) DeleteCategory(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *categoryServiceMock) SeedCategories(ctx context.Context, names []string) (int, error) {
	args := m.Called(ctx, names)
	return args.Int(0), args.Error(1)
}

func categoryResult(args mock.Arguments) (domain.Category, error) {
	var category domain.Category
	if value := args.Get(0); value != nil {
		category = value.(domain.Category)
	}
	return category, args.Error(1)
}

func newRouter(items *itemServiceMock, categories *categoryServiceMock) *gin.Engine {
	router := gin.New()
	httpadapter.RegisterRoutes(router, httpadapter.Handlers{
		Health:     handlers.NewHealthHandler(nil, nil),
		Items:      handlers.NewItemHandler(items),
		Categories: handlers.NewCategoryHandler(categories),
	})
	return router
}

func serve(router *gin.Engine, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func strPtr(value string) *string { return &value }

func boolPtr(value bool) *bool { return &value }

func assertNoCalls(t *testing.T, m *mock.Mock) {
	t.Helper()
	m.AssertExpectations(t)
	if len(m.Calls) != 0 {
		t.Fatalf("expected no service calls, got %d", len(m.Calls))
	}
}
