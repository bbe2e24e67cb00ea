package db

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoplist/internal/core/domain"
	"shoplist/internal/core/query"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := ConnectSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(context.Background(), db))
	return db
}

var baseTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func seedCategory(t *testing.T, repo *CategoryRepository, name string) domain.Category {
	t.Helper()

	category, err := repo.Create(context.Background(), domain.Category{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: baseTime,
		UpdatedAt: baseTime,
	})
	require.NoError(t, err)
	return category
}

func seedItem(t *testing.T, repo *ItemRepository, name string, quantity int, done bool, categoryID *string, offset time.Duration) domain.Item {
	t.Helper()

	at := baseTime.Add(offset)
	item, err := repo.Create(context.Background(), domain.Item{
		ID:         uuid.NewString(),
		Name:       name,
		Quantity:   quantity,
		Done:       done,
		CategoryID: categoryID,
		CreatedAt:  at,
		UpdatedAt:  at,
	})
	require.NoError(t, err)
	return item
}

func strPtr(value string) *string { return &value }

func TestMigrate_IsIdempotent(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Migrate(context.Background(), db))
}

func TestItemRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategoryRepository(db)
	items := NewItemRepository(db)

	grocery := seedCategory(t, categories, "Mercearia")
	created := seedItem(t, items, "Arroz", 5, false, &grocery.ID, 0)

	fetched, err := items.GetByID(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, created, fetched)
	assert.Equal(t, "Arroz", fetched.Name)
	assert.Equal(t, 5, fetched.Quantity)
	assert.False(t, fetched.Done)
	require.NotNil(t, fetched.CategoryID)
	assert.Equal(t, grocery.ID, *fetched.CategoryID)
	require.NotNil(t, fetched.Category)
	assert.Equal(t, "Mercearia", fetched.Category.Name)
	assert.True(t, fetched.CreatedAt.Equal(baseTime))
}

func TestItemRepository_CreateWithUnknownCategory(t *testing.T) {
	db := newTestDB(t)
	items := NewItemRepository(db)

	_, err := items.Create(context.Background(), domain.Item{
		ID:         uuid.NewString(),
		Name:       "Leite",
		Quantity:   1,
		CategoryID: strPtr(uuid.NewString()),
		CreatedAt:  baseTime,
		UpdatedAt:  baseTime,
	})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestItemRepository_GetByIDNotFound(t *testing.T) {
	items := NewItemRepository(newTestDB(t))

	_, err := items.GetByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestItemRepository_FindFiltersAndCount(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategoryRepository(db)
	items := NewItemRepository(db)
	ctx := context.Background()

	drinks := seedCategory(t, categories, "Bebidas")
	seedItem(t, items, "Suco de laranja", 2, false, &drinks.ID, time.Minute)
	seedItem(t, items, "Suco de uva", 1, true, &drinks.ID, 2*time.Minute)
	seedItem(t, items, "Arroz", 5, false, nil, 3*time.Minute)
	seedItem(t, items, "100% integral", 1, false, nil, 4*time.Minute)

	filter := query.Filter{Search: strPtr("SUCO"), OnlyOpen: true, CategoryID: &drinks.ID}
	found, err := items.Find(ctx, filter, query.Ordering{Column: domain.SortByName, Direction: domain.OrderAsc}, query.Window{Limit: 10})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Suco de laranja", found[0].Name)

	total, err := items.Count(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	total, err = items.Count(ctx, query.Filter{Search: strPtr("%")})
	require.NoError(t, err)
	assert.Equal(t, 1, total, "percent sign must match literally")

	total, err = items.Count(ctx, query.Filter{Search: strPtr("_")})
	require.NoError(t, err)
	assert.Equal(t, 0, total, "underscore must match literally")

	total, err = items.Count(ctx, query.Filter{})
	require.NoError(t, err)
	assert.Equal(t, 4, total)
}

func TestItemRepository_FindOrdersAndWindows(t *testing.T) {
	db := newTestDB(t)
	items := NewItemRepository(db)
	ctx := context.Background()

	for i, name := range []string{"c", "a", "e", "b", "d"} {
		seedItem(t, items, name, i+1, false, nil, time.Duration(i)*time.Minute)
	}

	byName, err := items.Find(ctx, query.Filter{}, query.Ordering{Column: domain.SortByName, Direction: domain.OrderAsc}, query.Window{Offset: 1, Limit: 2})
	require.NoError(t, err)
	require.Len(t, byName, 2)
	assert.Equal(t, "b", byName[0].Name)
	assert.Equal(t, "c", byName[1].Name)

	newest, err := items.Find(ctx, query.Filter{}, query.Ordering{Column: domain.SortByCreatedAt, Direction: domain.OrderDesc}, query.Window{Limit: 1})
	require.NoError(t, err)
	require.Len(t, newest, 1)
	assert.Equal(t, "d", newest[0].Name)

	byQuantity, err := items.Find(ctx, query.Filter{}, query.Ordering{Column: domain.SortByQuantity, Direction: domain.OrderDesc}, query.Window{Limit: 5})
	require.NoError(t, err)
	require.Len(t, byQuantity, 5)
	assert.Equal(t, 5, byQuantity[0].Quantity)
	assert.Equal(t, 1, byQuantity[4].Quantity)

	past, err := items.Find(ctx, query.Filter{}, query.Ordering{Column: domain.SortByName, Direction: domain.OrderAsc}, query.Window{Offset: 10, Limit: 5})
	require.NoError(t, err)
	assert.Empty(t, past)
}

func TestItemRepository_UpdatePartial(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategoryRepository(db)
	items := NewItemRepository(db)
	ctx := context.Background()

	bakery := seedCategory(t, categories, "Padaria")
	item := seedItem(t, items, "Pao", 6, false, &bakery.ID, 0)

	done := true
	later := baseTime.Add(time.Hour)
	updated, err := items.Update(ctx, item.ID, domain.UpdateItemInput{Done: &done}, later)
	require.NoError(t, err)
	assert.True(t, updated.Done)
	assert.Equal(t, "Pao", updated.Name)
	assert.Equal(t, 6, updated.Quantity)
	require.NotNil(t, updated.CategoryID)
	assert.Equal(t, bakery.ID, *updated.CategoryID)
	assert.True(t, updated.UpdatedAt.Equal(later))
	assert.True(t, updated.CreatedAt.Equal(item.CreatedAt))

	cleared, err := items.Update(ctx, item.ID, domain.UpdateItemInput{CategoryIDSet: true}, later)
	require.NoError(t, err)
	assert.Nil(t, cleared.CategoryID)
	assert.Nil(t, cleared.Category)
}

func TestItemRepository_UpdateNeverMovesUpdatedAtBackwards(t *testing.T) {
	db := newTestDB(t)
	items := NewItemRepository(db)

	item := seedItem(t, items, "Cafe", 1, false, nil, time.Hour)
	name := "Cafe torrado"

	updated, err := items.Update(context.Background(), item.ID, domain.UpdateItemInput{Name: &name}, baseTime)
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
	assert.True(t, updated.UpdatedAt.Equal(item.UpdatedAt))
}

func TestItemRepository_UpdateErrors(t *testing.T) {
	db := newTestDB(t)
	items := NewItemRepository(db)
	ctx := context.Background()

	done := true
	_, err := items.Update(ctx, uuid.NewString(), domain.UpdateItemInput{Done: &done}, baseTime)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	item := seedItem(t, items, "Feijao", 1, false, nil, 0)
	_, err = items.Update(ctx, item.ID, domain.UpdateItemInput{CategoryID: strPtr(uuid.NewString()), CategoryIDSet: true}, baseTime)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestItemRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	items := NewItemRepository(db)
	ctx := context.Background()

	item := seedItem(t, items, "Ovos", 12, false, nil, 0)

	require.NoError(t, items.Delete(ctx, item.ID))
	assert.ErrorIs(t, items.Delete(ctx, item.ID), domain.ErrItemNotFound)

	_, err := items.GetByID(ctx, item.ID)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestCategoryRepository_ListCountsItems(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategoryRepository(db)
	items := NewItemRepository(db)

	drinks := seedCategory(t, categories, "Bebidas")
	seedCategory(t, categories, "Acougue")
	seedItem(t, items, "Agua", 6, false, &drinks.ID, 0)
	seedItem(t, items, "Refrigerante", 2, true, &drinks.ID, time.Minute)

	listed, err := categories.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 2)

	assert.Equal(t, "Acougue", listed[0].Name)
	require.NotNil(t, listed[0].ItemsCount)
	assert.Equal(t, 0, *listed[0].ItemsCount)

	assert.Equal(t, "Bebidas", listed[1].Name)
	require.NotNil(t, listed[1].ItemsCount)
	assert.Equal(t, 2, *listed[1].ItemsCount)
}

func TestCategoryRepository_NameIsUniqueAndCaseSensitive(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategoryRepository(db)
	ctx := context.Background()

	seedCategory(t, categories, "Bebidas")

	_, err := categories.Create(ctx, domain.Category{ID: uuid.NewString(), Name: "Bebidas", CreatedAt: baseTime, UpdatedAt: baseTime})
	assert.ErrorIs(t, err, domain.ErrCategoryNameTaken)

	lower := seedCategory(t, categories, "bebidas")
	assert.Equal(t, "bebidas", lower.Name)

	found, err := categories.FindByName(ctx, "bebidas")
	require.NoError(t, err)
	assert.Equal(t, lower.ID, found.ID)

	_, err = categories.FindByName(ctx, "BEBIDAS")
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)

	_, err = categories.Rename(ctx, lower.ID, "Bebidas", baseTime.Add(time.Minute))
	assert.ErrorIs(t, err, domain.ErrCategoryNameTaken)
}

func TestCategoryRepository_Rename(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategoryRepository(db)

	category := seedCategory(t, categories, "Hortifruti")
	later := baseTime.Add(time.Minute)

	renamed, err := categories.Rename(context.Background(), category.ID, "Feira", later)
	require.NoError(t, err)
	assert.Equal(t, "Feira", renamed.Name)
	assert.True(t, renamed.UpdatedAt.Equal(later))
	assert.True(t, renamed.CreatedAt.Equal(category.CreatedAt))

	_, err = categories.Rename(context.Background(), uuid.NewString(), "Nada", later)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestCategoryRepository_DeleteUnreferenced(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategoryRepository(db)
	items := NewItemRepository(db)
	ctx := context.Background()

	used := seedCategory(t, categories, "Mercearia")
	unused := seedCategory(t, categories, "Padaria")
	item := seedItem(t, items, "Arroz", 1, false, &used.ID, 0)

	assert.ErrorIs(t, categories.DeleteUnreferenced(ctx, used.ID), domain.ErrCategoryInUse)

	_, err := categories.GetByID(ctx, used.ID)
	require.NoError(t, err, "a guarded category must survive the failed delete")

	require.NoError(t, categories.DeleteUnreferenced(ctx, unused.ID))
	assert.ErrorIs(t, categories.DeleteUnreferenced(ctx, unused.ID), domain.ErrCategoryNotFound)

	require.NoError(t, items.Delete(ctx, item.ID))
	require.NoError(t, categories.DeleteUnreferenced(ctx, used.ID))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "50!%", escapeLike("50%"))
	assert.Equal(t, "a!_b", escapeLike("a_b"))
	assert.Equal(t, "wow!!", escapeLike("wow!"))
	assert.Equal(t, "plain", escapeLike("plain"))
}
