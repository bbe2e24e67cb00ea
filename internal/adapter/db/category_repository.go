package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"shoplist/internal/core/domain"
	"shoplist/internal/core/ports"
	"shoplist/internal/core/query"
)

const listCategoriesQuery = `
SELECT
  c.id,
  c.name,
  c.created_at,
  c.updated_at,
  (SELECT COUNT(*) FROM items i WHERE i.category_id = c.id) AS items_count
FROM categories c
ORDER BY c.name ASC`

const selectCategoryQuery = `
SELECT c.id, c.name, c.created_at, c.updated_at
FROM categories c`

type CategoryRepository struct {
	db      *sqlx.DB
	dialect dialect
}

type categoryRow struct {
	ID         string        `db:"id"`
	Name       string        `db:"name"`
	CreatedAt  time.Time     `db:"created_at"`
	UpdatedAt  time.Time     `db:"updated_at"`
	ItemsCount sql.NullInt64 `db:"items_count"`
}

var _ ports.CategoryRepository = (*CategoryRepository)(nil)

func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db, dialect: dialectOf(db)}
}

func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	var rows []categoryRow
	if err := r.db.SelectContext(ctx, &rows, listCategoriesQuery); err != nil {
		return nil, err
	}

	categories := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, mapCategoryRowToDomainCategory(row))
	}

	return categories, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id string) (domain.Category, error) {
	return r.getOne(ctx, selectCategoryQuery+" WHERE c.id = ?", id)
}

func (r *CategoryRepository) FindByName(ctx context.Context, name string) (domain.Category, error) {
	return r.getOne(ctx, selectCategoryQuery+" WHERE c.name = ?", name)
}

func (r *CategoryRepository) Create(ctx context.Context, category domain.Category) (domain.Category, error) {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO categories (id, name, created_at, updated_at) VALUES (?, ?, ?, ?)",
		category.ID,
		category.Name,
		category.CreatedAt,
		category.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return domain.Category{}, domain.ErrCategoryNameTaken
	}
	if err != nil {
		return domain.Category{}, err
	}

	return r.GetByID(ctx, category.ID)
}

func (r *CategoryRepository) Rename(ctx context.Context, id, name string, updatedAt time.Time) (domain.Category, error) {
	_, err := r.db.ExecContext(ctx,
		"UPDATE categories SET name = ?, updated_at = "+r.dialect.greatest+"(updated_at, ?) WHERE id = ?",
		name,
		updatedAt,
		id,
	)
	if isUniqueViolation(err) {
		return domain.Category{}, domain.ErrCategoryNameTaken
	}
	if err != nil {
		return domain.Category{}, err
	}

	return r.GetByID(ctx, id)
}

// DeleteUnreferenced runs the existence check, the reference count and the
// delete in one transaction. On MySQL the category row is locked so a
// concurrent item insert pointing at it waits on the foreign key check.
func (r *CategoryRepository) DeleteUnreferenced(ctx context.Context, id string) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var existing string
	err = tx.GetContext(ctx, &existing, "SELECT c.id FROM categories c WHERE c.id = ?"+r.dialect.rowLock, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrCategoryNotFound
	}
	if err != nil {
		return err
	}

	references, err := countItems(ctx, tx, query.ForCategory(id))
	if err != nil {
		return err
	}
	if references > 0 {
		return domain.ErrCategoryInUse
	}

	if _, err = tx.ExecContext(ctx, "DELETE FROM categories WHERE id = ?", id); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCategoryInUse
		}
		return err
	}

	return tx.Commit()
}

func (r *CategoryRepository) getOne(ctx context.Context, statement string, arg any) (domain.Category, error) {
	var row categoryRow
	err := r.db.GetContext(ctx, &row, statement, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Category{}, domain.ErrCategoryNotFound
	}
	if err != nil {
		return domain.Category{}, err
	}

	return mapCategoryRowToDomainCategory(row), nil
}

func mapCategoryRowToDomainCategory(row categoryRow) domain.Category {
	category := domain.Category{
		ID:        row.ID,
		Name:      row.Name,
		CreatedAt: row.CreatedAt.UTC(),
		UpdatedAt: row.UpdatedAt.UTC(),
	}

	if row.ItemsCount.Valid {
		count := int(row.ItemsCount.Int64)
		category.ItemsCount = &count
	}

	return category
}
