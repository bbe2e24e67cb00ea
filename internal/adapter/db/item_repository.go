package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"shoplist/internal/core/domain"
	"shoplist/internal/core/ports"
	"shoplist/internal/core/query"
)

const selectItemsQuery = `
SELECT
  i.id,
  i.name,
  i.quantity,
  i.done,
  i.category_id,
  i.created_at,
  i.updated_at,
  c.name AS category_name,
  c.created_at AS category_created_at,
  c.updated_at AS category_updated_at
FROM items i
LEFT JOIN categories c ON c.id = i.category_id`

const insertItemQuery = `
INSERT INTO items (id, name, quantity, done, category_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`

type ItemRepository struct {
	db      *sqlx.DB
	dialect dialect
}

type itemRow struct {
	ID                string         `db:"id"`
	Name              string         `db:"name"`
	Quantity          int            `db:"quantity"`
	Done              bool           `db:"done"`
	CategoryID        sql.NullString `db:"category_id"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
	CategoryName      sql.NullString `db:"category_name"`
	CategoryCreatedAt sql.NullTime   `db:"category_created_at"`
	CategoryUpdatedAt sql.NullTime   `db:"category_updated_at"`
}

var _ ports.ItemRepository = (*ItemRepository)(nil)

func NewItemRepository(db *sqlx.DB) *ItemRepository {
	return &ItemRepository{db: db, dialect: dialectOf(db)}
}

func (r *ItemRepository) Find(ctx context.Context, filter query.Filter, ordering query.Ordering, window query.Window) ([]domain.Item, error) {
	where, args := itemWhere(filter)
	statement := selectItemsQuery + where + itemOrderBy(ordering) + " LIMIT ? OFFSET ?"
	args = append(args, window.Limit, window.Offset)

	var rows []itemRow
	if err := r.db.SelectContext(ctx, &rows, statement, args...); err != nil {
		return nil, err
	}

	items := make([]domain.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, mapItemRowToDomainItem(row))
	}

	return items, nil
}

func (r *ItemRepository) Count(ctx context.Context, filter query.Filter) (int, error) {
	return countItems(ctx, r.db, filter)
}

func (r *ItemRepository) GetByID(ctx context.Context, id string) (domain.Item, error) {
	var row itemRow
	err := r.db.GetContext(ctx, &row, selectItemsQuery+" WHERE i.id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Item{}, domain.ErrItemNotFound
	}
	if err != nil {
		return domain.Item{}, err
	}

	return mapItemRowToDomainItem(row), nil
}

func (r *ItemRepository) Create(ctx context.Context, item domain.Item) (domain.Item, error) {
	_, err := r.db.ExecContext(ctx, insertItemQuery,
		item.ID,
		item.Name,
		item.Quantity,
		item.Done,
		nullableString(item.CategoryID),
		item.CreatedAt,
		item.UpdatedAt,
	)
	if isForeignKeyViolation(err) {
		return domain.Item{}, domain.ErrCategoryNotFound
	}
	if err != nil {
		return domain.Item{}, err
	}

	return r.GetByID(ctx, item.ID)
}

// Update writes only the fields present in input. updated_at never moves
// backwards, even if the clock does.
func (r *ItemRepository) Update(ctx context.Context, id string, input domain.UpdateItemInput, updatedAt time.Time) (domain.Item, error) {
	var (
		sets []string
		args []any
	)

	if input.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *input.Name)
	}
	if input.Quantity != nil {
		sets = append(sets, "quantity = ?")
		args = append(args, *input.Quantity)
	}
	if input.Done != nil {
		sets = append(sets, "done = ?")
		args = append(args, *input.Done)
	}
	if input.CategoryIDSet {
		sets = append(sets, "category_id = ?")
		args = append(args, nullableString(input.CategoryID))
	}
	sets = append(sets, "updated_at = "+r.dialect.greatest+"(updated_at, ?)")
	args = append(args, updatedAt, id)

	statement := "UPDATE items SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	_, err := r.db.ExecContext(ctx, statement, args...)
	if isForeignKeyViolation(err) {
		return domain.Item{}, domain.ErrCategoryNotFound
	}
	if err != nil {
		return domain.Item{}, err
	}

	// MySQL reports zero affected rows when nothing changed, so existence is
	// decided by reading the row back.
	return r.GetByID(ctx, id)
}

func (r *ItemRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM items WHERE id = ?", id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrItemNotFound
	}

	return nil
}

func countItems(ctx context.Context, q sqlx.QueryerContext, filter query.Filter) (int, error) {
	where, args := itemWhere(filter)

	var total int
	if err := sqlx.GetContext(ctx, q, &total, "SELECT COUNT(*) FROM items i"+where, args...); err != nil {
		return 0, err
	}

	return total, nil
}

func mapItemRowToDomainItem(row itemRow) domain.Item {
	item := domain.Item{
		ID:        row.ID,
		Name:      row.Name,
		Quantity:  row.Quantity,
		Done:      row.Done,
		CreatedAt: row.CreatedAt.UTC(),
		UpdatedAt: row.UpdatedAt.UTC(),
	}

	if row.CategoryID.Valid {
		value := row.CategoryID.String
		item.CategoryID = &value

		if row.CategoryName.Valid {
			item.Category = &domain.Category{
				ID:        value,
				Name:      row.CategoryName.String,
				CreatedAt: row.CategoryCreatedAt.Time.UTC(),
				UpdatedAt: row.CategoryUpdatedAt.Time.UTC(),
			}
		}
	}

	return item
}

func nullableString(value *string) any {
	if value == nil {
		return nil
	}
	return *value
}
