package service

import (
	"context"
	"errors"
	"time"

	"shoplist/internal/core/domain"
	"shoplist/internal/core/ports"
	"shoplist/internal/core/query"
)

type ItemService struct {
	itemRepository     ports.ItemRepository
	categoryRepository ports.CategoryRepository
	categoryCache      ports.CategoryCache
	now                func() time.Time
	newID              func() string
}

func NewItemService(
	itemRepository ports.ItemRepository,
	categoryRepository ports.CategoryRepository,
	categoryCache ports.CategoryCache,
) *ItemService {
	return &ItemService{
		itemRepository:     itemRepository,
		categoryRepository: categoryRepository,
		categoryCache:      cacheOrNoop(categoryCache),
		now:                defaultNow,
		newID:              defaultNewID,
	}
}

// ListItems counts the matching rows first so the envelope carries the
// pre-pagination total, then fetches the requested window. Pages past the
// last one are answered without touching storage.
func (s *ItemService) ListItems(ctx context.Context, q domain.ItemQuery) (domain.Page[domain.Item], error) {
	filter := query.BuildFilter(q)
	window := query.BuildWindow(q)

	total, err := s.itemRepository.Count(ctx, filter)
	if err != nil {
		return domain.Page[domain.Item]{}, err
	}

	var items []domain.Item
	if q.Page <= query.TotalPages(total, q.PerPage) && window.Offset < total {
		items, err = s.itemRepository.Find(ctx, filter, query.BuildOrdering(q), window)
		if err != nil {
			return domain.Page[domain.Item]{}, err
		}
	}

	return query.ComposeEnvelope(items, total, q), nil
}

func (s *ItemService) GetItem(ctx context.Context, id string) (domain.Item, error) {
	return s.itemRepository.GetByID(ctx, id)
}

func (s *ItemService) CreateItem(ctx context.Context, input domain.CreateItemInput) (domain.Item, error) {
	if err := s.ensureCategoryExists(ctx, input.CategoryID); err != nil {
		return domain.Item{}, err
	}

	quantity := input.Quantity
	if quantity == 0 {
		quantity = domain.DefaultQuantity
	}

	now := s.now()
	item, err := s.itemRepository.Create(ctx, domain.Item{
		ID:         s.newID(),
		Name:       input.Name,
		Quantity:   quantity,
		Done:       input.Done,
		CategoryID: input.CategoryID,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return domain.Item{}, unknownCategoryOr(err)
	}

	s.categoryCache.Invalidate(ctx)
	return item, nil
}

func (s *ItemService) UpdateItem(ctx context.Context, id string, input domain.UpdateItemInput) (domain.Item, error) {
	if input.IsEmpty() {
		return domain.Item{}, domain.NewValidationError("body", domain.ReasonEmptyUpdate)
	}
	if input.CategoryIDSet {
		if err := s.ensureCategoryExists(ctx, input.CategoryID); err != nil {
			return domain.Item{}, err
		}
	}

	item, err := s.itemRepository.Update(ctx, id, input, s.now())
	if err != nil {
		return domain.Item{}, unknownCategoryOr(err)
	}

	s.categoryCache.Invalidate(ctx)
	return item, nil
}

func (s *ItemService) DeleteItem(ctx context.Context, id string) error {
	if err := s.itemRepository.Delete(ctx, id); err != nil {
		return err
	}

	s.categoryCache.Invalidate(ctx)
	return nil
}

func (s *ItemService) ensureCategoryExists(ctx context.Context, categoryID *string) error {
	if categoryID == nil {
		return nil
	}
	_, err := s.categoryRepository.GetByID(ctx, *categoryID)
	return unknownCategoryOr(err)
}

// unknownCategoryOr reports a dangling category reference as a validation
// failure on categoryId; every other error passes through.
func unknownCategoryOr(err error) error {
	if errors.Is(err, domain.ErrCategoryNotFound) {
		return domain.NewValidationError("categoryId", domain.ReasonUnknownCategory)
	}
	return err
}

var _ ports.ItemService = (*ItemService)(nil)
