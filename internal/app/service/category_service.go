package service

import (
	"context"
	"errors"
	"time"

	"shoplist/internal/core/domain"
	"shoplist/internal/core/ports"
)

type CategoryService struct {
	categoryRepository ports.CategoryRepository
	categoryCache      ports.CategoryCache
	now                func() time.Time
	newID              func() string
}

func NewCategoryService(categoryRepository ports.CategoryRepository, categoryCache ports.CategoryCache) *CategoryService {
	return &CategoryService{
		categoryRepository: categoryRepository,
		categoryCache:      cacheOrNoop(categoryCache),
		now:                defaultNow,
		newID:              defaultNewID,
	}
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	if categories, ok := s.categoryCache.GetList(ctx); ok {
		return categories, nil
	}

	categories, err := s.categoryRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	s.categoryCache.SetList(ctx, categories)
	return categories, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, id string) (domain.Category, error) {
	return s.categoryRepository.GetByID(ctx, id)
}

// CreateCategory checks the name up front; the storage unique index catches
// a concurrent insert that slips between the check and the write.
func (s *CategoryService) CreateCategory(ctx context.Context, name string) (domain.Category, error) {
	if err := s.ensureNameAvailable(ctx, name, ""); err != nil {
		return domain.Category{}, err
	}

	now := s.now()
	category, err := s.categoryRepository.Create(ctx, domain.Category{
		ID:        s.newID(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return domain.Category{}, err
	}

	s.categoryCache.Invalidate(ctx)
	return category, nil
}

func (s *CategoryService) RenameCategory(ctx context.Context, id, name string) (domain.Category, error) {
	if _, err := s.categoryRepository.GetByID(ctx, id); err != nil {
		return domain.Category{}, err
	}
	if err := s.ensureNameAvailable(ctx, name, id); err != nil {
		return domain.Category{}, err
	}

	category, err := s.categoryRepository.Rename(ctx, id, name, s.now())
	if err != nil {
		return domain.Category{}, err
	}

	s.categoryCache.Invalidate(ctx)
	return category, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id string) error {
	if err := s.categoryRepository.DeleteUnreferenced(ctx, id); err != nil {
		return err
	}

	s.categoryCache.Invalidate(ctx)
	return nil
}

// SeedCategories creates the named categories that do not exist yet and
// returns how many were created.
func (s *CategoryService) SeedCategories(ctx context.Context, names []string) (int, error) {
	created := 0
	for _, name := range names {
		_, err := s.CreateCategory(ctx, name)
		if errors.Is(err, domain.ErrCategoryNameTaken) {
			continue
		}
		if err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

func (s *CategoryService) ensureNameAvailable(ctx context.Context, name, ownID string) error {
	existing, err := s.categoryRepository.FindByName(ctx, name)
	if errors.Is(err, domain.ErrCategoryNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != ownID {
		return domain.ErrCategoryNameTaken
	}
	return nil
}

var _ ports.CategoryService = (*CategoryService)(nil)
