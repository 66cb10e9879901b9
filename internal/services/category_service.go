package services

import (
	"context"

	apperrors "budgetly/internal/errors"
	"budgetly/internal/logger"
	"budgetly/internal/models"
	"budgetly/internal/repository"
)

// categoryService serves the shared, read-only category catalog.
type categoryService struct {
	categories repository.CategoryRepository
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(categories repository.CategoryRepository) CategoryServicer {
	return &categoryService{categories: categories}
}

// ListCategories returns the catalog ordered by name, optionally
// restricted to one type.
func (s *categoryService) ListCategories(ctx context.Context, categoryType *models.CategoryType) ([]models.Category, error) {
	if categoryType != nil && !categoryType.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be income or expense")
	}
	return s.categories.List(ctx, categoryType)
}

// GetCategoryByID returns a single category.
func (s *categoryService) GetCategoryByID(ctx context.Context, id string) (*models.Category, error) {
	return s.categories.Get(ctx, id)
}

// EnsureDefaults seeds the default catalog. Running it again is a no-op.
func (s *categoryService) EnsureDefaults(ctx context.Context) (int64, error) {
	n, err := s.categories.EnsureDefaults(ctx, models.DefaultCategories)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		logger.Get().Infow("seeded default categories", "inserted", n)
	}
	return n, nil
}
