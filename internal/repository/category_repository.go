package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "budgetly/internal/errors"
	"budgetly/internal/models"
)

// CategoryRepository reads and seeds the shared category catalog.
type CategoryRepository interface {
	// List returns categories ordered by name. A nil type returns all.
	List(ctx context.Context, categoryType *models.CategoryType) ([]models.Category, error)
	Get(ctx context.Context, id string) (*models.Category, error)
	// EnsureDefaults inserts the given categories, skipping any whose
	// (name, type) already exists. It returns the number inserted.
	EnsureDefaults(ctx context.Context, defaults []models.Category) (int64, error)
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a GORM-backed CategoryRepository.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) List(ctx context.Context, categoryType *models.CategoryType) ([]models.Category, error) {
	q := r.db.WithContext(ctx).Model(&models.Category{})
	if categoryType != nil {
		q = q.Where("type = ?", *categoryType)
	}

	categories := []models.Category{}
	if err := q.Order("name ASC").Order("id ASC").Find(&categories).Error; err != nil {
		return nil, storeError(err, nil, "category.list")
	}
	return categories, nil
}

func (r *categoryRepository) Get(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, storeError(err, apperrors.ErrCategoryNotFound, "category.get")
	}
	return &category, nil
}

func (r *categoryRepository) EnsureDefaults(ctx context.Context, defaults []models.Category) (int64, error) {
	if len(defaults) == 0 {
		return 0, nil
	}

	rows := make([]models.Category, len(defaults))
	copy(rows, defaults)
	for i := range rows {
		rows[i].ID = ""
	}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}, {Name: "type"}},
			DoNothing: true,
		}).
		Create(&rows)
	if res.Error != nil {
		return 0, storeError(res.Error, nil, "category.ensure_defaults")
	}
	return res.RowsAffected, nil
}
