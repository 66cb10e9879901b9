package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "budgetly/internal/errors"
	"budgetly/internal/models"
)

// BudgetFilter selects budgets by period. Nil fields are ignored.
type BudgetFilter struct {
	Month *int
	Year  *int
}

// BudgetRepository stores monthly budgets keyed by
// (user, category, month, year).
type BudgetRepository interface {
	// List returns the user's budgets with their category, ordered by
	// category name.
	List(ctx context.Context, userID string, filter BudgetFilter) ([]models.Budget, error)
	Find(ctx context.Context, userID, categoryID string, month, year int) (*models.Budget, error)
	// Upsert inserts the budget or, when its key already exists, replaces
	// the amount and updated_at of the existing row. The stored row is
	// returned; its id is the one assigned on first insert.
	Upsert(ctx context.Context, budget *models.Budget) (*models.Budget, error)
	Get(ctx context.Context, userID, id string) (*models.Budget, error)
	Delete(ctx context.Context, userID, id string) error
}

type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a GORM-backed BudgetRepository.
func NewBudgetRepository(db *gorm.DB) BudgetRepository {
	return &budgetRepository{db: db}
}

func (r *budgetRepository) List(ctx context.Context, userID string, filter BudgetFilter) ([]models.Budget, error) {
	q := r.db.WithContext(ctx).
		Model(&models.Budget{}).
		Joins("Category").
		Where("budgets.user_id = ?", userID)
	if filter.Month != nil {
		q = q.Where("budgets.month = ?", *filter.Month)
	}
	if filter.Year != nil {
		q = q.Where("budgets.year = ?", *filter.Year)
	}

	budgets := []models.Budget{}
	err := q.Order(clause.OrderByColumn{Column: clause.Column{Table: "Category", Name: "name"}}).
		Order("budgets.id ASC").
		Find(&budgets).Error
	if err != nil {
		return nil, storeError(err, nil, "budget.list")
	}
	return budgets, nil
}

func (r *budgetRepository) Find(ctx context.Context, userID, categoryID string, month, year int) (*models.Budget, error) {
	var budget models.Budget
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ? AND category_id = ? AND month = ? AND year = ?", userID, categoryID, month, year).
		First(&budget).Error
	if err != nil {
		return nil, storeError(err, apperrors.ErrBudgetNotFound, "budget.find")
	}
	return &budget, nil
}

func (r *budgetRepository) Upsert(ctx context.Context, budget *models.Budget) (*models.Budget, error) {
	row := *budget
	row.Category = nil

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "user_id"}, {Name: "category_id"}, {Name: "month"}, {Name: "year"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Wrap(apperrors.ErrBudgetConflict, err)
		}
		return nil, storeError(err, nil, "budget.upsert")
	}

	// On conflict the id generated for row was discarded; read back the
	// persisted row by its key.
	return r.Find(ctx, budget.UserID, budget.CategoryID, budget.Month, budget.Year)
}

func (r *budgetRepository) Get(ctx context.Context, userID, id string) (*models.Budget, error) {
	var budget models.Budget
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("id = ? AND user_id = ?", id, userID).
		First(&budget).Error
	if err != nil {
		return nil, storeError(err, apperrors.ErrBudgetNotFound, "budget.get")
	}
	return &budget, nil
}

func (r *budgetRepository) Delete(ctx context.Context, userID, id string) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Budget{})
	if res.Error != nil {
		return storeError(res.Error, nil, "budget.delete")
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrBudgetNotFound
	}
	return nil
}
