package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"budgetly/internal/analytics"
	apperrors "budgetly/internal/errors"
	"budgetly/internal/logger"
	"budgetly/internal/models"
	"budgetly/internal/repository"
)

// MinBudgetYear is the earliest year a budget may be set for.
const MinBudgetYear = 2000

// budgetService handles budget-related business logic.
type budgetService struct {
	budgets      repository.BudgetRepository
	transactions repository.TransactionRepository
	categories   repository.CategoryRepository
	now          func() time.Time
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(
	budgets repository.BudgetRepository,
	transactions repository.TransactionRepository,
	categories repository.CategoryRepository,
) BudgetServicer {
	return newBudgetService(budgets, transactions, categories, time.Now)
}

func newBudgetService(
	budgets repository.BudgetRepository,
	transactions repository.TransactionRepository,
	categories repository.CategoryRepository,
	now func() time.Time,
) *budgetService {
	return &budgetService{
		budgets:      budgets,
		transactions: transactions,
		categories:   categories,
		now:          now,
	}
}

func validatePeriod(month, year int) error {
	if month < 1 || month > 12 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("month must be between 1 and 12, got %d", month))
	}
	if year < MinBudgetYear {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("year must be %d or later, got %d", MinBudgetYear, year))
	}
	return nil
}

// UpsertBudget sets the budget for a category and month, creating it on
// first use and replacing the amount afterwards.
func (s *budgetService) UpsertBudget(
	ctx context.Context,
	userID, categoryID string,
	month, year int,
	amount decimal.Decimal,
) (*models.Budget, error) {
	amount = analytics.RoundMoney(amount)
	if !amount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}
	if categoryID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category ID is required")
	}

	category, err := s.categories.Get(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category.Type != models.CategoryTypeExpense {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "budgets can only be set for expense categories")
	}

	now := s.now().UTC()
	budget, err := s.budgets.Upsert(ctx, &models.Budget{
		Base:       models.Base{CreatedAt: now, UpdatedAt: now},
		UserID:     userID,
		CategoryID: categoryID,
		Month:      month,
		Year:       year,
		Amount:     amount,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrBudgetNotFound) {
			logger.Get().Warnw("budget vanished between upsert and read-back",
				"user_id", userID, "category_id", categoryID, "month", month, "year", year)
		}
		return nil, err
	}
	return budget, nil
}

// ListBudgets returns the user's budgets, optionally for a single month.
// Month and year must be given together.
func (s *budgetService) ListBudgets(ctx context.Context, userID string, month, year *int) ([]models.Budget, error) {
	if (month == nil) != (year == nil) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month and year must be provided together")
	}
	if month != nil {
		if err := validatePeriod(*month, *year); err != nil {
			return nil, err
		}
	}
	return s.budgets.List(ctx, userID, repository.BudgetFilter{Month: month, Year: year})
}

// DeleteBudget permanently removes a budget.
func (s *budgetService) DeleteBudget(ctx context.Context, userID, budgetID string) error {
	return s.budgets.Delete(ctx, userID, budgetID)
}

// GetBudgetAnalysis compares the month's budgets with actual spending.
func (s *budgetService) GetBudgetAnalysis(ctx context.Context, userID string, month, year int) (*analytics.BudgetAnalysis, error) {
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}
	span, err := analytics.MonthSpan(month, year)
	if err != nil {
		return nil, err
	}

	budgets, err := s.budgets.List(ctx, userID, repository.BudgetFilter{Month: &month, Year: &year})
	if err != nil {
		return nil, err
	}

	expense := models.TransactionTypeExpense
	transactions, err := s.transactions.List(ctx, userID, repository.TransactionFilter{
		StartDate: span.Start,
		EndDate:   span.End,
		Type:      &expense,
	})
	if err != nil {
		return nil, err
	}

	categories, err := s.categories.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	return analytics.ComputeBudgetAnalysis(userID, month, year, budgets, transactions, categories)
}
