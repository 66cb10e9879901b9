package services

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"budgetly/internal/models"
	"budgetly/internal/pagination"
	"budgetly/internal/repository"
	"budgetly/internal/testutil"
)

// repos bundles the GORM repositories over one test database.
type repos struct {
	transactions repository.TransactionRepository
	budgets      repository.BudgetRepository
	categories   repository.CategoryRepository
}

func newRepos(db *gorm.DB) repos {
	return repos{
		transactions: repository.NewTransactionRepository(db),
		budgets:      repository.NewBudgetRepository(db),
		categories:   repository.NewCategoryRepository(db),
	}
}

// failingTransactions is a TransactionRepository whose reads fail.
type failingTransactions struct {
	repository.TransactionRepository
	err error
}

func (f failingTransactions) List(context.Context, string, repository.TransactionFilter) ([]models.Transaction, error) {
	return nil, f.err
}

func (f failingTransactions) ListPage(context.Context, string, repository.TransactionFilter, pagination.PageRequest) ([]models.Transaction, int64, error) {
	return nil, 0, f.err
}

// stubBudgets is a BudgetRepository whose Upsert returns a fixed error.
type stubBudgets struct {
	repository.BudgetRepository
	upsertErr error
}

func (s stubBudgets) Upsert(context.Context, *models.Budget) (*models.Budget, error) {
	return nil, s.upsertErr
}

// partialCatalog is a CategoryRepository whose List returns only one category.
type partialCatalog struct {
	repository.CategoryRepository
	keep string
}

func (p partialCatalog) List(ctx context.Context, typ *models.CategoryType) ([]models.Category, error) {
	all, err := p.CategoryRepository.List(ctx, typ)
	if err != nil {
		return nil, err
	}
	var kept []models.Category
	for _, c := range all {
		if c.ID == p.keep {
			kept = append(kept, c)
		}
	}
	return kept, nil
}

func mustCategory(t *testing.T, db *gorm.DB, name string, typ models.CategoryType) *models.Category {
	t.Helper()
	return testutil.CreateTestCategoryNamed(t, db, name, typ)
}
