package services

import (
	"context"
	"testing"

	"budgetly/internal/analytics"
	apperrors "budgetly/internal/errors"
	"budgetly/internal/models"
	"budgetly/internal/testutil"
)

func TestGetSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("totals_and_groups", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		r := newRepos(db)
		svc := NewDashboardService(r.transactions, r.categories)

		user := testutil.CreateTestUser(t, db)
		food := mustCategory(t, db, "Food", models.CategoryTypeExpense)
		rent := mustCategory(t, db, "Rent", models.CategoryTypeExpense)
		salary := mustCategory(t, db, "Salary", models.CategoryTypeIncome)

		testutil.CreateTestTransaction(t, db, user.ID, salary.ID, models.TransactionTypeIncome, "1000", "2024-01-01")
		testutil.CreateTestTransaction(t, db, user.ID, food.ID, models.TransactionTypeExpense, "300", "2024-01-02")
		testutil.CreateTestTransaction(t, db, user.ID, rent.ID, models.TransactionTypeExpense, "200", "2024-01-03")

		s, err := svc.GetSummary(ctx, user.ID, analytics.DateRange{})
		testutil.AssertNoError(t, err)

		if s.TotalIncome.String() != "1000" || s.TotalExpense.String() != "500" || s.CurrentBalance.String() != "500" {
			t.Errorf("unexpected totals: income %s expense %s balance %s", s.TotalIncome, s.TotalExpense, s.CurrentBalance)
		}
		if len(s.ExpensesByCategory) != 2 || s.ExpensesByCategory[0].Name != "Food" {
			t.Errorf("unexpected expense groups: %+v", s.ExpensesByCategory)
		}
		if len(s.RecentTransactions) != 3 {
			t.Errorf("expected 3 recent transactions, got %d", len(s.RecentTransactions))
		}
	})

	t.Run("date_range", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		r := newRepos(db)
		svc := NewDashboardService(r.transactions, r.categories)

		user := testutil.CreateTestUser(t, db)
		food := mustCategory(t, db, "Food", models.CategoryTypeExpense)
		testutil.CreateTestTransaction(t, db, user.ID, food.ID, models.TransactionTypeExpense, "10", "2024-01-31")
		testutil.CreateTestTransaction(t, db, user.ID, food.ID, models.TransactionTypeExpense, "20", "2024-02-01")

		start := testutil.Date(t, "2024-02-01")
		s, err := svc.GetSummary(ctx, user.ID, analytics.NewDateRange(&start, nil))
		testutil.AssertNoError(t, err)

		if s.TotalExpense.String() != "20" {
			t.Errorf("expected expense 20, got %s", s.TotalExpense)
		}
		if len(s.RecentTransactions) != 2 {
			t.Errorf("expected recent list to ignore the range, got %d", len(s.RecentTransactions))
		}
	})

	t.Run("store_failure", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDashboardService(failingTransactions{err: apperrors.Wrap(apperrors.ErrInternalServer, errStore)}, newRepos(db).categories)

		s, err := svc.GetSummary(ctx, "user-1", analytics.DateRange{})
		testutil.AssertAppError(t, err, "INTERNAL_ERROR")
		if s != nil {
			t.Error("expected no partial summary")
		}
	})
}
