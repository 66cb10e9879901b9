package analytics

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	apperrors "budgetly/internal/errors"
	"budgetly/internal/models"
)

// RecentTransactionsLimit is the number of entries in DashboardSummary.RecentTransactions.
const RecentTransactionsLimit = 5

// CategoryTotal is the summed amount of one category's transactions.
type CategoryTotal struct {
	CategoryID string          `json:"categoryId"`
	Name       string          `json:"name"`
	Icon       string          `json:"icon"`
	Color      string          `json:"color"`
	Total      decimal.Decimal `json:"total"`
}

// DashboardSummary is the dashboard view of a user's ledger.
type DashboardSummary struct {
	TotalIncome        decimal.Decimal      `json:"totalIncome"`
	TotalExpense       decimal.Decimal      `json:"totalExpense"`
	CurrentBalance     decimal.Decimal      `json:"currentBalance"`
	ExpensesByCategory []CategoryTotal      `json:"expensesByCategory"`
	IncomeByCategory   []CategoryTotal      `json:"incomeByCategory"`
	RecentTransactions []models.Transaction `json:"recentTransactions"`
}

// ComputeSummary aggregates the transactions of userID whose date falls in
// rng. Totals and per-category groups honour the range; the recent list is
// always drawn from the user's whole ledger.
func ComputeSummary(userID string, transactions []models.Transaction, categories []models.Category, rng DateRange) (*DashboardSummary, error) {
	cats := newCatalog(categories)

	var totalIncome, totalExpense decimal.Decimal
	incomeByCat := make(map[string]decimal.Decimal)
	expenseByCat := make(map[string]decimal.Decimal)
	ledger := make([]models.Transaction, 0, len(transactions))

	for _, tx := range transactions {
		if tx.UserID != userID {
			continue
		}
		ledger = append(ledger, tx)
		if !rng.Contains(tx.Date) {
			continue
		}

		switch tx.Type {
		case models.TransactionTypeIncome:
			totalIncome = totalIncome.Add(tx.Amount)
			incomeByCat[tx.CategoryID] = incomeByCat[tx.CategoryID].Add(tx.Amount)
		case models.TransactionTypeExpense:
			totalExpense = totalExpense.Add(tx.Amount)
			expenseByCat[tx.CategoryID] = expenseByCat[tx.CategoryID].Add(tx.Amount)
		default:
			return nil, apperrors.Wrap(apperrors.ErrInternalInconsistency,
				fmt.Errorf("transaction %q has unknown type %q", tx.ID, tx.Type))
		}
	}

	expenses, err := groupTotals(expenseByCat, cats)
	if err != nil {
		return nil, err
	}
	income, err := groupTotals(incomeByCat, cats)
	if err != nil {
		return nil, err
	}
	recent, err := recentTransactions(ledger, cats, RecentTransactionsLimit)
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{
		TotalIncome:        RoundMoney(totalIncome),
		TotalExpense:       RoundMoney(totalExpense),
		CurrentBalance:     RoundMoney(totalIncome.Sub(totalExpense)),
		ExpensesByCategory: expenses,
		IncomeByCategory:   income,
		RecentTransactions: recent,
	}, nil
}

// groupTotals joins per-category sums with the catalog and orders them by
// total descending, breaking ties by category id.
func groupTotals(sums map[string]decimal.Decimal, cats catalog) ([]CategoryTotal, error) {
	out := make([]CategoryTotal, 0, len(sums))
	for id, total := range sums {
		cat, err := cats.lookup(id)
		if err != nil {
			return nil, err
		}
		out = append(out, CategoryTotal{
			CategoryID: id,
			Name:       cat.Name,
			Icon:       cat.Icon,
			Color:      cat.Color,
			Total:      RoundMoney(total),
		})
	}

	slices.SortFunc(out, func(a, b CategoryTotal) int {
		if c := b.Total.Cmp(a.Total); c != 0 {
			return c
		}
		return strings.Compare(a.CategoryID, b.CategoryID)
	})
	return out, nil
}

// recentTransactions returns copies of the newest entries with their
// category attached. Newest means latest date, then latest creation time.
func recentTransactions(ledger []models.Transaction, cats catalog, limit int) ([]models.Transaction, error) {
	sorted := slices.Clone(ledger)
	SortNewestFirst(sorted)
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	for i := range sorted {
		cat, err := cats.lookup(sorted[i].CategoryID)
		if err != nil {
			return nil, err
		}
		sorted[i].Category = &cat
	}
	return sorted, nil
}

// SortNewestFirst orders transactions by date descending, then creation
// time descending, then id descending so the order is total.
func SortNewestFirst(txs []models.Transaction) {
	slices.SortStableFunc(txs, func(a, b models.Transaction) int {
		if c := DateOf(b.Date).Compare(DateOf(a.Date)); c != 0 {
			return c
		}
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(b.ID, a.ID)
	})
}
