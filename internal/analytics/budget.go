package analytics

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"budgetly/internal/models"
)

// BudgetLine is one budget compared against the month's actual spending.
//
// Percentage saturates at 100 for progress-bar display while IsOverBudget
// compares the unclamped amounts, so an overspent budget and an exactly
// consumed one share a percentage but not a flag.
type BudgetLine struct {
	models.Budget
	Spent        decimal.Decimal `json:"spent"`
	Remaining    decimal.Decimal `json:"remaining"`
	Percentage   float64         `json:"percentage"`
	IsOverBudget bool            `json:"isOverBudget"`
}

// BudgetSummary aggregates every budget of the period. TotalSpent only
// counts categories that carry a budget.
type BudgetSummary struct {
	TotalBudget       decimal.Decimal `json:"totalBudget"`
	TotalSpent        decimal.Decimal `json:"totalSpent"`
	TotalRemaining    decimal.Decimal `json:"totalRemaining"`
	OverallPercentage float64         `json:"overallPercentage"`
}

// BudgetAnalysis is the budget-versus-actual report for one month.
type BudgetAnalysis struct {
	Month   int           `json:"month"`
	Year    int           `json:"year"`
	Budgets []BudgetLine  `json:"budgets"`
	Summary BudgetSummary `json:"summary"`
}

// ComputeBudgetAnalysis compares the budgets userID holds for month/year
// with the expense transactions dated inside that calendar month.
func ComputeBudgetAnalysis(
	userID string,
	month, year int,
	budgets []models.Budget,
	transactions []models.Transaction,
	categories []models.Category,
) (*BudgetAnalysis, error) {
	span, err := MonthSpan(month, year)
	if err != nil {
		return nil, err
	}
	cats := newCatalog(categories)

	spentByCategory := make(map[string]decimal.Decimal)
	for _, tx := range transactions {
		if tx.UserID != userID || tx.Type != models.TransactionTypeExpense || !span.Contains(tx.Date) {
			continue
		}
		spentByCategory[tx.CategoryID] = spentByCategory[tx.CategoryID].Add(tx.Amount)
	}

	lines := make([]BudgetLine, 0, len(budgets))
	var totalBudget, totalSpent decimal.Decimal

	for _, b := range budgets {
		if b.UserID != userID || b.Month != month || b.Year != year {
			continue
		}
		cat, err := cats.lookup(b.CategoryID)
		if err != nil {
			return nil, err
		}

		spent := spentByCategory[b.CategoryID]
		line := BudgetLine{
			Budget:       b,
			Spent:        RoundMoney(spent),
			Remaining:    RoundMoney(b.Amount.Sub(spent)),
			Percentage:   ClampPercent(Percent(spent, b.Amount)),
			IsOverBudget: spent.GreaterThan(b.Amount),
		}
		line.Category = &cat
		lines = append(lines, line)

		totalBudget = totalBudget.Add(b.Amount)
		totalSpent = totalSpent.Add(spent)
	}

	slices.SortFunc(lines, func(a, b BudgetLine) int {
		if c := strings.Compare(a.Category.Name, b.Category.Name); c != 0 {
			return c
		}
		return strings.Compare(a.CategoryID, b.CategoryID)
	})

	return &BudgetAnalysis{
		Month:   month,
		Year:    year,
		Budgets: lines,
		Summary: BudgetSummary{
			TotalBudget:       RoundMoney(totalBudget),
			TotalSpent:        RoundMoney(totalSpent),
			TotalRemaining:    RoundMoney(totalBudget.Sub(totalSpent)),
			OverallPercentage: Percent(totalSpent, totalBudget),
		},
	}, nil
}
