package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"budgetly/internal/models"
)

const (
	alice = "user-alice"
	bob   = "user-bob"
)

var (
	catFood   = models.Category{Base: models.Base{ID: "cat-food"}, Name: "Food", Type: models.CategoryTypeExpense, Icon: "🍔", Color: "#FF6B6B"}
	catRent   = models.Category{Base: models.Base{ID: "cat-rent"}, Name: "Rent", Type: models.CategoryTypeExpense, Icon: "🏠", Color: "#4ECDC4"}
	catFun    = models.Category{Base: models.Base{ID: "cat-fun"}, Name: "Entertainment", Type: models.CategoryTypeExpense, Icon: "🎮", Color: "#FFE66D"}
	catSalary = models.Category{Base: models.Base{ID: "cat-salary"}, Name: "Salary", Type: models.CategoryTypeIncome, Icon: "💰", Color: "#6BCF7F"}
	catGig    = models.Category{Base: models.Base{ID: "cat-gig"}, Name: "Freelance", Type: models.CategoryTypeIncome, Icon: "💼", Color: "#4D96FF"}

	allCategories = []models.Category{catFood, catRent, catFun, catSalary, catGig}
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func ptr(t time.Time) *time.Time { return &t }

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var txSeq int

// tx builds a transaction created at the given offset after its date so
// tie-breaks on creation time are controllable.
func tx(user string, typ models.TransactionType, cat models.Category, amount, date string) models.Transaction {
	txSeq++
	d := day(date)
	return models.Transaction{
		Base: models.Base{
			ID:        "tx-" + string(rune('a'+txSeq%26)) + date,
			CreatedAt: d.Add(time.Duration(txSeq) * time.Minute),
		},
		UserID:      user,
		CategoryID:  cat.ID,
		Type:        typ,
		Amount:      money(amount),
		Description: "test",
		Date:        d,
	}
}

func expense(cat models.Category, amount, date string) models.Transaction {
	return tx(alice, models.TransactionTypeExpense, cat, amount, date)
}

func income(cat models.Category, amount, date string) models.Transaction {
	return tx(alice, models.TransactionTypeIncome, cat, amount, date)
}

func budget(cat models.Category, amount string, month, year int) models.Budget {
	return models.Budget{
		Base:       models.Base{ID: "budget-" + cat.ID},
		UserID:     alice,
		CategoryID: cat.ID,
		Month:      month,
		Year:       year,
		Amount:     money(amount),
	}
}
