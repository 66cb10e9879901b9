// Package export renders a user's ledger as CSV or as an Excel workbook.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	apperrors "budgetly/internal/errors"
	"budgetly/internal/models"
)

// Format selects the export encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

const (
	dateLayout = "2006-01-02"
	sheetName  = "Transactions"
)

var header = []string{"Date", "Type", "Category", "Description", "Amount"}

// ParseFormat resolves a query value. An empty value means CSV.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	}
	return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "format must be csv or xlsx")
}

// ContentType is the MIME type served for f.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// Filename builds the attachment name for an export covering label.
func (f Format) Filename(label string) string {
	return fmt.Sprintf("transactions_%s.%s", label, f)
}

// Write encodes txs to w in format f.
func Write(w io.Writer, f Format, txs []models.Transaction) error {
	if f == FormatXLSX {
		return WriteXLSX(w, txs)
	}
	return WriteCSV(w, txs)
}

// Totals sums a ledger by direction.
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Net is income minus expense.
func (t Totals) Net() decimal.Decimal {
	return t.Income.Sub(t.Expense)
}

// Sum totals txs.
func Sum(txs []models.Transaction) Totals {
	var t Totals
	for _, tx := range txs {
		switch tx.Type {
		case models.TransactionTypeIncome:
			t.Income = t.Income.Add(tx.Amount)
		case models.TransactionTypeExpense:
			t.Expense = t.Expense.Add(tx.Amount)
		}
	}
	return t
}

func record(tx models.Transaction) []string {
	category := ""
	if tx.Category != nil {
		category = tx.Category.Name
	}
	return []string{
		tx.Date.Format(dateLayout),
		string(tx.Type),
		category,
		tx.Description,
		tx.Amount.StringFixed(2),
	}
}

// WriteCSV writes a header row followed by one row per transaction.
func WriteCSV(w io.Writer, txs []models.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, tx := range txs {
		if err := cw.Write(record(tx)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
