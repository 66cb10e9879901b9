package export

import (
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"budgetly/internal/models"
)

var thinBorder = []excelize.Border{
	{Type: "left", Color: "000000", Style: 1},
	{Type: "top", Color: "000000", Style: 1},
	{Type: "bottom", Color: "000000", Style: 1},
	{Type: "right", Color: "000000", Style: 1},
}

// builtin number format "#,##0.00"
const moneyFormat = 4

type styles struct {
	header, data, money, summary, summaryMoney int
}

func newStyles(f *excelize.File) (styles, error) {
	var s styles
	var err error
	if s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder,
	}); err != nil {
		return s, err
	}
	if s.data, err = f.NewStyle(&excelize.Style{Border: thinBorder}); err != nil {
		return s, err
	}
	if s.money, err = f.NewStyle(&excelize.Style{Border: thinBorder, NumFmt: moneyFormat}); err != nil {
		return s, err
	}
	summary := &excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 11},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Border: thinBorder,
	}
	if s.summary, err = f.NewStyle(summary); err != nil {
		return s, err
	}
	summary.NumFmt = moneyFormat
	s.summaryMoney, err = f.NewStyle(summary)
	return s, err
}

// WriteXLSX writes a single-sheet workbook with a styled header, one row per
// transaction and income, expense and net rows underneath.
func WriteXLSX(w io.Writer, txs []models.Transaction) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetName)

	st, err := newStyles(f)
	if err != nil {
		return err
	}

	widths := map[string]float64{"A": 12, "B": 10, "C": 18, "D": 40, "E": 14}
	for col, width := range widths {
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return err
		}
	}

	if err := writeRow(f, 1, header, st.header, st.header); err != nil {
		return err
	}

	row := 2
	for _, tx := range txs {
		rec := record(tx)
		values := []interface{}{rec[0], rec[1], rec[2], rec[3], tx.Amount.InexactFloat64()}
		if err := writeRow(f, row, values, st.data, st.money); err != nil {
			return err
		}
		row++
	}

	totals := Sum(txs)
	summary := []struct {
		label  string
		amount decimal.Decimal
	}{
		{"Total income", totals.Income},
		{"Total expense", totals.Expense},
		{"Net", totals.Net()},
	}
	for _, s := range summary {
		if err := writeRow(f, row, []interface{}{s.label, "", "", "", s.amount.InexactFloat64()}, st.summary, st.summaryMoney); err != nil {
			return err
		}
		row++
	}

	return f.Write(w)
}

// writeRow fills columns A..E of row; the last column gets lastStyle.
func writeRow[T any](f *excelize.File, row int, values []T, style, lastStyle int) error {
	start, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	end, err := excelize.CoordinatesToCellName(len(values), row)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(values)-1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheetName, start, &values); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, start, last, style); err != nil {
		return err
	}
	return f.SetCellStyle(sheetName, end, end, lastStyle)
}
