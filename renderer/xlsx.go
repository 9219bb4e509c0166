package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/tradereport"
	"github.com/xuri/excelize/v2"
)

// SummarySheet is the name of the sheet holding the totals of every bucket.
const SummarySheet = "Summary"

// WriteXLSX writes the report as a workbook: a Summary sheet with one row per
// bucket, then one sheet per bucket with its trades.
//
// Amounts and percents are written as numbers rounded to 2 digits, undefined
// values as empty cells.
func WriteXLSX(w io.Writer, r *tradereport.Report) error {
	fx := excelize.NewFile()
	defer fx.Close()

	fx.SetSheetName(fx.GetSheetName(0), SummarySheet)
	header, err := fx.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4CAF50"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}

	if err := writeRow(fx, SummarySheet, 1, append([]string{"Period"}, SummaryColumns...)); err != nil {
		return err
	}
	fx.SetCellStyle(SummarySheet, "A1", cellName(len(SummaryColumns)+1, 1), header)

	names := make(map[string]bool)
	for i, b := range r.Buckets {
		s := b.Summary
		row := []any{
			b.Key, s.Trades, s.Long, s.Short,
			percent(s.TotalReturn), percent(s.AverageReturn), percent(s.BattingAverage),
			percent(s.AverageWin), percent(s.AverageLoss), ratio(s.WinLossRatio),
			amount(s.Commission), amount(s.NetProfit), amount(s.GrossProfit), amount(s.GrossLoss),
		}
		if err := fx.SetSheetRow(SummarySheet, cellName(1, i+2), &row); err != nil {
			return err
		}

		sheet := sheetName(b.Key, names)
		if _, err := fx.NewSheet(sheet); err != nil {
			return fmt.Errorf("could not create sheet %q: %w", sheet, err)
		}
		if err := writeRow(fx, sheet, 1, DetailColumns); err != nil {
			return err
		}
		fx.SetCellStyle(sheet, "A1", cellName(len(DetailColumns), 1), header)
		for j, t := range b.Details {
			row := []any{
				t.Time, t.Position.String(), t.Symbol, int64(t.Quantity),
				t.ClosedPrice.InexactFloat64(),
				amount(t.BalanceBefore), amount(t.BalanceAfter), amount(t.ProfitLoss),
				percent(t.Return),
			}
			if err := fx.SetSheetRow(sheet, cellName(1, j+2), &row); err != nil {
				return err
			}
		}
	}
	fx.SetActiveSheet(0)
	return fx.Write(w)
}

func writeRow(fx *excelize.File, sheet string, row int, values []string) error {
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return fx.SetSheetRow(sheet, cellName(1, row), &cells)
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

// sheetName turns a bucket key into a unique valid sheet name.
func sheetName(key string, used map[string]bool) string {
	name := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`:\/?*[]`, r) {
			return '_'
		}
		return r
	}, key)
	if len(name) > 31 {
		name = name[:31]
	}
	if name == SummarySheet || name == "" {
		name = "_" + name
	}
	for base, i := name, 2; used[name]; i++ {
		name = fmt.Sprintf("%s (%d)", base, i)
	}
	used[name] = true
	return name
}

func amount(m tradereport.Money) float64 { return m.Round().Decimal().InexactFloat64() }

func percent(p tradereport.Percent) any {
	if !p.IsDefined() {
		return nil
	}
	return p.Round().Decimal().InexactFloat64()
}

func ratio(r tradereport.Ratio) any {
	if !r.IsDefined() {
		return nil
	}
	return r.Decimal().Round(2).InexactFloat64()
}
