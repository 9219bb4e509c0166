package tradereport

import (
	"github.com/etnz/tradereport/date"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// TradeRecord is a closed trade extracted from an account history row.
//
// Balances, ProfitLoss and Return are rounded to 2 fractional digits; the
// statistics are computed from the unrounded values.
type TradeRecord struct {
	Time          string    // timestamp as written in the export
	Date          date.Date // day of Time
	Position      Position
	Symbol        string
	Quantity      Quantity
	ClosedPrice   decimal.Decimal
	BalanceBefore Money
	BalanceAfter  Money
	ProfitLoss    Money
	Return        Percent

	// full precision values
	pnl decimal.Decimal
	ret decimal.Decimal
}

// NewTradeRecord derives a trade record from the fields of a trade row.
//
// It returns a *DivisionHazardError when the balance before the trade is zero.
func NewTradeRecord(timestamp string, on date.Date, t TradeFields) (TradeRecord, error) {
	before := t.BalanceBefore.Decimal()
	if before.IsZero() {
		return TradeRecord{}, &DivisionHazardError{Row: -1, Field: FieldBalanceBefore}
	}
	pnl := t.BalanceAfter.Decimal().Sub(before)
	ret := pnl.Div(before).Mul(hundred)
	return TradeRecord{
		Time:          timestamp,
		Date:          on,
		Position:      t.Position,
		Symbol:        t.Symbol,
		Quantity:      t.Quantity,
		ClosedPrice:   t.ClosedPrice,
		BalanceBefore: t.BalanceBefore.Round(),
		BalanceAfter:  t.BalanceAfter.Round(),
		ProfitLoss:    M(pnl, t.BalanceBefore.Currency()).Round(),
		Return:        Pct(ret).Round(),
		pnl:           pnl,
		ret:           ret,
	}, nil
}

// IsWin reports whether the trade made a profit.
func (t TradeRecord) IsWin() bool { return t.pnl.IsPositive() }

// IsLoss reports whether the trade made a loss.
func (t TradeRecord) IsLoss() bool { return t.pnl.IsNegative() }
