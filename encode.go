package tradereport

import "encoding/json"

// MarshalJSON encodes a trade with the columns of the details table, in order.
func (t TradeRecord) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("time", t.Time)
	w.Append("position", t.Position)
	w.Append("symbol", t.Symbol)
	w.Append("quantity", t.Quantity)
	w.Append("closedPrice", json.Number(t.ClosedPrice.String()))
	w.Append("balanceBefore", t.BalanceBefore)
	w.Append("balanceAfter", t.BalanceAfter)
	w.Append("profitLoss", t.ProfitLoss)
	w.Append("return", t.Return)
	return w.MarshalJSON()
}

// MarshalJSON encodes the statistics rounded for presentation, in the order of
// the summary table. Undefined values are null.
func (s Summary) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("trades", s.Trades)
	w.Append("long", s.Long)
	w.Append("short", s.Short)
	w.Append("totalReturn", s.TotalReturn.Round())
	w.Append("averageReturn", s.AverageReturn.Round())
	w.Append("battingAverage", s.BattingAverage.Round())
	w.Append("averageWin", s.AverageWin.Round())
	w.Append("averageLoss", s.AverageLoss.Round())
	w.Append("winLossRatio", s.WinLossRatio)
	w.Append("commission", s.Commission.Round())
	w.Append("netProfit", s.NetProfit.Round())
	w.Append("grossProfit", s.GrossProfit.Round())
	w.Append("grossLoss", s.GrossLoss.Round())
	return w.MarshalJSON()
}

func (b *Bucket) MarshalJSON() ([]byte, error) {
	details := b.Details
	if details == nil {
		details = []TradeRecord{}
	}
	var w jsonObjectWriter
	w.Append("key", b.Key)
	w.Append("summary", b.Summary)
	w.Append("details", details)
	return w.MarshalJSON()
}

// MarshalJSON encodes the report; buckets are an array so that their order is
// preserved.
func (r *Report) MarshalJSON() ([]byte, error) {
	buckets := r.Buckets
	if buckets == nil {
		buckets = []*Bucket{}
	}
	var w jsonObjectWriter
	w.Append("period", r.Period.String())
	w.Append("currency", r.Currency)
	w.Optional("from", r.Range.From)
	w.Optional("to", r.Range.To)
	w.Append("buckets", buckets)
	return w.MarshalJSON()
}
