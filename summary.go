package tradereport

import "github.com/shopspring/decimal"

// Summary holds the statistics of a bucket.
//
// Values are kept at full precision, they are rounded when displayed.
type Summary struct {
	Trades int // number of trades
	Long   int // number of long trades
	Short  int // number of short trades

	NetProfit   Money // sum of all P&L
	GrossProfit Money // sum of positive P&L
	GrossLoss   Money // sum of negative P&L
	Commission  Money // sum of the commission rows

	TotalReturn    Percent // sum of the trade returns
	AverageReturn  Percent // mean of the trade returns
	BattingAverage Percent // share of winning trades
	AverageWin     Percent // mean return of winning trades, undefined without winners
	AverageLoss    Percent // mean return of losing trades, undefined without losers
	WinLossRatio   Ratio   // AverageWin / |AverageLoss|
}

// NewSummary computes the statistics of a list of trades.
//
// A bucket without trades (commission only) has zero counts, zero amounts and
// zero returns; its win/loss figures are undefined.
func NewSummary(trades []TradeRecord, commission Money) Summary {
	cur := commission.Currency()
	s := Summary{
		NetProfit:      M(0, cur),
		GrossProfit:    M(0, cur),
		GrossLoss:      M(0, cur),
		Commission:     commission,
		TotalReturn:    Pct(0),
		AverageReturn:  Pct(0),
		BattingAverage: Pct(0),
		AverageWin:     UndefinedPercent(),
		AverageLoss:    UndefinedPercent(),
		WinLossRatio:   UndefinedRatio(),
	}
	if len(trades) == 0 {
		return s
	}

	var (
		net, gross, loss       decimal.Decimal
		totalRet, winRet, lRet decimal.Decimal
		wins, losses           int
	)
	for _, t := range trades {
		switch t.Position {
		case Long:
			s.Long++
		case Short:
			s.Short++
		}
		net = net.Add(t.pnl)
		totalRet = totalRet.Add(t.ret)
		switch {
		case t.IsWin():
			wins++
			gross = gross.Add(t.pnl)
			winRet = winRet.Add(t.ret)
		case t.IsLoss():
			losses++
			loss = loss.Add(t.pnl)
			lRet = lRet.Add(t.ret)
		}
	}

	n := decimal.NewFromInt(int64(len(trades)))
	s.Trades = len(trades)
	s.NetProfit = M(net, cur)
	s.GrossProfit = M(gross, cur)
	s.GrossLoss = M(loss, cur)
	s.TotalReturn = Pct(totalRet)
	s.AverageReturn = Pct(totalRet.Div(n))
	s.BattingAverage = Pct(decimal.NewFromInt(int64(wins)).Div(n).Mul(hundred))
	if wins > 0 {
		s.AverageWin = Pct(winRet.Div(decimal.NewFromInt(int64(wins))))
	}
	if losses > 0 {
		s.AverageLoss = Pct(lRet.Div(decimal.NewFromInt(int64(losses))))
	}
	s.WinLossRatio = winLossRatio(s.AverageWin, s.AverageLoss)
	return s
}

// winLossRatio is win / |loss|, undefined when either side is undefined or
// the loss is zero.
func winLossRatio(win, loss Percent) Ratio {
	if !win.IsDefined() || !loss.IsDefined() || loss.Decimal().IsZero() {
		return UndefinedRatio()
	}
	return NewRatio(win.Decimal().Div(loss.Decimal().Abs()))
}
