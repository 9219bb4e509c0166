package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/tradereport"
	"github.com/etnz/tradereport/date"
)

// Report is the presentation of a tradereport.Report: every value is
// formatted for display.
type Report struct {
	Title    string   `json:"title"`
	Period   string   `json:"period"`
	Currency string   `json:"currency"`
	Range    string   `json:"range,omitempty"`
	Buckets  []Bucket `json:"buckets"`
}

// Bucket is one section of the report.
type Bucket struct {
	Key     string   `json:"key"`
	Summary Summary  `json:"summary"`
	Details []Detail `json:"details"`
}

// Summary is the totals row of a bucket.
type Summary struct {
	Trades         int    `json:"trades"`
	Long           int    `json:"long"`
	Short          int    `json:"short"`
	TotalReturn    string `json:"totalReturn"`
	AverageReturn  string `json:"averageReturn"`
	BattingAverage string `json:"battingAverage"`
	AverageWin     string `json:"averageWin"`
	AverageLoss    string `json:"averageLoss"`
	WinLossRatio   string `json:"winLossRatio"`
	Commission     string `json:"commission"`
	NetProfit      string `json:"netProfit"`
	GrossProfit    string `json:"grossProfit"`
	GrossLoss      string `json:"grossLoss"`
}

// Detail is a trade row of a bucket.
type Detail struct {
	Time          string `json:"time"`
	Position      string `json:"position"`
	Symbol        string `json:"symbol"`
	Quantity      string `json:"quantity"`
	ClosedPrice   string `json:"closedPrice"`
	BalanceBefore string `json:"balanceBefore"`
	BalanceAfter  string `json:"balanceAfter"`
	ProfitLoss    string `json:"profitLoss"`
	Return        string `json:"return"`
}

// SummaryColumns are the headers of the totals table.
var SummaryColumns = []string{
	"Number of Trades", "Long", "Short",
	"Total Return", "Average Return", "Batting Average",
	"Average Win", "Average Loss", "Win Loss Ratio",
	"Commission", "Net Profit", "Gross Profit", "Gross Loss",
}

// DetailColumns are the headers of the trades table.
var DetailColumns = []string{
	"Time", "Position", "Symbol", "Quantity", "Closed Price",
	"Balance Before", "Balance After", "P&L", "%",
}

// Cells returns the values in SummaryColumns order.
func (s Summary) Cells() []string {
	return []string{
		fmt.Sprint(s.Trades), fmt.Sprint(s.Long), fmt.Sprint(s.Short),
		s.TotalReturn, s.AverageReturn, s.BattingAverage,
		s.AverageWin, s.AverageLoss, s.WinLossRatio,
		s.Commission, s.NetProfit, s.GrossProfit, s.GrossLoss,
	}
}

// Cells returns the values in DetailColumns order.
func (d Detail) Cells() []string {
	return []string{
		d.Time, d.Position, d.Symbol, d.Quantity, d.ClosedPrice,
		d.BalanceBefore, d.BalanceAfter, d.ProfitLoss, d.Return,
	}
}

// NewReport formats r for display.
func NewReport(r *tradereport.Report) *Report {
	out := &Report{
		Title:    Title(r.Period),
		Period:   r.Period.String(),
		Currency: r.Currency,
		Buckets:  make([]Bucket, 0, len(r.Buckets)),
	}
	if r.Range != (date.Range{}) {
		out.Range = r.Range.String()
	}
	for _, b := range r.Buckets {
		out.Buckets = append(out.Buckets, newBucket(b))
	}
	return out
}

// Title returns the heading of a report for period p, e.g. "Monthly Trade Report".
func Title(p date.Period) string {
	name := p.String()
	return strings.ToUpper(name[:1]) + name[1:] + " Trade Report"
}

func newBucket(b *tradereport.Bucket) Bucket {
	s := b.Summary
	out := Bucket{
		Key: b.Key,
		Summary: Summary{
			Trades:         s.Trades,
			Long:           s.Long,
			Short:          s.Short,
			TotalReturn:    s.TotalReturn.String(),
			AverageReturn:  s.AverageReturn.String(),
			BattingAverage: s.BattingAverage.String(),
			AverageWin:     s.AverageWin.String(),
			AverageLoss:    s.AverageLoss.String(),
			WinLossRatio:   s.WinLossRatio.String(),
			Commission:     s.Commission.String(),
			NetProfit:      s.NetProfit.String(),
			GrossProfit:    s.GrossProfit.String(),
			GrossLoss:      s.GrossLoss.String(),
		},
		Details: make([]Detail, 0, len(b.Details)),
	}
	for _, t := range b.Details {
		out.Details = append(out.Details, Detail{
			Time:          t.Time,
			Position:      t.Position.String(),
			Symbol:        t.Symbol,
			Quantity:      t.Quantity.String(),
			ClosedPrice:   t.ClosedPrice.StringFixed(2),
			BalanceBefore: t.BalanceBefore.String(),
			BalanceAfter:  t.BalanceAfter.String(),
			ProfitLoss:    t.ProfitLoss.SignedString(),
			Return:        t.Return.SignedString(),
		})
	}
	return out
}
