package tradereport

import (
	"github.com/etnz/tradereport/date"
)

// Options configures an analysis.
type Options struct {
	Period date.Period
	// Range restricts the analysis, boundaries included. It is required for
	// Custom, optional for the other periods.
	Range date.Range
	// CommissionField is the column holding commission amounts. Defaults to
	// CommissionRealizedPnL.
	CommissionField string
	// Currency of the account. Defaults to DefaultCurrency.
	Currency string
	// Parser reads the action text of trade rows. Defaults to TradingView.
	Parser ActionParser
}

func (o Options) validate() error {
	if !o.Period.Valid() {
		return &InvalidPeriodModeError{Period: o.Period}
	}
	if o.restricted() && !o.Range.Valid() {
		return &InvalidRangeError{Range: o.Range}
	}
	return nil
}

// restricted reports whether rows outside Range are skipped.
func (o Options) restricted() bool {
	return o.Period == date.Custom || o.Range != date.Range{}
}

func (o Options) currency() string {
	if o.Currency == "" {
		return DefaultCurrency
	}
	return o.Currency
}

func (o Options) extractor() *Extractor {
	field := o.CommissionField
	if field == "" {
		field = CommissionRealizedPnL
	}
	x := NewExtractor(field, o.currency())
	if o.Parser != nil {
		x.Parser = o.Parser
	}
	return x
}

// Report is the result of an analysis: one bucket per period key, in the order
// the keys first appear in the input rows.
type Report struct {
	Period   date.Period
	Range    date.Range // set when the analysis is restricted
	Currency string
	Buckets  []*Bucket
}

// Keys returns the bucket keys in report order.
func (r *Report) Keys() []string {
	keys := make([]string, 0, len(r.Buckets))
	for _, b := range r.Buckets {
		keys = append(keys, b.Key)
	}
	return keys
}

// Bucket returns the bucket for key, or nil.
func (r *Report) Bucket(key string) *Bucket {
	for _, b := range r.Buckets {
		if b.Key == key {
			return b
		}
	}
	return nil
}

// Analyze groups rows by period and computes the statistics of each bucket.
//
// Any row that cannot be parsed aborts the analysis: the error is returned
// with no report. Rows outside the range of the analysis are skipped.
func Analyze(rows []RawRow, opts Options) (*Report, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	x := opts.extractor()
	acc := newAccumulator(opts.currency())
	for i, row := range rows {
		e, ok, err := opts.classify(x, row)
		if err != nil {
			return nil, withRow(err, i)
		}
		if ok {
			acc.add(e)
		}
	}
	return opts.report(acc), nil
}

// classify computes the contribution of a row. ok is false when the row is
// out of the analysis range.
func (o Options) classify(x *Extractor, row RawRow) (e entry, ok bool, err error) {
	day, err := date.ParseTimestamp(row.Time)
	if err != nil {
		return e, false, &ParseError{Row: -1, Field: FieldTime, Text: row.Time, Err: err}
	}
	if o.restricted() && !o.Range.Contains(day) {
		return e, false, nil
	}
	e.key = o.Period.Key(day)

	c, err := x.Classify(row)
	if err != nil {
		return e, false, err
	}
	if c.IsCommission {
		e.commission = &c.Commission
		return e, true, nil
	}
	t, err := NewTradeRecord(row.Time, day, c.Trade)
	if err != nil {
		return e, false, err
	}
	e.trade = &t
	return e, true, nil
}

func (o Options) report(acc *accumulator) *Report {
	r := &Report{Period: o.Period, Currency: o.currency(), Buckets: acc.summarize()}
	if o.restricted() {
		r.Range = o.Range
	}
	return r
}
