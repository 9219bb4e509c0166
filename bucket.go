package tradereport

// Bucket groups the trades and commissions of one period.
type Bucket struct {
	Key        string        // period key, e.g. "2024-03"
	Commission Money         // sum of the commission rows
	Details    []TradeRecord // trades in row order
	Summary    Summary       // computed once all rows are consumed
}

// entry is the contribution of a single row to a bucket.
type entry struct {
	key        string
	commission *Money
	trade      *TradeRecord
}

// accumulator collects entries into buckets, ordered by the first row seen
// for each key.
type accumulator struct {
	currency string
	index    map[string]*Bucket
	buckets  []*Bucket
}

func newAccumulator(currency string) *accumulator {
	return &accumulator{currency: currency, index: make(map[string]*Bucket)}
}

func (a *accumulator) bucket(key string) *Bucket {
	b, ok := a.index[key]
	if !ok {
		b = &Bucket{Key: key, Commission: M(0, a.currency)}
		a.index[key] = b
		a.buckets = append(a.buckets, b)
	}
	return b
}

func (a *accumulator) add(e entry) {
	b := a.bucket(e.key)
	switch {
	case e.commission != nil:
		b.Commission = b.Commission.Add(*e.commission)
	case e.trade != nil:
		b.Details = append(b.Details, *e.trade)
	}
}

// summarize computes the statistics of every bucket and returns them in order.
func (a *accumulator) summarize() []*Bucket {
	for _, b := range a.buckets {
		b.Summary = NewSummary(b.Details, b.Commission)
	}
	return a.buckets
}
