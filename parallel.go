package tradereport

import (
	"golang.org/x/sync/errgroup"
)

// AnalyzeParallel is Analyze with rows classified by up to workers goroutines.
//
// Rows are merged back in input order, so bucket order and the reported
// failing row are the same as Analyze.
func AnalyzeParallel(rows []RawRow, opts Options, workers int) (*Report, error) {
	if workers <= 1 || len(rows) < 2*workers {
		return Analyze(rows, opts)
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	x := opts.extractor()

	type result struct {
		e   entry
		ok  bool
		err error
	}
	results := make([]result, len(rows))
	chunk := (len(rows) + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < len(rows); start += chunk {
		end := min(start+chunk, len(rows))
		g.Go(func() error {
			for i := start; i < end; i++ {
				r := &results[i]
				r.e, r.ok, r.err = opts.classify(x, rows[i])
			}
			return nil
		})
	}
	g.Wait()

	acc := newAccumulator(opts.currency())
	for i, r := range results {
		if r.err != nil {
			return nil, withRow(r.err, i)
		}
		if r.ok {
			acc.add(r.e)
		}
	}
	return opts.report(acc), nil
}
