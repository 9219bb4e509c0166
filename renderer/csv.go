package renderer

import (
	"encoding/csv"
	"io"
)

// WriteCSV writes the trades of every bucket as CSV, the first column being
// the bucket key.
func WriteCSV(w io.Writer, r *Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"Bucket"}, DetailColumns...)); err != nil {
		return err
	}
	for _, b := range r.Buckets {
		for _, d := range b.Details {
			if err := cw.Write(append([]string{b.Key}, d.Cells()...)); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSummaryCSV writes one row of totals per bucket.
func WriteSummaryCSV(w io.Writer, r *Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"Bucket"}, SummaryColumns...)); err != nil {
		return err
	}
	for _, b := range r.Buckets {
		if err := cw.Write(append([]string{b.Key}, b.Summary.Cells()...)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
