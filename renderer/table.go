package renderer

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// RenderTable renders the report as console tables: for each bucket, a
// totals table then a trades table.
func RenderTable(r *Report) string {
	var b strings.Builder
	b.WriteString(r.Title)
	b.WriteString("\n\n")
	for _, bucket := range r.Buckets {
		b.WriteString(summaryTable(bucket))
		b.WriteString("\n")
		if len(bucket.Details) > 0 {
			b.WriteString(detailsTable(bucket))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// summaryTable is transposed: the totals have too many columns for a terminal.
func summaryTable(bucket Bucket) string {
	t := table.NewWriter()
	t.SetTitle(bucket.Key)
	t.SetStyle(table.StyleRounded)
	cells := bucket.Summary.Cells()
	for i, name := range SummaryColumns {
		t.AppendRow(table.Row{name, cells[i]})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignRight},
	})
	return t.Render()
}

func detailsTable(bucket Bucket) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	header := make(table.Row, len(DetailColumns))
	for i, c := range DetailColumns {
		header[i] = c
	}
	t.AppendHeader(header)
	for _, d := range bucket.Details {
		cells := d.Cells()
		row := make(table.Row, len(cells))
		for i, c := range cells {
			row[i] = c
		}
		t.AppendRow(row)
	}
	configs := make([]table.ColumnConfig, 0, len(DetailColumns))
	for i := 4; i <= len(DetailColumns); i++ {
		configs = append(configs, table.ColumnConfig{Number: i, Align: text.AlignRight})
	}
	t.SetColumnConfigs(configs)
	return t.Render()
}
