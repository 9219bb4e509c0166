package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/tradereport"
	"github.com/etnz/tradereport/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// exporters write a report in the format of a file extension.
var exporters = map[string]func(io.Writer, *tradereport.Report) error{
	".html": func(w io.Writer, r *tradereport.Report) error {
		return renderer.WriteHTML(w, renderer.NewReport(r))
	},
	".xlsx": renderer.WriteXLSX,
	".csv": func(w io.Writer, r *tradereport.Report) error {
		return renderer.WriteCSV(w, renderer.NewReport(r))
	},
	".json": func(w io.Writer, r *tradereport.Report) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	},
	".md": func(w io.Writer, r *tradereport.Report) error {
		return renderer.WriteMarkdown(w, renderer.NewReport(r))
	},
}

type exportCmd struct {
	report  reportCmd
	output  string
	summary bool
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the trade report to a file" }
func (*exportCmd) Usage() string {
	return `tradereport export [-p <period> | -start <date> -end <date>] -o <file> <account-history.csv>

  Writes the report to a file, the format follows the file extension:
  .html, .xlsx, .csv, .json or .md. An existing file is replaced.
  With -summary, the .csv file holds one row of totals per period instead
  of the trades.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	c.report.setPeriodFlags(f)
	f.StringVar(&c.report.period, "p", "", "Period of the report (daily, weekly, monthly, quarterly, yearly, custom). Defaults to the period setting.")
	f.StringVar(&c.output, "o", "", "Output file (.html, .xlsx, .csv, .json, .md)")
	f.BoolVar(&c.summary, "summary", false, "Write the totals of each period instead of the trades (.csv only)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	write, err := exporter(c.output)
	if err == nil && c.summary {
		write, err = summaryExporter(c.output)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := c.report.init(f); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	defer c.report.log.Sync()

	report, err := c.report.generateReport()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	path := outputPath(c.report.cfg.OutputDir, c.output)
	if err := writeFile(path, report, write); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", path, err)
		return subcommands.ExitFailure
	}
	c.report.log.Info("report exported", zap.String("file", path), zap.Int("buckets", len(report.Buckets)))
	fmt.Printf("Report written to %s\n", path)
	return subcommands.ExitSuccess
}

// exporter returns the writer for the extension of file.
func exporter(file string) (func(io.Writer, *tradereport.Report) error, error) {
	if file == "" {
		return nil, errors.New("an output file is required (-o)")
	}
	ext := strings.ToLower(filepath.Ext(file))
	write, ok := exporters[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported output format %q, want .html, .xlsx, .csv, .json or .md", ext)
	}
	return write, nil
}

// summaryExporter returns the writer of the totals, for .csv files only.
func summaryExporter(file string) (func(io.Writer, *tradereport.Report) error, error) {
	if ext := strings.ToLower(filepath.Ext(file)); ext != ".csv" {
		return nil, fmt.Errorf("-summary needs a .csv output, got %q", ext)
	}
	return func(w io.Writer, r *tradereport.Report) error {
		return renderer.WriteSummaryCSV(w, renderer.NewReport(r))
	}, nil
}

// outputPath places bare file names in dir.
func outputPath(dir, file string) string {
	if dir == "" || filepath.Base(file) != file {
		return file
	}
	return filepath.Join(dir, file)
}

// writeFile writes the report to path, replacing an existing file only once
// the report is complete.
func writeFile(path string, report *tradereport.Report, write func(io.Writer, *tradereport.Report) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp, report); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
