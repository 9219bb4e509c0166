package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tradereport"
	"github.com/etnz/tradereport/config"
	"github.com/etnz/tradereport/date"
	"github.com/etnz/tradereport/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// Formats of the report command.
const (
	FormatMarkdown = "md"
	FormatTable    = "table"
	FormatJSON     = "json"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	period  string
	date    string
	start   string
	end     string
	format  string
	workers int
	// processed
	cfg  *config.Config
	log  *zap.Logger
	file string
	opts tradereport.Options
}

func (*reportCmd) Name() string { return "report" }

func (*reportCmd) Synopsis() string { return "report the trading performance per period" }
func (*reportCmd) Usage() string {
	return `tradereport report [-p <period> [-d <date>] | -start <date> -end <date>] [-format md|table|json] <account-history.csv>

  Groups the trades and commissions of an account history export by period
  and reports the statistics of each period. With -d, only the period
  containing the date is reported.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	c.setPeriodFlags(f)
	f.StringVar(&c.period, "p", "", "Period of the report (daily, weekly, monthly, quarterly, yearly, custom). Defaults to the period setting.")
	f.StringVar(&c.format, "format", FormatMarkdown, "Output format (md, table, json)")
}

// setPeriodFlags declares the flags shared by every command running a report.
func (c *reportCmd) setPeriodFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Report only the period containing this date.")
	f.StringVar(&c.start, "start", "", "Start date of a custom range. Implies -p custom.")
	f.StringVar(&c.end, "end", "", "End date of a custom range, included. Implies -p custom.")
	f.IntVar(&c.workers, "workers", -1, "Number of goroutines reading rows. Defaults to the workers setting.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.init(f); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	defer c.log.Sync()

	report, err := c.generateReport()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := c.render(report); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *reportCmd) init(f *flag.FlagSet) error {
	switch c.format {
	case FormatMarkdown, FormatTable, FormatJSON:
	case "":
		c.format = FormatMarkdown
	default:
		return fmt.Errorf("unknown format %q", c.format)
	}
	if f.NArg() != 1 {
		return errors.New("exactly one account history file is required")
	}
	c.file = f.Arg(0)

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	c.cfg = cfg
	c.log, err = newLogger(cfg.LogLevel, *Verbose)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}

	period := cfg.ParsedPeriod()
	if c.period != "" {
		if period, err = date.ParsePeriod(c.period); err != nil {
			return fmt.Errorf("parsing period: %w", err)
		}
	}
	var rng date.Range
	switch {
	case c.date != "" && (c.start != "" || c.end != ""):
		return errors.New("-d cannot be combined with -start or -end")
	case c.date != "":
		if period == date.Custom {
			return errors.New("-d needs a period other than custom")
		}
		on, err := date.Parse(c.date)
		if err != nil {
			return fmt.Errorf("parsing date: %w", err)
		}
		rng = date.NewRange(on, period)
	case c.start != "" || c.end != "":
		// Custom range, a missing boundary is reported by the analysis.
		period = date.Custom
		if c.start != "" {
			if rng.From, err = date.Parse(c.start); err != nil {
				return fmt.Errorf("parsing start date: %w", err)
			}
		}
		if c.end != "" {
			if rng.To, err = date.Parse(c.end); err != nil {
				return fmt.Errorf("parsing end date: %w", err)
			}
		}
	}

	if c.workers < 0 {
		c.workers = cfg.Workers
	}
	c.opts = tradereport.Options{
		Period:          period,
		Range:           rng,
		CommissionField: cfg.CommissionField,
		Currency:        cfg.Currency,
	}
	return nil
}

func (c *reportCmd) generateReport() (*tradereport.Report, error) {
	rows, err := tradereport.LoadAccountHistory(c.file, c.opts.CommissionField)
	if err != nil {
		return nil, err
	}
	c.log.Debug("account history loaded",
		zap.String("file", c.file),
		zap.Int("rows", len(rows)),
		zap.Stringer("period", c.opts.Period),
		zap.Int("workers", c.workers))

	report, err := tradereport.AnalyzeParallel(rows, c.opts, c.workers)
	if err != nil {
		var perr *tradereport.ParseError
		if errors.As(err, &perr) {
			c.log.Error("cannot read row", zap.Int("row", perr.Row), zap.String("field", perr.Field), zap.String("text", perr.Text))
		}
		return nil, fmt.Errorf("analyzing %s: %w", c.file, err)
	}
	c.log.Debug("report ready", zap.Strings("buckets", report.Keys()))
	return report, nil
}

func (c *reportCmd) render(report *tradereport.Report) error {
	switch c.format {
	case FormatTable:
		fmt.Print(renderer.RenderTable(renderer.NewReport(report)))
	case FormatJSON:
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	default:
		printMarkdown(renderer.RenderReport(renderer.NewReport(report)))
	}
	return nil
}
