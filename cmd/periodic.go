package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/tradereport/date"
	"github.com/google/subcommands"
)

// shortcuts are the periods with a command of their own.
var shortcuts = []date.Period{date.Daily, date.Weekly, date.Monthly, date.Quarterly, date.Yearly}

// periodicCmd is the report command with a fixed period.
type periodicCmd struct {
	period date.Period
	report reportCmd
}

func (c *periodicCmd) Name() string { return c.period.String() }
func (c *periodicCmd) Synopsis() string {
	return fmt.Sprintf("display a %s trade report", c.period)
}
func (c *periodicCmd) Usage() string {
	return fmt.Sprintf(`tradereport %s [-d <date>] [-format md|table|json] <account-history.csv>

  Displays the trading performance of each %s, or of the %[2]s containing
  the date given with -d. Same as report -p %[1]s.
`, c.period, noun(c.period))
}

func (c *periodicCmd) SetFlags(f *flag.FlagSet) {
	c.report.period = c.period.String()
	f.StringVar(&c.report.date, "d", "", "Report only the "+noun(c.period)+" containing this date.")
	f.StringVar(&c.report.format, "format", FormatMarkdown, "Output format (md, table, json)")
	f.IntVar(&c.report.workers, "workers", -1, "Number of goroutines reading rows. Defaults to the workers setting.")
}

func (c *periodicCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	return c.report.Execute(ctx, f, args...)
}

// noun returns the name of a single period: "month" for Monthly.
func noun(p date.Period) string {
	switch p {
	case date.Daily:
		return "day"
	case date.Weekly:
		return "week"
	case date.Monthly:
		return "month"
	case date.Quarterly:
		return "quarter"
	case date.Yearly:
		return "year"
	default:
		return p.String()
	}
}
