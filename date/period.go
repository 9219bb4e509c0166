package date

import (
	"fmt"
	"strings"
)

// Period selects how account history rows are grouped into buckets.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Quarterly
	Yearly
	// Custom collapses the rows of an explicit Range, keyed by day.
	Custom
)

func (p Period) String() string {
	switch p {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Yearly:
		return "yearly"
	case Custom:
		return "custom"
	default:
		return fmt.Sprintf("Period(%d)", int(p))
	}
}

// Valid reports whether p is one of the known periods.
func (p Period) Valid() bool { return p >= Daily && p <= Custom }

// Key returns the bucket key of day d for this period.
//
//	daily, custom: 2024-03-05
//	weekly:        2024-W10
//	monthly:       2024-03
//	quarterly:     2024-Q1
//	yearly:        2024
func (p Period) Key(d Date) string {
	switch p {
	case Daily, Custom:
		return d.String()
	case Weekly:
		year, week := d.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	case Monthly:
		return d.Format("2006-01")
	case Quarterly:
		return fmt.Sprintf("%d-Q%d", d.Year(), (d.Month()-1)/3+1)
	case Yearly:
		return d.Format("2006")
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// ParsePeriod parses a period name ("monthly"), its short form ("month") or
// the numeric code of the historical period selector (1 daily, 2 monthly,
// 3 quarterly, 4 yearly, 5 custom).
func ParsePeriod(p string) (Period, error) {
	p = strings.ToLower(strings.TrimSpace(p))
	switch p {
	case "daily", "day", "1":
		return Daily, nil
	case "weekly", "week":
		return Weekly, nil
	case "monthly", "month", "2":
		return Monthly, nil
	case "quarterly", "quarter", "3":
		return Quarterly, nil
	case "yearly", "year", "4":
		return Yearly, nil
	case "custom", "5":
		return Custom, nil
	default:
		return Daily, fmt.Errorf("unknown period %q", p)
	}
}
