package tradereport

import (
	"errors"
	"fmt"

	"github.com/etnz/tradereport/date"
)

// Fields reported by a ParseError.
const (
	FieldTime          = "time"
	FieldPosition      = "position"
	FieldSymbol        = "symbol"
	FieldQuantity      = "quantity"
	FieldPrice         = "closed price"
	FieldBalanceBefore = "balance before"
	FieldBalanceAfter  = "balance after"
	FieldCommission    = "commission"
)

// ErrNotAccountHistory is returned when a file does not have the columns of an
// account history export.
var ErrNotAccountHistory = errors.New("not an account history export")

// ParseError reports a row whose content could not be turned into a trade or
// a commission.
type ParseError struct {
	Row   int    // index of the row in the input, -1 when unknown
	Field string // one of the Field constants
	Text  string // the text that was parsed
	Err   error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("cannot parse %s from %q", e.Field, e.Text)
	if e.Row >= 0 {
		msg = fmt.Sprintf("row %d: %s", e.Row, msg)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// InvalidRangeError reports a custom period whose range is missing or reversed.
type InvalidRangeError struct {
	Range date.Range
}

func (e *InvalidRangeError) Error() string {
	if e.Range.From.IsZero() || e.Range.To.IsZero() {
		return "invalid custom range: both start and end dates are required"
	}
	return fmt.Sprintf("invalid custom range: start %s is after end %s", e.Range.From, e.Range.To)
}

// InvalidPeriodModeError reports an unknown period.
type InvalidPeriodModeError struct {
	Period date.Period
}

func (e *InvalidPeriodModeError) Error() string {
	return fmt.Sprintf("invalid period mode %v", e.Period)
}

// DivisionHazardError reports a trade whose return cannot be computed because
// its balance before the trade is zero.
type DivisionHazardError struct {
	Row   int
	Field string
}

func (e *DivisionHazardError) Error() string {
	return fmt.Sprintf("row %d: %s is zero, return is undefined", e.Row, e.Field)
}

// withRow sets the row index on the errors that carry one.
func withRow(err error, row int) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		pe.Row = row
	}
	var de *DivisionHazardError
	if errors.As(err, &de) {
		de.Row = row
	}
	return err
}
