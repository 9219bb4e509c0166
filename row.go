package tradereport

// Column names of an account history export.
const (
	ColumnTime          = "Time"
	ColumnBalanceBefore = "Balance Before"
	ColumnBalanceAfter  = "Balance After"
	ColumnAction        = "Action"
)

// Commission columns, depending on the flavour of the export.
const (
	CommissionPnL         = "P&L"
	CommissionRealizedPnL = "Realized P&L (value)"
)

// RequiredColumns lists the columns every account history export must have,
// in addition to its commission column.
var RequiredColumns = []string{ColumnTime, ColumnBalanceBefore, ColumnBalanceAfter, ColumnAction}

// RawRow is one row of an account history export, as text.
type RawRow struct {
	Time          string
	Action        string
	BalanceBefore string
	BalanceAfter  string
	// Fields holds every column of the row by header name, including the
	// commission column.
	Fields map[string]string
}

// Field returns the value of the named column.
func (r RawRow) Field(name string) (string, bool) {
	switch name {
	case ColumnTime:
		return r.Time, true
	case ColumnAction:
		return r.Action, true
	case ColumnBalanceBefore:
		return r.BalanceBefore, true
	case ColumnBalanceAfter:
		return r.BalanceAfter, true
	}
	v, ok := r.Fields[name]
	return v, ok
}
