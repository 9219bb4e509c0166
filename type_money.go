package tradereport

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the account currency assumed when none is configured.
const DefaultCurrency = "USD"

// Money represents a monetary value in the account currency.
//
// The value is kept at full precision. Displayed and encoded amounts have
// Digits fractional digits whatever the currency, the currency only gives
// the symbol and separators.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// Digits is the number of fractional digits of rounded amounts.
const Digits = 2

// M creates a Money from any supported numeric value.
func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// String returns the amount rounded to Digits with the currency symbol, e.g.
// "$1,100.00" or "¥1,100.49".
func (m Money) String() string {
	if m.cur == "" {
		return m.value.StringFixed(Digits)
	}
	f := money.New(0, m.cur).Currency().Formatter()
	f.Fraction = Digits
	return f.Format(m.value.Round(Digits).Shift(Digits).IntPart())
}

// SignedString is String with a "+" on gains, and "-" for a zero amount.
func (m Money) SignedString() string {
	r := m.Round()
	switch {
	case r.IsZero():
		return "-"
	case r.IsPositive():
		return "+" + r.String()
	default:
		return r.String()
	}
}

func (m Money) Currency() string         { return m.cur }
func (m Money) Decimal() decimal.Decimal { return m.value }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsPositive() bool         { return m.value.IsPositive() }
func (m Money) Round() Money             { return Money{value: m.value.Round(Digits), cur: m.cur} }
func (m Money) Add(n Money) Money        { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch" + A.cur + "!=" + B.cur)
	}
	return A.cur
}

// MarshalJSON encodes the amount rounded to Digits, as a number.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.value.StringFixed(Digits)), nil
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}
