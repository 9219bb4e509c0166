package tradereport

import (
	"github.com/shopspring/decimal"
)

// Percent is a percentage value (10 means 10%) that may be undefined.
//
// Undefined percents come out of means over empty sets (no winning trade, no
// losing trade). They are displayed as "n/a" and encoded as JSON null: they
// are never coerced to 0.
type Percent struct {
	value   decimal.Decimal
	defined bool
}

// Pct returns a defined Percent.
func Pct[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Percent {
	return Percent{value: newDecimal(value), defined: true}
}

// UndefinedPercent returns the undefined Percent.
func UndefinedPercent() Percent { return Percent{} }

func (p Percent) IsDefined() bool          { return p.defined }
func (p Percent) Decimal() decimal.Decimal { return p.value }

// Round returns p rounded to 2 fractional digits.
func (p Percent) Round() Percent {
	if !p.defined {
		return p
	}
	return Percent{value: p.value.Round(2), defined: true}
}

// Equal reports whether p and q are both undefined, or both defined and equal
// once rounded to 2 digits.
func (p Percent) Equal(q Percent) bool {
	if p.defined != q.defined {
		return false
	}
	return !p.defined || p.value.Round(2).Equal(q.value.Round(2))
}

func (p Percent) String() string {
	if !p.defined {
		return "n/a"
	}
	return p.value.StringFixed(2) + "%"
}

func (p Percent) SignedString() string {
	if !p.defined {
		return "n/a"
	}
	r := p.value.Round(2)
	switch {
	case r.IsZero():
		return "-"
	case r.IsPositive():
		return "+" + r.StringFixed(2) + "%"
	default:
		return r.StringFixed(2) + "%"
	}
}

func (p Percent) MarshalJSON() ([]byte, error) {
	if !p.defined {
		return []byte("null"), nil
	}
	return []byte(p.value.StringFixed(2)), nil
}

// Ratio is a plain ratio (2.2 means 2.2 to 1) that may be undefined.
type Ratio struct {
	value   decimal.Decimal
	defined bool
}

// NewRatio returns a defined Ratio.
func NewRatio(value decimal.Decimal) Ratio { return Ratio{value: value, defined: true} }

// UndefinedRatio returns the undefined Ratio.
func UndefinedRatio() Ratio { return Ratio{} }

func (r Ratio) IsDefined() bool          { return r.defined }
func (r Ratio) Decimal() decimal.Decimal { return r.value }

func (r Ratio) Equal(q Ratio) bool {
	if r.defined != q.defined {
		return false
	}
	return !r.defined || r.value.Round(2).Equal(q.value.Round(2))
}

func (r Ratio) String() string {
	if !r.defined {
		return "n/a"
	}
	return r.value.StringFixed(2)
}

func (r Ratio) MarshalJSON() ([]byte, error) {
	if !r.defined {
		return []byte("null"), nil
	}
	return []byte(r.value.StringFixed(2)), nil
}
