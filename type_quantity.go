package tradereport

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Quantity is a whole number of shares.
type Quantity int64

// ParseQuantity reads a positive number of shares.
func ParseQuantity(s string) (Quantity, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("quantity must be positive, got %d", n)
	}
	return Quantity(n), nil
}

func (q Quantity) Decimal() decimal.Decimal { return decimal.NewFromInt(int64(q)) }
func (q Quantity) String() string           { return strconv.FormatInt(int64(q), 10) }
