package tradereport

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// ActionParser extracts the trade facts from the action text of a row.
//
// Each method is independent: it searches the whole action text for its own
// marker and never depends on what the others matched.
type ActionParser interface {
	Position(action string) (Position, error)
	Symbol(action string) (string, error)
	Quantity(action string) (Quantity, error)
	Price(action string) (decimal.Decimal, error)
}

// rule is a named extraction rule: the first group of re is the value of field.
type rule struct {
	field string
	re    *regexp.Regexp
}

func (r rule) find(action string) (string, error) {
	m := r.re.FindStringSubmatch(action)
	if m == nil {
		return "", &ParseError{Row: -1, Field: r.field, Text: action}
	}
	return m[1], nil
}

// Rules of the TradingView account history action text, e.g.
//
//	Close long position for symbol NASDAQ:AAPL at price 171.25 for 10 shares. Position AVG Price was 165.10
var (
	positionRule = rule{FieldPosition, regexp.MustCompile(`Close (long|short) position`)}
	symbolRule   = rule{FieldSymbol, regexp.MustCompile(`symbol (\w+:\w+)`)}
	quantityRule = rule{FieldQuantity, regexp.MustCompile(`for (\d+) shares`)}
	priceRule    = rule{FieldPrice, regexp.MustCompile(`price (\d+(?:\.\d+)?)`)}
)

// TradingView is the ActionParser for TradingView account history exports.
var TradingView ActionParser = tradingView{}

type tradingView struct{}

func (tradingView) Position(action string) (Position, error) {
	s, err := positionRule.find(action)
	if err != nil {
		return Long, err
	}
	return ParsePosition(s)
}

func (tradingView) Symbol(action string) (string, error) { return symbolRule.find(action) }

func (tradingView) Quantity(action string) (Quantity, error) {
	s, err := quantityRule.find(action)
	if err != nil {
		return 0, err
	}
	q, err := ParseQuantity(s)
	if err != nil {
		return 0, &ParseError{Row: -1, Field: FieldQuantity, Text: action, Err: err}
	}
	return q, nil
}

func (tradingView) Price(action string) (decimal.Decimal, error) {
	s, err := priceRule.find(action)
	if err != nil {
		return decimal.Zero, err
	}
	p, err := decimal.NewFromString(s)
	if err != nil || !p.IsPositive() {
		return decimal.Zero, &ParseError{Row: -1, Field: FieldPrice, Text: action, Err: err}
	}
	return p, nil
}

// CommissionMarker identifies commission rows in the action text.
const CommissionMarker = "Commission"

// TradeFields are the facts extracted from a trade row.
type TradeFields struct {
	Position      Position
	Symbol        string
	Quantity      Quantity
	ClosedPrice   decimal.Decimal
	BalanceBefore Money
	BalanceAfter  Money
}

// Classification is the outcome of classifying a row: either a commission
// charge or a closed trade.
type Classification struct {
	IsCommission bool
	Commission   Money       // set when IsCommission
	Trade        TradeFields // set otherwise
}

// Extractor classifies account history rows.
type Extractor struct {
	CommissionField string       // column holding the amount of commission rows
	Currency        string       // account currency
	Parser          ActionParser // defaults to TradingView
}

// NewExtractor returns an Extractor for TradingView exports whose commission
// amount is in the column commissionField.
func NewExtractor(commissionField, currency string) *Extractor {
	return &Extractor{CommissionField: commissionField, Currency: currency, Parser: TradingView}
}

// Classify turns a row into a commission amount or the fields of a trade.
//
// Errors are *ParseError identifying the field that could not be recovered;
// their Row is -1, the caller knows the position of the row.
func (x *Extractor) Classify(row RawRow) (Classification, error) {
	if strings.Contains(row.Action, CommissionMarker) {
		text, _ := row.Field(x.CommissionField)
		amount, err := parseAmount(text)
		if err != nil {
			return Classification{}, &ParseError{Row: -1, Field: FieldCommission, Text: text, Err: err}
		}
		return Classification{IsCommission: true, Commission: M(amount, x.Currency)}, nil
	}

	p := x.Parser
	if p == nil {
		p = TradingView
	}
	var (
		t   TradeFields
		err error
	)
	if t.Position, err = p.Position(row.Action); err != nil {
		return Classification{}, err
	}
	if t.Symbol, err = p.Symbol(row.Action); err != nil {
		return Classification{}, err
	}
	if t.Quantity, err = p.Quantity(row.Action); err != nil {
		return Classification{}, err
	}
	if t.ClosedPrice, err = p.Price(row.Action); err != nil {
		return Classification{}, err
	}

	before, err := parseAmount(row.BalanceBefore)
	if err != nil {
		return Classification{}, &ParseError{Row: -1, Field: FieldBalanceBefore, Text: row.BalanceBefore, Err: err}
	}
	after, err := parseAmount(row.BalanceAfter)
	if err != nil {
		return Classification{}, &ParseError{Row: -1, Field: FieldBalanceAfter, Text: row.BalanceAfter, Err: err}
	}
	t.BalanceBefore = M(before, x.Currency)
	t.BalanceAfter = M(after, x.Currency)
	return Classification{Trade: t}, nil
}

// digitSeparators are the characters exports use to group digits.
var digitSeparators = strings.NewReplacer("\u00a0", "", "\u202f", "")

// parseAmount parses a decimal amount written with non-breaking space digit
// group separators, like "10\u00a0250.75".
func parseAmount(text string) (decimal.Decimal, error) {
	s := strings.TrimSpace(digitSeparators.Replace(text))
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	return decimal.NewFromString(s)
}
