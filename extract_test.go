package tradereport

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const closeLongAAPL = "Close long position for symbol NASDAQ:AAPL at price 171.25 for 10 shares. Position AVG Price was 165.10"

func TestTradingView(t *testing.T) {
	testCases := []struct {
		action   string
		position Position
		symbol   string
		quantity int
		price    string
	}{
		{closeLongAAPL, Long, "NASDAQ:AAPL", 10, "171.25"},
		{"Close short position for symbol NYSE:F at price 12 for 300 shares", Short, "NYSE:F", 300, "12"},
		// rules do not depend on the order of the markers
		{"for 5 shares: Close long position at price 0.5 on symbol BINANCE:BTCUSDT", Long, "BINANCE:BTCUSDT", 5, "0.5"},
	}
	for _, tc := range testCases {
		t.Run(tc.action, func(t *testing.T) {
			p, err := TradingView.Position(tc.action)
			require.NoError(t, err)
			assert.Equal(t, tc.position, p)

			s, err := TradingView.Symbol(tc.action)
			require.NoError(t, err)
			assert.Equal(t, tc.symbol, s)

			q, err := TradingView.Quantity(tc.action)
			require.NoError(t, err)
			assert.Equal(t, Quantity(tc.quantity), q)

			price, err := TradingView.Price(tc.action)
			require.NoError(t, err)
			assert.True(t, price.Equal(decimal.RequireFromString(tc.price)), "Price() = %v, want %v", price, tc.price)
		})
	}
}

func TestTradingView_Errors(t *testing.T) {
	testCases := []struct {
		name   string
		action string
		field  string
	}{
		{"no position", "Open long position for symbol NASDAQ:AAPL at price 1 for 1 shares", FieldPosition},
		{"unqualified symbol", "Close long position for symbol AAPL at price 1 for 1 shares", FieldSymbol},
		{"no shares", "Close long position for symbol NASDAQ:AAPL at price 171.25 for 10", FieldQuantity},
		{"zero shares", "Close long position for symbol NASDAQ:AAPL at price 171.25 for 0 shares", FieldQuantity},
		{"no price", "Close long position for symbol NASDAQ:AAPL for 10 shares", FieldPrice},
	}
	x := NewExtractor(CommissionRealizedPnL, "USD")
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := x.Classify(RawRow{Action: tc.action, BalanceBefore: "1000", BalanceAfter: "1100"})
			var pe *ParseError
			require.True(t, errors.As(err, &pe), "Classify() error = %v, want a *ParseError", err)
			assert.Equal(t, tc.field, pe.Field)
			assert.Equal(t, -1, pe.Row)
		})
	}
}

func TestExtractor_Classify(t *testing.T) {
	x := NewExtractor(CommissionRealizedPnL, "USD")

	t.Run("trade", func(t *testing.T) {
		c, err := x.Classify(RawRow{
			Time:          "2024-03-05 14:30:00",
			Action:        closeLongAAPL,
			BalanceBefore: "10\u00a0000.50",
			BalanceAfter:  "10\u00a0250.75",
		})
		require.NoError(t, err)
		assert.False(t, c.IsCommission)
		assert.Equal(t, "NASDAQ:AAPL", c.Trade.Symbol)
		assert.True(t, c.Trade.BalanceBefore.Equal(M(10000.50, "USD")), "BalanceBefore = %v", c.Trade.BalanceBefore)
		assert.True(t, c.Trade.BalanceAfter.Equal(M(10250.75, "USD")), "BalanceAfter = %v", c.Trade.BalanceAfter)
	})

	t.Run("commission reads only the commission field", func(t *testing.T) {
		c, err := x.Classify(RawRow{
			Action:        "Commission for: " + closeLongAAPL,
			BalanceBefore: "not a number",
			Fields:        map[string]string{CommissionRealizedPnL: "-1.25"},
		})
		require.NoError(t, err)
		assert.True(t, c.IsCommission)
		assert.True(t, c.Commission.Equal(M(-1.25, "USD")), "Commission = %v", c.Commission)
	})

	t.Run("commission from the P&L column", func(t *testing.T) {
		x := NewExtractor(CommissionPnL, "USD")
		c, err := x.Classify(RawRow{
			Action: "Commission for: " + closeLongAAPL,
			Fields: map[string]string{CommissionPnL: "-0.5", CommissionRealizedPnL: "-9"},
		})
		require.NoError(t, err)
		assert.True(t, c.Commission.Equal(M(-0.5, "USD")), "Commission = %v", c.Commission)
	})

	t.Run("missing commission", func(t *testing.T) {
		_, err := x.Classify(RawRow{Action: "Commission for: " + closeLongAAPL})
		var pe *ParseError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, FieldCommission, pe.Field)
	})

	t.Run("bad balance", func(t *testing.T) {
		_, err := x.Classify(RawRow{Action: closeLongAAPL, BalanceBefore: "1000", BalanceAfter: "n/a"})
		var pe *ParseError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, FieldBalanceAfter, pe.Field)
		assert.Equal(t, "n/a", pe.Text)
	})
}

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		text    string
		want    string
		wantErr bool
	}{
		{"1000", "1000", false},
		{"10\u00a0250.75", "10250.75", false},
		{"1\u202f000\u202f000", "1000000", false},
		{" -3.5 ", "-3.5", false},
		{"", "", true},
		{"\u00a0", "", true},
		{"12,5", "", true},
	}
	for _, tc := range testCases {
		t.Run(tc.text, func(t *testing.T) {
			got, err := parseAmount(tc.text)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tc.want)), "parseAmount(%q) = %v, want %v", tc.text, got, tc.want)
		})
	}
}
