package tradereport

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/etnz/tradereport/date"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trade returns a row closing a position.
func trade(time, position, before, after string) RawRow {
	return RawRow{
		Time:          time,
		Action:        fmt.Sprintf("Close %s position for symbol NASDAQ:AAPL at price 171.25 for 10 shares", position),
		BalanceBefore: before,
		BalanceAfter:  after,
	}
}

// commission returns a commission row.
func commission(time, amount string) RawRow {
	return RawRow{
		Time:   time,
		Action: "Commission for: Close long position for symbol NASDAQ:AAPL",
		Fields: map[string]string{CommissionRealizedPnL: amount},
	}
}

func TestAnalyze_MonthlyExample(t *testing.T) {
	rows := []RawRow{
		trade("2024-03-04 15:30:00", "long", "1000", "1100"),
		trade("2024-03-12 10:00:00", "short", "1100", "1050"),
	}
	r, err := Analyze(rows, Options{Period: date.Monthly})
	require.NoError(t, err)
	require.Equal(t, []string{"2024-03"}, r.Keys())

	b := r.Bucket("2024-03")
	require.NotNil(t, b)
	require.Len(t, b.Details, 2)
	assert.Equal(t, "10.00%", b.Details[0].Return.String())
	assert.Equal(t, "-4.55%", b.Details[1].Return.String())

	s := b.Summary
	assert.Equal(t, 2, s.Trades)
	assert.Equal(t, 1, s.Long)
	assert.Equal(t, 1, s.Short)
	assert.Equal(t, "$50.00", s.NetProfit.String())
	assert.Equal(t, "$100.00", s.GrossProfit.String())
	assert.Equal(t, "-$50.00", s.GrossLoss.String())
	assert.Equal(t, "50.00%", s.BattingAverage.String())
	assert.Equal(t, "10.00%", s.AverageWin.String())
	assert.Equal(t, "-4.55%", s.AverageLoss.String())
	assert.Equal(t, "2.20", s.WinLossRatio.String())
	assert.Equal(t, "$0.00", s.Commission.String())
}

func TestAnalyze_TradeRounding(t *testing.T) {
	r, err := Analyze([]RawRow{trade("2024-01-02", "long", "3000.005", "3100.0149")}, Options{Period: date.Daily})
	require.NoError(t, err)
	got := r.Buckets[0].Details[0]
	// 100.0099 / 3000.005 * 100 = 3.33365...
	assert.Equal(t, "100.01", got.ProfitLoss.Decimal().String())
	assert.Equal(t, "3.33%", got.Return.String())
	assert.Equal(t, "3000.01", got.BalanceBefore.Decimal().String())
	assert.Equal(t, "3100.01", got.BalanceAfter.Decimal().String())
}

func TestAnalyze_RoundingIgnoresCurrency(t *testing.T) {
	testCases := []struct {
		currency string
		pnl      string
	}{
		{"USD", "+$100.49"},
		{"JPY", "+¥100.49"},
		{"BHD", "+100.49 .\u062f.\u0628"},
	}
	for _, tc := range testCases {
		t.Run(tc.currency, func(t *testing.T) {
			rows := []RawRow{trade("2024-03-04", "long", "1000.40", "1100.89")}
			r, err := Analyze(rows, Options{Period: date.Monthly, Currency: tc.currency})
			require.NoError(t, err)
			got := r.Buckets[0].Details[0]

			assert.Equal(t, "100.49", got.ProfitLoss.Decimal().String())
			assert.Equal(t, tc.pnl, got.ProfitLoss.SignedString())
			data, err := json.Marshal(got)
			require.NoError(t, err)
			assert.Contains(t, string(data), `"balanceBefore":1000.40,"balanceAfter":1100.89,"profitLoss":100.49`)
			data, err = json.Marshal(r.Buckets[0].Summary)
			require.NoError(t, err)
			assert.Contains(t, string(data), `"netProfit":100.49`)
		})
	}
}

func TestAnalyze_Keys(t *testing.T) {
	rows := []RawRow{
		trade("2024-11-30 09:00:00", "long", "1000", "1010"),
		trade("2024-02-01T09:00:00Z", "long", "1010", "1020"),
		commission("2024-11-02", "-1"),
		trade("2023-12-31", "short", "1020", "1000"),
	}
	testCases := []struct {
		period date.Period
		want   []string
	}{
		{date.Daily, []string{"2024-11-30", "2024-02-01", "2024-11-02", "2023-12-31"}},
		{date.Weekly, []string{"2024-W48", "2024-W05", "2024-W44", "2023-W52"}},
		{date.Monthly, []string{"2024-11", "2024-02", "2023-12"}},
		{date.Quarterly, []string{"2024-Q4", "2024-Q1", "2023-Q4"}},
		{date.Yearly, []string{"2024", "2023"}},
	}
	for _, tc := range testCases {
		t.Run(tc.period.String(), func(t *testing.T) {
			r, err := Analyze(rows, Options{Period: tc.period})
			require.NoError(t, err)
			assert.Equal(t, tc.want, r.Keys(), "buckets must follow the first-seen order")
		})
	}
}

func TestAnalyze_CommissionOnlyBucket(t *testing.T) {
	rows := []RawRow{
		trade("2024-03-04", "long", "1000", "1100"),
		commission("2024-04-01", "-1.5"),
		commission("2024-04-02", "-0.25"),
	}
	r, err := Analyze(rows, Options{Period: date.Monthly})
	require.NoError(t, err)

	b := r.Bucket("2024-04")
	require.NotNil(t, b)
	assert.Empty(t, b.Details)
	s := b.Summary
	assert.Equal(t, 0, s.Trades)
	assert.Equal(t, 0, s.Long)
	assert.Equal(t, 0, s.Short)
	assert.True(t, s.NetProfit.IsZero())
	assert.True(t, s.GrossProfit.IsZero())
	assert.True(t, s.GrossLoss.IsZero())
	assert.True(t, s.TotalReturn.Decimal().IsZero())
	assert.True(t, s.BattingAverage.Decimal().IsZero())
	assert.False(t, s.AverageWin.IsDefined())
	assert.False(t, s.AverageLoss.IsDefined())
	assert.False(t, s.WinLossRatio.IsDefined())
	assert.Equal(t, "-$1.75", s.Commission.String())
}

func TestAnalyze_UndefinedRatios(t *testing.T) {
	r, err := Analyze([]RawRow{
		trade("2024-03-04", "long", "1000", "1100"),
		trade("2024-03-05", "long", "1100", "1100"),
	}, Options{Period: date.Monthly})
	require.NoError(t, err)
	s := r.Buckets[0].Summary
	assert.Equal(t, "10.00%", s.AverageWin.String())
	assert.Equal(t, "n/a", s.AverageLoss.String())
	assert.Equal(t, "n/a", s.WinLossRatio.String())
	assert.Equal(t, "50.00%", s.BattingAverage.String(), "a break-even trade is not a win")
	assert.Equal(t, "$0.00", s.GrossLoss.String())
}

func TestAnalyze_CommissionIsCommutative(t *testing.T) {
	amounts := []string{"-0.1", "-0.2", "-0.3", "-1.005", "-7"}
	var rows []RawRow
	for _, a := range amounts {
		rows = append(rows, commission("2024-05-01", a))
	}
	forward, err := Analyze(rows, Options{Period: date.Yearly})
	require.NoError(t, err)

	reversed := make([]RawRow, len(rows))
	for i, row := range rows {
		reversed[len(rows)-1-i] = row
	}
	backward, err := Analyze(reversed, Options{Period: date.Yearly})
	require.NoError(t, err)

	want := M(-8.605, "USD")
	assert.True(t, forward.Buckets[0].Commission.Equal(want), "Commission = %v, want %v", forward.Buckets[0].Commission.Decimal(), want.Decimal())
	assert.True(t, backward.Buckets[0].Commission.Equal(want), "Commission = %v, want %v", backward.Buckets[0].Commission.Decimal(), want.Decimal())
}

func TestAnalyze_Idempotent(t *testing.T) {
	rows := []RawRow{
		trade("2024-03-04", "long", "1000", "1100"),
		commission("2024-03-04", "-2"),
		trade("2024-07-05", "short", "1100", "1050"),
	}
	first, err := Analyze(rows, Options{Period: date.Quarterly})
	require.NoError(t, err)
	second, err := Analyze(rows, Options{Period: date.Quarterly})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAnalyze_CustomRange(t *testing.T) {
	rows := []RawRow{
		trade("2024-02-29 23:59:59", "long", "1000", "1100"),
		trade("2024-03-01 00:00:01", "long", "1100", "1200"),
		commission("2024-03-10", "-1"),
		trade("2024-03-10 12:00:00", "short", "1200", "1150"),
		trade("2024-03-11 08:00:00", "long", "1150", "1300"),
	}
	r, err := Analyze(rows, Options{
		Period: date.Custom,
		Range:  date.Range{From: date.New(2024, 3, 1), To: date.New(2024, 3, 10)},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-03-01", "2024-03-10"}, r.Keys())
	assert.Len(t, r.Bucket("2024-03-10").Details, 1)
	assert.Equal(t, "-$1.00", r.Bucket("2024-03-10").Commission.String())
}

func TestAnalyze_RestrictedPeriod(t *testing.T) {
	rows := []RawRow{
		trade("2024-02-29", "long", "1000", "1100"),
		trade("2024-03-01", "long", "1100", "1200"),
		trade("2024-03-31", "short", "1200", "1150"),
		trade("2024-04-01", "long", "1150", "1300"),
	}
	rng := date.NewRange(date.New(2024, 3, 15), date.Monthly)
	r, err := Analyze(rows, Options{Period: date.Monthly, Range: rng})
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-03"}, r.Keys())
	assert.Equal(t, 2, r.Bucket("2024-03").Summary.Trades)
	assert.Equal(t, rng, r.Range)

	_, err = Analyze(rows, Options{Period: date.Monthly, Range: date.Range{From: date.New(2024, 3, 1)}})
	var re *InvalidRangeError
	assert.ErrorAs(t, err, &re)
}

func TestAnalyze_InvalidOptions(t *testing.T) {
	rows := []RawRow{trade("2024-03-04", "long", "1000", "1100")}

	_, err := Analyze(rows, Options{Period: date.Custom, Range: date.Range{From: date.New(2024, 3, 10), To: date.New(2024, 3, 1)}})
	var re *InvalidRangeError
	assert.ErrorAs(t, err, &re)

	_, err = Analyze(rows, Options{Period: date.Custom, Range: date.Range{From: date.New(2024, 3, 10)}})
	assert.ErrorAs(t, err, &re)

	for _, p := range []date.Period{date.Period(-1), date.Period(42)} {
		_, err = Analyze(rows, Options{Period: p})
		var pe *InvalidPeriodModeError
		assert.ErrorAs(t, err, &pe, "period %d", int(p))
	}
}

func TestAnalyze_Aborts(t *testing.T) {
	testCases := []struct {
		name  string
		bad   RawRow
		check func(t *testing.T, err error)
	}{
		{
			name: "missing shares",
			bad: RawRow{
				Time:          "2024-03-05",
				Action:        "Close long position for symbol NASDAQ:AAPL at price 171.25 for 10",
				BalanceBefore: "1000",
				BalanceAfter:  "1010",
			},
			check: func(t *testing.T, err error) {
				var pe *ParseError
				require.ErrorAs(t, err, &pe)
				assert.Equal(t, FieldQuantity, pe.Field)
				assert.Equal(t, 1, pe.Row)
			},
		},
		{
			name: "zero balance",
			bad:  trade("2024-03-05", "long", "0", "10"),
			check: func(t *testing.T, err error) {
				var de *DivisionHazardError
				require.ErrorAs(t, err, &de)
				assert.Equal(t, 1, de.Row)
			},
		},
		{
			name: "bad time",
			bad:  trade("yesterday", "long", "1000", "1010"),
			check: func(t *testing.T, err error) {
				var pe *ParseError
				require.ErrorAs(t, err, &pe)
				assert.Equal(t, FieldTime, pe.Field)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rows := []RawRow{trade("2024-03-04", "long", "1000", "1100"), tc.bad, trade("2024-03-06", "long", "1010", "1020")}
			r, err := Analyze(rows, Options{Period: date.Monthly})
			assert.Nil(t, r, "no partial report")
			tc.check(t, err)
		})
	}
}

func TestAnalyze_CustomRangeSkipsBeforeParsing(t *testing.T) {
	// out of range rows are not classified, even when malformed
	rows := []RawRow{
		{Time: "2023-01-01", Action: "garbage"},
		trade("2024-03-04", "long", "1000", "1100"),
	}
	r, err := Analyze(rows, Options{
		Period: date.Custom,
		Range:  date.Range{From: date.New(2024, 1, 1), To: date.New(2024, 12, 31)},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-03-04"}, r.Keys())
}

func TestAnalyze_CommissionField(t *testing.T) {
	rows := []RawRow{{
		Time:   "2024-03-04",
		Action: "Commission",
		Fields: map[string]string{CommissionPnL: "-3"},
	}}
	r, err := Analyze(rows, Options{Period: date.Daily, CommissionField: CommissionPnL, Currency: "EUR"})
	require.NoError(t, err)
	assert.True(t, r.Buckets[0].Commission.Equal(M(-3, "EUR")))

	_, err = Analyze(rows, Options{Period: date.Daily})
	assert.True(t, errors.As(err, new(*ParseError)), "default commission field is %q", CommissionRealizedPnL)
}

func TestAnalyzeParallel(t *testing.T) {
	var rows []RawRow
	balance := 1000
	for i := range 200 {
		day := date.New(2024, 1, 1).Add(i * 3)
		if i%7 == 0 {
			rows = append(rows, commission(day.String(), "-0.5"))
			continue
		}
		next := balance + (i%5-2)*10
		rows = append(rows, trade(day.String()+" 10:00:00", "long", fmt.Sprint(balance), fmt.Sprint(next)))
		balance = next
	}
	want, err := Analyze(rows, Options{Period: date.Monthly})
	require.NoError(t, err)

	for _, workers := range []int{1, 2, 3, 8} {
		t.Run(fmt.Sprint(workers), func(t *testing.T) {
			got, err := AnalyzeParallel(rows, Options{Period: date.Monthly}, workers)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	t.Run("first failing row", func(t *testing.T) {
		bad := append([]RawRow(nil), rows...)
		bad[150].Action = "Close long position"
		bad[20].Action = "Close long position"
		_, err := AnalyzeParallel(bad, Options{Period: date.Monthly}, 4)
		var pe *ParseError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, 20, pe.Row)
	})
}
