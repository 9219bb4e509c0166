package tradereport

import (
	"encoding/json"
	"testing"

	"github.com/etnz/tradereport/date"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_MarshalJSON(t *testing.T) {
	rows := []RawRow{
		commission("2024-04-01", "-1"),
		trade("2024-03-04 15:30:00", "long", "1000", "1100"),
		trade("2024-03-12 10:00:00", "short", "1100", "1050"),
	}
	r, err := Analyze(rows, Options{Period: date.Monthly})
	require.NoError(t, err)

	got, err := json.Marshal(r)
	require.NoError(t, err)

	want := `{"period":"monthly","currency":"USD","buckets":[` +
		`{"key":"2024-04","summary":{"trades":0,"long":0,"short":0,"totalReturn":0.00,"averageReturn":0.00,"battingAverage":0.00,` +
		`"averageWin":null,"averageLoss":null,"winLossRatio":null,"commission":-1.00,"netProfit":0.00,"grossProfit":0.00,"grossLoss":0.00},"details":[]},` +
		`{"key":"2024-03","summary":{"trades":2,"long":1,"short":1,"totalReturn":5.45,"averageReturn":2.73,"battingAverage":50.00,` +
		`"averageWin":10.00,"averageLoss":-4.55,"winLossRatio":2.20,"commission":0.00,"netProfit":50.00,"grossProfit":100.00,"grossLoss":-50.00},"details":[` +
		`{"time":"2024-03-04 15:30:00","position":"long","symbol":"NASDAQ:AAPL","quantity":10,"closedPrice":171.25,"balanceBefore":1000.00,"balanceAfter":1100.00,"profitLoss":100.00,"return":10.00},` +
		`{"time":"2024-03-12 10:00:00","position":"short","symbol":"NASDAQ:AAPL","quantity":10,"closedPrice":171.25,"balanceBefore":1100.00,"balanceAfter":1050.00,"profitLoss":-50.00,"return":-4.55}` +
		`]}]}`
	assert.Equal(t, want, string(got))
	assert.True(t, json.Valid(got))
}

func TestReport_MarshalJSON_Custom(t *testing.T) {
	r := &Report{Period: date.Custom, Currency: "EUR", Range: date.Range{From: date.New(2024, 1, 1), To: date.New(2024, 1, 31)}}
	got, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, `{"period":"custom","currency":"EUR","from":"2024-01-01","to":"2024-01-31","buckets":[]}`, string(got))
}
