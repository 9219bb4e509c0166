// Package tradereport analyzes brokerage account history exports.
//
// An export is a list of rows, each one either a closed position or the
// commission charged for it. Rows are classified by an Extractor, grouped in
// buckets by period (day, week, month, quarter, year or a custom range) and
// every bucket gets a Summary: trade counts, profit and loss totals, returns,
// batting average and win/loss ratio.
//
// The analysis is a pure function of the rows and the Options: Analyze never
// touches files or the network, and a row that cannot be parsed aborts it.
// LoadAccountHistory and DecodeAccountHistory read TradingView CSV exports.
//
// This package is the engine of the `tradereport` command-line tool, the
// rendering of reports lives in the renderer package.
package tradereport
