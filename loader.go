package tradereport

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadAccountHistory reads an account history CSV export from a file.
func LoadAccountHistory(path, commissionField string) ([]RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open account history: %w", err)
	}
	defer f.Close()
	rows, err := DecodeAccountHistory(f, commissionField)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	return rows, nil
}

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// DecodeAccountHistory reads the rows of an account history CSV export.
//
// The header must contain the RequiredColumns and commissionField, in any
// order; otherwise the error wraps ErrNotAccountHistory. An empty
// commissionField stands for CommissionRealizedPnL.
func DecodeAccountHistory(r io.Reader, commissionField string) ([]RawRow, error) {
	if commissionField == "" {
		commissionField = CommissionRealizedPnL
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	cr := csv.NewReader(bytes.NewReader(data))
	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty file", ErrNotAccountHistory)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	if missing := missingColumns(columns, commissionField); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing columns %s", ErrNotAccountHistory, strings.Join(missing, ", "))
	}

	var rows []RawRow
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("invalid row %d: %w", len(rows), err)
		}
		fields := make(map[string]string, len(header))
		for name, i := range columns {
			fields[name] = record[i]
		}
		rows = append(rows, RawRow{
			Time:          fields[ColumnTime],
			Action:        fields[ColumnAction],
			BalanceBefore: fields[ColumnBalanceBefore],
			BalanceAfter:  fields[ColumnBalanceAfter],
			Fields:        fields,
		})
	}
	return rows, nil
}

func missingColumns(columns map[string]int, commissionField string) []string {
	var missing []string
	for _, name := range append(RequiredColumns[:len(RequiredColumns):len(RequiredColumns)], commissionField) {
		if _, ok := columns[name]; !ok {
			missing = append(missing, fmt.Sprintf("%q", name))
		}
	}
	return missing
}
