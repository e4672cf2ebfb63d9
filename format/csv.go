package format

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/Tylerbryy/extractr"
	"github.com/spf13/cast"
)

// writeCSV renders the records as CSV with the given column order. When
// columns is empty the columns are taken from the first record's keys,
// sorted for determinism.
//
// Cells are written by hand rather than through encoding/csv: cells that
// would execute as spreadsheet formulas need an apostrophe prefix plus
// forced quoting, and encoding/csv cannot quote a cell that its own
// rules consider safe.
func writeCSV(w io.Writer, records []extractr.Record, columns []string) error {
	if len(columns) == 0 {
		columns = inferColumns(records)
	}
	if len(columns) == 0 {
		return nil
	}

	if err := writeRow(w, columns); err != nil {
		return err
	}

	row := make([]string, len(columns))
	for _, record := range records {
		for i, col := range columns {
			row[i] = cellString(record[col])
		}
		if err := writeRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

func inferColumns(records []extractr.Record) []string {
	if len(records) == 0 {
		return nil
	}
	columns := make([]string, 0, len(records[0]))
	for key := range records[0] {
		columns = append(columns, key)
	}
	// Map iteration order is random; sort so repeated runs agree.
	sort.Strings(columns)
	return columns
}

func writeRow(w io.Writer, cells []string) error {
	for i, cell := range cells {
		if i > 0 {
			if _, err := io.WriteString(w, ","); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, escapeCell(cell)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// escapeCell neutralizes spreadsheet formula injection and applies CSV
// quoting. Cells starting with a formula trigger character get an
// apostrophe prefix and are always quoted; cells containing separators,
// quotes, or line breaks are quoted with internal quotes doubled.
func escapeCell(cell string) string {
	if startsFormula(cell) {
		return `"'` + strings.ReplaceAll(cell, `"`, `""`) + `"`
	}
	if strings.ContainsAny(cell, ",\"\n\r") {
		return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
	}
	return cell
}

func startsFormula(cell string) bool {
	if cell == "" {
		return false
	}
	switch cell[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return true
	}
	return false
}

// cellString flattens one record value into cell text. Nested records
// and lists are rendered as compact JSON so no data is silently dropped.
func cellString(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case []string:
		return strings.Join(v, ",")
	case []any, []extractr.Record, map[string]any:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(data)
	default:
		return cast.ToString(v)
	}
}
