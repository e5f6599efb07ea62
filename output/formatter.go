// Package output provides formatters for rendering tabular data.
//
// Currently supported formats:
//   - table: aligned text table with a header row
//   - CSV: comma-separated values with header row
//   - JSON Lines: one JSON object per line
//
// Example usage:
//
//	formatter := output.NewTableFormatter(os.Stdout)
//	if err := formatter.Format(table.Columns, table.Rows); err != nil {
//	    log.Fatal(err)
//	}
package output

import (
	"fmt"
	"io"
	"sort"
)

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to render rows in the target format
// and SetOutput to change the output destination.
type Formatter interface {
	// Format writes rows in the formatter's specific format. The columns
	// slice carries the display order; when empty, formatters derive a
	// sorted column list from the rows themselves.
	Format(columns []string, rows []map[string]interface{}) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// resolveColumns returns the display columns: the supplied order when
// present, otherwise the sorted union of keys across all rows. The
// fallback handles result sets with no ingestion-time order, like
// aggregate results.
func resolveColumns(columns []string, rows []map[string]interface{}) []string {
	if len(columns) > 0 {
		return columns
	}

	columnSet := make(map[string]bool)
	for _, row := range rows {
		for col := range row {
			columnSet[col] = true
		}
	}

	derived := make([]string, 0, len(columnSet))
	for col := range columnSet {
		derived = append(derived, col)
	}
	sort.Strings(derived)

	return derived
}

// formatValue converts a cell value to its display string.
func formatValue(v interface{}) string {
	if v == nil {
		return ""
	}

	switch val := v.(type) {
	case string:
		return val
	case int, int8, int16, int32, int64:
		return fmt.Sprintf("%d", val)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", val)
	case float32, float64:
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
