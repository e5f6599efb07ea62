// Package reader provides functionality for reading tabular files.
//
// It reads delimited text (CSV by default) and Apache Parquet files into
// an in-memory Table: an ordered column list plus rows as maps for
// flexible access by column name.
package reader

import (
	"path/filepath"
	"strings"
)

// Table is an in-memory tabular dataset. Columns preserves the column
// display order (header order for delimited files, schema order for
// parquet); Rows holds one map per record keyed by column name.
type Table struct {
	Columns []string
	Rows    []map[string]interface{}
}

// Open reads the file at path into a Table. Files with a ".parquet"
// extension are read as parquet; everything else is read as delimited
// text using the given field delimiter.
//
// Returns an error satisfying errors.Is(err, fs.ErrNotExist) when the
// file does not exist.
func Open(path string, delimiter rune) (*Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".parquet") {
		return readParquet(path)
	}
	return readDelimited(path, delimiter)
}
