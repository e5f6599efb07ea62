package reader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"
)

// parquetReader reads parquet files and returns rows as maps.
//
// It maintains both an OS file handle and a parquet file handle to enable
// proper resource cleanup.
type parquetReader struct {
	file   *os.File
	pqFile *parquet.File
}

// openParquet opens and validates a parquet file. Returns an error if the
// file doesn't exist or is not a valid parquet file.
func openParquet(path string) (*parquetReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	return &parquetReader{
		file:   file,
		pqFile: pqFile,
	}, nil
}

// readAll reads all rows from the parquet file into memory. The entire
// file is loaded, so this is not suitable for very large files.
func (r *parquetReader) readAll() ([]map[string]interface{}, error) {
	rows := make([]map[string]interface{}, 0)

	reader := parquet.NewReader(r.pqFile)
	defer func() { _ = reader.Close() }()

	for {
		row := make(map[string]interface{})
		err := reader.Read(&row)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// columns returns the column names in schema order.
func (r *parquetReader) columns() []string {
	fields := r.pqFile.Schema().Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name()
	}
	return names
}

// close releases the underlying file handle. Safe to call multiple times.
func (r *parquetReader) close() error {
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// readParquet reads a whole parquet file into a Table. Cell values keep
// their native parquet scalar types.
func readParquet(path string) (*Table, error) {
	r, err := openParquet(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.close() }()

	rows, err := r.readAll()
	if err != nil {
		return nil, err
	}

	return &Table{Columns: r.columns(), Rows: rows}, nil
}
