package reader

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestOpen_Delimited(t *testing.T) {
	path := writeTempFile(t, "products.csv",
		"name,brand,price,rating\n"+
			"iphone 15 pro,apple,999,4.9\n"+
			"galaxy s23 ultra,samsung,1199,4.8\n"+
			"redmi note 12,xiaomi,199,4.6\n")

	table, err := Open(path, ',')
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "brand", "price", "rating"}, table.Columns)
	require.Len(t, table.Rows, 3)
	assert.Equal(t, "iphone 15 pro", table.Rows[0]["name"])
	assert.Equal(t, "999", table.Rows[0]["price"])
	assert.Equal(t, "4.6", table.Rows[2]["rating"])
}

func TestOpen_TrimsWhitespace(t *testing.T) {
	path := writeTempFile(t, "spaced.csv",
		" name , price \n"+
			" widget , 10 \n")

	table, err := Open(path, ',')
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "price"}, table.Columns)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "widget", table.Rows[0]["name"])
	assert.Equal(t, "10", table.Rows[0]["price"])
}

func TestOpen_CustomDelimiter(t *testing.T) {
	path := writeTempFile(t, "data.tsv", "a\tb\n1\t2\n")

	table, err := Open(path, '\t')
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, table.Columns)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "2", table.Rows[0]["b"])
}

func TestOpen_EmptyFile(t *testing.T) {
	path := writeTempFile(t, "empty.csv", "")

	table, err := Open(path, ',')
	require.NoError(t, err)

	assert.Empty(t, table.Columns)
	assert.Empty(t, table.Rows)
}

func TestOpen_HeaderOnly(t *testing.T) {
	path := writeTempFile(t, "header.csv", "name,price\n")

	table, err := Open(path, ',')
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "price"}, table.Columns)
	assert.Empty(t, table.Rows)
}

func TestOpen_RaggedRecord(t *testing.T) {
	path := writeTempFile(t, "ragged.csv", "a,b\n1,2,3\n")

	_, err := Open(path, ',')
	assert.Error(t, err)
}

func TestOpen_FileNotFound(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.csv"), ',')
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
