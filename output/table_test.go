package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewTableFormatter(&buf)

	err := formatter.Format(
		[]string{"name", "price"},
		[]map[string]interface{}{
			{"name": "iphone 15 pro", "price": "999"},
			{"name": "redmi note 12", "price": "199"},
		},
	)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "name")
	assert.Contains(t, out, "price")
	assert.Contains(t, out, "iphone 15 pro")
	assert.Contains(t, out, "199")

	// Column order preserved: header mentions name before price.
	assert.Less(t, strings.Index(out, "name"), strings.Index(out, "price"))
}

func TestTableFormatter_EmptyRows(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewTableFormatter(&buf)

	require.NoError(t, formatter.Format([]string{"name"}, nil))
	assert.Empty(t, buf.String())
}

func TestTableFormatter_DerivesColumns(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewTableFormatter(&buf)

	err := formatter.Format(nil, []map[string]interface{}{
		{"avg": 4.766666666666667},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "avg")
	assert.Contains(t, out, "4.766666666666667")
}

func TestTableFormatter_SetOutput(t *testing.T) {
	var first, second bytes.Buffer
	formatter := NewTableFormatter(&first)
	formatter.SetOutput(&second)

	rows := []map[string]interface{}{{"a": "1"}}
	require.NoError(t, formatter.Format([]string{"a"}, rows))

	assert.Empty(t, first.String())
	assert.NotEmpty(t, second.String())
}
