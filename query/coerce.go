package query

import (
	"fmt"
	"strconv"
	"strings"
)

// Coerce converts a raw cell value to a tagged Value, attempting numeric
// coercion for strings. Coercion is best-effort and never fails: a string
// that does not parse as a number is kept as text, and native numeric
// types pass through with their kind preserved.
//
// The heuristic is deliberate: a string containing "." gets exactly one
// float parse attempt, anything else gets exactly one integer parse
// attempt. "1.2.3" therefore attempts (and fails) a float parse and stays
// a string, and "1e5" stays a string because it has no dot.
func Coerce(cell interface{}) Value {
	switch v := cell.(type) {
	case string:
		return coerceString(v)
	case int:
		return IntValue(int64(v))
	case int8:
		return IntValue(int64(v))
	case int16:
		return IntValue(int64(v))
	case int32:
		return IntValue(int64(v))
	case int64:
		return IntValue(v)
	case uint:
		return IntValue(int64(v))
	case uint8:
		return IntValue(int64(v))
	case uint16:
		return IntValue(int64(v))
	case uint32:
		return IntValue(int64(v))
	case uint64:
		return IntValue(int64(v))
	case float32:
		return FloatValue(float64(v))
	case float64:
		return FloatValue(v)
	case nil:
		return StringValue("")
	default:
		return StringValue(fmt.Sprintf("%v", v))
	}
}

// coerceString applies the dot-presence heuristic to text. The parse
// attempts tolerate surrounding whitespace but the fallback keeps the
// string verbatim.
func coerceString(s string) Value {
	if strings.Contains(s, ".") {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return FloatValue(f)
		}
		return StringValue(s)
	}
	if n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
		return IntValue(n)
	}
	return StringValue(s)
}
