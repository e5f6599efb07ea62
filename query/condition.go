package query

import (
	"fmt"
	"strings"
)

// ParseCondition parses a filter expression like "rating>4.5" into a
// Condition. Operators are tried in priority order (">", "<", "="); the
// expression is split on every occurrence of the first operator found, and
// accepted only when that yields exactly two non-empty halves. The column
// name is the left half verbatim, whitespace included. The right half is
// coerced to a number when it parses as one, otherwise kept as text.
//
// An expression like "a=b>c" parses on ">" with column "a=b": only the
// first operator in priority order that appears in the string is used.
func ParseCondition(expr string) (Condition, error) {
	for _, op := range operators {
		if !strings.Contains(expr, string(op)) {
			continue
		}
		parts := strings.Split(expr, string(op))
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return Condition{}, fmt.Errorf("%w: %q", ErrConditionFormat, expr)
		}
		return Condition{
			Column: parts[0],
			Op:     op,
			Value:  coerceString(parts[1]),
		}, nil
	}
	return Condition{}, fmt.Errorf("%w: %q", ErrConditionFormat, expr)
}
