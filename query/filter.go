package query

import "fmt"

// ApplyFilter filters rows by a condition expression. An empty condition
// returns the input slice unchanged. Otherwise each row's value for the
// condition column is coerced and compared against the parsed value; rows
// that match are kept in their original order.
//
// A row without the condition column is an error: the lookup is not
// guarded by a default. Parse failures and ordering comparisons between a
// number and a string propagate as errors.
func ApplyFilter(rows []map[string]interface{}, condition string) ([]map[string]interface{}, error) {
	if condition == "" {
		return rows, nil
	}

	cond, err := ParseCondition(condition)
	if err != nil {
		return nil, err
	}

	filtered := make([]map[string]interface{}, 0)
	for _, row := range rows {
		cell, ok := row[cond.Column]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, cond.Column)
		}

		match, err := compare(Coerce(cell), cond.Op, cond.Value)
		if err != nil {
			return nil, err
		}
		if match {
			filtered = append(filtered, row)
		}
	}

	return filtered, nil
}

// compare evaluates left <op> right over tagged values.
//
// Ordering operators require both sides numeric (compared as floats) or
// both sides text (compared lexicographically). Equality is looser: a text
// right-hand side matches on the string representation of the left value,
// a numeric right-hand side matches numerically, so 5 equals 5.0.
func compare(left Value, op Operator, right Value) (bool, error) {
	switch op {
	case OpGreater, OpLess:
		switch {
		case left.IsNumeric() && right.IsNumeric():
			if op == OpGreater {
				return left.AsFloat() > right.AsFloat(), nil
			}
			return left.AsFloat() < right.AsFloat(), nil
		case left.Kind == KindString && right.Kind == KindString:
			if op == OpGreater {
				return left.Str > right.Str, nil
			}
			return left.Str < right.Str, nil
		default:
			return false, fmt.Errorf("%w: %s with %s", ErrTypeMismatch, left.Kind, right.Kind)
		}
	case OpEqual:
		if right.Kind == KindString {
			return left.String() == right.Str, nil
		}
		return left.IsNumeric() && left.AsFloat() == right.AsFloat(), nil
	default:
		return false, nil
	}
}

// GetColumnNames returns all unique column names from rows, in first-seen
// order. Used by the CLI to suggest columns when a filter references one
// that does not exist.
func GetColumnNames(rows []map[string]interface{}) []string {
	if len(rows) == 0 {
		return nil
	}

	seen := make(map[string]bool)
	columns := make([]string, 0)

	for _, row := range rows {
		for col := range row {
			if !seen[col] {
				seen[col] = true
				columns = append(columns, col)
			}
		}
	}

	return columns
}
