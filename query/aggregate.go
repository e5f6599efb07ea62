package query

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseAggregate parses an aggregate expression like "rating=avg" into an
// AggregateSpec. The expression must contain exactly one "=" separating
// the column name from the function name, and the function must be one of
// avg, min, or max (case-sensitive).
func ParseAggregate(expr string) (AggregateSpec, error) {
	parts := strings.Split(expr, "=")
	if len(parts) != 2 {
		return AggregateSpec{}, fmt.Errorf("%w: %q", ErrAggregateFormat, expr)
	}

	fn := AggregateFunc(parts[1])
	switch fn {
	case FuncAvg, FuncMin, FuncMax:
	default:
		return AggregateSpec{}, fmt.Errorf("%w: %q", ErrUnsupportedFunction, parts[1])
	}

	return AggregateSpec{Column: parts[0], Func: fn}, nil
}

// Aggregate computes a single statistic over a numeric column. An empty
// aggregate expression returns no result. Every row's value for the
// column must parse as a float; a single failure aborts the whole
// aggregate with no partial result. An empty row set yields an empty
// result set rather than an error.
//
// The result is a single row whose one key is the function name.
func Aggregate(rows []map[string]interface{}, aggregate string) ([]map[string]interface{}, error) {
	if aggregate == "" {
		return nil, nil
	}

	spec, err := ParseAggregate(aggregate)
	if err != nil {
		return nil, err
	}

	values := make([]float64, 0, len(rows))
	for _, row := range rows {
		f, ok := toFloat(row[spec.Column])
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrNonNumericColumn, spec.Column)
		}
		values = append(values, f)
	}

	if len(values) == 0 {
		return nil, nil
	}

	var result float64
	switch spec.Func {
	case FuncAvg:
		var sum float64
		for _, v := range values {
			sum += v
		}
		result = sum / float64(len(values))
	case FuncMin:
		result = values[0]
		for _, v := range values[1:] {
			if v < result {
				result = v
			}
		}
	case FuncMax:
		result = values[0]
		for _, v := range values[1:] {
			if v > result {
				result = v
			}
		}
	}

	return []map[string]interface{}{{string(spec.Func): result}}, nil
}

// toFloat forces a cell to a float64. Unlike Coerce this is a direct
// numeric parse with no dot heuristic: integer strings become floats too.
func toFloat(cell interface{}) (float64, bool) {
	switch v := cell.(type) {
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}
