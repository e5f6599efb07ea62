// Package query implements filtering and aggregation over tabular data.
//
// Rows are represented as maps from column name to cell value. A filter is
// a single comparison expression like "rating>4.5" and an aggregate is a
// column/function pair like "rating=avg". Cell values are coerced from text
// to numbers with a best-effort heuristic before comparison.
//
// Example usage:
//
//	rows, err := query.ApplyFilter(rows, "price<1000")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := query.Aggregate(rows, "rating=avg")
package query

import "strconv"

// Operator is a comparison operator in a filter condition.
type Operator string

const (
	OpGreater Operator = ">"
	OpLess    Operator = "<"
	OpEqual   Operator = "="
)

// operators lists the recognized operators in scan priority order. The
// order is significant: ParseCondition splits on the first operator
// present in the expression, so this must stay an ordered list.
var operators = []Operator{OpGreater, OpLess, OpEqual}

// ValueKind discriminates the variants of Value.
type ValueKind int

const (
	KindString ValueKind = iota
	KindInt
	KindFloat
)

// String returns a human-readable kind name for error messages.
func (k ValueKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "string"
	}
}

// Value is a tagged cell value: either text, an integer, or a float.
// Keeping the variants explicit keeps the comparison rules in compare
// testable instead of relying on dynamic typing.
type Value struct {
	Kind  ValueKind
	Str   string
	Int   int64
	Float float64
}

// StringValue returns a Value holding text.
func StringValue(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// IntValue returns a Value holding an integer.
func IntValue(n int64) Value {
	return Value{Kind: KindInt, Int: n}
}

// FloatValue returns a Value holding a float.
func FloatValue(f float64) Value {
	return Value{Kind: KindFloat, Float: f}
}

// IsNumeric reports whether the value holds a number.
func (v Value) IsNumeric() bool {
	return v.Kind == KindInt || v.Kind == KindFloat
}

// AsFloat returns the numeric value as a float64. It is only meaningful
// for numeric kinds; string values return 0.
func (v Value) AsFloat() float64 {
	switch v.Kind {
	case KindInt:
		return float64(v.Int)
	case KindFloat:
		return v.Float
	default:
		return 0
	}
}

// String returns the textual representation of the value. Floats use the
// shortest representation that round-trips, so a cell read as "4.90"
// renders as "4.9" after coercion.
func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	default:
		return v.Str
	}
}

// Condition is a parsed filter predicate.
type Condition struct {
	Column string
	Op     Operator
	Value  Value
}

// AggregateFunc is a recognized aggregate function name.
type AggregateFunc string

const (
	FuncAvg AggregateFunc = "avg"
	FuncMin AggregateFunc = "min"
	FuncMax AggregateFunc = "max"
)

// AggregateSpec is a parsed aggregate request.
type AggregateSpec struct {
	Column string
	Func   AggregateFunc
}
