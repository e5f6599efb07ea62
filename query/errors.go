package query

import "errors"

// Error values returned by the parsing and evaluation functions. Callers
// discriminate kinds with errors.Is; the wrapped messages carry the
// offending expression, function, or column name.
var (
	// ErrConditionFormat reports a condition expression with no recognized
	// operator, or whose operator does not occur exactly once.
	ErrConditionFormat = errors.New("invalid condition format")

	// ErrAggregateFormat reports an aggregate expression without exactly
	// one "=" separating column and function.
	ErrAggregateFormat = errors.New("invalid aggregate format")

	// ErrUnsupportedFunction reports an aggregate function outside the
	// supported set (avg, min, max).
	ErrUnsupportedFunction = errors.New("unsupported aggregate function")

	// ErrNonNumericColumn reports an aggregate over a column whose values
	// do not all parse as numbers.
	ErrNonNumericColumn = errors.New("cannot aggregate non-numeric column")

	// ErrColumnNotFound reports a filter referencing a column that is
	// absent from a row.
	ErrColumnNotFound = errors.New("column not found")

	// ErrTypeMismatch reports an ordering comparison between a number and
	// a string.
	ErrTypeMismatch = errors.New("cannot compare values")
)
