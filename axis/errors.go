package axis

import "errors"

// Panic values. An axis method that cannot honour its contract panics with
// one of these; recover() followed by errors.Is identifies the cause.
var (
	// ErrUnboundedStart indicates Start was asked of an axis without a lower edge.
	ErrUnboundedStart = errors.New("axis: cannot resolve an unbounded start")

	// ErrUnbounded indicates Len was asked of an axis with an unbounded edge.
	ErrUnbounded = errors.New("axis: cardinality of an unbounded axis is undefined")

	// ErrOverflow indicates a resolved bound or a cardinality does not fit its type.
	ErrOverflow = errors.New("axis: value overflows its type")
)

// Errors returned by Parse.
var (
	// ErrSyntax indicates the text is not a range expression.
	ErrSyntax = errors.New("axis: invalid range syntax")

	// ErrValue indicates a bound is not a valid value of the element type.
	ErrValue = errors.New("axis: invalid bound value")
)
