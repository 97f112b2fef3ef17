package axis

import "golang.org/x/exp/constraints"

// Axis is the capability set required from one dimension of a region.
//
// Implementations must be comparable: regions compare their axes with ==.
type Axis[T constraints.Integer] interface {
	comparable

	// Contains reports whether v lies within the axis.
	Contains(v T) bool

	// Len returns the number of distinct values on the axis.
	// It panics if either edge is unbounded.
	Len() int

	// IsEmpty reports whether the axis has no values. Unlike Len it is
	// defined for unbounded axes.
	IsEmpty() bool

	// Start returns the smallest value on the axis.
	// It panics if the start is unbounded.
	Start() T
}

// BoundKind tells how a Bound limits its side of an interval.
type BoundKind int

const (
	// Included bounds contain their value.
	Included BoundKind = iota
	// Excluded bounds stop just before (or just after) their value.
	Excluded
	// Unbounded edges do not limit the interval; the bound value is ignored.
	Unbounded
)

// String returns the lower-case kind name.
func (k BoundKind) String() string {
	switch k {
	case Included:
		return "included"
	case Excluded:
		return "excluded"
	case Unbounded:
		return "unbounded"
	default:
		return "invalid"
	}
}

// Bound is one edge of an interval.
type Bound[T constraints.Integer] struct {
	Kind  BoundKind
	Value T
}

// Inc returns an included bound at v.
func Inc[T constraints.Integer](v T) Bound[T] { return Bound[T]{Kind: Included, Value: v} }

// Exc returns an excluded bound at v.
func Exc[T constraints.Integer](v T) Bound[T] { return Bound[T]{Kind: Excluded, Value: v} }

// Open returns an unbounded edge.
func Open[T constraints.Integer]() Bound[T] { return Bound[T]{Kind: Unbounded} }
