package axis

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Range is an interval of integers with an independently included,
// excluded or unbounded edge on each side.
//
// Range is a comparable value type: two ranges are == exactly when they
// were built from the same bounds. The zero value is the empty range 0..0.
type Range[T constraints.Integer] struct {
	lo, hi T
	// Flags are chosen so that the zero value reads as lo included, hi excluded.
	loExcluded, loOpen bool
	hiIncluded, hiOpen bool
}

// New returns the half-open range lo..hi.
func New[T constraints.Integer](lo, hi T) Range[T] {
	return Range[T]{lo: lo, hi: hi}
}

// Inclusive returns the closed range lo..=hi.
func Inclusive[T constraints.Integer](lo, hi T) Range[T] {
	return Range[T]{lo: lo, hi: hi, hiIncluded: true}
}

// From returns the range lo.. with no upper edge.
func From[T constraints.Integer](lo T) Range[T] {
	return Range[T]{lo: lo, hiOpen: true}
}

// To returns the range ..hi with no lower edge.
func To[T constraints.Integer](hi T) Range[T] {
	return Range[T]{hi: hi, loOpen: true}
}

// ToInclusive returns the range ..=hi with no lower edge.
func ToInclusive[T constraints.Integer](hi T) Range[T] {
	return Range[T]{hi: hi, loOpen: true, hiIncluded: true}
}

// Full returns the range .. covering every value of T.
func Full[T constraints.Integer]() Range[T] {
	return Range[T]{loOpen: true, hiOpen: true}
}

// Between returns the range described by an arbitrary pair of bounds.
// The value of an Unbounded bound is discarded so that equal intervals
// compare equal.
func Between[T constraints.Integer](start, end Bound[T]) Range[T] {
	var r Range[T]
	switch start.Kind {
	case Included:
		r.lo = start.Value
	case Excluded:
		r.lo, r.loExcluded = start.Value, true
	default:
		r.loOpen = true
	}
	switch end.Kind {
	case Included:
		r.hi, r.hiIncluded = end.Value, true
	case Excluded:
		r.hi = end.Value
	default:
		r.hiOpen = true
	}

	return r
}

// StartBound returns the lower edge.
func (r Range[T]) StartBound() Bound[T] {
	switch {
	case r.loOpen:
		return Open[T]()
	case r.loExcluded:
		return Exc(r.lo)
	default:
		return Inc(r.lo)
	}
}

// EndBound returns the upper edge.
func (r Range[T]) EndBound() Bound[T] {
	switch {
	case r.hiOpen:
		return Open[T]()
	case r.hiIncluded:
		return Inc(r.hi)
	default:
		return Exc(r.hi)
	}
}

// Contains reports whether v lies within r.
// Complexity: O(1).
func (r Range[T]) Contains(v T) bool {
	if !r.loOpen {
		if r.loExcluded && v <= r.lo || !r.loExcluded && v < r.lo {
			return false
		}
	}
	if !r.hiOpen {
		if r.hiIncluded && v > r.hi || !r.hiIncluded && v >= r.hi {
			return false
		}
	}

	return true
}

// IsEmpty reports whether r has no members.
func (r Range[T]) IsEmpty() bool {
	first, ok := r.first()
	if !ok {
		return true
	}
	last, ok := r.last()
	if !ok {
		return true
	}

	return first > last
}

// Len returns the number of values in r.
// It panics with ErrUnbounded if either edge is unbounded and with
// ErrOverflow if the count exceeds math.MaxInt.
func (r Range[T]) Len() int {
	if r.loOpen || r.hiOpen {
		panic(ErrUnbounded)
	}
	if r.IsEmpty() {
		return 0
	}
	first, _ := r.first()
	last, _ := r.last()
	// Two's complement keeps the difference exact modulo 2^64.
	span := uint64(last) - uint64(first)
	if span >= math.MaxInt {
		panic(ErrOverflow)
	}

	return int(span) + 1
}

// Start returns the smallest value in r.
// It panics with ErrUnboundedStart when r has no lower edge and with
// ErrOverflow when an excluded start is the largest value of T.
func (r Range[T]) Start() T {
	if r.loOpen {
		panic(ErrUnboundedStart)
	}
	first, ok := r.first()
	if !ok {
		panic(ErrOverflow)
	}

	return first
}

// String renders r the way Parse reads it: 0..3, 0..=3, 2.., ..5, ..=5, ..
// An excluded start is prefixed with '(' as in (0..3.
func (r Range[T]) String() string {
	var lo, hi string
	if !r.loOpen {
		lo = fmt.Sprint(r.lo)
		if r.loExcluded {
			lo = "(" + lo
		}
	}
	if !r.hiOpen {
		hi = fmt.Sprint(r.hi)
		if r.hiIncluded {
			hi = "=" + hi
		}
	}

	return lo + ".." + hi
}

// first resolves the inclusive lower edge; false means no value qualifies.
func (r Range[T]) first() (T, bool) {
	switch {
	case r.loOpen:
		return minOf[T](), true
	case r.loExcluded:
		return Succ(r.lo)
	default:
		return r.lo, true
	}
}

// last resolves the inclusive upper edge; false means no value qualifies.
func (r Range[T]) last() (T, bool) {
	switch {
	case r.hiOpen:
		return maxOf[T](), true
	case r.hiIncluded:
		return r.hi, true
	case r.hi == minOf[T]():
		return r.hi, false
	default:
		return r.hi - 1, true
	}
}
