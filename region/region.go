package region

import (
	"fmt"
	"iter"
	"math"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/nrange/axis"
)

// Region is the product of N axes. It is immutable once built.
// T is the coordinate type and A the axis type shared by every dimension.
type Region[T constraints.Integer, A axis.Axis[T]] struct {
	axes []A
}

// New builds a region from axes, in order. Axes are stored as given;
// empty or unbounded ones surface only when queried or iterated.
// The coordinate type must be named explicitly: region.New[int](a, b).
func New[T constraints.Integer, A axis.Axis[T]](axes ...A) Region[T, A] {
	own := make([]A, len(axes))
	copy(own, axes)

	return Region[T, A]{axes: own}
}

// Of builds a region from axis.Range values.
func Of[T constraints.Integer](axes ...axis.Range[T]) Region[T, axis.Range[T]] {
	return New[T](axes...)
}

// Repeat builds an n-dimensional region with a on every axis.
// It panics with ErrNegativeDimension if n < 0.
func Repeat[T constraints.Integer, A axis.Axis[T]](a A, n int) Region[T, A] {
	if n < 0 {
		panic(ErrNegativeDimension)
	}
	axes := make([]A, n)
	for i := range axes {
		axes[i] = a
	}

	return Region[T, A]{axes: axes}
}

// Zero builds an n-dimensional region of zero-valued axes. With axis.Range
// every axis is 0..0, so the region is empty.
func Zero[T constraints.Integer, A axis.Axis[T]](n int) Region[T, A] {
	if n < 0 {
		panic(ErrNegativeDimension)
	}

	return Region[T, A]{axes: make([]A, n)}
}

// Dim returns N, the number of axes.
func (r Region[T, A]) Dim() int { return len(r.axes) }

// Axis returns the i-th axis. It panics if i is out of range.
func (r Region[T, A]) Axis(i int) A { return r.axes[i] }

// Axes returns a copy of the axes in order.
func (r Region[T, A]) Axes() []A {
	out := make([]A, len(r.axes))
	copy(out, r.axes)

	return out
}

// Contains reports whether every coordinate of p lies within its axis.
// A 0-dimensional region contains nothing.
// Complexity: O(N), stops at the first failing axis.
func (r Region[T, A]) Contains(p []T) bool {
	r.checkDim(p)
	if len(r.axes) == 0 {
		return false
	}
	for i, a := range r.axes {
		if !a.Contains(p[i]) {
			return false
		}
	}

	return true
}

// IsEmpty reports whether the region has no points: N == 0 or any axis empty.
// Each axis is checked on its own, so unbounded axes are fine here.
func (r Region[T, A]) IsEmpty() bool {
	if len(r.axes) == 0 {
		return true
	}
	for _, a := range r.axes {
		if a.IsEmpty() {
			return true
		}
	}

	return false
}

// Len returns the number of points, the product of the axis lengths.
// Empty regions, including N == 0, report 0. Unbounded non-empty axes make
// the axis panic; a product beyond math.MaxInt panics with axis.ErrOverflow.
func (r Region[T, A]) Len() int {
	if r.IsEmpty() {
		return 0
	}
	n := 1
	for _, a := range r.axes {
		l := a.Len()
		if l == 0 {
			return 0
		}
		if n > math.MaxInt/l {
			panic(axis.ErrOverflow)
		}
		n *= l
	}

	return n
}

// Equal reports whether both regions have the same axes in the same order.
func (r Region[T, A]) Equal(o Region[T, A]) bool {
	if len(r.axes) != len(o.axes) {
		return false
	}
	for i := range r.axes {
		if r.axes[i] != o.axes[i] {
			return false
		}
	}

	return true
}

// String renders the axes as a list, e.g. [0..3, 0..3].
func (r Region[T, A]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, a := range r.axes {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprint(a))
	}
	sb.WriteByte(']')

	return sb.String()
}

// Iter returns an Odometer positioned before the first point.
func (r Region[T, A]) Iter() *Odometer[T, A] {
	return newOdometer(r)
}

// All returns the points as an iterator for range-over-func loops.
// Each call starts a fresh walk.
func (r Region[T, A]) All() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		it := r.Iter()
		for p, ok := it.Next(); ok; p, ok = it.Next() {
			if !yield(p) {
				return
			}
		}
	}
}

// Points collects every point in enumeration order.
func (r Region[T, A]) Points() [][]T {
	return r.Iter().Collect()
}

// checkDim panics unless p has one coordinate per axis.
func (r Region[T, A]) checkDim(p []T) {
	if len(p) != len(r.axes) {
		panic(ErrDimensionMismatch)
	}
}
