package axis

import "golang.org/x/exp/constraints"

// Succ returns v+1. The boolean is false when v is the largest value of T,
// in which case the returned value has wrapped and must not be used.
func Succ[T constraints.Integer](v T) (T, bool) {
	n := v + 1

	return n, n > v
}

// maxOf returns the largest value representable by T.
func maxOf[T constraints.Integer]() T {
	m := T(1)
	for {
		next := m<<1 | 1
		if next <= m {
			return m
		}
		m = next
	}
}

// minOf returns the smallest value representable by T.
func minOf[T constraints.Integer]() T {
	if !signed[T]() {
		return 0
	}

	return -maxOf[T]() - 1
}

// signed reports whether T is a signed integer type.
func signed[T constraints.Integer]() bool {
	var zero T

	return zero-1 < zero
}
