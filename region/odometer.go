package region

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/nrange/axis"
)

// Odometer is a cursor over the points of a Region.
//
// Description:
//
//	The cursor keeps the next point to hand out. Next returns it and then
//	advances the cursor like a mixed-radix counter, axis 0 being the least
//	significant digit:
//	  1. step axis i to its successor;
//	  2. if the successor is on the axis, stop;
//	  3. otherwise wrap axis i to its start and carry into axis i+1;
//	  4. a carry out of axis N-1 ends the walk.
//
// Once Done reports true the odometer never yields again.
type Odometer[T constraints.Integer, A axis.Axis[T]] struct {
	region  Region[T, A]
	current []T
	yielded int
	done    bool
}

// newOdometer positions a cursor on the first point, or finishes it at
// once when the region is empty.
func newOdometer[T constraints.Integer, A axis.Axis[T]](r Region[T, A]) *Odometer[T, A] {
	if r.IsEmpty() {
		return &Odometer[T, A]{done: true}
	}
	current := make([]T, len(r.axes))
	for i, a := range r.axes {
		current[i] = a.Start()
	}

	return &Odometer[T, A]{region: r, current: current}
}

// Next returns the next point and true, or nil and false once the region
// is exhausted. The returned slice is owned by the caller.
// Complexity: O(1) amortised.
func (o *Odometer[T, A]) Next() ([]T, bool) {
	if o.done {
		return nil, false
	}
	ret := make([]T, len(o.current))
	copy(ret, o.current)
	o.yielded++
	o.advance()

	return ret, true
}

// advance moves the cursor to the successor point, finishing the walk on a
// carry out of the last axis.
func (o *Odometer[T, A]) advance() {
	last := len(o.current) - 1
	for i, a := range o.region.axes {
		if next, ok := axis.Succ(o.current[i]); ok && a.Contains(next) {
			o.current[i] = next

			return
		}
		o.current[i] = a.Start()
		if i == last {
			o.finish()
		}
	}
}

// finish drops the region and cursor; the odometer is Done from now on.
func (o *Odometer[T, A]) finish() {
	o.done = true
	o.region = Region[T, A]{}
	o.current = nil
}

// Done reports whether the walk has ended.
func (o *Odometer[T, A]) Done() bool { return o.done }

// Len returns how many points Next will still yield; 0 once Done.
// It shares the panics of Region.Len for unbounded axes.
func (o *Odometer[T, A]) Len() int {
	if o.done {
		return 0
	}

	return o.region.Len() - o.yielded
}

// Collect drains the odometer and returns the remaining points in order.
func (o *Odometer[T, A]) Collect() [][]T {
	var out [][]T
	for p, ok := o.Next(); ok; p, ok = o.Next() {
		out = append(out, p)
	}

	return out
}
