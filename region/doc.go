// Package region provides N-dimensional integer regions: the Cartesian
// product of N axes, and an odometer that walks every point inside.
//
// What:
//
//   - Region holds N axes (any type satisfying axis.Axis) in a fixed order.
//     The order defines both coordinate indexing and enumeration order.
//   - Contains, Len and IsEmpty derive from the axes; Index and At map
//     points to and from their position in enumeration order.
//   - Odometer enumerates the points like a mixed-radix counter: axis 0 is
//     the fastest-moving digit, axis N-1 the slowest. It behaves exactly like
//     N nested loops with axis 0 innermost.
//
// Conventions:
//
//   - The dimension N is fixed when the region is built. Points passed to
//     Contains or Index must have length N or the call panics with
//     ErrDimensionMismatch.
//   - A 0-dimensional region (including the zero Region) is empty: it
//     contains no points and Len reports 0.
//   - A region is empty as soon as one axis is empty, whatever the size of
//     the others.
//   - Every point handed out is a fresh slice owned by the caller.
//
// Example:
//
//	r := region.Of(axis.New(0, 2), axis.New(0, 2))
//	for p := range r.All() {
//		fmt.Println(p) // [0 0] [1 0] [0 1] [1 1]
//	}
//
// Complexity:
//
//   - Contains, Len, IsEmpty, Index, At: O(N).
//   - Odometer.Next: O(1) amortised, O(N) worst case (full carry).
//
// Concurrency:
//
//   - A Region is never mutated after construction and may be shared freely.
//   - An Odometer is a single-consumer cursor; give each goroutine its own.
package region
