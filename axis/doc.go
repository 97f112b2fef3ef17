// Package axis describes one-dimensional integer intervals, the building
// blocks of an N-dimensional region.
//
// What:
//
//   - Axis is the capability set a region needs from each of its axes:
//     membership (Contains), cardinality (Len, IsEmpty) and the resolved
//     inclusive start (Start).
//   - Range is the stock implementation. It covers every interval shape
//     expressible with an included, excluded or unbounded edge on either side:
//     lo..hi, lo..=hi, lo.., ..hi, ..=hi and .. .
//   - Succ steps an element to its discrete successor and reports overflow.
//   - Parse reads the textual form produced by Range.String.
//
// Zero value:
//
//   - The zero Range is 0..0: start included, end excluded, no members.
//     A region built from default axes is therefore empty.
//
// Contract violations:
//
//   - Start on an axis with an unbounded start panics with ErrUnboundedStart.
//   - Len on an axis with any unbounded edge panics with ErrUnbounded.
//   - Len that does not fit in an int panics with ErrOverflow.
//
// These are programmer errors, not data conditions; Parse is the only
// function that returns errors.
//
// Complexity:
//
//   - Contains, Len, IsEmpty, Start, Succ: O(1).
package axis
