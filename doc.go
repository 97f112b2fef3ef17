// Package nrange is a small toolkit for N-dimensional integer boxes: a
// Region is the Cartesian product of one range per axis, and an Odometer
// walks every point of it exactly once.
//
// 🚀 What is nrange?
//
//	A generic, dependency-light library that brings together:
//		• Axis ranges: all six bound shapes (a..b, a..=b, a.., ..b, ..=b, ..)
//		  for every Go integer type, with parsing from text
//		• Regions: containment, emptiness, cardinality, row-major Index/At
//		• Iteration: a fused odometer with exact remaining length, plus
//		  range-over-func via Region.All
//		• Grids: values laid over a bounded region, islands and bridges in
//		  any number of dimensions
//
// ✨ Why choose nrange?
//
//   - Replaces arbitrarily deep nested loops with one flat loop
//   - Axis 0 varies fastest, so enumeration order is predictable
//   - Works at type limits: 0..=255 over uint8 just works
//   - Pure Go generics, no reflection
//
// Packages:
//
//	axis/       Range, Bound, Succ and Parse for a single dimension
//	region/     Region, Odometer, Index/At
//	grid/       labelled cells over a region, ConnectedComponents, ExpandIsland
//	cmd/nrange/ command-line front end (walk, len, contains, index, at)
//
// Quick example:
//
//	r := region.Of(axis.New(0, 2), axis.New(0, 2))
//	for p := range r.All() {
//		fmt.Println(p) // [0 0] [1 0] [0 1] [1 1]
//	}
//
//	go get github.com/katalvlaran/nrange
package nrange
