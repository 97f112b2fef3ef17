package grid

import (
	"github.com/katalvlaran/nrange/axis"
	"github.com/katalvlaran/nrange/region"
)

// Space is the region type a Grid is laid over.
type Space = region.Region[int, axis.Range[int]]

// Connectivity selects which cells count as neighbours.
type Connectivity int

const (
	// ConnFaces links cells that differ by ±1 on exactly one axis.
	ConnFaces Connectivity = iota
	// ConnAll links cells that differ by at most 1 on every axis.
	ConnAll
)

// Options contains tunable parameters for grid analysis.
type Options struct {
	// LandThreshold specifies the minimum cell value considered "land".
	LandThreshold int
	// Conn chooses face or full connectivity.
	Conn Connectivity
}

// DefaultOptions returns Options with LandThreshold=1 (values ≥1 are land)
// and Conn=ConnFaces.
func DefaultOptions() Options {
	return Options{
		LandThreshold: 1,
		Conn:          ConnFaces,
	}
}

// Grid labels every point of a bounded region with a value. It is immutable
// once built. Values[i] belongs to the i-th point in enumeration order.
type Grid struct {
	Space         Space
	Values        []int
	Conn          Connectivity
	LandThreshold int
	offsets       [][]int
}
