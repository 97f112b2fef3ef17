package grid

import "errors"

var (
	// ErrEmptyGrid indicates the region (or 2D input) has no cells.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one cell")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrUnboundedGrid indicates an axis without a lower or upper edge.
	ErrUnboundedGrid = errors.New("grid: every axis must be bounded")
	// ErrShape indicates the value count does not match the cell count.
	ErrShape = errors.New("grid: value count does not match region size")
	// ErrComponentIndex indicates a requested component index is invalid.
	ErrComponentIndex = errors.New("grid: component index out of range")
	// ErrNoPath indicates no conversion path exists between two components.
	ErrNoPath = errors.New("grid: no path between specified components")
)
