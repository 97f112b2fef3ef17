package region

import "errors"

// Panic values for contract violations.
var (
	// ErrDimensionMismatch indicates a point whose length differs from the region's dimension.
	ErrDimensionMismatch = errors.New("region: point dimension does not match region")

	// ErrNegativeDimension indicates a negative axis count was requested.
	ErrNegativeDimension = errors.New("region: dimension must be non-negative")
)
