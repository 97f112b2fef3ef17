package region

// Index maps p to its zero-based position in enumeration order, i.e. the
// row-major offset with axis 0 fastest: Σ (p[i]-start[i]) · Π_{j<i} len[j].
// The boolean is false when p is not in the region.
// Every axis must be bounded.
// Complexity: O(N).
func (r Region[T, A]) Index(p []T) (int, bool) {
	if !r.Contains(p) {
		return 0, false
	}
	idx, stride := 0, 1
	for i, a := range r.axes {
		// Difference taken modulo 2^64 so negative coordinates work.
		off := int(uint64(p[i]) - uint64(a.Start()))
		idx += off * stride
		stride *= a.Len()
	}

	return idx, true
}

// At is the inverse of Index: it returns the idx-th point in enumeration
// order, or false when idx is outside [0, Len()).
// Complexity: O(N).
func (r Region[T, A]) At(idx int) ([]T, bool) {
	if idx < 0 || idx >= r.Len() {
		return nil, false
	}
	p := make([]T, len(r.axes))
	for i, a := range r.axes {
		l := a.Len()
		// Wrapping addition lands on the right value even when the offset
		// does not fit in T on its own.
		p[i] = a.Start() + T(idx%l)
		idx /= l
	}

	return p, true
}
