package grid

// ConnectedComponents finds all contiguous groups (“islands”) of land cells
// (value ≥ LandThreshold), according to g.Conn connectivity.
// Returns a slice of components; each component is a slice of cell indices
// in BFS order. Components are ordered by their first cell in enumeration order.
//
// To convert an index back to a point, use Point(idx).
//
// Time:   O(C·d), where d is the neighbour count.
// Memory: O(C) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]int {
	seen := make([]bool, len(g.Values))
	var comps [][]int

	i0 := 0
	for range g.Space.All() {
		start := i0
		i0++
		if !g.isLand(start) || seen[start] {
			continue
		}
		// BFS to collect component
		queue := []int{start}
		seen[start] = true
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			g.neighbors(u, func(v int) {
				if g.isLand(v) && !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			})
		}
		comps = append(comps, comp)
	}

	return comps
}
