package grid_test

import (
	"errors"
	"reflect"
	"sort"
	"testing"

	"github.com/katalvlaran/nrange/axis"
	"github.com/katalvlaran/nrange/grid"
	"github.com/katalvlaran/nrange/region"
)

//----------------------------------------------------------------------------//
// Construction and InBounds Tests
//----------------------------------------------------------------------------//

// TestFrom2D_Errors verifies that From2D rejects empty or ragged inputs.
func TestFrom2D_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.From2D(tc.grid, grid.ConnFaces)
			if !errors.Is(err, tc.err) {
				t.Errorf("From2D(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNew_Errors verifies region-level validation.
func TestNew_Errors(t *testing.T) {
	opts := grid.DefaultOptions()
	cases := []struct {
		name   string
		space  grid.Space
		values []int
		err    error
	}{
		{"Empty", region.Of(axis.New(0, 3), axis.New(0, 0)), nil, grid.ErrEmptyGrid},
		{"ZeroDim", region.Of[int](), nil, grid.ErrEmptyGrid},
		{"Unbounded", region.Of(axis.New(0, 3), axis.From(0)), []int{1}, grid.ErrUnboundedGrid},
		{"Shape", region.Of(axis.New(0, 2), axis.New(0, 2)), []int{1, 2, 3}, grid.ErrShape},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.space, tc.values, opts)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.space, err, tc.err)
			}
		})
	}
}

// TestInBounds checks InBounds and Value on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := grid.From2D([][]int{
		{0, 1, 0},
		{1, 0, 7},
	}, grid.ConnFaces)
	if err != nil {
		t.Fatalf("From2D error: %v", err)
	}

	for _, p := range [][]int{{0, 0}, {2, 1}, {1, 1}} {
		if !g.InBounds(p) {
			t.Errorf("InBounds(%v)=false; want true", p)
		}
	}
	for _, p := range [][]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		if g.InBounds(p) {
			t.Errorf("InBounds(%v)=true; want false", p)
		}
	}
	if v, ok := g.Value([]int{2, 1}); !ok || v != 7 {
		t.Errorf("Value([2 1]) = %d,%v; want 7,true", v, ok)
	}
	if _, ok := g.Value([]int{3, 1}); ok {
		t.Errorf("Value([3 1]) reported in bounds")
	}
}

// TestIndexPoint checks the cell index round trip, including negative axes.
func TestIndexPoint(t *testing.T) {
	space := region.Of(axis.Inclusive(-1, 1), axis.New(10, 12))
	g, err := grid.New(space, make([]int, 6), grid.DefaultOptions())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	for i := 0; i < 6; i++ {
		p := g.Point(i)
		if j, ok := g.Index(p); !ok || j != i {
			t.Errorf("Index(Point(%d)=%v) = %d,%v", i, p, j, ok)
		}
	}
}

// TestNew_CopiesValues checks the grid is isolated from its input.
func TestNew_CopiesValues(t *testing.T) {
	vals := []int{1, 1}
	g, err := grid.New(region.Of(axis.New(0, 2)), vals, grid.DefaultOptions())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	vals[0] = 0
	if g.Values[0] != 1 {
		t.Errorf("grid observed caller mutation")
	}
}

//----------------------------------------------------------------------------//
// Offsets Tests
//----------------------------------------------------------------------------//

// TestOffsets checks neighbour counts for both connectivities across dimensions.
func TestOffsets(t *testing.T) {
	cases := []struct {
		n     int
		faces int
		all   int
	}{
		{1, 2, 2},
		{2, 4, 8},
		{3, 6, 26},
		{4, 8, 80},
	}
	for _, tc := range cases {
		if got := len(grid.Offsets(tc.n, grid.ConnFaces)); got != tc.faces {
			t.Errorf("Offsets(%d, ConnFaces) = %d; want %d", tc.n, got, tc.faces)
		}
		if got := len(grid.Offsets(tc.n, grid.ConnAll)); got != tc.all {
			t.Errorf("Offsets(%d, ConnAll) = %d; want %d", tc.n, got, tc.all)
		}
	}

	want := [][]int{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}
	if got := grid.Offsets(2, grid.ConnFaces); !reflect.DeepEqual(got, want) {
		t.Errorf("Offsets(2, ConnFaces) = %v; want %v", got, want)
	}
}

//----------------------------------------------------------------------------//
// ConnectedComponents Tests
//----------------------------------------------------------------------------//

// TestConnectedComponents_Simple4 uses a 4×3 grid with face connectivity.
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
//
// Expected: 2 islands of sizes 4 and 2.
func TestConnectedComponents_Simple4(t *testing.T) {
	g, err := grid.From2D([][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
	}, grid.ConnFaces)
	if err != nil {
		t.Fatalf("From2D failed: %v", err)
	}

	comps := g.ConnectedComponents()
	if len(comps) != 2 {
		t.Fatalf("got %d components; want 2", len(comps))
	}
	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	if want := []int{2, 4}; !reflect.DeepEqual(sizes, want) {
		t.Errorf("component sizes = %v; want %v", sizes, want)
	}
}

// TestConnectedComponents_Diagonal8 joins corner-touching cells with ConnAll.
//
//	1 0 0 0 1
//	0 1 0 1 0
//	0 0 1 0 0
//	0 1 0 1 0
//	1 0 0 0 1
func TestConnectedComponents_Diagonal8(t *testing.T) {
	rows := [][]int{
		{1, 0, 0, 0, 1},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	}
	g, _ := grid.From2D(rows, grid.ConnAll)
	comps := g.ConnectedComponents()
	if len(comps) != 1 || len(comps[0]) != 9 {
		t.Fatalf("ConnAll: got %d components; want 1 of size 9", len(comps))
	}

	g4, _ := grid.From2D(rows, grid.ConnFaces)
	if n := len(g4.ConnectedComponents()); n != 9 {
		t.Errorf("ConnFaces: got %d components; want 9", n)
	}
}

// TestConnectedComponents_AllWater verifies edge cases.
func TestConnectedComponents_AllWater(t *testing.T) {
	g, _ := grid.From2D([][]int{{0, 0}, {0, 0}}, grid.ConnFaces)
	if n := len(g.ConnectedComponents()); n != 0 {
		t.Errorf("all-water: got %d components; want 0", n)
	}
	g2, _ := grid.From2D([][]int{{0, 1}}, grid.ConnFaces)
	comps := g2.ConnectedComponents()
	if len(comps) != 1 || len(comps[0]) != 1 {
		t.Errorf("single land: got %v; want one component of size 1", comps)
	}
}

// TestConnectedComponents_Volume checks a 3×3×3 volume with two separated slabs.
func TestConnectedComponents_Volume(t *testing.T) {
	space := region.Repeat[int](axis.New(0, 3), 3)
	vals := make([]int, space.Len())
	i := 0
	for p := range space.All() {
		if p[2] != 1 { // z=0 and z=2 slabs are land, z=1 is water
			vals[i] = 1
		}
		i++
	}
	g, err := grid.New(space, vals, grid.Options{LandThreshold: 1, Conn: grid.ConnAll})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	comps := g.ConnectedComponents()
	if len(comps) != 2 || len(comps[0]) != 9 || len(comps[1]) != 9 {
		t.Fatalf("got %d components; want two slabs of 9", len(comps))
	}

	_, cost, err := g.ExpandIsland(0, 1)
	if err != nil || cost != 1 {
		t.Errorf("ExpandIsland = cost %d, err %v; want 1, nil", cost, err)
	}
}

// TestConnectedComponents_Threshold checks LandThreshold is honoured.
func TestConnectedComponents_Threshold(t *testing.T) {
	space := region.Of(axis.New(0, 5))
	g, _ := grid.New(space, []int{3, 1, 3, 3, 2}, grid.Options{LandThreshold: 3})
	comps := g.ConnectedComponents()
	if want := [][]int{{0}, {2, 3}}; !reflect.DeepEqual(comps, want) {
		t.Errorf("components = %v; want %v", comps, want)
	}
}
