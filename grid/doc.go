// Package grid treats the cells of an N-dimensional region as a graph,
// enabling component analysis and minimal-cost “island” expansions.
//
// What:
//
//   - Grid labels every point of a bounded region.Region with an int value.
//     Cells with value ≥ LandThreshold are “land”, the rest “water”.
//   - Identifies connected components (“islands”) of land cells.
//   - Computes minimal conversions (0-1 BFS) to connect two islands.
//   - Works in any dimension: a 2D map, a 3D voxel volume, a 4D space-time grid.
//
// Cells are addressed by their index in the region's enumeration order
// (axis 0 fastest); Grid.Point and Grid.Index convert between the two.
//
// Connectivity:
//
//   - ConnFaces: neighbours differ by ±1 on exactly one axis (2·N neighbours;
//     the 4-neighbourhood in 2D).
//   - ConnAll: neighbours differ by at most 1 on every axis (3^N−1 neighbours;
//     the 8-neighbourhood in 2D).
//
// Complexity:
//
//   - ConnectedComponents: O(C×d), Memory: O(C)    (C = cells, d = neighbours).
//   - ExpandIsland:        O(C×d), Memory: O(C).
//
// Errors:
//
//   - ErrEmptyGrid: the region has no cells.
//   - ErrNonRectangular: rows of a 2D input have differing lengths.
//   - ErrUnboundedGrid: an axis of the region has no edge.
//   - ErrShape: the number of values differs from the number of cells.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between specified components.
package grid
