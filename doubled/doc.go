// Package doubled renders a pipe loop at twice the grid resolution so that
// enclosure can be decided by plain flood fill.
//
// What:
//
//   - Grid is a row-major array of Labels (Unknown, Loop, Inside, Outside)
//     covering a 2W×2H space.
//   - Expand maps every loop tile (x,y) to (2x,2y) and inserts a Bridge cell
//     between each pair of connected loop tiles, marking all of them Loop.
//   - Halve down-samples a doubled grid back to original resolution by
//     keeping only cells whose coordinates are even on both axes.
//
// Why:
//
//   - At native resolution a loop is a one-cell-wide line with no gap between
//     two parallel pipes that are not connected, so a flood fill cannot pass
//     between them. At double resolution that gap becomes an occupiable cell,
//     while the bridge cells keep connected pipes sealed.
//
// Bridge rule:
//
//	For doubled endpoints a and b, each axis of the bridge takes the shared
//	value when a and b agree on it, otherwise max(a, b) − 1. For orthogonal
//	neighbours this is the midpoint. Expand rejects non-adjacent pairs
//	(ErrNotAdjacent) rather than extend the rule to them.
//
// Complexity:
//
//   - Expand: O(L log L) for L loop tiles, plus O(W×H) to allocate the grid.
//   - Halve, Count: O(W×H).
package doubled
