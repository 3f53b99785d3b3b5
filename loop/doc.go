// Package loop discovers the closed pipe loop through the start tile of a
// pipegrid.Grid and measures how far its farthest tile is from the start.
//
// What
//
//   - Runs a layered breadth-first traversal from the start, following only
//     the connections each tile declares.
//   - Returns a Result containing:
//   - Points:   every coordinate on the loop
//   - Farthest: the tile reached at the greatest depth
//   - Distance: that depth (the start's eccentricity on the cycle)
//   - Rounds:   the number of layers expanded
//   - Supports an OnLayer hook that observes each frontier as it is expanded.
//
// Why
//
//   - The loop is a simple cycle, so both directions around it advance one
//     layer per round and meet at the farthest tile; the layer count equals
//     half the cycle length.
//   - Only declared connections are followed, so tiles off the loop are never
//     visited.
//
// Determinism
//
//	Frontier members are expanded in (Y, X) order. When two members propose the
//	same neighbour in one round the later proposal wins, which for a single
//	loop only happens at the farthest tile where both agree on the distance.
//
// Complexity (L = loop length)
//
//   - Time:   O(L log L)  (per-round sort of a frontier of at most two tiles
//     makes this O(L) in practice)
//   - Memory: O(L)
//
// Usage
//
//	res, err := loop.Discover(g,
//	    loop.WithContext(ctx),
//	    loop.WithOnLayer(func(depth int, layer []pipegrid.Coord) error { return nil }),
//	)
//
// Errors
//
//   - ErrGridNil            if the grid pointer is nil.
//   - ErrOptionViolation    if an invalid Option was supplied.
//   - pipegrid errors from start inference or connection lookup.
//   - Wrapped hook errors from OnLayer, and context errors.
package loop
