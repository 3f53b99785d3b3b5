// Package pipegrid models a rectangular grid of pipe tiles as a graph of
// coordinate-keyed connections.
//
// What:
//
//   - Grid holds the tile symbols of a W×H pipe map and, for every populated
//     cell, the 0–2 neighbouring cells its symbol connects to.
//   - Connections pointing outside the grid are dropped at insertion time.
//   - The start tile 'S' carries no symbol-derived connections; ResolveStart
//     infers them from the orthogonal neighbours that point back at it.
//   - Parse and Read build a Grid from text rows.
//
// Why:
//
//   - A coordinate-keyed connection map keeps the cyclic pipe network free of
//     ownership cycles: every tile "points to" its neighbours by value.
//   - Two-phase construction (insert placeholder, infer later) avoids guessing
//     the start tile's shape from its symbol.
//
// Symbols:
//
//	|  north ↔ south        -  east ↔ west
//	L  north ↔ east         J  north ↔ west
//	7  south ↔ west         F  south ↔ east
//	.  ground (none)        S  start (inferred)
//
// Complexity:
//
//   - Insert, Connections, InBounds: O(1).
//   - ResolveStart:                  O(1), runs once.
//   - Parse / Read:                  O(W×H) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid:        width or height is not positive / no rows.
//   - ErrNonRectangular:   rows of differing length.
//   - ErrUnknownTile:      symbol outside the tile set.
//   - ErrOutOfBounds:      coordinate outside the grid.
//   - ErrNotPopulated:     coordinate never inserted.
//   - ErrDuplicateStart:   more than one 'S'.
//   - ErrNoStart:          no 'S' present.
//   - ErrStartUnresolved:  start connections read before ResolveStart.
//   - ErrStartConnections: start does not have exactly two symmetric neighbours.
package pipegrid
