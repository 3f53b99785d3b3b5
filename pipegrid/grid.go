// Package pipegrid provides a bounds-checked pipe grid whose tiles declare
// connections to their orthogonal neighbours. It supports:
//
//   - Insertion of tiles with out-of-bounds connections dropped
//   - Two-phase start handling (placeholder, then ResolveStart)
//   - Connection lookup with explicit errors for unpopulated cells
//
// Grids are built once and treated as read-only afterwards.
package pipegrid

import (
	"fmt"
	"slices"
)

// Grid is a W×H pipe map. Tiles are stored row-major; conns maps every
// populated cell to the neighbours its symbol connects to.
type Grid struct {
	width, height int
	tiles         []Tile
	conns         map[Coord][]Coord

	start     Coord
	hasStart  bool
	resolved  bool
	startDirs [2]Direction
}

// New returns an empty width×height grid.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(W×H) memory.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	return &Grid{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
		conns:  make(map[Coord][]Coord, width*height),
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// index maps c to a row-major index: Y*width + X.
func (g *Grid) index(c Coord) int {
	return c.Y*g.width + c.X
}

// Insert places t at c.
//
// A Start tile records the start position and inserts no connections; they
// are unknown until ResolveStart. Any other tile inserts the neighbours of its
// symbol, silently dropping those outside the grid.
func (g *Grid) Insert(c Coord, t Tile) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	if t == Start {
		if g.hasStart && g.start != c {
			return fmt.Errorf("%w: %v and %v", ErrDuplicateStart, g.start, c)
		}
		g.start, g.hasStart = c, true
		g.tiles[g.index(c)] = t
		return nil
	}
	dirs, ok := tileDirections[t]
	if !ok {
		return fmt.Errorf("%w: %q at %v", ErrUnknownTile, rune(t), c)
	}
	conn := make([]Coord, 0, len(dirs))
	for _, d := range dirs {
		if n := c.Add(d); g.InBounds(n) {
			conn = append(conn, n)
		}
	}
	g.tiles[g.index(c)] = t
	g.conns[c] = conn
	return nil
}

// Tile returns the symbol at c and whether c was populated.
func (g *Grid) Tile(c Coord) (Tile, bool) {
	if !g.InBounds(c) {
		return 0, false
	}
	t := g.tiles[g.index(c)]
	return t, t != 0
}

// Start returns the start position, if one was inserted.
func (g *Grid) Start() (Coord, bool) {
	return g.start, g.hasStart
}

// Resolved reports whether ResolveStart has completed.
func (g *Grid) Resolved() bool {
	return g.resolved
}

// Connections returns a copy of the neighbours c connects to.
func (g *Grid) Connections(c Coord) ([]Coord, error) {
	if !g.InBounds(c) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	if g.hasStart && c == g.start && !g.resolved {
		return nil, ErrStartUnresolved
	}
	conn, ok := g.conns[c]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotPopulated, c)
	}
	return slices.Clone(conn), nil
}

// ResolveStart infers the start's connections from its four orthogonal
// neighbours. A neighbour is accepted iff it is in bounds and its own
// connections contain the start. Exactly two must be accepted.
// Subsequent calls are no-ops.
func (g *Grid) ResolveStart() error {
	if g.resolved {
		return nil
	}
	if !g.hasStart {
		return ErrNoStart
	}
	s := g.start
	var (
		found []Coord
		dirs  []Direction
	)
	for _, d := range []Direction{North, East, South, West} {
		n := s.Add(d)
		if !g.InBounds(n) {
			continue
		}
		conn, ok := g.conns[n]
		if !ok {
			return fmt.Errorf("%w: neighbour %v of start", ErrNotPopulated, n)
		}
		if slices.Contains(conn, s) {
			found = append(found, n)
			dirs = append(dirs, d)
		}
	}
	if len(found) != 2 {
		return fmt.Errorf("%w: found %d at %v", ErrStartConnections, len(found), s)
	}
	g.conns[s] = found
	g.startDirs = [2]Direction{dirs[0], dirs[1]}
	g.resolved = true
	return nil
}

// StartTile reports which pipe symbol the start behaves as. It is only
// meaningful after ResolveStart.
func (g *Grid) StartTile() (Tile, bool) {
	if !g.resolved {
		return 0, false
	}
	return tileFor(g.startDirs[0], g.startDirs[1])
}
