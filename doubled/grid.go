package doubled

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Grid is a rectangular array of Labels stored row-major.
type Grid struct {
	width, height int
	cells         []Label
}

// New returns a width×height grid with every cell Unknown.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Label, width*height),
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether c lies within the grid.
func (g *Grid) InBounds(c pipegrid.Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Index maps c to its row-major index. c must be in bounds.
func (g *Grid) Index(c pipegrid.Coord) int {
	return c.Y*g.width + c.X
}

// Coordinate converts a row-major index back to a coordinate.
func (g *Grid) Coordinate(idx int) pipegrid.Coord {
	return pipegrid.C(idx%g.width, idx/g.width)
}

// At returns the label at c; ok is false outside the grid.
func (g *Grid) At(c pipegrid.Coord) (l Label, ok bool) {
	if !g.InBounds(c) {
		return Unknown, false
	}
	return g.cells[g.Index(c)], true
}

// AtIndex returns the label at a row-major index.
func (g *Grid) AtIndex(idx int) Label {
	return g.cells[idx]
}

// Set labels c.
func (g *Grid) Set(c pipegrid.Coord, l Label) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	g.cells[g.Index(c)] = l
	return nil
}

// SetIndex labels the cell at a row-major index.
func (g *Grid) SetIndex(idx int, l Label) {
	g.cells[idx] = l
}

// Count returns how many cells carry l.
func (g *Grid) Count(l Label) int {
	n := 0
	for _, c := range g.cells {
		if c == l {
			n++
		}
	}
	return n
}

// NextUnknown returns the first Unknown cell in row-major order.
func (g *Grid) NextUnknown() (pipegrid.Coord, bool) {
	for i, l := range g.cells {
		if l == Unknown {
			return g.Coordinate(i), true
		}
	}
	return pipegrid.Coord{}, false
}

// Halve keeps the cells whose coordinates are even on both axes and places
// each at half its coordinates.
func (g *Grid) Halve() *Grid {
	h := &Grid{
		width:  (g.width + 1) / 2,
		height: (g.height + 1) / 2,
	}
	h.cells = make([]Label, h.width*h.height)
	for y := 0; y < g.height; y += 2 {
		for x := 0; x < g.width; x += 2 {
			c := pipegrid.C(x, y)
			h.cells[h.Index(c.Halve())] = g.cells[g.Index(c)]
		}
	}
	return h
}

// Rows returns a copy of the labels as one slice per row.
func (g *Grid) Rows() [][]Label {
	rows := make([][]Label, g.height)
	for y := range rows {
		rows[y] = make([]Label, g.width)
		copy(rows[y], g.cells[y*g.width:(y+1)*g.width])
	}
	return rows
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	c := &Grid{width: g.width, height: g.height, cells: make([]Label, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}
