package doubled

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/pipeloop/loop"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Bridge returns the cell joining two doubled coordinates: per axis the
// shared value when a and b agree, otherwise max−1.
func Bridge(a, b pipegrid.Coord) pipegrid.Coord {
	return pipegrid.C(bridgeAxis(a.X, b.X), bridgeAxis(a.Y, b.Y))
}

func bridgeAxis(a, b int) int {
	if a == b {
		return a
	}
	return max(a, b) - 1
}

// adjacent reports whether a and b are orthogonal neighbours.
func adjacent(a, b pipegrid.Coord) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx+dy*dy == 1
}

// LoopCells returns the doubled loop: every loop tile at doubled position plus
// one bridge per connection between loop tiles, deduplicated and sorted in
// (Y, X) order.
func LoopCells(g *pipegrid.Grid, res *loop.Result) ([]pipegrid.Coord, error) {
	if g == nil || res == nil {
		return nil, ErrNilInput
	}
	if res.Len() == 0 {
		return nil, ErrNoLoop
	}
	set := make(map[pipegrid.Coord]struct{}, 4*res.Len())
	for _, pos := range res.Sorted() {
		conn, err := g.Connections(pos)
		if err != nil {
			return nil, err
		}
		for _, n := range conn {
			if !res.Contains(n) {
				continue
			}
			if !adjacent(pos, n) {
				return nil, fmt.Errorf("%w: %v and %v", ErrNotAdjacent, pos, n)
			}
			a, b := pos.Double(), n.Double()
			set[a] = struct{}{}
			set[Bridge(a, b)] = struct{}{}
			set[b] = struct{}{}
		}
	}
	cells := make([]pipegrid.Coord, 0, len(set))
	for c := range set {
		cells = append(cells, c)
	}
	slices.SortFunc(cells, pipegrid.Coord.Compare)
	return cells, nil
}

// Expand builds a 2W×2H grid for g with the loop cells labelled Loop and all
// other cells Unknown.
func Expand(g *pipegrid.Grid, res *loop.Result) (*Grid, error) {
	cells, err := LoopCells(g, res)
	if err != nil {
		return nil, err
	}
	dg, err := New(2*g.Width(), 2*g.Height())
	if err != nil {
		return nil, err
	}
	for _, c := range cells {
		if err := dg.Set(c, Loop); err != nil {
			return nil, err
		}
	}
	return dg, nil
}
