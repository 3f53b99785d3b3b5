// Package loop provides a layered breadth-first traversal of the pipe loop
// through the start tile, returning its tiles and farthest distance.
//
// Each round expands the whole frontier at once, so every round advances one
// step along both directions of the cycle.
package loop

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// proposal is a neighbour offered for the next frontier at a distance.
type proposal struct {
	at   pipegrid.Coord
	dist int
}

// walker encapsulates mutable traversal state.
type walker struct {
	grid     *pipegrid.Grid
	opts     Options
	frontier map[pipegrid.Coord]int
	visited  map[pipegrid.Coord]struct{}
	res      *Result
}

// Discover resolves the start tile of g if needed and walks the loop through
// it. Returns ErrGridNil, ErrOptionViolation, pipegrid errors, hook errors or
// context errors.
func Discover(g *pipegrid.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := g.ResolveStart(); err != nil {
		return nil, err
	}
	start, _ := g.Start()

	w := &walker{
		grid:     g,
		opts:     o,
		frontier: map[pipegrid.Coord]int{start: 0},
		visited:  make(map[pipegrid.Coord]struct{}),
		res: &Result{
			Start:    start,
			Farthest: start,
		},
	}
	if err := w.loop(); err != nil {
		return nil, err
	}
	w.res.Points = w.visited
	return w.res, nil
}

// loop expands frontiers until none remain, an error occurs or the context
// is cancelled.
func (w *walker) loop() error {
	for len(w.frontier) > 0 {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}
		layer := w.layer()
		depth := w.frontier[layer[0]]
		if err := w.opts.OnLayer(depth, layer); err != nil {
			return fmt.Errorf("loop: OnLayer error at depth %d: %w", depth, err)
		}
		proposals, err := w.propose(layer)
		if err != nil {
			return err
		}
		w.advance(proposals)
		w.res.Rounds++
	}
	return nil
}

// layer returns the frontier sorted in (Y, X) order.
func (w *walker) layer() []pipegrid.Coord {
	layer := make([]pipegrid.Coord, 0, len(w.frontier))
	for c := range w.frontier {
		layer = append(layer, c)
	}
	slices.SortFunc(layer, pipegrid.Coord.Compare)
	return layer
}

// propose offers every connection of the layer at distance+1, then marks the
// whole layer visited.
func (w *walker) propose(layer []pipegrid.Coord) ([]proposal, error) {
	out := make([]proposal, 0, 2*len(layer))
	for _, c := range layer {
		conn, err := w.grid.Connections(c)
		if err != nil {
			return nil, err
		}
		d := w.frontier[c]
		for _, n := range conn {
			out = append(out, proposal{at: n, dist: d + 1})
		}
		w.visited[c] = struct{}{}
	}
	return out, nil
}

// advance builds the next frontier from unvisited proposals; the last
// proposal for a coordinate wins.
func (w *walker) advance(proposals []proposal) {
	next := make(map[pipegrid.Coord]int, len(proposals))
	for _, p := range proposals {
		if _, seen := w.visited[p.at]; seen {
			continue
		}
		if p.dist > w.res.Distance {
			w.res.Distance, w.res.Farthest = p.dist, p.at
		}
		next[p.at] = p.dist
	}
	w.frontier = next
}
