package region

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/doubled"
)

// classifier holds the state shared by all fills of one Classify run.
type classifier struct {
	grid *doubled.Grid
	opts Options
	seen []bool
	res  *Result
}

// Classify labels every Unknown cell of g as Inside or Outside. A grid with
// no Unknown cells is left untouched and reports zero fills.
func Classify(g *doubled.Grid, opts ...Option) (*Result, error) {
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

	c := &classifier{
		grid: g,
		opts: o,
		seen: make([]bool, g.Len()),
		res:  &Result{},
	}
	for i := 0; i < g.Len(); i++ {
		if g.AtIndex(i) != doubled.Unknown {
			continue
		}
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		f, err := c.fill(i)
		if err != nil {
			return nil, err
		}
		if err := o.OnFill(f, g); err != nil {
			return nil, fmt.Errorf("region: OnFill error after fill %d: %w", f.Index, err)
		}
	}
	return c.res, nil
}

// fill floods from seed through Unknown cells, then labels what it visited.
func (c *classifier) fill(seed int) (Fill, error) {
	g := c.grid
	c.seen[seed] = true
	visited := []int{seed}
	frontier := []int{seed}
	outside := false

	for len(frontier) > 0 {
		var next []int
		for _, u := range frontier {
			for _, n := range g.Coordinate(u).Neighbors4() {
				if !g.InBounds(n) {
					outside = true // the border is always outside
					continue
				}
				v := g.Index(n)
				switch g.AtIndex(v) {
				case doubled.Unknown:
					if c.seen[v] {
						continue
					}
					c.seen[v] = true
					next = append(next, v)
					visited = append(visited, v)
				case doubled.Outside:
					outside = true
				case doubled.Inside:
					return Fill{}, fmt.Errorf("%w: %v", ErrInvariant, n)
				}
			}
		}
		frontier = next
	}

	label := doubled.Inside
	if outside {
		label = doubled.Outside
	}
	for _, v := range visited {
		g.SetIndex(v, label)
	}

	f := Fill{
		Index: c.res.Fills,
		Seed:  g.Coordinate(seed),
		Cells: len(visited),
		Label: label,
	}
	c.res.Fills++
	if label == doubled.Inside {
		c.res.InsideCells += len(visited)
	} else {
		c.res.OutsideCells += len(visited)
	}
	return f, nil
}

// Enclosed down-samples g to original resolution and counts Inside tiles.
func Enclosed(g *doubled.Grid) int {
	if g == nil {
		return 0
	}
	return g.Halve().Count(doubled.Inside)
}
