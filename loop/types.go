// Package loop provides tunable options and error definitions for loop
// discovery over a pipegrid.Grid.
package loop

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Sentinel errors for loop discovery.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("loop: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("loop: invalid option supplied")
)

// Option configures discovery via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks for Discover.
type Options struct {
	// Ctx allows cancellation; checked once per round.
	Ctx context.Context

	// OnLayer is called with each frontier before it is expanded, sorted in
	// (Y, X) order. Returning an error aborts discovery.
	OnLayer func(depth int, layer []pipegrid.Coord) error

	err error
}

// DefaultOptions returns Options with a background context and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnLayer: func(int, []pipegrid.Coord) error { return nil },
	}
}

// WithContext sets a custom context for cancellation. A nil context is an
// option violation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithOnLayer registers a hook run for every frontier.
func WithOnLayer(fn func(depth int, layer []pipegrid.Coord) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLayer = fn
		}
	}
}

// Result holds the outcome of Discover.
type Result struct {
	// Start is the start tile.
	Start pipegrid.Coord
	// Points is the set of loop coordinates.
	Points map[pipegrid.Coord]struct{}
	// Farthest is a tile at the greatest distance from Start.
	Farthest pipegrid.Coord
	// Distance is the number of steps from Start to Farthest.
	Distance int
	// Rounds is the number of frontiers expanded, including the start.
	Rounds int
}

// Len returns the loop length in tiles.
func (r *Result) Len() int {
	return len(r.Points)
}

// Contains reports whether c lies on the loop.
func (r *Result) Contains(c pipegrid.Coord) bool {
	_, ok := r.Points[c]
	return ok
}

// Sorted returns the loop coordinates in (Y, X) order.
func (r *Result) Sorted() []pipegrid.Coord {
	out := make([]pipegrid.Coord, 0, len(r.Points))
	for c := range r.Points {
		out = append(out, c)
	}
	slices.SortFunc(out, pipegrid.Coord.Compare)
	return out
}
