// Package maze runs the full pipe-loop pipeline over a text grid:
//
//	pipegrid → loop → doubled → region
//
// and reports the loop length, the distance to its farthest tile and the
// number of tiles it encloses.
package maze

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/pipeloop/doubled"
	"github.com/katalvlaran/pipeloop/loop"
	"github.com/katalvlaran/pipeloop/pipegrid"
	"github.com/katalvlaran/pipeloop/region"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("maze: invalid option supplied")

// Report is the outcome of Solve.
type Report struct {
	Width, Height int
	Start         pipegrid.Coord
	// StartTile is the pipe symbol the start behaves as.
	StartTile pipegrid.Tile
	// LoopLength is the number of tiles on the loop.
	LoopLength int
	// Farthest is the distance from the start to the farthest loop tile.
	Farthest int
	// Enclosed is the number of tiles inside the loop.
	Enclosed int
	// Fills is the number of flood fills the classifier ran.
	Fills int
	// Labels is the classified grid at double resolution.
	Labels *doubled.Grid
}

// Option configures Solve.
type Option func(*options)

type options struct {
	ctx    context.Context
	logger *slog.Logger
	onFill func(*doubled.Grid) error
	err    error
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.ctx = ctx
	}
}

// WithLogger sets the logger for phase summaries, logged at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithOnFill registers a hook that observes the doubled grid: once after the
// loop is drawn and again after every flood fill.
func WithOnFill(fn func(*doubled.Grid) error) Option {
	return func(o *options) {
		o.onFill = fn
	}
}

// SolveReader reads newline-separated rows from r and solves them.
func SolveReader(r io.Reader, opts ...Option) (*Report, error) {
	g, err := pipegrid.Read(r)
	if err != nil {
		return nil, err
	}
	return SolveGrid(g, opts...)
}

// Solve parses rows and solves them.
func Solve(rows []string, opts ...Option) (*Report, error) {
	g, err := pipegrid.Parse(rows)
	if err != nil {
		return nil, err
	}
	return SolveGrid(g, opts...)
}

// SolveGrid runs the pipeline on an already built grid.
func SolveGrid(g *pipegrid.Grid, opts ...Option) (*Report, error) {
	o := options{
		ctx:    context.Background(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g == nil {
		return nil, fmt.Errorf("maze: discovering loop: %w", loop.ErrGridNil)
	}
	log := o.logger.With("width", g.Width(), "height", g.Height())

	res, err := loop.Discover(g, loop.WithContext(o.ctx))
	if err != nil {
		return nil, fmt.Errorf("maze: discovering loop: %w", err)
	}
	startTile, _ := g.StartTile()
	log.Debug("loop discovered",
		"start", res.Start.String(),
		"start_tile", startTile.String(),
		"length", res.Len(),
		"farthest", res.Distance,
	)

	dg, err := doubled.Expand(g, res)
	if err != nil {
		return nil, fmt.Errorf("maze: expanding loop: %w", err)
	}
	log.Debug("loop expanded", "loop_cells", dg.Count(doubled.Loop))

	copts := []region.Option{region.WithContext(o.ctx)}
	if o.onFill != nil {
		if err := o.onFill(dg); err != nil {
			return nil, err
		}
		copts = append(copts, region.WithOnFill(func(_ region.Fill, g *doubled.Grid) error {
			return o.onFill(g)
		}))
	}
	cres, err := region.Classify(dg, copts...)
	if err != nil {
		return nil, fmt.Errorf("maze: classifying regions: %w", err)
	}
	enclosed := region.Enclosed(dg)
	log.Debug("regions classified",
		"fills", cres.Fills,
		"inside_cells", cres.InsideCells,
		"outside_cells", cres.OutsideCells,
		"enclosed", enclosed,
	)

	return &Report{
		Width:      g.Width(),
		Height:     g.Height(),
		Start:      res.Start,
		StartTile:  startTile,
		LoopLength: res.Len(),
		Farthest:   res.Distance,
		Enclosed:   enclosed,
		Fills:      cres.Fills,
		Labels:     dg,
	}, nil
}
