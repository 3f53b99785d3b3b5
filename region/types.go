package region

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/pipeloop/doubled"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

var (
	// ErrGridNil is returned for a nil grid.
	ErrGridNil = errors.New("region: grid is nil")
	// ErrInvariant is returned when a fill reaches a cell already labelled Inside.
	ErrInvariant = errors.New("region: fill reached an Inside cell")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("region: invalid option supplied")
)

// Fill describes one completed flood fill.
type Fill struct {
	// Index counts fills from 0.
	Index int
	// Seed is the Unknown cell the fill started from.
	Seed pipegrid.Coord
	// Cells is the number of cells labelled by this fill.
	Cells int
	// Label is the label assigned, Inside or Outside.
	Label doubled.Label
}

// Result summarises a Classify run.
type Result struct {
	Fills        int
	InsideCells  int
	OutsideCells int
}

// Option configures Classify.
type Option func(*Options)

// Options holds parameters and callbacks for Classify.
type Options struct {
	// Ctx allows cancellation; checked before every fill.
	Ctx context.Context

	// OnFill runs after each fill has been labelled. The grid reflects the
	// labels so far and must not be modified.
	OnFill func(f Fill, g *doubled.Grid) error

	err error
}

// DefaultOptions returns a background context and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		OnFill: func(Fill, *doubled.Grid) error { return nil },
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithOnFill registers a hook run after every fill.
func WithOnFill(fn func(f Fill, g *doubled.Grid) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFill = fn
		}
	}
}
