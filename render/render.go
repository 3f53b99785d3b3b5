// Package render draws doubled.Grid label maps as text frames, optionally
// coloured with lipgloss, and animates successive frames on a terminal.
//
// A frame has one line per row and one glyph per cell separated by a single
// space: L loop, . inside, # outside, U unknown. By default the grid is
// down-sampled to original resolution before drawing.
package render

import (
	"bufio"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/pipeloop/doubled"
)

// ErrGridNil is returned when asked to draw a nil grid.
var ErrGridNil = errors.New("render: grid is nil")

// ClearScreen resets the terminal before each animated frame.
const ClearScreen = "\x1bc"

// Styles colours each label's glyph.
type Styles struct {
	Unknown lipgloss.Style
	Loop    lipgloss.Style
	Inside  lipgloss.Style
	Outside lipgloss.Style
}

// DefaultStyles returns the colour palette used on terminals, bound to the
// default lipgloss renderer.
func DefaultStyles() Styles {
	return NewStyles(lipgloss.DefaultRenderer())
}

// NewStyles returns the default palette bound to r, whose colour profile
// decides which escapes are emitted.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Unknown: r.NewStyle().Foreground(lipgloss.Color("#F4D03F")),
		Loop:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("#2CD7C7")),
		Inside:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#E74C3C")),
		Outside: r.NewStyle().Foreground(lipgloss.Color("#2C4A54")),
	}
}

// PlainStyles returns styles that leave glyphs unchanged.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{Unknown: plain, Loop: plain, Inside: plain, Outside: plain}
}

func (s *Styles) style(l doubled.Label) lipgloss.Style {
	switch l {
	case doubled.Loop:
		return s.Loop
	case doubled.Inside:
		return s.Inside
	case doubled.Outside:
		return s.Outside
	default:
		return s.Unknown
	}
}

// Option configures Text and Animator.
type Option func(*options)

type options struct {
	styles *Styles
	halve  bool
}

func defaultOptions() options {
	return options{halve: true}
}

// WithStyles colours glyphs with s. Without it output is plain text.
func WithStyles(s Styles) Option {
	return func(o *options) {
		o.styles = &s
	}
}

// WithHalve selects whether the grid is down-sampled before drawing.
func WithHalve(halve bool) Option {
	return func(o *options) {
		o.halve = halve
	}
}

// Text writes g as a frame to w.
func Text(w io.Writer, g *doubled.Grid, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return text(w, g, o)
}

func text(w io.Writer, g *doubled.Grid, o options) error {
	if g == nil {
		return ErrGridNil
	}
	if o.halve {
		g = g.Halve()
	}
	bw := bufio.NewWriter(w)
	for _, row := range g.Rows() {
		for x, l := range row {
			if x > 0 {
				bw.WriteByte(' ')
			}
			glyph := string(l.Rune())
			if o.styles != nil {
				glyph = o.styles.style(l).Render(glyph)
			}
			bw.WriteString(glyph)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Animator writes successive frames to a terminal, clearing the screen and
// pausing between them.
type Animator struct {
	w      io.Writer
	delay  time.Duration
	opts   options
	frames int
	sleep  func(time.Duration)
}

// NewAnimator returns an Animator that waits delay before every frame but
// the first.
func NewAnimator(w io.Writer, delay time.Duration, opts ...Option) *Animator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Animator{w: w, delay: delay, opts: o, sleep: time.Sleep}
}

// Frame clears the screen and draws g.
func (a *Animator) Frame(g *doubled.Grid) error {
	if a.frames > 0 && a.delay > 0 {
		a.sleep(a.delay)
	}
	a.frames++
	if _, err := io.WriteString(a.w, ClearScreen); err != nil {
		return err
	}
	if err := text(a.w, g, a.opts); err != nil {
		return err
	}
	_, err := io.WriteString(a.w, "\n")
	return err
}

// Frames returns how many frames have been drawn.
func (a *Animator) Frames() int {
	return a.frames
}
