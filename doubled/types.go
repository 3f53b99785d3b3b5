package doubled

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid indicates non-positive dimensions.
	ErrEmptyGrid = errors.New("doubled: grid must have at least one row and one column")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("doubled: coordinate out of bounds")
	// ErrNilInput indicates a nil grid or loop result.
	ErrNilInput = errors.New("doubled: grid and loop result are required")
	// ErrNoLoop indicates an empty loop result.
	ErrNoLoop = errors.New("doubled: loop has no tiles")
	// ErrNotAdjacent indicates two connected loop tiles that are not orthogonal neighbours.
	ErrNotAdjacent = errors.New("doubled: connected tiles are not adjacent")
)

// Label classifies a cell of the doubled grid.
type Label uint8

const (
	// Unknown cells have not been classified yet.
	Unknown Label = iota
	// Loop cells belong to the rendered loop, including bridges.
	Loop
	// Inside cells are enclosed by the loop.
	Inside
	// Outside cells can reach the grid border without crossing the loop.
	Outside
)

// Rune returns the single-character glyph used in text frames.
func (l Label) Rune() rune {
	switch l {
	case Unknown:
		return 'U'
	case Loop:
		return 'L'
	case Inside:
		return '.'
	case Outside:
		return '#'
	}
	return '?'
}

func (l Label) String() string {
	switch l {
	case Unknown:
		return "unknown"
	case Loop:
		return "loop"
	case Inside:
		return "inside"
	case Outside:
		return "outside"
	}
	return fmt.Sprintf("Label(%d)", uint8(l))
}
