package pipegrid

import "errors"

var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("pipegrid: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("pipegrid: all rows must have the same length")
	// ErrUnknownTile indicates a symbol outside the pipe tile set.
	ErrUnknownTile = errors.New("pipegrid: unknown tile symbol")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("pipegrid: coordinate out of bounds")
	// ErrNotPopulated indicates a coordinate that was never inserted.
	ErrNotPopulated = errors.New("pipegrid: coordinate not populated")
	// ErrDuplicateStart indicates a second start tile.
	ErrDuplicateStart = errors.New("pipegrid: more than one start tile")
	// ErrNoStart indicates the grid has no start tile.
	ErrNoStart = errors.New("pipegrid: no start tile")
	// ErrStartUnresolved indicates start connections were read before ResolveStart.
	ErrStartUnresolved = errors.New("pipegrid: start connections not resolved")
	// ErrStartConnections indicates start does not have exactly two symmetric neighbours.
	ErrStartConnections = errors.New("pipegrid: start must connect to exactly two neighbours")
)
