package pipegrid_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

//----------------------------------------------------------------------------//
// New, InBounds and Insert
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects non-positive dimensions.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		w, h int
	}{
		{"ZeroWidth", 0, 3},
		{"ZeroHeight", 3, 0},
		{"Negative", -1, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pipegrid.New(tc.w, tc.h)
			assert.ErrorIs(t, err, pipegrid.ErrEmptyGrid)
		})
	}
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := pipegrid.New(3, 2)
	require.NoError(t, err)

	for _, c := range []pipegrid.Coord{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, g.InBounds(c), "InBounds(%v)", c)
	}
	for _, c := range []pipegrid.Coord{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, g.InBounds(c), "InBounds(%v)", c)
	}
}

// TestInsert_DropsOutOfBoundsConnections places an 'L' in the top-left corner:
// its north connection falls off the grid and only east survives.
func TestInsert_DropsOutOfBoundsConnections(t *testing.T) {
	g, err := pipegrid.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, g.Insert(pipegrid.C(0, 0), pipegrid.NorthEast))

	conn, err := g.Connections(pipegrid.C(0, 0))
	require.NoError(t, err)
	assert.Equal(t, []pipegrid.Coord{{1, 0}}, conn)
}

func TestInsert_Errors(t *testing.T) {
	g, err := pipegrid.New(2, 2)
	require.NoError(t, err)

	assert.ErrorIs(t, g.Insert(pipegrid.C(2, 0), pipegrid.Vertical), pipegrid.ErrOutOfBounds)
	assert.ErrorIs(t, g.Insert(pipegrid.C(0, 0), pipegrid.Tile('x')), pipegrid.ErrUnknownTile)

	require.NoError(t, g.Insert(pipegrid.C(0, 0), pipegrid.Start))
	assert.ErrorIs(t, g.Insert(pipegrid.C(1, 1), pipegrid.Start), pipegrid.ErrDuplicateStart)
}

// TestConnections_Errors covers unpopulated cells and reading the start early.
func TestConnections_Errors(t *testing.T) {
	g, err := pipegrid.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, g.Insert(pipegrid.C(0, 0), pipegrid.Start))

	_, err = g.Connections(pipegrid.C(1, 1))
	assert.ErrorIs(t, err, pipegrid.ErrNotPopulated)

	_, err = g.Connections(pipegrid.C(0, 0))
	assert.ErrorIs(t, err, pipegrid.ErrStartUnresolved)

	_, err = g.Connections(pipegrid.C(5, 5))
	assert.ErrorIs(t, err, pipegrid.ErrOutOfBounds)
}

// TestConnections_ReturnsCopy ensures callers cannot mutate the grid.
func TestConnections_ReturnsCopy(t *testing.T) {
	g, err := pipegrid.Parse([]string{"-|-"})
	require.NoError(t, err)

	conn, err := g.Connections(pipegrid.C(1, 0))
	require.NoError(t, err)
	require.Empty(t, conn) // '|' in a single row connects nowhere
	conn, err = g.Connections(pipegrid.C(0, 0))
	require.NoError(t, err)
	conn[0] = pipegrid.C(9, 9)

	again, err := g.Connections(pipegrid.C(0, 0))
	require.NoError(t, err)
	assert.Equal(t, []pipegrid.Coord{{1, 0}}, again)
}

//----------------------------------------------------------------------------//
// ResolveStart
//----------------------------------------------------------------------------//

// TestResolveStart_Square resolves the start of a 3×3 loop drawn inside a
// ring of ground.
func TestResolveStart_Square(t *testing.T) {
	g, err := pipegrid.Parse([]string{
		".....",
		".S-7.",
		".|.|.",
		".L-J.",
		".....",
	})
	require.NoError(t, err)
	require.False(t, g.Resolved())

	require.NoError(t, g.ResolveStart())
	assert.True(t, g.Resolved())

	conn, err := g.Connections(pipegrid.C(1, 1))
	require.NoError(t, err)
	assert.ElementsMatch(t, []pipegrid.Coord{{2, 1}, {1, 2}}, conn)

	tile, ok := g.StartTile()
	require.True(t, ok)
	assert.Equal(t, pipegrid.SouthEast, tile)
}

// TestResolveStart_CornerClipped places the start in the top-left corner so
// north and west fall off the grid. The diagonal 'F' at (1,1) points at
// neither start nor its neighbours and must be ignored.
func TestResolveStart_CornerClipped(t *testing.T) {
	g, err := pipegrid.Parse([]string{
		"S-7",
		"|F|",
		"L-J",
	})
	require.NoError(t, err)
	require.NoError(t, g.ResolveStart())

	conn, err := g.Connections(pipegrid.C(0, 0))
	require.NoError(t, err)
	assert.Equal(t, []pipegrid.Coord{{1, 0}, {0, 1}}, conn)
}

// TestResolveStart_IgnoresNonSymmetric uses a start surrounded by pipes of
// which only two point back at it.
func TestResolveStart_IgnoresNonSymmetric(t *testing.T) {
	g, err := pipegrid.Parse([]string{
		"-L|F7",
		"7S-7|",
		"L|7||",
		"-L-J|",
		"L|-JF",
	})
	require.NoError(t, err)
	require.NoError(t, g.ResolveStart())

	conn, err := g.Connections(pipegrid.C(1, 1))
	require.NoError(t, err)
	assert.Equal(t, []pipegrid.Coord{{2, 1}, {1, 2}}, conn)
}

func TestResolveStart_Errors(t *testing.T) {
	t.Run("NoStart", func(t *testing.T) {
		g, err := pipegrid.Parse([]string{"F7", "LJ"})
		require.NoError(t, err)
		assert.ErrorIs(t, g.ResolveStart(), pipegrid.ErrNoStart)
	})
	t.Run("OneNeighbour", func(t *testing.T) {
		g, err := pipegrid.Parse([]string{"S-", ".."})
		require.NoError(t, err)
		err = g.ResolveStart()
		assert.ErrorIs(t, err, pipegrid.ErrStartConnections)
		assert.Contains(t, err.Error(), "found 1")
		assert.False(t, g.Resolved())
	})
	t.Run("ThreeNeighbours", func(t *testing.T) {
		g, err := pipegrid.Parse([]string{
			".|.",
			"-S-",
			"...",
		})
		require.NoError(t, err)
		assert.ErrorIs(t, g.ResolveStart(), pipegrid.ErrStartConnections)
	})
	t.Run("UnpopulatedNeighbour", func(t *testing.T) {
		g, err := pipegrid.New(2, 1)
		require.NoError(t, err)
		require.NoError(t, g.Insert(pipegrid.C(0, 0), pipegrid.Start))
		assert.ErrorIs(t, g.ResolveStart(), pipegrid.ErrNotPopulated)
	})
}

// TestResolveStart_Idempotent ensures a second call is a no-op.
func TestResolveStart_Idempotent(t *testing.T) {
	g, err := pipegrid.Parse([]string{"S7", "LJ"})
	require.NoError(t, err)
	require.NoError(t, g.ResolveStart())
	first, err := g.Connections(pipegrid.C(0, 0))
	require.NoError(t, err)

	require.NoError(t, g.ResolveStart())
	second, err := g.Connections(pipegrid.C(0, 0))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

//----------------------------------------------------------------------------//
// Parse and Read
//----------------------------------------------------------------------------//

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		err  error
	}{
		{"Nil", nil, pipegrid.ErrEmptyGrid},
		{"OnlyBlank", []string{"", "  "}, pipegrid.ErrEmptyGrid},
		{"Ragged", []string{"S7", "L"}, pipegrid.ErrNonRectangular},
		{"UnknownSymbol", []string{"S7", "LX"}, pipegrid.ErrUnknownTile},
		{"TwoStarts", []string{"SS", ".."}, pipegrid.ErrDuplicateStart},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pipegrid.Parse(tc.rows)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestParse_UnknownSymbolNamesCoordinate checks the error carries the cell.
func TestParse_UnknownSymbolNamesCoordinate(t *testing.T) {
	_, err := pipegrid.Parse([]string{"S7", "L?"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "(1,1)")
}

func TestRead_TrimsCarriageReturnsAndTrailingLines(t *testing.T) {
	g, err := pipegrid.Read(strings.NewReader("S7\r\nLJ\r\n\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, g.Width())
	assert.Equal(t, 2, g.Height())

	tile, ok := g.Tile(pipegrid.C(1, 1))
	require.True(t, ok)
	assert.Equal(t, pipegrid.NorthWest, tile)
}

//----------------------------------------------------------------------------//
// Coord and Tile helpers
//----------------------------------------------------------------------------//

// TestCoord_DoubleHalveRoundTrip checks Halve(Double(p)) == p.
func TestCoord_DoubleHalveRoundTrip(t *testing.T) {
	for y := 0; y < 7; y++ {
		for x := 0; x < 7; x++ {
			p := pipegrid.C(x, y)
			assert.Equal(t, p, p.Double().Halve())
		}
	}
}

func TestCoord_Ordering(t *testing.T) {
	assert.True(t, pipegrid.C(5, 0).Less(pipegrid.C(0, 1)))
	assert.True(t, pipegrid.C(0, 1).Less(pipegrid.C(1, 1)))
	assert.False(t, pipegrid.C(1, 1).Less(pipegrid.C(1, 1)))
	assert.Equal(t, 0, pipegrid.C(2, 3).Compare(pipegrid.C(2, 3)))
	assert.Equal(t, -1, pipegrid.C(2, 3).Compare(pipegrid.C(0, 4)))
	assert.Equal(t, 1, pipegrid.C(3, 3).Compare(pipegrid.C(2, 3)))
}

func TestParseTile(t *testing.T) {
	for _, r := range "|-LJ7F.S" {
		tile, err := pipegrid.ParseTile(r)
		require.NoError(t, err)
		assert.Equal(t, string(r), tile.String())
	}
	for _, r := range "xX0 é" {
		_, err := pipegrid.ParseTile(r)
		assert.ErrorIs(t, err, pipegrid.ErrUnknownTile, "rune %q", r)
	}
}

func TestDirection_Opposite(t *testing.T) {
	assert.Equal(t, pipegrid.South, pipegrid.North.Opposite())
	assert.Equal(t, pipegrid.West, pipegrid.East.Opposite())
	assert.Equal(t, "north", pipegrid.North.String())
}
