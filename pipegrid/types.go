// Package pipegrid defines coordinates, tiles and directions for the pipe grid.
package pipegrid

import "fmt"

// Coord is a cell position. X grows east, Y grows south.
type Coord struct {
	X, Y int
}

// C is shorthand for Coord{X: x, Y: y}.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Less orders coordinates by row, then column.
func (c Coord) Less(o Coord) bool {
	if c.Y != o.Y {
		return c.Y < o.Y
	}
	return c.X < o.X
}

// Compare returns -1, 0 or +1 following Less. Suitable for slices.SortFunc.
func (c Coord) Compare(o Coord) int {
	switch {
	case c == o:
		return 0
	case c.Less(o):
		return -1
	default:
		return 1
	}
}

// Add returns c shifted by d's offset.
func (c Coord) Add(d Direction) Coord {
	off := offsets[d]
	return Coord{X: c.X + off[0], Y: c.Y + off[1]}
}

// Double maps c into the 2× resolution space.
func (c Coord) Double() Coord {
	return Coord{X: c.X * 2, Y: c.Y * 2}
}

// Halve maps a 2× resolution coordinate back; Halve(Double(c)) == c.
func (c Coord) Halve() Coord {
	return Coord{X: c.X / 2, Y: c.Y / 2}
}

// Neighbors4 returns the four orthogonal neighbours in N, E, S, W order.
func (c Coord) Neighbors4() [4]Coord {
	return [4]Coord{c.Add(North), c.Add(East), c.Add(South), c.Add(West)}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is one of the four orthogonal pipe directions.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// offsets is indexed by Direction.
var offsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Tile is a pipe map symbol.
type Tile byte

const (
	Vertical   Tile = '|'
	Horizontal Tile = '-'
	NorthEast  Tile = 'L'
	NorthWest  Tile = 'J'
	SouthWest  Tile = '7'
	SouthEast  Tile = 'F'
	Ground     Tile = '.'
	Start      Tile = 'S'
)

// tileDirections is the fixed symbol → connection table. Ground has none;
// Start is absent on purpose.
var tileDirections = map[Tile][]Direction{
	Vertical:   {North, South},
	Horizontal: {West, East},
	NorthEast:  {North, East},
	NorthWest:  {North, West},
	SouthWest:  {South, West},
	SouthEast:  {South, East},
	Ground:     nil,
}

// ParseTile validates r as a tile symbol.
func ParseTile(r rune) (Tile, error) {
	t := Tile(r)
	if r > 0x7f {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTile, r)
	}
	if _, ok := tileDirections[t]; ok || t == Start {
		return t, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTile, r)
}

// Directions returns the directions t connects to. Start and Ground report none.
func (t Tile) Directions() []Direction {
	return tileDirections[t]
}

// tileFor returns the pipe tile joining exactly the directions a and b.
func tileFor(a, b Direction) (Tile, bool) {
	for t, dirs := range tileDirections {
		if len(dirs) != 2 {
			continue
		}
		if (dirs[0] == a && dirs[1] == b) || (dirs[0] == b && dirs[1] == a) {
			return t, true
		}
	}
	return 0, false
}

func (t Tile) String() string {
	return string(rune(t))
}
