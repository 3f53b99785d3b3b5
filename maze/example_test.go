// File: maze/example_test.go
package maze_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/pipeloop/maze"
	"github.com/katalvlaran/pipeloop/render"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Solve
////////////////////////////////////////////////////////////////////////////////

// ExampleSolve demonstrates the full pipeline on a loop with two enclosed
// pockets. The channel in the middle of the bottom row opens to the outside,
// so the tiles above it are not enclosed.
//
// Complexity: O(W·H), Memory: O(W·H)
func ExampleSolve() {
	rep, err := maze.Solve([]string{
		"...........",
		".S-------7.",
		".|F-----7|.",
		".||.....||.",
		".||.....||.",
		".|L-7.F-J|.",
		".|..|.|..|.",
		".L--J.L--J.",
		"...........",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("farthest:", rep.Farthest)
	fmt.Println("enclosed:", rep.Enclosed)
	_ = render.Text(os.Stdout, rep.Labels)

	// Output:
	// farthest: 23
	// enclosed: 4
	// # # # # # # # # # # #
	// # L L L L L L L L L #
	// # L L L L L L L L L #
	// # L L # # # # # L L #
	// # L L # # # # # L L #
	// # L L L L # L L L L #
	// # L . . L # L . . L #
	// # L L L L # L L L L #
	// # # # # # # # # # # #
}
