// Command pipeloop finds the pipe loop in a tile grid and counts the tiles
// it encloses.
//
// Usage:
//
//	pipeloop solve [file] [--frames] [--frame-delay 2s]
//	pipeloop render [file] [--doubled]
//	pipeloop watch <file>
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/pipeloop/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
