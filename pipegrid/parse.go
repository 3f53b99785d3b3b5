package pipegrid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse builds a Grid from text rows. Width is the first row's length and
// height the number of rows; trailing blank rows are ignored.
// Returns ErrEmptyGrid, ErrNonRectangular or a wrapped ErrUnknownTile.
// Complexity: O(W×H).
func Parse(rows []string) (*Grid, error) {
	clean := make([]string, len(rows))
	for i, row := range rows {
		clean[i] = strings.TrimRight(row, "\r")
	}
	for len(clean) > 0 && strings.TrimSpace(clean[len(clean)-1]) == "" {
		clean = clean[:len(clean)-1]
	}
	if len(clean) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(clean[0])
	for y, row := range clean {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	g, err := New(w, len(clean))
	if err != nil {
		return nil, err
	}
	for y, row := range clean {
		for x, r := range row {
			t, err := ParseTile(r)
			if err != nil {
				return nil, fmt.Errorf("%w at %v", err, C(x, y))
			}
			if err := g.Insert(C(x, y), t); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// Read parses a Grid from newline-separated rows.
func Read(r io.Reader) (*Grid, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("pipegrid: reading rows: %w", err)
	}
	return Parse(rows)
}
