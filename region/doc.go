// Package region classifies every Unknown cell of a doubled.Grid as Inside or
// Outside the loop by repeated flood fill, and counts the enclosed tiles.
//
// What:
//
//   - Classify seeds a fill at each remaining Unknown cell in row-major order
//     and expands it layer by layer through 4-connected Unknown cells.
//   - Loop cells block a fill. Outside cells and the grid border also block it
//     but mark the whole fill as outside-reachable.
//   - When a fill is exhausted every cell it visited becomes Outside if it was
//     marked, Inside otherwise. Labels are final.
//   - Enclosed down-samples the classified grid and counts Inside tiles.
//
// Why:
//
//   - At double resolution the loop is a sealed one-cell-wide wall, so plain
//     reachability answers "is this tile enclosed" without parity tricks.
//
// Complexity:
//
//   - Classify: O(W×H) time; every cell joins exactly one fill.
//   - Memory:   O(W×H) for the visited flags.
//
// Errors:
//
//   - ErrGridNil:         nil grid.
//   - ErrInvariant:       a fill reached a cell already labelled Inside.
//   - ErrOptionViolation: invalid Option.
//   - Wrapped OnFill hook errors and context errors.
package region
