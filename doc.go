// Package pipeloop finds the single closed loop of pipes that passes through
// a start tile in a rectangular grid, measures it, and counts the tiles it
// encloses.
//
// What is pipeloop?
//
//	A small pipeline of packages, each owning one step:
//		• pipegrid: parse tiles, build the connection map, resolve the start
//		• loop:     breadth-first discovery of the loop and its farthest tile
//		• doubled:  double-resolution grid with bridge cells between loop tiles
//		• region:   repeated flood fill labelling every cell Inside or Outside
//		• render:   text frames of the labelled grid, optionally coloured
//		• maze:     runs the whole pipeline and returns a Report
//
// Why double the resolution?
//
//	Two pipes that run side by side touch at their shared edge, so a fill at
//	original resolution cannot pass between them. Doubling opens a one-cell
//	gap between any two tiles that are not connected, letting the outside
//	reach every pocket that is not truly enclosed.
//
// Quick start:
//
//	rep, err := maze.Solve([]string{
//		".....",
//		".S-7.",
//		".|.|.",
//		".L-J.",
//		".....",
//	})
//	// rep.Farthest == 4, rep.Enclosed == 1
//
// The pipeloop command in cmd/pipeloop wraps maze with solve, render and
// watch subcommands.
package pipeloop
