// Package puzzles holds the state-space models used as graded problem
// instances: a light switch and the sliding-tile puzzle.
//
// Both implement core.Problem and core.Labeler. Tile also implements
// core.Heuristic (misplaced tiles by default, Manhattan distance on request,
// optionally scaled by a weight) and validates its boards through package
// grid.
package puzzles
