// Package searchgrade grades a search-algorithms assignment: students
// declare the problems they built and the search methods they ran, and the
// grader runs every method on every problem, measures each run and scores
// it against a fixed rubric.
//
// 🚀 What is inside?
//
//	A small, dependency-light toolkit that brings together:
//		• Search core: Problem, Node, capability interfaces, Instrumented counters
//		• Uninformed search: breadth-first, depth-first graph, depth-limited, iterative deepening
//		• Informed search: uniform cost, greedy best-first, A*
//		• Puzzles: the light switch and sliding-tile boards
//		• Grading: well-formedness checks, heuristic checks, rubric scoring, comparisons
//		• Reporting: console tables, best paths, score sheets
//
// ✨ Why searchgrade?
//
//   - Deterministic – neighbors are generated in a fixed order, seeds are explicit
//   - Fault tolerant – a panicking or malformed submission costs points, never the run
//   - Concurrent – students are graded in parallel, reports keep roster order
//
// Under the hood, everything is organized into subpackages:
//
//	core/       — Problem, Node, options and the Instrumented wrapper
//	bfs/ dfs/   — uninformed searches
//	bestfirst/  — uniform cost, greedy and A* on a shared priority frontier
//	grid/       — immutable rune grids used as puzzle boards
//	puzzles/    — LightSwitch and Tile problems
//	search/     — method registry and the flounder random walk
//	rubric/     — rubric labels, point weights and score sheets
//	submission/ — YAML and HCL roster manifests
//	grading/    — the grader
//	report/     — console rendering
//
// Quick ASCII example:
//
//	    c a        a b
//	    _ b   →    c _
//
//	is the 2x2 tile puzzle solved by [down left up].
//
//	go run ./cmd/searchgrade grade examples/instances.yaml
package searchgrade
