// Package bfs provides breadth-first graph search over an implicit state
// space described by a core.Problem.
//
// What
//
//   - Explore states in non-decreasing depth (action count) from the initial state.
//   - Keep an explored set and a FIFO frontier with O(1) membership; a child whose
//     state was already explored or is already queued is discarded.
//   - Apply the goal test as soon as a child is generated.
//   - Return the goal *core.Node; walk Node.Parent (or call Node.Path) for the route.
//
// Why
//
//   - Shallowest solution in O(b^d) time when every action costs the same.
//   - Baseline uninformed method of the graded search assignment.
//
// Determinism
//
//	Children are generated in the order Problem.Actions returns them, so the
//	visit sequence and the returned node are fully reproducible.
//
// Complexity (b = branching factor, d = depth of the shallowest goal)
//
//   - Time:   O(b^d)
//   - Memory: O(b^d)   (frontier plus explored set)
//
// Usage
//
//	goal, err := bfs.BreadthFirst(problem,
//	    core.WithContext(ctx),
//	    core.WithMaxExpansions(100000),
//	)
//	if errors.Is(err, core.ErrNoSolution) {
//	    // unreachable goal
//	}
//
// Errors
//
//   - core.ErrNilProblem       if the problem is nil.
//   - core.ErrOptionViolation  if an Option is invalid.
//   - core.ErrNoSolution       if no goal is reachable.
//   - core.ErrBudgetExceeded   if WithMaxExpansions was exhausted.
//   - context.Canceled / context.DeadlineExceeded from WithContext.
package bfs
