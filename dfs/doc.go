// Package dfs implements the depth-first family of uninformed searches over
// an implicit state space described by a core.Problem.
//
// What:
//
//   - DepthFirstGraph: explores as far as possible along each branch before
//     backtracking. Uses a LIFO frontier and an explored set; the goal test
//     is applied when a node is popped.
//   - DepthLimited: recursive tree search (no explored set) bounded by a
//     depth limit. Distinguishes a cutoff (ErrCutoff) from a genuine failure
//     (core.ErrNoSolution).
//   - IterativeDeepening: runs DepthLimited with limits 0, 1, 2, … and
//     returns the first result that is not a cutoff. Finds the shallowest
//     goal with depth-first memory use.
//
// Why:
//   - Graded baselines for the uninformed part of the assignment.
//   - IterativeDeepening is complete on finite branching factors while
//     DepthFirstGraph may return long, expensive paths.
//
// Complexity:
//
//   - DepthFirstGraph:     Time O(b^m), Memory O(b·m) + explored set
//   - DepthLimited(l):     Time O(b^l), Memory O(b·l)
//   - IterativeDeepening:  Time O(b^d), Memory O(b·d)
//
// Errors:
//
//   - core.ErrNilProblem       problem is nil
//   - core.ErrOptionViolation  invalid core.Option
//   - core.ErrNoSolution       no goal reachable
//   - core.ErrBudgetExceeded   expansion budget exhausted
//   - ErrCutoff                DepthLimited truncated by its limit
//   - ErrBadLimit              negative depth limit
//   - context.Canceled         run cancelled via core.WithContext
//
// IterativeDeepening never terminates on an infinite (or cyclic, since it is
// a tree search) space without a goal; bound it with core.WithMaxExpansions
// or a context deadline.
package dfs
