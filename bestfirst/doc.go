// Package bestfirst provides best-first graph search over an implicit state
// space described by a core.Problem.
//
// Overview:
//
//	Search(p, f) keeps a priority frontier ordered by an evaluation function
//	f and an explored set of states. Three instances are provided:
//
//	  – UniformCost:  f(n) = g(n), the path cost. Optimal for non-negative costs.
//	  – AStar:        f(n) = g(n) + h(n). Optimal when h is admissible
//	                  (tree search) or consistent (graph search, as here).
//	  – Greedy:       f(n) = h(n). Fast, not optimal.
//
// Heuristics come from the core.Heuristic capability of the problem, found
// through any wrapper (core.Instrumented, core.Relabel). AStarWith accepts an
// explicit heuristic instead.
//
// Complexity (b = branching factor, d = depth of the cheapest goal):
//
//   - Time:  O(b^d · log(b^d)) in the worst case, far less with a good h.
//   - Space: O(b^d) frontier plus explored set; stale heap entries add at most
//     one entry per relaxation.
//
// Errors (sentinel, from package core):
//
//	– ErrNilProblem       if the problem is nil.
//	– ErrNoHeuristic      if AStar/Greedy run on a problem without h.
//	– ErrOptionViolation  if f/h is nil or an Option is invalid.
//	– ErrNoSolution       if no goal is reachable.
//	– ErrBudgetExceeded   if WithMaxExpansions was exhausted.
//
// Example usage:
//
//	goal, err := bestfirst.AStar(problem, core.WithMaxExpansions(1e6))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(goal.Solution(), goal.PathCost)
package bestfirst
