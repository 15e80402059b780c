// Package core provides the state-space primitives shared by every search
// algorithm and by the grader: Problem, Node, the instrumented wrapper that
// counts expansions, and the functional options understood by all searches.
//
// A Problem G = (S, A, T, goal) is described implicitly:
//
//   - Initial() returns the start state.
//   - Actions(s) enumerates the action names applicable in s.
//   - Result(s, a) returns the successor state.
//   - GoalTest(s) reports whether s is a goal.
//
// States must be comparable values (strings, small structs, arrays) because
// every graph search keeps explored sets keyed by state.
//
// Optional capabilities are separate interfaces, discovered with a type
// assertion instead of attribute probing:
//
//	– StepCoster     custom step cost; default is 1 per action.
//	– Heuristic      h(n) estimate used by A* and greedy best-first search.
//	– Labeler        human-readable problem label.
//	– PrettyPrinter  custom state rendering for path summaries.
//
// Wrappers (Instrumented, Relabel) implement Unwrap so that capability
// lookups (HeuristicOf, Label, Pretty) see through them.
//
// Node is the path-history record produced by searches: State, Parent,
// Action, PathCost and Depth. Path() walks the parent links back to the root.
//
// Errors:
//
//	ErrNilProblem      - a nil Problem was passed to a search.
//	ErrNoSolution      - the frontier was exhausted without reaching a goal.
//	ErrNoHeuristic     - an informed search was run on a problem without h.
//	ErrBudgetExceeded  - the expansion budget set by WithMaxExpansions ran out.
package core
