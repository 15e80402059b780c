// Package grading runs every declared search method against every declared
// problem of a submission and turns the outcome into rubric scores.
//
// What
//
//   - WellFormed exercises a problem before any search touches it.
//   - CheckHeuristic walks a solution from the goal back to the root and
//     decides whether the problem's heuristic looked admissible and
//     consistent along it. Failures become comments, never errors.
//   - GradeRun scores a single (method, problem) run.
//   - Grader.Compare runs a method × problem matrix through
//     core.Instrumented and tracks the cheapest goal per problem.
//   - Grader.GradeRoster grades every student, concurrently when asked, and
//     accumulates the overall score sheet.
//
// Failure model
//
//	Student code is untrusted. A panic inside a problem, a heuristic or a
//	search is recovered at the run boundary, logged, and scored as a failed
//	run (cost +Inf, no rubric entry). Only context cancellation aborts a
//	roster.
package grading
