package core

import (
	"fmt"
	"strings"
)

// Instrumented wraps a Problem and counts how it is exercised by a search:
//   - Succs:     calls to Actions (successor enumerations)
//   - GoalTests: calls to GoalTest
//   - States:    calls to Result (states generated)
//   - Found:     the last state for which GoalTest returned true
//
// An Instrumented value is not safe for concurrent use; each search run gets
// its own wrapper.
type Instrumented struct {
	problem Problem

	Succs     int
	GoalTests int
	States    int
	Found     State
	found     bool
}

// NewInstrumented wraps p. It panics on a nil problem.
func NewInstrumented(p Problem) *Instrumented {
	if p == nil {
		panic(ErrNilProblem)
	}
	return &Instrumented{problem: p}
}

// Initial implements Problem.
func (ip *Instrumented) Initial() State { return ip.problem.Initial() }

// Actions implements Problem and counts a successor enumeration.
func (ip *Instrumented) Actions(s State) []string {
	ip.Succs++
	return ip.problem.Actions(s)
}

// Result implements Problem and counts a generated state.
func (ip *Instrumented) Result(s State, action string) State {
	ip.States++
	return ip.problem.Result(s, action)
}

// GoalTest implements Problem and remembers the goal state when found.
func (ip *Instrumented) GoalTest(s State) bool {
	ip.GoalTests++
	ok := ip.problem.GoalTest(s)
	if ok {
		ip.Found = s
		ip.found = true
	}
	return ok
}

// StepCost delegates to the wrapped problem.
func (ip *Instrumented) StepCost(c float64, from State, action string, to State) float64 {
	return PathCost(ip.problem, c, from, action, to)
}

// Label returns the label of the wrapped problem.
func (ip *Instrumented) Label() string { return Label(ip.problem) }

// Unwrap returns the wrapped problem.
func (ip *Instrumented) Unwrap() Problem { return ip.problem }

// String renders the counters as <succs/goal_tests/states/found>, the found
// state truncated to four characters.
func (ip *Instrumented) String() string {
	found := "None"
	if ip.found {
		found = fmt.Sprint(ip.Found)
	}
	if r := []rune(found); len(r) > 4 {
		found = string(r[:4])
	}
	return fmt.Sprintf("<%4d/%4d/%4d/%s>", ip.Succs, ip.GoalTests, ip.States, strings.TrimSpace(found))
}
