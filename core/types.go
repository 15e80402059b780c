// Package core defines Problem, its optional capability interfaces and the
// sentinel errors shared by all search packages.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for search execution.
var (
	// ErrNilProblem indicates a nil Problem was passed to a search.
	ErrNilProblem = errors.New("core: problem is nil")

	// ErrNoSolution indicates the search exhausted its frontier without a goal.
	ErrNoSolution = errors.New("core: no solution found")

	// ErrNoHeuristic indicates an informed search was asked to run without h.
	ErrNoHeuristic = errors.New("core: problem has no heuristic")

	// ErrBudgetExceeded indicates the expansion budget was used up.
	ErrBudgetExceeded = errors.New("core: expansion budget exceeded")
)

// State is a problem state. Concrete states must be comparable.
type State = any

// Problem is the formal description of a search problem.
type Problem interface {
	// Initial returns the start state.
	Initial() State

	// Actions lists the actions that can be executed in s.
	Actions(s State) []string

	// Result returns the state reached by executing action in s.
	Result(s State, action string) State

	// GoalTest reports whether s is a goal state.
	GoalTest(s State) bool
}

// StepCoster is implemented by problems whose actions do not all cost 1.
type StepCoster interface {
	// StepCost returns the cost of a path that arrives at to from from via
	// action, given c, the cost of the path up to from.
	StepCost(c float64, from State, action string, to State) float64
}

// Heuristic is implemented by problems that can estimate the remaining cost.
type Heuristic interface {
	H(n *Node) float64
}

// Labeler is implemented by problems that carry a display label.
type Labeler interface {
	Label() string
}

// PrettyPrinter is implemented by problems with a custom state rendering.
type PrettyPrinter interface {
	PrettyPrint(s State) string
}

// Wrapper is implemented by problems that decorate another Problem.
type Wrapper interface {
	Unwrap() Problem
}

// PathCost returns the cost of reaching to through action from a path of
// cost c ending in from. Problems without StepCoster charge 1 per step.
func PathCost(p Problem, c float64, from State, action string, to State) float64 {
	if sc, ok := p.(StepCoster); ok {
		return sc.StepCost(c, from, action, to)
	}
	return c + 1
}

// HeuristicOf returns the heuristic of p, looking through wrappers.
// The boolean is false when no layer implements Heuristic.
func HeuristicOf(p Problem) (func(*Node) float64, bool) {
	for p != nil {
		if h, ok := p.(Heuristic); ok {
			return h.H, true
		}
		w, ok := p.(Wrapper)
		if !ok {
			break
		}
		p = w.Unwrap()
	}

	return nil, false
}

// Label returns the first label found on p or its wrapped problems,
// or "" when none is set.
func Label(p Problem) string {
	for p != nil {
		if l, ok := p.(Labeler); ok {
			if s := l.Label(); s != "" {
				return s
			}
		}
		w, ok := p.(Wrapper)
		if !ok {
			break
		}
		p = w.Unwrap()
	}

	return ""
}

// Pretty renders s with the PrettyPrinter of p if present, or fmt.Sprint.
func Pretty(p Problem, s State) string {
	for q := p; q != nil; {
		if pp, ok := q.(PrettyPrinter); ok {
			return pp.PrettyPrint(s)
		}
		w, ok := q.(Wrapper)
		if !ok {
			break
		}
		q = w.Unwrap()
	}

	return fmt.Sprint(s)
}

// labeled attaches a label to a problem that has none.
type labeled struct {
	Problem
	label string
}

// Relabel returns p with label attached. Capabilities of p remain visible
// through Unwrap.
func Relabel(p Problem, label string) Problem {
	return &labeled{Problem: p, label: label}
}

func (l *labeled) Label() string   { return l.label }
func (l *labeled) Unwrap() Problem { return l.Problem }
func (l *labeled) StepCost(c float64, from State, action string, to State) float64 {
	return PathCost(l.Problem, c, from, action, to)
}

// blind hides the heuristic of a problem while keeping its other
// capabilities. It deliberately does not implement Wrapper.
type blind struct {
	Problem
}

// WithoutHeuristic returns p stripped of its Heuristic capability, so that
// informed searches report ErrNoHeuristic on it.
func WithoutHeuristic(p Problem) Problem {
	return &blind{Problem: p}
}

func (b *blind) Label() string { return Label(b.Problem) }
func (b *blind) StepCost(c float64, from State, action string, to State) float64 {
	return PathCost(b.Problem, c, from, action, to)
}
func (b *blind) PrettyPrint(s State) string { return Pretty(b.Problem, s) }
