package grading

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/searchgrade/core"
)

// WellFormed exercises p on its initial state and reports whether it can be
// searched. The messages explain every problem found; label names p in them.
//
// A problem is rejected when it is nil, has no initial state, has an initial
// state that cannot serve as a map key, or panics in Actions or GoalTest on
// the initial state.
func WellFormed(p core.Problem, label string) (ok bool, msgs []string) {
	if p == nil {
		return false, []string{fmt.Sprintf("iProblem %q is nil.", label)}
	}

	var initial core.State
	if err := guard(func() { initial = p.Initial() }); err != nil {
		return false, []string{fmt.Sprintf("iProblem %q has no initial state: %v", label, err)}
	}
	if initial == nil {
		return false, []string{fmt.Sprintf("iProblem %q has no initial state.", label)}
	}
	if !reflect.TypeOf(initial).Comparable() {
		return false, []string{fmt.Sprintf("iProblem %q has an initial state of type %T that cannot be hashed.", label, initial)}
	}
	if err := guard(func() { p.Actions(initial) }); err != nil {
		return false, []string{
			fmt.Sprintf("in iProblem %q,", label),
			fmt.Sprintf("  actions(...) fails on the initial state: %v", err),
		}
	}
	if err := guard(func() { p.GoalTest(initial) }); err != nil {
		return false, []string{
			fmt.Sprintf("in iProblem %q,", label),
			fmt.Sprintf("  goal_test(...) fails on the initial state: %v", err),
		}
	}

	return true, nil
}

// guard runs fn and converts a panic into an error.
func guard(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()
	fn()
	return nil
}
