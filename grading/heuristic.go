package grading

import (
	"fmt"

	"github.com/katalvlaran/searchgrade/core"
)

// CheckHeuristic walks from goal to the root and tests the heuristic of p on
// every node of the path.
//
//   - h(goal) must be 0, and h(n) may never exceed the cost from n to the
//     goal along the path; otherwise the heuristic is not admissible and the
//     walk stops with (false, false).
//   - h(parent) may not exceed step cost + h(child); otherwise it is not
//     consistent, and the walk continues.
//
// A problem without a heuristic yields (false, false) with no comment. A
// panic inside h is recovered and reported as a comment.
func CheckHeuristic(p core.Problem, goal *core.Node) (admissible, consistent bool, comments []string) {
	h, ok := core.HeuristicOf(p)
	if !ok || goal == nil {
		return false, false, nil
	}
	label := core.Label(p)
	defer func() {
		if r := recover(); r != nil {
			admissible, consistent = false, false
			comments = append(comments, fmt.Sprintf("Heuristic for %s threw this exception:\n%v", label, r))
		}
	}()

	node := goal
	hNode := h(node)
	if hNode != 0 {
		return false, false, append(comments, fmt.Sprintf("%s.h() is not admissible.", label))
	}

	consistent = true
	reverseCost := 0.0
	for parent := node.Parent; parent != nil; parent = node.Parent {
		hParent := h(parent)
		link := node.PathCost - parent.PathCost
		reverseCost += link
		if hParent > reverseCost {
			return false, false, append(comments, fmt.Sprintf("%s.h() is not admissible.", label))
		}
		if hParent > link+hNode {
			comments = append(comments, fmt.Sprintf("%s.h() is not consistent.", label))
			consistent = false
		}
		node, hNode = parent, hParent
	}

	return true, consistent, comments
}
