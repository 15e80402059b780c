package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/searchgrade/bfs"
	"github.com/katalvlaran/searchgrade/core"
	"github.com/katalvlaran/searchgrade/internal/fixture"
)

// states extracts the state sequence from root to n.
func states(n *core.Node) []string {
	var out []string
	for _, nd := range n.Path() {
		out = append(out, nd.State.(string))
	}
	return out
}

// TestBreadthFirst_Errors verifies that invalid inputs and options are rejected.
func TestBreadthFirst_Errors(t *testing.T) {
	_, err := bfs.BreadthFirst(nil)
	assert.ErrorIs(t, err, core.ErrNilProblem)

	_, err = bfs.BreadthFirst(fixture.Romania("Arad", "Bucharest"), core.WithMaxExpansions(-1))
	assert.ErrorIs(t, err, core.ErrOptionViolation)
}

// TestBreadthFirst_StartIsGoal covers the zero-length solution.
func TestBreadthFirst_StartIsGoal(t *testing.T) {
	goal, err := bfs.BreadthFirst(fixture.Romania("Arad", "Arad"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Arad"}, states(goal))
	assert.Zero(t, goal.PathCost)
}

// TestBreadthFirst_Romania checks that BFS returns the fewest-hop route,
// not the cheapest one.
func TestBreadthFirst_Romania(t *testing.T) {
	goal, err := bfs.BreadthFirst(fixture.Romania("Arad", "Bucharest"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Arad", "Sibiu", "Fagaras", "Bucharest"}, states(goal))
	assert.Equal(t, 3, goal.Depth)
	assert.InDelta(t, 450.0, goal.PathCost, 1e-9)
	assert.Equal(t, []string{"Sibiu", "Fagaras", "Bucharest"}, goal.Solution())
}

// TestBreadthFirst_Unreachable ensures exhaustion reports ErrNoSolution.
func TestBreadthFirst_Unreachable(t *testing.T) {
	g := fixture.NewGraph("A", "Z")
	g.AddArc("A", "B", 1).AddArc("B", "C", 1).AddArc("C", "A", 1)
	_, err := bfs.BreadthFirst(g)
	assert.ErrorIs(t, err, core.ErrNoSolution)
}

// TestBreadthFirst_Instrumented counts generated states on a small chain.
func TestBreadthFirst_Instrumented(t *testing.T) {
	g := fixture.NewGraph("A", "C")
	g.AddArc("A", "B", 1).AddArc("B", "C", 1)
	ip := core.NewInstrumented(g)

	goal, err := bfs.BreadthFirst(ip)
	require.NoError(t, err)
	assert.Equal(t, "C", goal.State)
	assert.Equal(t, 2, ip.Succs)
	assert.Equal(t, 2, ip.States)
	assert.Equal(t, 3, ip.GoalTests)
	assert.Equal(t, "C", ip.Found)
}

// TestBreadthFirst_Budget verifies WithMaxExpansions aborts the run.
func TestBreadthFirst_Budget(t *testing.T) {
	var expanded []string
	_, err := bfs.BreadthFirst(fixture.Romania("Arad", "Bucharest"),
		core.WithMaxExpansions(1),
		core.WithOnExpand(func(n *core.Node) { expanded = append(expanded, n.State.(string)) }),
	)
	assert.ErrorIs(t, err, core.ErrBudgetExceeded)
	assert.Equal(t, []string{"Arad"}, expanded)
}

// TestBreadthFirst_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBreadthFirst_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BreadthFirst(fixture.Romania("Arad", "Bucharest"), core.WithContext(ctx))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Cancellation: want context.Canceled, got %v", err)
	}
}
