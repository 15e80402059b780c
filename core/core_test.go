package core_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/searchgrade/core"
	"github.com/katalvlaran/searchgrade/internal/fixture"
)

func TestNode_ChildAndPath(t *testing.T) {
	p := fixture.Romania("Arad", "Bucharest")
	root := core.NewNode(p.Initial())
	n := root.ChildNode(p, "Sibiu").ChildNode(p, "Fagaras")

	assert.Equal(t, "Fagaras", n.State)
	assert.Equal(t, 2, n.Depth)
	assert.Equal(t, 239.0, n.PathCost)
	assert.Equal(t, []string{"Sibiu", "Fagaras"}, n.Solution())

	path := n.Path()
	require.Len(t, path, 3)
	assert.Same(t, root, path[0])
	assert.Equal(t, "<Node Fagaras>", n.String())
	assert.Empty(t, root.Solution())
}

func TestNode_Expand(t *testing.T) {
	p := fixture.Romania("Arad", "Bucharest")
	children := core.NewNode("Arad").Expand(p)
	require.Len(t, children, 3)
	got := []string{children[0].Action, children[1].Action, children[2].Action}
	assert.Equal(t, []string{"Sibiu", "Timisoara", "Zerind"}, got)
	assert.Equal(t, 75.0, children[2].PathCost)
}

func TestPathCost_Default(t *testing.T) {
	p := fixture.Romania("Arad", "Bucharest")
	assert.Equal(t, 140.0, core.PathCost(p, 0, "Arad", "Sibiu", "Sibiu"))

	var plain core.Problem = struct{ core.Problem }{p}
	assert.Equal(t, 1.0, core.PathCost(plain, 0, "Arad", "Sibiu", "Sibiu"), "no StepCoster, unit cost")
}

func TestInstrumented(t *testing.T) {
	ip := core.NewInstrumented(fixture.RomaniaSLD())
	assert.Equal(t, "<   0/   0/   0/None>", ip.String())

	n := core.NewNode(ip.Initial())
	assert.False(t, ip.GoalTest(n.State))
	children := n.Expand(ip)
	assert.Len(t, children, 3)
	assert.True(t, ip.GoalTest("Bucharest"))

	assert.Equal(t, 1, ip.Succs)
	assert.Equal(t, 2, ip.GoalTests)
	assert.Equal(t, 3, ip.States)
	assert.Equal(t, "Bucharest", ip.Found)
	assert.Equal(t, "<   1/   2/   3/Buch>", ip.String())

	assert.Equal(t, 140.0, children[0].PathCost, "step costs pass through")
	assert.Equal(t, "Romania Arad→Bucharest", core.Label(ip))
	h, ok := core.HeuristicOf(ip)
	require.True(t, ok)
	assert.Equal(t, 366.0, h(n))

	assert.Panics(t, func() { core.NewInstrumented(nil) })
}

func TestRelabelAndWithoutHeuristic(t *testing.T) {
	p := fixture.RomaniaSLD()
	r := core.Relabel(p, "map")
	assert.Equal(t, "map", core.Label(r))
	_, ok := core.HeuristicOf(r)
	assert.True(t, ok, "Relabel keeps h visible")
	assert.Equal(t, 140.0, core.PathCost(r, 0, "Arad", "Sibiu", "Sibiu"))

	b := core.WithoutHeuristic(p)
	_, ok = core.HeuristicOf(b)
	assert.False(t, ok)
	_, ok = core.HeuristicOf(core.NewInstrumented(b))
	assert.False(t, ok, "instrumenting does not bring h back")
	assert.Equal(t, "Romania Arad→Bucharest", core.Label(b))
	assert.Equal(t, 140.0, core.PathCost(b, 0, "Arad", "Sibiu", "Sibiu"))
	assert.Equal(t, "Arad", core.Pretty(b, "Arad"))

	assert.Equal(t, "", core.Label(nil))
}

type shouting struct {
	*fixture.Graph
}

func (s *shouting) PrettyPrint(st core.State) string { return st.(string) + "!" }

func TestPretty(t *testing.T) {
	p := &shouting{Graph: fixture.Romania("Arad", "Bucharest")}
	assert.Equal(t, "Arad!", core.Pretty(core.NewInstrumented(p), "Arad"))
	assert.Equal(t, "42", core.Pretty(fixture.NewGraph("a", "b"), 42))
}

func TestOptions(t *testing.T) {
	o, err := core.BuildOptions()
	require.NoError(t, err)
	assert.Zero(t, o.MaxExpansions)

	_, err = core.BuildOptions(core.WithMaxExpansions(-2))
	assert.ErrorIs(t, err, core.ErrOptionViolation)

	var seen []core.State
	o, err = core.BuildOptions(core.WithMaxExpansions(1), core.WithOnExpand(func(n *core.Node) { seen = append(seen, n.State) }))
	require.NoError(t, err)
	p := fixture.Romania("Arad", "Bucharest")
	_, err = o.Expand(p, core.NewNode("Arad"))
	require.NoError(t, err)
	_, err = o.Expand(p, core.NewNode("Sibiu"))
	assert.ErrorIs(t, err, core.ErrBudgetExceeded)
	assert.Equal(t, []core.State{"Arad"}, seen)
	assert.Equal(t, 1, o.Expansions())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	o, err = core.BuildOptions(core.WithContext(ctx))
	require.NoError(t, err)
	_, err = o.Expand(p, core.NewNode("Arad"))
	assert.ErrorIs(t, err, context.Canceled)
}
