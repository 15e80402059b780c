package grading_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/searchgrade/core"
	"github.com/katalvlaran/searchgrade/grading"
	"github.com/katalvlaran/searchgrade/internal/fixture"
	"github.com/katalvlaran/searchgrade/puzzles"
	"github.com/katalvlaran/searchgrade/rubric"
	"github.com/katalvlaran/searchgrade/search"
	"github.com/katalvlaran/searchgrade/submission"
)

// solve runs m on an instrumented p and grades the result.
func solve(t *testing.T, m search.Method, p core.Problem) (*core.Instrumented, *grading.Graded) {
	t.Helper()
	ip := core.NewInstrumented(p)
	goal, err := m.Run(ip)
	require.NoError(t, err)
	return ip, grading.GradeRun(m, ip, goal)
}

func TestGradeRun_ConsistentHeuristicEarnsFullCredit(t *testing.T) {
	ip, g := solve(t, method(search.AStar), fixture.RomaniaSLD())

	assert.True(t, g.Measured)
	assert.Empty(t, g.Comments)
	assert.Equal(t, 55.0, g.Scores[rubric.Compiles])
	assert.Equal(t, 2.0, g.Scores[rubric.AllMethods])
	assert.Equal(t, 10.0, g.Scores[rubric.HeuristicLabel])
	assert.Equal(t, 2.0, g.Scores[rubric.Actions64Plus], "cost 418")
	assert.Equal(t, 2.0, g.Scores[rubric.StatesBucket(ip.States)])
}

func TestGradeRun_TwoActions(t *testing.T) {
	_, g := solve(t, method(search.BreadthFirst), line(nil).Graph)

	assert.Equal(t, 10.0, g.Scores[rubric.TwoActions])
	assert.Zero(t, g.Scores[rubric.Actions4to7])
	assert.Zero(t, g.Scores[rubric.HeuristicLabel], "no heuristic, no credit")
	assert.Equal(t, 2.0, g.Scores[rubric.Nodes1to3])
}

func TestGradeRun_TrivialCostOnlyCompiles(t *testing.T) {
	_, g := solve(t, method(search.BreadthFirst), fixture.Romania("Arad", "Arad"))

	assert.False(t, g.Measured)
	want := rubric.NewScores()
	want[rubric.Compiles] = 55
	assert.Equal(t, want, g.Scores)
}

func TestGradeRun_NonStandardMethod(t *testing.T) {
	_, g := solve(t, method(search.GreedyBestFirst), fixture.RomaniaSLD())

	assert.Zero(t, g.Scores[rubric.AllMethods])
	assert.Equal(t, 10.0, g.Scores[rubric.HeuristicLabel])
}

func TestWellFormed(t *testing.T) {
	g := fixture.NewGraph("A", "B")
	g.AddArc("A", "B", 1)

	ok, msgs := grading.WellFormed(g, "fine")
	assert.True(t, ok)
	assert.Empty(t, msgs)

	ok, msgs = grading.WellFormed(nil, "ghost")
	assert.False(t, ok)
	assert.Equal(t, []string{`iProblem "ghost" is nil.`}, msgs)

	ok, msgs = grading.WellFormed(&nilState{Graph: g}, "empty")
	assert.False(t, ok)
	assert.Equal(t, []string{`iProblem "empty" has no initial state.`}, msgs)

	ok, msgs = grading.WellFormed(&sliceState{Graph: g}, "slice")
	assert.False(t, ok)
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "cannot be hashed")

	// Actions type-asserts the state to string, so an int state panics.
	ok, msgs = grading.WellFormed(&intState{Graph: g}, "typed")
	assert.False(t, ok)
	require.Len(t, msgs, 2)
	assert.Equal(t, `in iProblem "typed",`, msgs[0])
	assert.Contains(t, msgs[1], "actions(...) fails on the initial state")
}

type intState struct {
	*fixture.Graph
}

func (s *intState) Initial() core.State { return 7 }

func TestCompare_PanicIsAFailedRun(t *testing.T) {
	g := fixture.NewGraph("A", "C")
	g.Name = "brittle"
	g.AddArc("A", "B", 1).AddArc("B", "C", 1)
	bad := &brittle{Graph: g, Panic: "C"}

	gr, err := grading.New()
	require.NoError(t, err)
	c := gr.Compare(quiet(), "s", []core.Problem{bad, line(nil)}, []search.Method{method(search.BreadthFirst)})

	assert.Equal(t, []string{"s", "brittle", "line"}, c.Header[0])
	assert.Equal(t, []string{"", grading.StatsHeader, grading.StatsHeader}, c.Header[1])

	failed := c.Runs[0][0]
	assert.ErrorIs(t, failed.Err, grading.ErrPanic)
	assert.True(t, math.IsInf(failed.Cost, 1))
	assert.Nil(t, failed.Graded)
	assert.Nil(t, c.Best[0])

	ok := c.Runs[0][1]
	require.NoError(t, ok.Err)
	assert.Equal(t, 2.0, ok.Cost)
	assert.Same(t, ok.Goal, c.Best[1])
}

func TestCompare_NoCrossRunCredit(t *testing.T) {
	gr, err := grading.New()
	require.NoError(t, err)
	methods := []search.Method{method(search.UniformCost), method(search.AStar), method(search.GreedyBestFirst)}
	c := gr.Compare(quiet(), "s", []core.Problem{fixture.RomaniaSLD()}, methods)

	greedy := c.Runs[2][0]
	require.NotNil(t, greedy.Graded)
	assert.Less(t, greedy.Stats.States, c.Runs[1][0].Stats.States)
	for i := range methods {
		scores := c.Runs[i][0].Graded.Scores
		assert.Zero(t, scores[rubric.SearchComplete], methods[i].Name)
		assert.Zero(t, scores[rubric.BeatsUCS], methods[i].Name)
		assert.Zero(t, scores[rubric.BeatsAStar], methods[i].Name)
	}
	assert.Equal(t, 418.0, c.Best[0].PathCost)
}

func TestCompare_Budget(t *testing.T) {
	gr, err := grading.New(grading.WithMaxExpansions(1))
	require.NoError(t, err)
	c := gr.Compare(quiet(), "s", []core.Problem{fixture.RomaniaSLD()}, []search.Method{method(search.UniformCost)})
	assert.ErrorIs(t, c.Runs[0][0].Err, core.ErrBudgetExceeded)

	_, err = grading.New(grading.WithMaxExpansions(-1))
	assert.ErrorIs(t, err, core.ErrOptionViolation)
	_, err = grading.New(grading.WithRunTimeout(-1))
	assert.ErrorIs(t, err, core.ErrOptionViolation)
}

func roster(t *testing.T) *submission.Roster {
	t.Helper()
	tile, err := puzzles.NewTile([]string{"ca", "_b"}, []string{"ab", "c_"}, puzzles.WithLabel("2x2 Tiles"))
	require.NoError(t, err)
	unlabeled := fixture.NewGraph("A", "B").AddArc("A", "B", 1)
	return &submission.Roster{
		Names: []string{"Aardvark, Aaron", "Aardvark, Aamy", "Aardvark, Abel"},
		Students: []submission.Student{
			{
				Name:     "Aardvark, Aaron",
				Problems: []core.Problem{puzzles.NewLightSwitch(puzzles.Off, "Light Switch"), tile},
				Methods:  []search.Method{method(search.BreadthFirst), method(search.AStar)},
			},
			{
				Name:        "Aardvark, Aamy",
				ProblemsErr: submission.ErrMissing,
				MethodsErr:  submission.ErrMissing,
			},
			{
				Name:       "Aardvark, Abel",
				Problems:   []core.Problem{nil, unlabeled},
				MethodsErr: errors.New("bad"),
			},
		},
	}
}

func TestGradeRoster(t *testing.T) {
	gr, err := grading.New(grading.WithConcurrency(3))
	require.NoError(t, err)
	rep, err := gr.GradeRoster(quiet(), roster(t))
	require.NoError(t, err)

	assert.NotEmpty(t, rep.RunID)
	assert.Equal(t, "Aardvark, Aaron", rep.Name)
	require.Len(t, rep.Students, 3)

	aaron := rep.Students[0]
	assert.Equal(t, "Aardvark, Aaron", aaron.Name)
	assert.Empty(t, aaron.Defects)
	assert.Equal(t, `      Searches that compile for Aardvark, Aaron: ["Light Switch" "2x2 Tiles"]`, aaron.SearchesLine)
	assert.Equal(t, `Search methods that compile for Aardvark, Aaron: ["breadth_first_search" "astar_search"]`, aaron.MethodsLine)
	require.Len(t, aaron.Scores, 2)
	assert.Equal(t, "Light Switch", aaron.Scores[0].Label)
	assert.Len(t, aaron.Scores[0].Rows, 1, "A* has no heuristic on the light switch")
	assert.ErrorIs(t, aaron.Comparison.Runs[1][0].Err, core.ErrNoHeuristic)
	assert.Len(t, aaron.Scores[1].Rows, 2)
	assert.Equal(t, 4.0, aaron.Scores[1].Summary[rubric.AllMethods])

	amy := rep.Students[1]
	assert.Equal(t, []string{
		"Aardvark, Aamy: searches[] is missing or defective.",
		"Aardvark, Aamy: searchMethods[] is missing or defective.",
	}, amy.Defects)
	assert.Nil(t, amy.Comparison)

	abel := rep.Students[2]
	assert.Equal(t, []string{"Aardvark, Abel: searchMethods[] is missing or defective."}, abel.Defects)
	assert.Equal(t, []string{`iProblem "" is nil.`}, abel.Malformed)
	require.NotNil(t, abel.Comparison)
	assert.Equal(t, []string{"Aardvark, Abel", "Problem 0"}, abel.Comparison.Header[0])
	assert.Empty(t, abel.Scores)

	want := map[string]float64{
		rubric.Compiles:       55,
		rubric.AllMethods:     4,
		rubric.HeuristicLabel: 10,
		rubric.Actions4to7:    2,
		rubric.Nodes1to3:      2,
		"4-15nodes":           0,
	}
	for label, v := range want {
		assert.Equal(t, v, rep.Overall[label], label)
	}
	assert.Equal(t, 73, rep.Total())
}

func TestGradeRoster_Cancelled(t *testing.T) {
	gr, err := grading.New()
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(quiet())
	cancel()

	_, err = gr.GradeRoster(ctx, roster(t))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = gr.GradeRoster(quiet(), nil)
	assert.ErrorIs(t, err, grading.ErrNilRoster)
}
