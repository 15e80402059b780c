package grading

import (
	"math"

	"github.com/katalvlaran/searchgrade/core"
	"github.com/katalvlaran/searchgrade/rubric"
	"github.com/katalvlaran/searchgrade/search"
)

// GradeRun scores the run of m that produced goal on the instrumented
// problem ip.
//
// Every run that returns a goal compiles. Runs of cost below 1 or of
// infinite cost earn nothing else. Otherwise a standard method earns its
// share of allMethods, the heuristic is checked along the path, and the cost
// and generated-state buckets get full credit.
func GradeRun(m search.Method, ip *core.Instrumented, goal *core.Node) *Graded {
	g := &Graded{Scores: rubric.NewScores()}
	award(g.Scores, rubric.Compiles)

	cost := goal.PathCost
	if cost < 1 || math.IsInf(cost, 1) {
		return g
	}
	states := ip.States

	if m.Standard {
		g.Scores[rubric.AllMethods] = credit(rubric.AllMethods, 0, float64(len(search.StandardNames)), 1)
	}

	admissible, consistent, comments := CheckHeuristic(ip, goal)
	g.Comments = comments
	g.Measured = true
	g.Scores[rubric.HeuristicLabel] = credit(rubric.HeuristicLabel, 0, 2, float64(btoi(admissible)+btoi(consistent)))

	if bucket := rubric.CostBucket(cost); bucket != "" {
		award(g.Scores, bucket)
	}
	award(g.Scores, rubric.StatesBucket(states))
	return g
}

// summarize builds the per-problem score tables. Problems without a single
// successful run are left out.
func summarize(c *Comparison) []ProblemScores {
	out := make([]ProblemScores, 0, len(c.Problems))
	for j, p := range c.Problems {
		ps := ProblemScores{Label: core.Label(p), Summary: rubric.NewScores()}
		measured := false
		for i, m := range c.Methods {
			run := c.Runs[i][j]
			if run.Graded == nil {
				continue
			}
			ps.Rows = append(ps.Rows, ScoreRow{Method: m.Name, Scores: run.Graded.Scores})
			ps.Summary.Accumulate(run.Graded.Scores)
			measured = measured || run.Graded.Measured
		}
		if len(ps.Rows) == 0 {
			continue
		}
		if !measured {
			ps.Summary[rubric.HeuristicLabel] = 0
		}
		out = append(out, ps)
	}

	return out
}

// award and credit use labels from the rubric table, which cannot fail.
func award(s rubric.Scores, label string) {
	if err := s.Award(label); err != nil {
		panic(err)
	}
}

func credit(label string, lo, hi, x float64) float64 {
	v, err := rubric.PartialCredit(label, lo, hi, x)
	if err != nil {
		panic(err)
	}
	return v
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}
