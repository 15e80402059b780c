package grading

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/searchgrade/core"
	"github.com/katalvlaran/searchgrade/rubric"
	"github.com/katalvlaran/searchgrade/search"
)

var (
	// ErrPanic wraps a panic recovered from student code.
	ErrPanic = errors.New("grading: run panicked")

	// ErrNilRoster is returned by GradeRoster for a nil roster.
	ErrNilRoster = errors.New("grading: roster is nil")
)

// StatsHeader is the second header row of every results table.
const StatsHeader = "(<succ/goal/stat/fina>, cost)"

// Run is the outcome of one method on one problem.
type Run struct {
	Method search.Method
	Label  string

	// Stats counts how the search exercised the problem; nil only when
	// the problem itself was nil.
	Stats *core.Instrumented
	// Goal is the goal node found, nil on failure.
	Goal *core.Node
	// Cost is Goal.PathCost, or +Inf when the run failed.
	Cost float64
	Err  error

	// Graded holds the rubric outcome; nil when the run failed.
	Graded *Graded
}

// Graded is the rubric outcome of a successful run.
type Graded struct {
	Scores rubric.Scores
	// Measured reports whether the run reached the heuristic check.
	Measured bool
	Comments []string
}

// Comparison is the method × problem matrix of one student.
type Comparison struct {
	Header   [2][]string
	Problems []core.Problem
	Methods  []search.Method
	// Runs is indexed [method][problem].
	Runs [][]*Run
	// Best holds the cheapest goal node per problem, nil if none was found.
	Best []*core.Node
}

// ScoreRow is one method's score sheet on one problem.
type ScoreRow struct {
	Method string
	Scores rubric.Scores
}

// ProblemScores groups the score rows of one problem with their summary.
type ProblemScores struct {
	Label   string
	Rows    []ScoreRow
	Summary rubric.Scores
}

// StudentReport is everything graded for one student.
type StudentReport struct {
	Name string

	// Defects are the missing-or-defective notices.
	Defects []string
	// SearchesLine and MethodsLine are the compile-check messages.
	SearchesLine string
	MethodsLine  string
	// Malformed holds the WellFormed messages of skipped problems.
	Malformed []string

	// Comparison is nil when the student has no problems to run.
	Comparison *Comparison
	Scores     []ProblemScores
	Comments   []string
}

// Report is the outcome of a whole roster.
type Report struct {
	RunID    string
	Name     string
	Students []*StudentReport
	Overall  rubric.Scores
	Elapsed  time.Duration
}

// Total is the capped sum of the rounded overall scores.
func (r *Report) Total() int { return r.Overall.Total() }

// Option configures a Grader.
type Option func(*Grader)

// WithMaxExpansions bounds every run to n node expansions; 0 means no limit.
func WithMaxExpansions(n int) Option {
	return func(g *Grader) {
		if n < 0 {
			g.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", core.ErrOptionViolation, n)
			return
		}
		g.maxExpansions = n
	}
}

// WithRunTimeout bounds the wall-clock time of every run; 0 means no limit.
func WithRunTimeout(d time.Duration) Option {
	return func(g *Grader) {
		if d < 0 {
			g.err = fmt.Errorf("%w: run timeout cannot be negative (%s)", core.ErrOptionViolation, d)
			return
		}
		g.runTimeout = d
	}
}

// WithConcurrency grades up to n students at once; values below 1 mean 1.
func WithConcurrency(n int) Option {
	return func(g *Grader) {
		if n < 1 {
			n = 1
		}
		g.concurrency = n
	}
}
