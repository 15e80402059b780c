package grading

import (
	"context"
	"fmt"
	"math"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/searchgrade/core"
	"github.com/katalvlaran/searchgrade/internal/ctxlog"
	"github.com/katalvlaran/searchgrade/rubric"
	"github.com/katalvlaran/searchgrade/search"
	"github.com/katalvlaran/searchgrade/submission"
)

// Grader runs and scores submissions. A Grader is safe for concurrent use.
type Grader struct {
	maxExpansions int           // Per-run expansion budget; 0 means unlimited.
	runTimeout    time.Duration // Per-run wall-clock limit; 0 means unlimited.
	concurrency   int           // Students graded at once; at least 1.
	err           error         // First option error, surfaced by New.
}

// New returns a Grader configured by opts, or the first option error.
func New(opts ...Option) (*Grader, error) {
	g := &Grader{concurrency: 1}
	for _, opt := range opts {
		opt(g)
	}
	if g.err != nil {
		return nil, g.err
	}
	return g, nil
}

// GradeRoster grades every student of r and folds each problem summary into
// the overall score sheet by maximum. The sheet starts from rubric.NewScores,
// so heuristic keeps its full-credit default. Reports keep roster order
// whatever the concurrency. Only context cancellation makes it fail.
func (g *Grader) GradeRoster(ctx context.Context, r *submission.Roster) (*Report, error) {
	if r == nil {
		return nil, ErrNilRoster
	}
	start := time.Now()
	rep := &Report{
		RunID:    uuid.NewString(),
		Students: make([]*StudentReport, len(r.Students)),
		Overall:  rubric.NewScores(),
	}
	if len(r.Names) > 0 {
		rep.Name = r.Names[0]
	}
	logger := ctxlog.FromContext(ctx).With("run_id", rep.RunID)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Info("Grading roster.", "students", len(r.Students), "concurrency", g.concurrency)

	// 1) Grade students concurrently; each goroutine owns one report slot,
	//    so roster order survives without locking.
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.concurrency)
	for i := range r.Students {
		i := i
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			rep.Students[i] = g.GradeStudent(egCtx, r.Students[i])
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("grading: roster aborted: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("grading: roster aborted: %w", err)
	}

	// 2) Fold every problem summary into the overall sheet by maximum.
	for _, sr := range rep.Students {
		for _, ps := range sr.Scores {
			rep.Overall.Max(ps.Summary)
		}
	}
	rep.Elapsed = time.Since(start)
	logger.Info("Roster graded.", "total", rep.Total(), "elapsed", rep.Elapsed)
	return rep, nil
}

// GradeStudent grades one built submission.
func (g *Grader) GradeStudent(ctx context.Context, st submission.Student) *StudentReport {
	logger := ctxlog.FromContext(ctx).With("student", st.Name)
	ctx = ctxlog.WithLogger(ctx, logger)

	sr := &StudentReport{
		Name:         st.Name,
		SearchesLine: fmt.Sprintf("      Searches that compile for %s: ", st.Name),
		MethodsLine:  fmt.Sprintf("Search methods that compile for %s: ", st.Name),
	}
	if st.ProblemsErr != nil {
		sr.Defects = append(sr.Defects, fmt.Sprintf("%s: searches[] is missing or defective.", st.Name))
	} else {
		labels := make([]string, len(st.Problems))
		for i, p := range st.Problems {
			labels[i] = core.Label(p)
		}
		sr.SearchesLine += fmt.Sprintf("%q", labels)
	}
	if st.MethodsErr != nil {
		sr.Defects = append(sr.Defects, fmt.Sprintf("%s: searchMethods[] is missing or defective.", st.Name))
	} else if len(st.Methods) > 0 {
		names := make([]string, len(st.Methods))
		for i, m := range st.Methods {
			names[i] = m.Name
		}
		sr.MethodsLine += fmt.Sprintf("%q", names)
	}
	if st.ProblemsErr != nil {
		return sr
	}

	problems := make([]core.Problem, 0, len(st.Problems))
	for _, p := range st.Problems {
		label := core.Label(p)
		ok, msgs := WellFormed(p, label)
		if !ok {
			logger.Warn("Skipping malformed problem.", "problem", label)
			sr.Malformed = append(sr.Malformed, msgs...)
			continue
		}
		if label == "" {
			p = core.Relabel(p, fmt.Sprintf("Problem %d", len(problems)))
		}
		problems = append(problems, p)
	}

	var methods []search.Method
	if st.MethodsErr == nil {
		methods = st.Methods
	}
	sr.Comparison = g.Compare(ctx, st.Name, problems, methods)
	sr.Scores = summarize(sr.Comparison)
	for _, row := range sr.Comparison.Runs {
		for _, run := range row {
			if run.Graded != nil {
				sr.Comments = append(sr.Comments, run.Graded.Comments...)
			}
		}
	}

	return sr
}

// Compare runs every method on every problem, in method-major order, and
// returns the resulting matrix with the cheapest goal per problem.
func (g *Grader) Compare(ctx context.Context, student string, problems []core.Problem, methods []search.Method) *Comparison {
	c := &Comparison{
		Problems: problems,
		Methods:  methods,
		Runs:     make([][]*Run, len(methods)),
		Best:     make([]*core.Node, len(problems)),
	}
	c.Header[0] = append(c.Header[0], student)
	c.Header[1] = append(c.Header[1], "")
	for _, p := range problems {
		c.Header[0] = append(c.Header[0], core.Label(p))
		c.Header[1] = append(c.Header[1], StatsHeader)
	}

	best := make([]float64, len(problems))
	for j := range best {
		best[j] = math.Inf(1)
	}
	for i, m := range methods {
		c.Runs[i] = make([]*Run, len(problems))
		for j, p := range problems {
			run := g.run(ctx, m, p)
			c.Runs[i][j] = run
			if run.Goal != nil && run.Cost < best[j] {
				best[j] = run.Cost
				c.Best[j] = run.Goal
			}
		}
	}

	return c
}

// run executes one method on one problem and grades the result. Panics in
// student code are recovered and turned into a failed run.
func (g *Grader) run(ctx context.Context, m search.Method, p core.Problem) (run *Run) {
	logger := ctxlog.FromContext(ctx)
	run = &Run{Method: m, Label: core.Label(p), Cost: math.Inf(1)}

	defer func() {
		if r := recover(); r != nil {
			run.Goal, run.Graded = nil, nil
			run.Cost = math.Inf(1)
			run.Err = fmt.Errorf("%w: %s on %s: %v", ErrPanic, m.Name, run.Label, r)
			logger.Warn("Search panicked.", "method", m.Name, "problem", run.Label, "panic", r)
			logger.Debug("Panic stack.", "stack", string(debug.Stack()))
		}
	}()

	// 1) Instrument after the recover is armed: a nil problem panics here.
	ip := core.NewInstrumented(p)
	run.Stats = ip

	// 2) Bound the run by the configured timeout and budget.
	if g.runTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.runTimeout)
		defer cancel()
	}
	opts := []core.Option{core.WithContext(ctx)}
	if g.maxExpansions > 0 {
		opts = append(opts, core.WithMaxExpansions(g.maxExpansions))
	}

	// 3) Run; a nil goal without an error still counts as no solution.
	started := time.Now()
	goal, err := m.Run(ip, opts...)
	if err == nil && goal == nil {
		err = core.ErrNoSolution
	}
	if err != nil {
		run.Err = err
		logger.Debug("Search failed.", "method", m.Name, "problem", run.Label, "error", err)
		return run
	}
	// 4) Grade while ip still holds the counters of this run.
	run.Goal = goal
	run.Cost = goal.PathCost
	run.Graded = GradeRun(m, ip, goal)
	logger.Debug("Search finished.",
		"method", m.Name, "problem", run.Label, "cost", run.Cost,
		"stats", ip.String(), "elapsed", time.Since(started))
	return run
}
