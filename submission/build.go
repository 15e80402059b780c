package submission

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/searchgrade/core"
	"github.com/katalvlaran/searchgrade/internal/ctxlog"
	"github.com/katalvlaran/searchgrade/puzzles"
	"github.com/katalvlaran/searchgrade/search"
)

// Build resolves every roster name to a Student. rng drives the scramble of
// tile puzzles declared without an initial board.
func Build(ctx context.Context, m *Manifest, reg *search.Registry, rng *rand.Rand) *Roster {
	logger := ctxlog.FromContext(ctx)

	specs := make(map[string]*StudentSpec, len(m.Students))
	for _, s := range m.Students {
		if s == nil {
			continue
		}
		if _, dup := specs[s.Name]; dup {
			logger.Warn("Duplicate student entry, keeping the first.", "student", s.Name)
			continue
		}
		specs[s.Name] = s
	}

	r := &Roster{Names: m.Names, Students: make([]Student, 0, len(m.Names))}
	for _, name := range m.Names {
		st := Student{Name: name}
		spec, ok := specs[name]
		if !ok {
			st.ProblemsErr = fmt.Errorf("%w: no entry for %q", ErrMissing, name)
			st.MethodsErr = st.ProblemsErr
			r.Students = append(r.Students, st)
			continue
		}
		st.Problems, st.ProblemsErr = buildProblems(ctx, spec, rng)
		st.Methods, st.MethodsErr = resolveMethods(spec, reg)
		if st.ProblemsErr != nil {
			logger.Warn("Problem list rejected.", "student", name, "error", st.ProblemsErr)
		}
		if st.MethodsErr != nil {
			logger.Warn("Method list rejected.", "student", name, "error", st.MethodsErr)
		}
		r.Students = append(r.Students, st)
	}

	return r
}

func buildProblems(ctx context.Context, spec *StudentSpec, rng *rand.Rand) ([]core.Problem, error) {
	if spec.Problems == nil {
		return nil, fmt.Errorf("%w: %q declares no problems", ErrMissing, spec.Name)
	}
	if err := validate.Struct(spec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDefective, err)
	}
	out := make([]core.Problem, 0, len(spec.Problems))
	for i, ps := range spec.Problems {
		if ps == nil {
			return nil, fmt.Errorf("%w: problem %d is empty", ErrDefective, i)
		}
		p, err := BuildProblem(ctx, ps, rng)
		if err != nil {
			return nil, fmt.Errorf("%w: problem %d: %v", ErrDefective, i, err)
		}
		out = append(out, p)
	}

	return out, nil
}

func resolveMethods(spec *StudentSpec, reg *search.Registry) ([]search.Method, error) {
	if spec.Methods == nil {
		return nil, fmt.Errorf("%w: %q declares no methods", ErrMissing, spec.Name)
	}
	ms, err := reg.Resolve(spec.Methods)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDefective, err)
	}
	return ms, nil
}

// BuildProblem constructs the problem declared by ps.
func BuildProblem(ctx context.Context, ps *ProblemSpec, rng *rand.Rand) (core.Problem, error) {
	switch ps.Kind {
	case KindLightSwitch:
		initial := puzzles.Off
		if len(ps.Initial) > 0 {
			initial = ps.Initial[0]
		}
		if initial != puzzles.On && initial != puzzles.Off {
			return nil, fmt.Errorf("light switch state must be %q or %q, got %q", puzzles.On, puzzles.Off, initial)
		}

		return puzzles.NewLightSwitch(initial, ps.Label), nil

	case KindTile:
		return buildTile(ctx, ps, rng)
	}

	return nil, fmt.Errorf("unknown problem kind %q", ps.Kind)
}

func buildTile(ctx context.Context, ps *ProblemSpec, rng *rand.Rand) (core.Problem, error) {
	if len(ps.Goal) == 0 {
		return nil, fmt.Errorf("%q has no goal, and no goal test: %w", ps.Label, puzzles.ErrNoGoal)
	}
	opts := []puzzles.TileOption{puzzles.WithLabel(ps.Label), puzzles.WithHeuristicWeight(ps.HeuristicWeight)}
	if ps.Heuristic != HeuristicNone {
		kind, err := puzzles.ParseHeuristic(ps.Heuristic)
		if err != nil {
			return nil, err
		}
		opts = append(opts, puzzles.WithHeuristic(kind))
	}

	var (
		t   *puzzles.Tile
		err error
	)
	if len(ps.Initial) == 0 {
		t, err = puzzles.NewScrambledTile(ps.Goal, ps.Scramble, rng, opts...)
		if err == nil {
			ctxlog.FromContext(ctx).Info("Scrambled initial state.", "label", ps.Label, "initial", t.Initial())
		}
	} else {
		t, err = puzzles.NewTile(ps.Initial, ps.Goal, opts...)
	}
	if err != nil {
		return nil, err
	}
	if ps.Heuristic == HeuristicNone {
		return core.WithoutHeuristic(t), nil
	}

	return t, nil
}
