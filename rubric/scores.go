package rubric

import (
	"fmt"
	"math"
)

// Scores maps rubric labels to awarded points.
type Scores map[string]float64

// NewScores returns a score sheet with every label at zero except heuristic,
// which starts at full credit so that the minimum rule only lowers it when a
// run actually measures the heuristic.
func NewScores() Scores {
	s := make(Scores, len(Entries))
	for _, e := range Entries {
		s[e.Label] = 0
	}
	s[HeuristicLabel] = points[HeuristicLabel]
	return s
}

// Award gives label its full points.
func (s Scores) Award(label string) error {
	p, ok := points[label]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLabel, label)
	}
	s[label] = p
	return nil
}

// Accumulate folds o into s using each label's accumulation rule.
func (s Scores) Accumulate(o Scores) {
	for label, v := range o {
		s[label] = AccumulatorFor(label)(s[label], v)
	}
}

// Max folds o into s taking the maximum of every label.
func (s Scores) Max(o Scores) {
	for label, v := range o {
		s[label] = maximum(s[label], v)
	}
}

// List returns the scores in rubric order; missing labels read as zero.
func (s Scores) List() []float64 {
	out := make([]float64, len(Entries))
	for i, e := range Entries {
		out[i] = s[e.Label]
	}
	return out
}

// Rounded returns List with every value rounded half away from zero.
func (s Scores) Rounded() []int {
	out := make([]int, len(Entries))
	for i, v := range s.List() {
		out[i] = int(math.Round(v))
	}
	return out
}

// Total sums the rounded scores and caps the result at 100.
func (s Scores) Total() int {
	t := 0
	for _, v := range s.Rounded() {
		t += v
	}
	if t > 100 {
		return 100
	}
	return t
}

// PartialCredit interpolates x linearly between lo (0 points) and hi (full
// points for label), clamped to [0, points].
func PartialCredit(label string, lo, hi, x float64) (float64, error) {
	p, ok := points[label]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
	}
	if hi == lo {
		return 0, fmt.Errorf("rubric: empty interval [%g, %g] for %q", lo, hi, label)
	}
	v := (x - lo) * p / (hi - lo)
	return math.Max(0, math.Min(p, v)), nil
}

// CostBucket returns the path-length label for a solution of the given cost,
// or "" for costs below 2.
func CostBucket(cost float64) string {
	switch {
	case cost == 2:
		return TwoActions
	case cost > 2 && !math.IsInf(cost, 1):
		lo, hi := indexOf[Actions4to7], indexOf[Actions64Plus]
		i := lo + int(math.Trunc(math.Log2(cost))) - 2
		return Entries[clamp(i, lo, hi)].Label
	}

	return ""
}

// StatesBucket returns the generated-states label for n states. The index
// is lo + trunc(log4 n) - 1, clamped, so labels sit one bucket below the
// count they name: 16 states earn 4-15nodes. Counts below 16 fall into the
// first bucket.
func StatesBucket(n int) string {
	lo, hi := indexOf[Nodes1to3], indexOf[Nodes65536Plus]
	if n < 1 {
		return Entries[lo].Label
	}
	i := lo + int(math.Trunc(math.Log2(float64(n))/2)) - 1
	return Entries[clamp(i, lo, hi)].Label
}

func clamp(i, lo, hi int) int {
	if i < lo {
		return lo
	}
	if i > hi {
		return hi
	}
	return i
}
