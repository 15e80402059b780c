package rubric

import "errors"

// ErrUnknownLabel is returned for a label that is not in the rubric.
var ErrUnknownLabel = errors.New("rubric: unknown label")

// Rubric labels.
const (
	Compiles       = "compiles"
	AllMethods     = "allMethods"
	TwoActions     = "2actions"
	HeuristicLabel = "heuristic"
	SearchComplete = "searchComplete"
	BeatsUCS       = "search<UCS"
	BeatsAStar     = "search<A*"
	Actions4to7    = "4-7actions"
	Actions64Plus  = "64+actions"
	Nodes1to3      = "1-3nodes"
	Nodes65536Plus = "65536+nodes"
)

// Entry is one rubric criterion.
type Entry struct {
	Label  string
	Points float64
}

// Entries is the rubric in report order.
var Entries = []Entry{
	{Compiles, 55},
	{AllMethods, 10},
	{TwoActions, 10},
	{HeuristicLabel, 10},
	{SearchComplete, 5},
	{BeatsUCS, 5},
	{BeatsAStar, 5},
	{Actions4to7, 2},
	{"8-15actions", 2},
	{"16-31actions", 2},
	{"32-63actions", 2},
	{Actions64Plus, 2},
	{Nodes1to3, 2},
	{"4-15nodes", 2},
	{"16-63nodes", 2},
	{"64-255nodes", 2},
	{"256-1023nodes", 2},
	{"1024-4095nodes", 2},
	{"4096-16383nodes", 2},
	{"16384-65535nodes", 2},
	{Nodes65536Plus, 2},
}

// Accumulator combines two scores for the same label.
type Accumulator func(a, b float64) float64

func sum(a, b float64) float64 { return a + b }

func minimum(a, b float64) float64 {
	if b < a {
		return b
	}
	return a
}

func maximum(a, b float64) float64 {
	if b > a {
		return b
	}
	return a
}

var (
	points  = make(map[string]float64, len(Entries))
	indexOf = make(map[string]int, len(Entries))
)

func init() {
	for i, e := range Entries {
		points[e.Label] = e.Points
		indexOf[e.Label] = i
	}
}

// Labels returns the rubric labels in order.
func Labels() []string {
	out := make([]string, len(Entries))
	for i, e := range Entries {
		out[i] = e.Label
	}
	return out
}

// Points returns the maximum points for label.
func Points(label string) (float64, bool) {
	p, ok := points[label]
	return p, ok
}

// AccumulatorFor returns the accumulation rule of label.
func AccumulatorFor(label string) Accumulator {
	switch label {
	case AllMethods:
		return sum
	case HeuristicLabel:
		return minimum
	default:
		return maximum
	}
}
