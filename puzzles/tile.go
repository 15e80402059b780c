package puzzles

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/searchgrade/core"
	"github.com/katalvlaran/searchgrade/grid"
)

// Blank marks the empty cell of a tile board.
const Blank = '_'

// DefaultScramble is the number of random moves used when no initial board
// is given.
const DefaultScramble = 10000

var (
	// ErrNoGoal is returned when a tile puzzle is built without a goal board.
	ErrNoGoal = errors.New("puzzles: a goal must be specified")

	// ErrBlankCount is returned when a board does not hold exactly one blank.
	ErrBlankCount = errors.New("puzzles: board must contain exactly one blank")

	// ErrTileMismatch is returned when initial and goal hold different tiles.
	ErrTileMismatch = errors.New("puzzles: initial and goal boards hold different tiles")

	// ErrUnknownHeuristic is returned for an unsupported heuristic name.
	ErrUnknownHeuristic = errors.New("puzzles: unknown heuristic")
)

// HeuristicKind selects the tile heuristic.
type HeuristicKind string

// Supported heuristics.
const (
	Misplaced HeuristicKind = "misplaced"
	Manhattan HeuristicKind = "manhattan"
)

// ParseHeuristic maps a name to a HeuristicKind; "" selects Misplaced.
func ParseHeuristic(name string) (HeuristicKind, error) {
	switch HeuristicKind(name) {
	case "", Misplaced:
		return Misplaced, nil
	case Manhattan:
		return Manhattan, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
}

// tileMoves maps an action to the (dx, dy) offset, from the blank, of the
// tile that slides into it. "right" moves the tile left of the blank to the
// right.
var tileMoves = map[string][2]int{
	"right": {-1, 0},
	"left":  {1, 0},
	"down":  {0, -1},
	"up":    {0, 1},
}

// tileActions is the order in which Actions lists legal moves.
var tileActions = [4]string{"down", "right", "up", "left"}

// Tile is the sliding-tile puzzle on a rectangular board. States are
// grid.Grid values.
type Tile struct {
	label     string
	initial   grid.Grid
	goal      grid.Grid
	kind      HeuristicKind
	weight    float64
	goalCells map[rune][2]int
}

// TileOption configures a Tile.
type TileOption func(*Tile)

// WithLabel sets the display label.
func WithLabel(label string) TileOption {
	return func(t *Tile) { t.label = label }
}

// WithHeuristic selects the heuristic kind.
func WithHeuristic(kind HeuristicKind) TileOption {
	return func(t *Tile) { t.kind = kind }
}

// WithHeuristicWeight scales the heuristic. Weights above 1 may make it
// inadmissible; values <= 0 are ignored.
func WithHeuristicWeight(w float64) TileOption {
	return func(t *Tile) {
		if w > 0 {
			t.weight = w
		}
	}
}

// NewTile builds a puzzle from initial and goal rows. Both boards must be
// rectangular, hold exactly one blank, share dimensions and hold the same
// tiles.
func NewTile(initial, goal []string, opts ...TileOption) (*Tile, error) {
	t, err := newTile(goal, opts...)
	if err != nil {
		return nil, err
	}
	start, err := checkBoard(initial)
	if err != nil {
		return nil, fmt.Errorf("initial board: %w", err)
	}
	if !start.SameShape(t.goal) {
		return nil, fmt.Errorf("initial board: %w: %dx%d vs goal %dx%d",
			grid.ErrShapeMismatch, start.Width, start.Height, t.goal.Width, t.goal.Height)
	}
	if !sameTiles(start, t.goal) {
		return nil, fmt.Errorf("%w: %s vs %s", ErrTileMismatch, start, t.goal)
	}
	t.initial = start
	return t, nil
}

// sameTiles reports whether a and b hold the same multiset of cells.
func sameTiles(a, b grid.Grid) bool {
	count := make(map[rune]int)
	for _, row := range a.Rows() {
		for _, r := range row {
			count[r]++
		}
	}
	for _, row := range b.Rows() {
		for _, r := range row {
			count[r]--
		}
	}
	for _, n := range count {
		if n != 0 {
			return false
		}
	}

	return true
}

// NewScrambledTile builds a puzzle whose initial board is reached from goal
// by moves random actions drawn from rng.
func NewScrambledTile(goal []string, moves int, rng *rand.Rand, opts ...TileOption) (*Tile, error) {
	t, err := newTile(goal, opts...)
	if err != nil {
		return nil, err
	}
	if moves <= 0 {
		moves = DefaultScramble
	}
	t.initial = t.scramble(moves, rng)
	return t, nil
}

func newTile(goal []string, opts ...TileOption) (*Tile, error) {
	if len(goal) == 0 {
		return nil, ErrNoGoal
	}
	g, err := checkBoard(goal)
	if err != nil {
		return nil, fmt.Errorf("goal board: %w", err)
	}
	t := &Tile{goal: g, kind: Misplaced, weight: 1}
	for _, opt := range opts {
		opt(t)
	}
	t.goalCells = make(map[rune][2]int, g.Width*g.Height)
	for y, row := range g.Rows() {
		x := 0
		for _, r := range row {
			if _, dup := t.goalCells[r]; !dup {
				t.goalCells[r] = [2]int{x, y}
			}
			x++
		}
	}

	return t, nil
}

// checkBoard validates shape and blank count.
func checkBoard(rows []string) (grid.Grid, error) {
	g, err := grid.New(rows)
	if err != nil {
		return grid.Grid{}, err
	}
	if n := g.Count(Blank); n != 1 {
		return grid.Grid{}, fmt.Errorf("%w: found %d in %s", ErrBlankCount, n, g)
	}
	return g, nil
}

// Initial implements core.Problem.
func (t *Tile) Initial() core.State { return t.initial }

// Goal returns the goal board.
func (t *Tile) Goal() grid.Grid { return t.goal }

// Actions implements core.Problem, in the order down, right, up, left.
func (t *Tile) Actions(s core.State) []string {
	board := s.(grid.Grid)
	x, y := t.findBlank(board)
	// offsets, from the blank, of the tiles that can slide into it
	movable := make(map[[2]int]bool, 4)
	for _, n := range board.Neighbors(x, y) {
		movable[[2]int{n[0] - x, n[1] - y}] = true
	}
	actions := make([]string, 0, len(movable))
	for _, a := range tileActions {
		if movable[tileMoves[a]] {
			actions = append(actions, a)
		}
	}
	return actions
}

// Result implements core.Problem. It panics on an action that would move a
// tile from outside the board.
func (t *Tile) Result(s core.State, action string) core.State {
	board := s.(grid.Grid)
	bx, by := t.findBlank(board)
	d, ok := tileMoves[action]
	if !ok {
		panic(fmt.Errorf("puzzles: unknown tile action %q", action))
	}
	next, err := board.Swap(bx, by, bx+d[0], by+d[1])
	if err != nil {
		panic(fmt.Errorf("puzzles: action %q on %s: %w", action, board, err))
	}

	return next
}

// GoalTest implements core.Problem.
func (t *Tile) GoalTest(s core.State) bool { return s.(grid.Grid) == t.goal }

// Label implements core.Labeler.
func (t *Tile) Label() string { return t.label }

// H implements core.Heuristic: the selected estimate times the weight.
func (t *Tile) H(n *core.Node) float64 {
	board := n.State.(grid.Grid)
	var h float64
	switch t.kind {
	case Manhattan:
		h = t.manhattan(board)
	default:
		h = t.misplaced(board)
	}
	return h * t.weight
}

// misplaced counts non-blank cells that differ from the goal.
func (t *Tile) misplaced(board grid.Grid) float64 {
	count := 0
	for y := 0; y < board.Height; y++ {
		for x := 0; x < board.Width; x++ {
			c := board.At(x, y)
			if c == Blank {
				continue
			}
			if c != t.goal.At(x, y) {
				count++
			}
		}
	}

	return float64(count)
}

// manhattan sums the grid distance of every non-blank tile to its goal cell.
func (t *Tile) manhattan(board grid.Grid) float64 {
	sum := 0.0
	for y := 0; y < board.Height; y++ {
		for x := 0; x < board.Width; x++ {
			c := board.At(x, y)
			if c == Blank {
				continue
			}
			if at, ok := t.goalCells[c]; ok {
				sum += math.Abs(float64(at[0]-x)) + math.Abs(float64(at[1]-y))
			}
		}
	}

	return sum
}

// findBlank locates the blank; a board without one is a programming error.
func (t *Tile) findBlank(board grid.Grid) (x, y int) {
	x, y, ok := board.Find(Blank)
	if !ok {
		panic(fmt.Errorf("puzzles: %c not found in state: %s", Blank, board))
	}
	return x, y
}

// scramble walks howMany random moves away from the goal.
func (t *Tile) scramble(howMany int, rng *rand.Rand) grid.Grid {
	state := t.goal
	for i := 0; i < howMany; i++ {
		actions := t.Actions(state)
		state = t.Result(state, actions[rng.Intn(len(actions))]).(grid.Grid)
	}
	return state
}
