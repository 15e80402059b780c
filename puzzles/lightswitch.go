package puzzles

import "github.com/katalvlaran/searchgrade/core"

// Light switch states and actions.
const (
	On   = "on"
	Off  = "off"
	Up   = "up"
	Down = "down"
)

// LightSwitch is a trivial problem: flip the switch up to turn the light on.
type LightSwitch struct {
	initial string
	label   string
}

// NewLightSwitch returns a switch starting in initial.
func NewLightSwitch(initial, label string) *LightSwitch {
	return &LightSwitch{initial: initial, label: label}
}

// Initial implements core.Problem.
func (l *LightSwitch) Initial() core.State { return l.initial }

// Actions implements core.Problem. Both actions are always available.
func (l *LightSwitch) Actions(core.State) []string { return []string{Up, Down} }

// Result implements core.Problem.
func (l *LightSwitch) Result(_ core.State, action string) core.State {
	if action == Up {
		return On
	}
	return Off
}

// GoalTest implements core.Problem.
func (l *LightSwitch) GoalTest(s core.State) bool { return s == On }

// Label implements core.Labeler.
func (l *LightSwitch) Label() string { return l.label }
