package submission

import (
	"errors"

	"github.com/katalvlaran/searchgrade/core"
	"github.com/katalvlaran/searchgrade/search"
)

var (
	// ErrUnsupportedFormat is returned for a manifest with an unknown extension.
	ErrUnsupportedFormat = errors.New("submission: unsupported manifest format")

	// ErrInvalidManifest wraps decoding and validation failures of the manifest itself.
	ErrInvalidManifest = errors.New("submission: invalid manifest")

	// ErrMissing marks a student entry or list that is absent.
	ErrMissing = errors.New("submission: missing")

	// ErrDefective marks a student entry or list that cannot be built.
	ErrDefective = errors.New("submission: defective")
)

// Problem kinds.
const (
	KindLightSwitch = "lightswitch"
	KindTile        = "tile"
)

// HeuristicNone hides the heuristic of a tile puzzle.
const HeuristicNone = "none"

// Manifest is the decoded roster file.
type Manifest struct {
	Names    []string       `yaml:"names" hcl:"names" validate:"required,min=1,dive,required"`
	Students []*StudentSpec `yaml:"students" hcl:"student,block" validate:"-"`
}

// StudentSpec is one student's declarations.
type StudentSpec struct {
	Name     string         `yaml:"name" hcl:"name,label" validate:"required"`
	Methods  []string       `yaml:"methods" hcl:"methods,optional" validate:"dive,required"`
	Problems []*ProblemSpec `yaml:"problems" hcl:"problem,block" validate:"dive"`
}

// ProblemSpec declares one problem instance.
type ProblemSpec struct {
	Kind            string   `yaml:"kind" hcl:"kind,label" validate:"required,oneof=lightswitch tile"`
	Label           string   `yaml:"label" hcl:"label,optional"`
	Initial         []string `yaml:"initial" hcl:"initial,optional"`
	Goal            []string `yaml:"goal" hcl:"goal,optional"`
	Scramble        int      `yaml:"scramble" hcl:"scramble,optional" validate:"gte=0"`
	Heuristic       string   `yaml:"heuristic" hcl:"heuristic,optional" validate:"omitempty,oneof=none misplaced manhattan"`
	HeuristicWeight float64  `yaml:"heuristic_weight" hcl:"heuristic_weight,optional" validate:"gte=0"`
}

// Student is a built submission ready for grading.
type Student struct {
	Name string

	// Problems are the declared instances in declaration order.
	Problems []core.Problem
	// ProblemsErr is non-nil when the problem list is missing or defective.
	ProblemsErr error

	// Methods are the resolved search methods in declaration order.
	Methods []search.Method
	// MethodsErr is non-nil when the method list is missing or defective.
	MethodsErr error
}

// Roster is the built manifest, one Student per roster name.
type Roster struct {
	Names    []string
	Students []Student
}
