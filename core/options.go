package core

import (
	"context"
	"errors"
	"fmt"
)

// Option configures a search run via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation when the
// search starts.
type Option func(*SearchOptions)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("core: invalid option supplied")

// SearchOptions holds parameters and hooks shared by every search.
type SearchOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxExpansions, if > 0, aborts the search with ErrBudgetExceeded once
	// that many nodes have been expanded. 0 means no limit.
	MaxExpansions int

	// OnExpand is called for every node immediately before it is expanded.
	OnExpand func(n *Node)

	expansions int
	err        error
}

// DefaultOptions returns SearchOptions with a background context,
// no expansion limit and a no-op hook.
func DefaultOptions() SearchOptions {
	return SearchOptions{
		Ctx:      context.Background(),
		OnExpand: func(*Node) {},
	}
}

// BuildOptions applies opts over DefaultOptions and returns the result or
// the first option error.
func BuildOptions(opts ...Option) (*SearchOptions, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &o, nil
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *SearchOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions limits the number of node expansions.
//
//	n > 0: abort after n expansions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *SearchOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a hook called before each expansion.
func WithOnExpand(fn func(n *Node)) Option {
	return func(o *SearchOptions) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Expand checks cancellation and the expansion budget, fires OnExpand and
// returns the children of n in p.
func (o *SearchOptions) Expand(p Problem, n *Node) ([]*Node, error) {
	select {
	case <-o.Ctx.Done():
		return nil, o.Ctx.Err()
	default:
	}
	if o.MaxExpansions > 0 && o.expansions >= o.MaxExpansions {
		return nil, fmt.Errorf("%w: %d expansions", ErrBudgetExceeded, o.expansions)
	}
	o.expansions++
	o.OnExpand(n)
	return n.Expand(p), nil
}

// Expansions reports how many nodes were expanded so far.
func (o *SearchOptions) Expansions() int { return o.expansions }
