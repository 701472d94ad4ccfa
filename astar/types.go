// Package astar defines options, errors and the result type for weighted
// best-first search over implicit graphs.
package astar

import "errors"

// Sentinel errors for weighted search.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("astar: graph is nil")

	// ErrKeyFuncNil is returned if no canonical key function is supplied.
	ErrKeyFuncNil = errors.New("astar: key function is nil")

	// ErrNoPath is returned when the frontier is exhausted before any
	// pulled state satisfies the goal test.
	ErrNoPath = errors.New("astar: no path to the goal was found")

	// ErrNegativeCost is returned when a neighbour function yields a step
	// with negative cost.
	ErrNegativeCost = errors.New("astar: negative step cost")
)

// Option configures Search via functional arguments.
type Option[N any] func(*Options[N])

// Options holds the tunable behavior of a search.
type Options[N any] struct {
	// Settled skips a pulled state that was already expanded at its
	// current recorded cost. Such an expansion could not improve anything,
	// so results are unchanged; only redundant work is avoided.
	Settled bool

	// OnExpand is called for each state before its neighbours are relaxed,
	// with its recorded cost. Returning an error aborts the search.
	OnExpand func(node N, cost float64) error
}

// DefaultOptions returns Options with no settled set and a no-op hook.
func DefaultOptions[N any]() Options[N] {
	return Options[N]{
		Settled:  false,
		OnExpand: func(N, float64) error { return nil },
	}
}

// WithSettled enables skipping of already-expanded states.
func WithSettled[N any]() Option[N] {
	return func(o *Options[N]) { o.Settled = true }
}

// WithOnExpand registers a hook run on every expansion.
func WithOnExpand[N any](fn func(node N, cost float64) error) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Result is the outcome of a successful search.
type Result[N any] struct {
	// Cost is the recorded cost of the goal state when it was pulled.
	Cost float64
	// State is the node that satisfied the goal test.
	State N
	// Path runs from the start to State along recorded back-pointers.
	Path []N
	// Expanded counts states whose neighbours were relaxed.
	Expanded int
}
