// Package bfs provides tunable options, error definitions and the result
// type for breadth-first enumeration of an implicit state space.
package bfs

import (
	"errors"
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrKeyFuncNil is returned if no canonical key function is supplied.
	ErrKeyFuncNil = errors.New("bfs: key function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for a node that was never reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option[N any] func(*Options[N])

// Options holds parameters and callbacks to customize BFS execution.
type Options[N any] struct {
	// OnEnqueue is called when a node is first reached, before it is queued.
	OnEnqueue func(node N, depth int)

	// OnVisit is called when a node is dequeued for expansion. If it
	// returns an error, BFS aborts and propagates that error.
	OnVisit func(node N, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip moves by returning false.
	FilterNeighbor func(curr, neighbour N) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no depth limit, no filtering and
// no-op hooks.
func DefaultOptions[N any]() Options[N] {
	return Options[N]{
		OnEnqueue:      func(N, int) {},
		OnVisit:        func(N, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ N) bool { return true },
	}
}

// WithOnEnqueue registers a callback to run when a node is first reached.
func WithOnEnqueue[N any](fn func(node N, depth int)) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[N any](fn func(node N, depth int) error) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits exploration to nodes at most d steps from the start.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[N any](d int) Option[N] {
	return func(o *Options[N]) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips moves when fn returns false.
func WithFilterNeighbor[N any](fn func(curr, neighbour N) bool) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS enumeration, indexed by canonical key:
//   - Order:  keys in the order they were first reached (non-decreasing depth).
//   - Nodes:  the live node recorded for each key.
//   - Depth:  fewest steps from the start.
//   - Parent: predecessor key in the BFS tree; the start has no entry.
type Result[N any, K comparable] struct {
	Order  []K
	Nodes  map[K]N
	Depth  map[K]int
	Parent map[K]K

	key func(N) K
}

// Len returns how many distinct states were reached, the start included.
func (r *Result[N, K]) Len() int { return len(r.Order) }

// Has reports whether a state equal to node was reached.
func (r *Result[N, K]) Has(node N) bool {
	_, ok := r.Nodes[r.key(node)]
	return ok
}

// Reached returns every reached node once, in discovery order.
func (r *Result[N, K]) Reached() []N {
	return lo.Map(r.Order, func(k K, _ int) N { return r.Nodes[k] })
}

// WithinDepth returns the reached nodes at most d steps from the start.
func (r *Result[N, K]) WithinDepth(d int) []N {
	keys := lo.Filter(r.Order, func(k K, _ int) bool { return r.Depth[k] <= d })
	return lo.Map(keys, func(k K, _ int) N { return r.Nodes[k] })
}

// Farthest returns a node whose shortest distance from the start is
// maximal, along with that distance. Ties resolve to the last discovered.
func (r *Result[N, K]) Farthest() (N, int) {
	last := r.Order[len(r.Order)-1]
	return r.Nodes[last], r.Depth[last]
}

// PathTo reconstructs a fewest-steps path from the start to dest.
// Returns ErrNoPath if dest was not reached.
func (r *Result[N, K]) PathTo(dest N) ([]N, error) {
	cur := r.key(dest)
	if _, ok := r.Depth[cur]; !ok {
		return nil, fmt.Errorf("%w to %v", ErrNoPath, cur)
	}
	// build reversed path
	path := []N{}
	for {
		path = append(path, r.Nodes[cur])
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}

	slices.Reverse(path)

	return path, nil
}
