// Package dfs defines types and options for depth-first enumeration of
// implicit state spaces, including depth limiting, neighbour filtering and
// pre-order hooks.
package dfs

import (
	"errors"

	"github.com/samber/lo"
)

// VertexState represents the DFS visitation state of a node.
const (
	White = iota // White: the node has not been visited yet.
	Gray         // Gray: the node is on the current DFS path.
	Black        // Black: the node and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrKeyFuncNil is returned when no canonical key function is supplied.
	ErrKeyFuncNil = errors.New("dfs: key function is nil")

	// ErrCycleDetected indicates that a cycle was encountered during
	// TopologicalOrder.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures optional behavior of DFS traversal.
type Option[N any] func(*Options[N])

// Options holds configurable parameters for DFS traversal.
type Options[N any] struct {
	// OnVisit, if non-nil, is invoked when a node is first expanded
	// (pre-order). Returning an error aborts traversal with that error.
	OnVisit func(node N, depth int) error

	// MaxDepth, if non-negative, limits the search to the given depth.
	// A depth of 0 visits only the start node. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each generated neighbour.
	// Return true to traverse into it, false to skip it.
	FilterNeighbor func(node N) bool
}

// DefaultOptions returns Options with no hook, no depth limit and no filter.
func DefaultOptions[N any]() Options[N] {
	return Options[N]{
		OnVisit:        nil,
		MaxDepth:       -1,
		FilterNeighbor: nil,
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit[N any](fn func(node N, depth int) error) Option[N] {
	return func(o *Options[N]) {
		o.OnVisit = fn
	}
}

// WithMaxDepth limits traversal depth to limit.
// A limit of 0 means only the start node is visited.
func WithMaxDepth[N any](limit int) Option[N] {
	return func(o *Options[N]) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor skips generated neighbours for which fn returns false.
// Skips are counted in Result.SkippedNeighbors.
func WithFilterNeighbor[N any](fn func(node N) bool) Option[N] {
	return func(o *Options[N]) {
		o.FilterNeighbor = fn
	}
}

// Result captures the outcome of a depth-first traversal.
type Result[N any, K comparable] struct {
	// Order records keys in pre-order (the sequence they were expanded).
	Order []K

	// Nodes maps each key to the node expanded for it.
	Nodes map[K]N

	// Depth maps each key to its depth in the DFS tree. This is the
	// length of the path DFS took, not the shortest distance.
	Depth map[K]int

	// Parent maps each key to the key it was discovered from.
	// The start has no entry.
	Parent map[K]K

	// SkippedNeighbors reports how many neighbours FilterNeighbor rejected.
	SkippedNeighbors int
}

// Len returns the number of distinct states visited.
func (r *Result[N, K]) Len() int { return len(r.Order) }

// Reached returns every visited node once, in pre-order.
func (r *Result[N, K]) Reached() []N {
	return lo.Map(r.Order, func(k K, _ int) N { return r.Nodes[k] })
}
