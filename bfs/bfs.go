package bfs

import (
	"fmt"

	"github.com/katalvlaran/statesearch/canon"
	"github.com/katalvlaran/statesearch/core"
	"github.com/katalvlaran/statesearch/queue"
)

// queueItem pairs a node with its key and BFS depth.
type queueItem[N any, K comparable] struct {
	key   K
	node  N
	depth int
}

// walker encapsulates mutable BFS state.
type walker[N any, K comparable] struct {
	graph core.Graph[N]
	key   canon.KeyFunc[N, K]
	opts  Options[N]
	queue queue.FIFO[queueItem[N, K]]
	res   *Result[N, K]
}

// BFS runs breadth-first search on g starting from start, identifying
// states through key and applying any number of functional Options.
//
// The start node is always part of the result, even if it is what the
// caller is looking for; callers post-filter the result for goal states,
// depths or counts. Termination is guaranteed only when the reachable state
// space is finite (or bounded with WithMaxDepth).
//
// Returns ErrGraphNil, ErrKeyFuncNil or ErrOptionViolation for invalid
// input, or a wrapped error returned by an OnVisit hook.
func BFS[N any, K comparable](g core.Graph[N], start N, key canon.KeyFunc[N, K], opts ...Option[N]) (*Result[N, K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if key == nil {
		return nil, ErrKeyFuncNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[N, K]{
		graph: g,
		key:   key,
		opts:  o,
		res: &Result[N, K]{
			Nodes:  make(map[K]N),
			Depth:  make(map[K]int),
			Parent: make(map[K]K),
			key:    key,
		},
	}

	// Seed queue with start node (no parent)
	w.enqueue(key(start), start, 0, nil)

	return w.res, w.loop()
}

// enqueue records k as reached at depth d, calls OnEnqueue, links it to
// its parent, and adds it to the queue.
func (w *walker[N, K]) enqueue(k K, node N, d int, parent *K) {
	w.res.Order = append(w.res.Order, k)
	w.res.Nodes[k] = node
	w.res.Depth[k] = d
	if parent != nil {
		w.res.Parent[k] = *parent
	}
	w.opts.OnEnqueue(node, d)
	w.queue.Push(queueItem[N, K]{key: k, node: node, depth: d})
}

// loop processes the queue until it is empty or a hook fails.
func (w *walker[N, K]) loop() error {
	for !w.queue.IsEmpty() {
		item, _ := w.queue.Pull()
		if err := w.opts.OnVisit(item.node, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.key, err)
		}
		w.enqueueNeighbours(item)
	}
	return nil
}

// enqueueNeighbours applies filtering and MaxDepth, and enqueues each
// neighbour whose key has not been reached yet.
func (w *walker[N, K]) enqueueNeighbours(item queueItem[N, K]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.Neighbours(item.node) {
		if !w.opts.FilterNeighbor(item.node, nbr) {
			continue
		}
		k := w.key(nbr)
		// first time seen?
		if _, seen := w.res.Depth[k]; !seen {
			w.enqueue(k, nbr, nextDepth, &item.key)
		}
	}
}
