// Package dfs implements iterative depth-first enumeration over implicit
// graphs, plus topological ordering of the reachable part of a graph.
//
// Key features:
//   - DFS(g, start, key, opts...): visit every state reachable from start
//     once per canonical key, last-discovered first.
//   - TopologicalOrder(g, start, key): order the reachable states so that
//     every move goes forwards, or report ErrCycleDetected.
//   - Hooks: OnVisit (pre-order) with error abort.
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count.
//
// Both walks use an explicit queue.Stack instead of recursion, so deep
// state spaces do not grow the goroutine stack.
//
// Complexity:
//
//   - Time:   O(V + E) key computations (V = states, E = generated moves).
//   - Memory: O(V + E) for the stack and metadata maps.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/statesearch/canon"
	"github.com/katalvlaran/statesearch/core"
	"github.com/katalvlaran/statesearch/queue"
)

// frame is one pending stack entry.
type frame[N any, K comparable] struct {
	key       K
	node      N
	depth     int
	parent    K
	hasParent bool
}

// dfsWalker encapsulates state during DFS.
type dfsWalker[N any, K comparable] struct {
	graph core.Graph[N]
	key   canon.KeyFunc[N, K]
	opts  Options[N]
	stack queue.Stack[frame[N, K]]
	res   *Result[N, K]
}

// DFS performs depth-first search on g from start. A state is marked when
// it is popped, so the walk follows the most recently generated move first.
// Returns Result or an error from a hook.
func DFS[N any, K comparable](g core.Graph[N], start N, key canon.KeyFunc[N, K], opts ...Option[N]) (*Result[N, K], error) {
	// 1. Validate input
	if g == nil {
		return nil, ErrGraphNil
	}
	if key == nil {
		return nil, ErrKeyFuncNil
	}

	// 2. Apply options
	dopts := DefaultOptions[N]()
	for _, fn := range opts {
		fn(&dopts)
	}

	res := &Result[N, K]{
		Nodes:  make(map[K]N),
		Depth:  make(map[K]int),
		Parent: make(map[K]K),
	}
	w := &dfsWalker[N, K]{graph: g, key: key, opts: dopts, res: res}

	// 3. Traverse
	w.stack.Push(frame[N, K]{key: key(start), node: start})
	if err := w.traverse(); err != nil {
		return res, err
	}

	return res, nil
}

// traverse pops frames until the stack is empty, expanding each unseen key.
func (w *dfsWalker[N, K]) traverse() error {
	for !w.stack.IsEmpty() {
		f, _ := w.stack.Pull()
		if _, seen := w.res.Nodes[f.key]; seen {
			continue
		}

		// Mark visited and record metadata
		w.res.Order = append(w.res.Order, f.key)
		w.res.Nodes[f.key] = f.node
		w.res.Depth[f.key] = f.depth
		if f.hasParent {
			w.res.Parent[f.key] = f.parent
		}

		// Pre-order hook
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(f.node, f.depth); err != nil {
				return fmt.Errorf("dfs: OnVisit error at %v: %w", f.key, err)
			}
		}

		// Depth limit: do not expand past it
		if w.opts.MaxDepth >= 0 && f.depth >= w.opts.MaxDepth {
			continue
		}

		// Push in reverse so the first generated neighbour is expanded first
		nbrs := w.graph.Neighbours(f.node)
		for i := len(nbrs) - 1; i >= 0; i-- {
			nbr := nbrs[i]
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nbr) {
				w.res.SkippedNeighbors++
				continue
			}
			k := w.key(nbr)
			if _, seen := w.res.Nodes[k]; seen {
				continue
			}
			w.stack.Push(frame[N, K]{key: k, node: nbr, depth: f.depth + 1, parent: f.key, hasParent: true})
		}
	}
	return nil
}
