package astar

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/statesearch/canon"
	"github.com/katalvlaran/statesearch/core"
	"github.com/katalvlaran/statesearch/queue"
)

// Search finds a lowest-cost path from start to a state that satisfies
// g.IsAtGoal(state, goal), identifying states through key.
//
// Priorities are cost-so-far plus g.Heuristic(state, goal). With an
// admissible heuristic the first goal pulled is optimal; with an
// overestimating one the search still terminates but may return a more
// expensive path. A zero heuristic gives Dijkstra's algorithm.
//
// Returns ErrNoPath (wrapped) if every reachable state is exhausted without
// meeting the goal. On an infinite state space with no reachable goal,
// Search does not return; bounding the space is the caller's job.
func Search[N any, K comparable](g core.WeightedGraph[N], start, goal N, key canon.KeyFunc[N, K], opts ...Option[N]) (*Result[N], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if key == nil {
		return nil, ErrKeyFuncNil
	}
	cfg := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &runner[N, K]{
		g:       g,
		key:     key,
		goal:    goal,
		options: cfg,
		visited: make(map[K]record[N, K]),
		pq:      queue.NewMinHeap[frontierItem[N, K]](64),
	}
	if cfg.Settled {
		r.settled = make(map[K]float64)
	}

	r.init(start)

	return r.process()
}

// Dijkstra runs Search with the heuristic of g replaced by zero, which
// always yields a minimum-cost result.
func Dijkstra[N any, K comparable](g core.WeightedGraph[N], start, goal N, key canon.KeyFunc[N, K], opts ...Option[N]) (*Result[N], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	return Search(core.ZeroHeuristic(g), start, goal, key, opts...)
}

// record is the visited entry for one key: best cost so far, the node it
// was reached as, and a back-pointer to the key it was reached from.
type record[N any, K comparable] struct {
	cost      float64
	node      N
	cameFrom  K
	hasParent bool
}

// frontierItem is what the heap stores: the key and the live node.
type frontierItem[N any, K comparable] struct {
	key  K
	node N
}

// runner holds the mutable state for a single search.
type runner[N any, K comparable] struct {
	g        core.WeightedGraph[N]
	key      canon.KeyFunc[N, K]
	goal     N
	options  Options[N]
	visited  map[K]record[N, K]
	settled  map[K]float64 // cost at expansion; nil unless Options.Settled
	pq       *queue.MinHeap[frontierItem[N, K]]
	expanded int
}

// init seeds the frontier with start at priority 0 and cost 0.
func (r *runner[N, K]) init(start N) {
	k := r.key(start)
	r.visited[k] = record[N, K]{cost: 0, node: start}
	r.pq.Push(frontierItem[N, K]{key: k, node: start}, 0)
}

// process pulls the most promising state until one meets the goal or the
// frontier is exhausted.
func (r *runner[N, K]) process() (*Result[N], error) {
	for !r.pq.IsEmpty() {
		item, _ := r.pq.Pull()
		rec := r.visited[item.key]

		// Goal test happens on pull, not on push, so the cost is final
		// whenever the heuristic is admissible.
		if r.g.IsAtGoal(item.node, r.goal) {
			return &Result[N]{
				Cost:     rec.cost,
				State:    item.node,
				Path:     r.path(item.key),
				Expanded: r.expanded,
			}, nil
		}

		// A state expanded before at its current cost would relax nothing new.
		if r.settled != nil {
			if at, done := r.settled[item.key]; done && at <= rec.cost {
				continue
			}
			r.settled[item.key] = rec.cost
		}

		r.expanded++
		if err := r.options.OnExpand(item.node, rec.cost); err != nil {
			return nil, fmt.Errorf("astar: OnExpand error at %v: %w", item.key, err)
		}
		if err := r.relax(item, rec.cost); err != nil {
			return nil, err
		}
	}

	return nil, fmt.Errorf("%w: frontier exhausted after %d expansions", ErrNoPath, r.expanded)
}

// relax pushes every neighbour reached for the first time or more cheaply
// than before, with priority newCost + heuristic.
func (r *runner[N, K]) relax(item frontierItem[N, K], costSoFar float64) error {
	for _, step := range r.g.NeighboursWithCosts(item.node) {
		if step.Cost < 0 {
			return fmt.Errorf("%w: %v → %v cost=%v", ErrNegativeCost, item.key, r.key(step.Node), step.Cost)
		}
		k := r.key(step.Node)
		newCost := costSoFar + step.Cost
		if old, seen := r.visited[k]; seen && newCost >= old.cost {
			continue
		}
		r.visited[k] = record[N, K]{cost: newCost, node: step.Node, cameFrom: item.key, hasParent: true}
		r.pq.Push(frontierItem[N, K]{key: k, node: step.Node}, newCost+r.g.Heuristic(step.Node, r.goal))
	}
	return nil
}

// path follows back-pointers from k to the start and returns the nodes in
// start-to-k order.
func (r *runner[N, K]) path(k K) []N {
	var out []N
	for {
		rec := r.visited[k]
		out = append(out, rec.node)
		if !rec.hasParent {
			break
		}
		k = rec.cameFrom
	}
	slices.Reverse(out)

	return out
}
