package core

// Graph is an implicit, unweighted graph. Neighbours produces the nodes
// reachable from node in one step; each call must return fresh node values
// and must not mutate node. Edges are never materialized.
type Graph[N any] interface {
	Neighbours(node N) []N
}

// Step is one weighted move: the node it leads to and its non-negative cost.
type Step[N any] struct {
	Node N
	Cost float64
}

// WeightedGraph is an implicit graph with per-edge costs, a heuristic and a
// goal test, as consumed by astar.Search.
//
// Heuristic(from, to) estimates the remaining cost from "from" to the goal
// "to". If it never overestimates (admissible), the first goal pulled is a
// cheapest one. If it overestimates, the search still terminates but the
// answer may be suboptimal. A constant 0 turns the search into Dijkstra.
//
// IsAtGoal decouples "goal" from node equality: goal may be a template or a
// dummy, and IsAtGoal decides whether candidate satisfies it.
type WeightedGraph[N any] interface {
	NeighboursWithCosts(node N) []Step[N]
	Heuristic(from, to N) float64
	IsAtGoal(candidate, goal N) bool
}

// GraphFunc adapts a plain neighbour function to Graph.
type GraphFunc[N any] func(node N) []N

// Neighbours calls f(node).
func (f GraphFunc[N]) Neighbours(node N) []N { return f(node) }

// WeightedFuncs adapts three plain functions to WeightedGraph.
// A nil Estimate means a zero heuristic. A nil Goal never matches, so a
// search over it exhausts the reachable space and reports no path.
type WeightedFuncs[N any] struct {
	Steps    func(node N) []Step[N]
	Estimate func(from, to N) float64
	Goal     func(candidate, goal N) bool
}

// NeighboursWithCosts calls w.Steps; a nil Steps yields no neighbours.
func (w WeightedFuncs[N]) NeighboursWithCosts(node N) []Step[N] {
	if w.Steps == nil {
		return nil
	}
	return w.Steps(node)
}

// Heuristic calls w.Estimate, or returns 0 when it is nil.
func (w WeightedFuncs[N]) Heuristic(from, to N) float64 {
	if w.Estimate == nil {
		return 0
	}
	return w.Estimate(from, to)
}

// IsAtGoal calls w.Goal, or returns false when it is nil.
func (w WeightedFuncs[N]) IsAtGoal(candidate, goal N) bool {
	if w.Goal == nil {
		return false
	}
	return w.Goal(candidate, goal)
}
