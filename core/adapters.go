package core

// unitCost lifts an unweighted Graph to a WeightedGraph with cost 1 per edge.
type unitCost[N any] struct {
	g    Graph[N]
	goal func(candidate, goal N) bool
}

// UnitCost returns g as a WeightedGraph where every edge costs 1, the
// heuristic is 0 and goal decides IsAtGoal. Searching it yields fewest-hop
// distances.
func UnitCost[N any](g Graph[N], goal func(candidate, goal N) bool) WeightedGraph[N] {
	return unitCost[N]{g: g, goal: goal}
}

func (u unitCost[N]) NeighboursWithCosts(node N) []Step[N] {
	nbrs := u.g.Neighbours(node)
	steps := make([]Step[N], len(nbrs))
	for i, n := range nbrs {
		steps[i] = Step[N]{Node: n, Cost: 1}
	}
	return steps
}

func (u unitCost[N]) Heuristic(_, _ N) float64 { return 0 }

func (u unitCost[N]) IsAtGoal(candidate, goal N) bool {
	if u.goal == nil {
		return false
	}
	return u.goal(candidate, goal)
}

// zeroHeuristic masks the heuristic of a WeightedGraph.
type zeroHeuristic[N any] struct {
	WeightedGraph[N]
}

// ZeroHeuristic wraps g so that Heuristic always returns 0, which makes an
// A* search over it behave exactly like Dijkstra's algorithm.
func ZeroHeuristic[N any](g WeightedGraph[N]) WeightedGraph[N] {
	return zeroHeuristic[N]{WeightedGraph: g}
}

func (zeroHeuristic[N]) Heuristic(_, _ N) float64 { return 0 }

// Unweighted exposes a WeightedGraph as a Graph by dropping edge costs, so
// the same adapter can feed both bfs.BFS and astar.Search.
func Unweighted[N any](g WeightedGraph[N]) Graph[N] {
	return GraphFunc[N](func(node N) []N {
		steps := g.NeighboursWithCosts(node)
		out := make([]N, len(steps))
		for i, s := range steps {
			out[i] = s.Node
		}
		return out
	})
}
