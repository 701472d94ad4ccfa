// Package astar implements A* search (and, with a zero heuristic, Dijkstra's
// algorithm) over implicit weighted graphs with a pluggable goal test.
//
// Overview:
//
//   - The caller supplies a core.WeightedGraph: neighbours with non-negative
//     step costs, a heuristic estimate of remaining cost, and IsAtGoal.
//   - States are deduplicated by canonical key (canon.KeyFunc).
//   - The frontier is a queue.MinHeap ordered by cost-so-far + heuristic.
//   - The goal test runs when a state is pulled, never when it is pushed.
//
// Heuristic contract:
//
//   - Admissible (never overestimates): the returned cost is minimal.
//   - Constant 0: Dijkstra; always minimal (see Dijkstra and core.ZeroHeuristic).
//   - Overestimating: the search terminates but may return a costlier path.
//     Some callers accept that deliberately for speed.
//
// Relaxation:
//
//	A state is (re)pushed whenever it is reached for the first time or more
//	cheaply than its recorded cost ("lazy decrease-key"). Stale entries left
//	in the heap are harmless: when pulled they relax nothing. WithSettled
//	skips them explicitly.
//
// Termination:
//
//	Search returns when a goal is pulled or the heap empties (ErrNoPath). On
//	an infinite space with no reachable goal it never returns; there is no
//	cancellation or timeout, and exhaustive determinism is preserved.
//
// Complexity (V = distinct states reached, E = steps generated):
//
//   - Time:  O(E log E) heap operations plus key computations.
//   - Space: O(V + E) for the visited map and the heap.
//
// Errors:
//
//   - ErrGraphNil, ErrKeyFuncNil for invalid input.
//   - ErrNegativeCost if a step reports a negative cost.
//   - ErrNoPath if the reachable space is exhausted.
//   - Wrapped OnExpand hook errors.
package astar
