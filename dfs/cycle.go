package dfs

import (
	"slices"

	"github.com/katalvlaran/statesearch/canon"
	"github.com/katalvlaran/statesearch/core"
	"github.com/katalvlaran/statesearch/queue"
)

// FindCycle searches the states reachable from start for a directed cycle
// using three-color marking. On the first back edge u→v it returns the
// states of the current DFS path from v to u, in move order; the closing
// move u→v is implied. A self-loop yields a single-state cycle.
// Returns (nil, false, nil) when the reachable graph is acyclic.
//
// Complexity:
//
//   - Time:   O(V + E) over the reachable graph.
//   - Memory: O(V) for the state map, stack and current path.
func FindCycle[N any, K comparable](g core.Graph[N], start N, key canon.KeyFunc[N, K]) ([]N, bool, error) {
	if g == nil {
		return nil, false, ErrGraphNil
	}
	if key == nil {
		return nil, false, ErrKeyFuncNil
	}

	state := make(map[K]int) // absent = White
	var pathKeys []K         // current DFS path (Gray states), root first
	var pathNodes []N
	var stack queue.Stack[topoFrame[N, K]]
	stack.Push(topoFrame[N, K]{key: key(start), node: start})

	for !stack.IsEmpty() {
		f, _ := stack.Pull()
		if f.exit {
			state[f.key] = Black
			pathKeys = pathKeys[:len(pathKeys)-1]
			pathNodes = pathNodes[:len(pathNodes)-1]
			continue
		}
		if state[f.key] != White {
			continue
		}
		state[f.key] = Gray
		pathKeys = append(pathKeys, f.key)
		pathNodes = append(pathNodes, f.node)
		stack.Push(topoFrame[N, K]{key: f.key, node: f.node, exit: true})

		for _, nbr := range g.Neighbours(f.node) {
			k := key(nbr)
			switch state[k] {
			case Gray:
				// back edge: the cycle is the path suffix starting at k
				i := slices.Index(pathKeys, k)
				return slices.Clone(pathNodes[i:]), true, nil
			case White:
				stack.Push(topoFrame[N, K]{key: k, node: nbr})
			}
		}
	}

	return nil, false, nil
}
