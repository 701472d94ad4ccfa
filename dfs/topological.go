package dfs

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/statesearch/canon"
	"github.com/katalvlaran/statesearch/core"
	"github.com/katalvlaran/statesearch/queue"
)

// topoFrame is a stack entry: a node and whether its children are done.
type topoFrame[N any, K comparable] struct {
	key  K
	node N
	exit bool
}

// TopologicalOrder orders every state reachable from start so that for
// each move u→v, u appears before v. If the reachable graph contains a
// cycle, it returns ErrCycleDetected naming a state on the cycle.
// The reachable space must be finite.
func TopologicalOrder[N any, K comparable](g core.Graph[N], start N, key canon.KeyFunc[N, K]) ([]N, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if key == nil {
		return nil, ErrKeyFuncNil
	}

	state := make(map[K]int) // absent = White
	var order []N
	var stack queue.Stack[topoFrame[N, K]]
	stack.Push(topoFrame[N, K]{key: key(start), node: start})

	for !stack.IsEmpty() {
		f, _ := stack.Pull()
		if f.exit {
			// all descendants finished: record post-order
			state[f.key] = Black
			order = append(order, f.node)
			continue
		}
		switch state[f.key] {
		case Gray:
			// reached again while still on the path: back edge
			return nil, fmt.Errorf("%w at %v", ErrCycleDetected, f.key)
		case Black:
			continue
		}
		state[f.key] = Gray
		stack.Push(topoFrame[N, K]{key: f.key, node: f.node, exit: true})
		for _, nbr := range g.Neighbours(f.node) {
			k := key(nbr)
			switch state[k] {
			case Gray:
				return nil, fmt.Errorf("%w at %v", ErrCycleDetected, k)
			case White:
				stack.Push(topoFrame[N, K]{key: k, node: nbr})
			}
		}
	}

	// Reverse post-order to produce topological order
	slices.Reverse(order)

	return order, nil
}
