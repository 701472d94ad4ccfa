// Package statesearch is a toolkit for searching implicit, possibly infinite
// state spaces: puzzles, mazes, scheduling problems and anything else whose
// graph is generated on demand by a neighbour function.
//
// What is in the box?
//
//	A small, synchronous, in-memory library built from interchangeable parts:
//		• Graph contracts: unweighted Graph and WeightedGraph over any node type
//		• Canonical keys: deduplicate states by value, not by identity
//		• Traversals: BFS (with depths and parents), DFS, topological order
//		• Shortest paths: A* with a pluggable heuristic, Dijkstra
//		• Containers: binary min-heap, FIFO, stack
//		• Grids: ASCII mazes as ready-made graphs
//
// Everything is organized under these subpackages:
//
//	core/   Graph, WeightedGraph, Step and function adapters
//	canon/  KeyFunc, Builder, Digest and the JSON codec
//	queue/  MinHeap, FIFO, Stack
//	bfs/    breadth-first enumeration
//	dfs/    depth-first enumeration, TopologicalOrder, FindCycle
//	astar/  Search and Dijkstra
//	grid/   2D grid adapter, components and bridging
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    D───C
//
//	A 4-cycle: from A, BFS reaches all four states and A* finds C at cost 2.
//
// The cmd/gridsearch command drives bfs and astar over maze files.
//
//	go get github.com/katalvlaran/statesearch
package statesearch
