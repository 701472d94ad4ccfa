// Package dfs provides depth-first enumeration and topological ordering of
// implicit state spaces.
//
// DFS reaches exactly the same states as bfs.BFS, in last-in first-out
// order and with far less bookkeeping, which suits callers that only need
// the reachable set or a pre-order walk. Depths are tree depths along the
// path DFS happened to take, not shortest distances; use package bfs when
// step counts matter.
//
// TopologicalOrder reports the reachable states of an acyclic move graph in
// dependency order, or ErrCycleDetected. FindCycle returns the states of
// one directed cycle when there is one.
//
// Options:
//
//   - WithOnVisit(fn)        pre-order hook; error aborts traversal.
//   - WithMaxDepth(limit)    do not expand beyond the given tree depth (>=0).
//   - WithFilterNeighbor(fn) filter generated neighbours; return false to skip.
//
// Errors:
//
//   - ErrGraphNil, ErrKeyFuncNil for invalid input.
//   - ErrCycleDetected from TopologicalOrder.
//   - any error returned by OnVisit, wrapped.
package dfs
