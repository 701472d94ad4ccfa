// Package core declares the graph contracts that the statesearch engines
// consume, plus small adapters for building them from plain functions.
//
// Graphs here are implicit: a node is any caller-defined value and edges
// exist only as the output of a neighbour function. Nodes are treated as
// immutable; neighbour functions must build new values for every candidate
// move instead of mutating and resetting a shared "current" node.
//
//   - Graph[N]:         Neighbours(node) []N, consumed by bfs and dfs.
//   - WeightedGraph[N]: NeighboursWithCosts, Heuristic, IsAtGoal, consumed by astar.
//   - GraphFunc, WeightedFuncs: function adapters.
//   - UnitCost, ZeroHeuristic, Unweighted: conversions between the two contracts.
//
// Identity of nodes is not decided here; see package canon.
package core
