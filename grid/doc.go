// Package grid treats a 2D grid of cells as an implicit graph for the
// statesearch engines, enabling maze solving, component analysis and
// minimal-cost bridging between regions.
//
// What:
//
//   - Grid wraps a rectangular [][]int of entry costs; 0 is a wall.
//   - Parse reads ASCII mazes: '#' wall, '.' open, '1'..'9' open with that
//     entry cost, 'S' start, 'G' goal.
//   - Grid implements core.Graph[Point] for bfs/dfs and
//     core.WeightedGraph[Point] for astar; Point is comparable, so
//     canon.Identity[Point]() is its key.
//   - Components groups open cells into connected regions (bfs).
//   - Bridge finds the fewest walls to open between two regions (astar).
//
// Heuristic:
//
//   - Conn4: Manhattan distance × cheapest entry cost.
//   - Conn8: Chebyshev distance × cheapest entry cost.
//
// Both never overestimate, so A* over a Grid returns optimal costs.
//
// Complexity:
//
//   - Components: O(W×H×d), Memory: O(W×H)    (d = 4 or 8).
//   - Bridge:     O(W×H×d×log(W×H)), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCell: negative value or unknown maze character.
//   - ErrNoStart, ErrNoGoal: parsed maze lacks 'S' or 'G'.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: Bridge could not connect the components.
package grid
