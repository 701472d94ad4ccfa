package dfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statesearch/bfs"
	"github.com/katalvlaran/statesearch/canon"
	"github.com/katalvlaran/statesearch/core"
	"github.com/katalvlaran/statesearch/dfs"
)

type adj map[string][]string

func (a adj) Neighbours(n string) []string { return a[n] }

var ident = canon.Identity[string]()

// TestDFS_Errors validates nil inputs.
func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS[string, string](nil, "A", ident)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
	_, err = dfs.DFS[string, string](adj{}, "A", nil)
	assert.ErrorIs(t, err, dfs.ErrKeyFuncNil)
}

// TestDFS_PreOrder checks the last-in first-out walk follows the first
// generated neighbour all the way down before backtracking.
func TestDFS_PreOrder(t *testing.T) {
	g := adj{
		"A": {"B", "C"},
		"B": {"D"},
		"C": {"E"},
		"D": {"A"},
	}
	res, err := dfs.DFS(g, "A", ident)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C", "E"}, res.Order)
	assert.Equal(t, map[string]string{"B": "A", "D": "B", "C": "A", "E": "C"}, res.Parent)
	assert.Equal(t, 2, res.Depth["D"])
}

// TestDFS_SameSetAsBFS compares reachability with bfs on an open grid.
func TestDFS_SameSetAsBFS(t *testing.T) {
	type cell struct{ X, Y int }
	moves := core.GraphFunc[cell](func(c cell) []cell {
		var out []cell
		for _, d := range []cell{{0, 1}, {1, 0}, {0, -1}, {-1, 0}} {
			n := cell{c.X + d.X, c.Y + d.Y}
			if n.X >= 0 && n.X < 4 && n.Y >= 0 && n.Y < 4 && !(n.X == 1 && n.Y < 3) {
				out = append(out, n)
			}
		}
		return out
	})
	key := canon.Identity[cell]()

	d, err := dfs.DFS(moves, cell{0, 0}, key)
	require.NoError(t, err)
	b, err := bfs.BFS(moves, cell{0, 0}, key)
	require.NoError(t, err)

	assert.Equal(t, 13, d.Len())
	assert.ElementsMatch(t, b.Reached(), d.Reached())
}

// TestDFS_MaxDepthAndFilter covers the limit and the skip counter.
func TestDFS_MaxDepthAndFilter(t *testing.T) {
	line := core.GraphFunc[int](func(n int) []int { return []int{n + 1, -n} })

	res, err := dfs.DFS(line, 1, canon.Identity[int](), dfs.WithMaxDepth[int](0))
	require.NoError(t, err)
	assert.Equal(t, []int{1}, res.Order)

	res, err = dfs.DFS(line, 1, canon.Identity[int](),
		dfs.WithMaxDepth[int](3),
		dfs.WithFilterNeighbor(func(n int) bool { return n > 0 }),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, res.Order)
	assert.Equal(t, 3, res.SkippedNeighbors)
}

// TestDFS_OnVisitAbort stops traversal on hook error.
func TestDFS_OnVisitAbort(t *testing.T) {
	boom := errors.New("boom")
	g := adj{"A": {"B"}, "B": {"C"}}
	var seen []string
	res, err := dfs.DFS(g, "A", ident, dfs.WithOnVisit(func(n string, _ int) error {
		seen = append(seen, n)
		if n == "B" {
			return boom
		}
		return nil
	}))
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"A", "B"}, seen)
	assert.NotNil(t, res)
}
