package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statesearch/dfs"
)

// TestFindCycle_Acyclic verifies DAGs, diamonds included, report no cycle.
func TestFindCycle_Acyclic(t *testing.T) {
	cases := map[string]adj{
		"Single":  {},
		"Chain":   {"A": {"B"}, "B": {"C"}},
		"Diamond": {"A": {"B", "C"}, "B": {"D"}, "C": {"D"}},
	}
	for name, g := range cases {
		t.Run(name, func(t *testing.T) {
			cycle, found, err := dfs.FindCycle(g, "A", ident)
			require.NoError(t, err)
			assert.False(t, found)
			assert.Nil(t, cycle)
		})
	}
}

// TestFindCycle_ReturnsPathSuffix checks the cycle excludes the lead-in.
func TestFindCycle_ReturnsPathSuffix(t *testing.T) {
	g := adj{"S": {"A"}, "A": {"B"}, "B": {"C"}, "C": {"A"}}
	cycle, found, err := dfs.FindCycle(g, "S", ident)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"A", "B", "C"}, cycle)
}

// TestFindCycle_SelfLoopAndTwoCycle covers the shortest cycles.
func TestFindCycle_SelfLoopAndTwoCycle(t *testing.T) {
	cycle, found, err := dfs.FindCycle(adj{"A": {"A"}}, "A", ident)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"A"}, cycle)

	cycle, found, err = dfs.FindCycle(adj{"A": {"B"}, "B": {"A"}}, "A", ident)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"A", "B"}, cycle)
}

// TestFindCycle_EveryMoveIsPresent validates the returned cycle is closed.
func TestFindCycle_EveryMoveIsPresent(t *testing.T) {
	g := adj{
		"A": {"B", "E"},
		"B": {"C"},
		"C": {"D"},
		"D": {"B"},
		"E": {"F"},
	}
	cycle, found, err := dfs.FindCycle(g, "A", ident)
	require.NoError(t, err)
	require.True(t, found)
	for i, u := range cycle {
		v := cycle[(i+1)%len(cycle)]
		assert.Contains(t, g[u], v, "move %s→%s", u, v)
	}
	assert.ElementsMatch(t, []string{"B", "C", "D"}, cycle)
}

func TestFindCycle_Errors(t *testing.T) {
	_, _, err := dfs.FindCycle[string, string](nil, "A", ident)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
	_, _, err = dfs.FindCycle[string, string](adj{}, "A", nil)
	assert.ErrorIs(t, err, dfs.ErrKeyFuncNil)
}
