package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statesearch/astar"
)

const smallMaze = "S..\n.#.\n..G\n"

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// run executes the CLI with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestReach(t *testing.T) {
	maze := writeFile(t, "maze.txt", smallMaze)

	out, _, err := run(t, "reach", maze)
	require.NoError(t, err)
	assert.Equal(t, "reachable: 8\nfarthest: 4\n", out)

	out, _, err = run(t, "reach", maze, "--max-depth", "2")
	require.NoError(t, err)
	assert.Equal(t, "reachable: 5\nfarthest: 2\n", out)
}

func TestPath(t *testing.T) {
	maze := writeFile(t, "maze.txt", smallMaze)

	out, _, err := run(t, "path", maze)
	require.NoError(t, err)
	assert.Equal(t, "cost: 4\n", out)

	out, _, err = run(t, "path", maze, "--diagonal", "--dijkstra", "--settled")
	require.NoError(t, err)
	assert.Equal(t, "cost: 3\n", out)
}

func TestPath_ShowPath(t *testing.T) {
	maze := writeFile(t, "corridor.txt", "S..G\n####\n")

	out, _, err := run(t, "path", maze, "--show-path")
	require.NoError(t, err)
	assert.Equal(t, "cost: 3\npath: 0,0 1,0 2,0 3,0\n", out)
}

func TestPath_NoPath(t *testing.T) {
	maze := writeFile(t, "walled.txt", "S#.\n.#G\n")

	_, _, err := run(t, "path", maze)
	require.ErrorIs(t, err, astar.ErrNoPath)
}

func TestEnvironmentAndConfigFile(t *testing.T) {
	maze := writeFile(t, "maze.txt", smallMaze)

	t.Setenv("GRIDSEARCH_DIAGONAL", "true")
	out, _, err := run(t, "path", maze)
	require.NoError(t, err)
	assert.Equal(t, "cost: 3\n", out)

	// flags win over the environment
	out, _, err = run(t, "path", maze, "--diagonal=false")
	require.NoError(t, err)
	assert.Equal(t, "cost: 4\n", out)

	cfg := writeFile(t, "gridsearch.yaml", "show-path: true\nlog-level: debug\n")
	out, stderr, err := run(t, "path", maze, "--config", cfg, "--diagonal=false")
	require.NoError(t, err)
	assert.Contains(t, out, "path: 0,0 ")
	assert.Contains(t, stderr, "settings loaded")
}

func TestLogging(t *testing.T) {
	maze := writeFile(t, "maze.txt", smallMaze)

	_, stderr, err := run(t, "reach", maze, "--log-level", "info")
	require.NoError(t, err)
	assert.Contains(t, stderr, "maze loaded")
	assert.NotContains(t, stderr, "visit")

	_, stderr, err = run(t, "reach", maze, "--log-level", "trace")
	require.NoError(t, err)
	assert.Contains(t, stderr, "visit")

	_, _, err = run(t, "reach", maze, "--log-level", "loud")
	require.Error(t, err)
}

func TestBadInput(t *testing.T) {
	_, _, err := run(t, "reach")
	require.Error(t, err)

	_, _, err = run(t, "reach", filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = run(t, "reach", writeFile(t, "maze.txt", smallMaze), "--max-depth", "-1")
	require.Error(t, err)
}
