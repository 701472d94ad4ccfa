package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"

	"github.com/katalvlaran/statesearch/core"
)

var (
	_ core.Graph[Point]         = (*Grid)(nil)
	_ core.WeightedGraph[Point] = (*Grid)(nil)
)

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrBadCell for negative values.
// Complexity: O(W×H) time and memory.
func New(values [][]int, opts Options) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	minCost := 0
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
		for x, v := range cells[y] {
			if v < 0 {
				return nil, fmt.Errorf("%w: value %d at (%d,%d)", ErrBadCell, v, x, y)
			}
			if v > 0 && (minCost == 0 || v < minCost) {
				minCost = v
			}
		}
	}
	// Precompute neighbour offsets based on connectivity
	var offsets []Point
	if opts.Conn == Conn8 {
		offsets = []Point{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = []Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &Grid{
		Width:   w,
		Height:  h,
		Cells:   cells,
		Conn:    opts.Conn,
		minCost: minCost,
		offsets: offsets,
	}, nil
}

// Parse reads an ASCII maze, one row per line. Trailing blank lines are
// ignored. The maze must contain exactly one 'S' and one 'G'; both are open
// cells of cost 1. A repeated 'S' or 'G' is ErrBadCell.
func Parse(r io.Reader, opts Options) (*Grid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read maze: %w", err)
	}
	// drop trailing blank lines
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	var start, goal *Point
	values := make([][]int, len(lines))
	for y, line := range lines {
		values[y] = make([]int, len(line))
		for x, ch := range []byte(line) {
			switch {
			case ch == '#':
				values[y][x] = 0
			case ch == '.':
				values[y][x] = 1
			case ch >= '1' && ch <= '9':
				values[y][x] = int(ch - '0')
			case ch == 'S':
				if start != nil {
					return nil, fmt.Errorf("%w: second 'S' at (%d,%d)", ErrBadCell, x, y)
				}
				values[y][x] = 1
				start = &Point{x, y}
			case ch == 'G':
				if goal != nil {
					return nil, fmt.Errorf("%w: second 'G' at (%d,%d)", ErrBadCell, x, y)
				}
				values[y][x] = 1
				goal = &Point{x, y}
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadCell, ch, x, y)
			}
		}
	}

	g, err := New(values, opts)
	if err != nil {
		return nil, err
	}
	if start == nil {
		return nil, ErrNoStart
	}
	if goal == nil {
		return nil, ErrNoGoal
	}
	g.Start, g.Goal = *start, *goal

	return g, nil
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Open reports whether p is inside the grid and not a wall.
func (g *Grid) Open(p Point) bool {
	return g.InBounds(p) && g.Cells[p.Y][p.X] > 0
}

// OpenCells returns every open cell in row-major order.
func (g *Grid) OpenCells() []Point {
	all := make([]Point, 0, g.Width*g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			all = append(all, Point{x, y})
		}
	}
	return lo.Filter(all, func(p Point, _ int) bool { return g.Open(p) })
}

// Neighbours returns the open cells adjacent to p under g.Conn.
func (g *Grid) Neighbours(p Point) []Point {
	out := make([]Point, 0, len(g.offsets))
	for _, d := range g.offsets {
		n := Point{p.X + d.X, p.Y + d.Y}
		if g.Open(n) {
			out = append(out, n)
		}
	}
	return out
}

// NeighboursWithCosts returns the open adjacent cells with their entry cost.
func (g *Grid) NeighboursWithCosts(p Point) []core.Step[Point] {
	return lo.Map(g.Neighbours(p), func(n Point, _ int) core.Step[Point] {
		return core.Step[Point]{Node: n, Cost: float64(g.Cells[n.Y][n.X])}
	})
}

// Heuristic is the Manhattan (Conn4) or Chebyshev (Conn8) distance from
// "from" to "to", scaled by the cheapest open cell. It never overestimates.
func (g *Grid) Heuristic(from, to Point) float64 {
	dx, dy := abs(to.X-from.X), abs(to.Y-from.Y)
	if g.Conn == Conn8 {
		return float64(max(dx, dy) * g.minCost)
	}
	return float64((dx + dy) * g.minCost)
}

// IsAtGoal reports whether candidate is the goal cell.
func (g *Grid) IsAtGoal(candidate, goal Point) bool { return candidate == goal }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
