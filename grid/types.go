package grid

import "errors"

// Sentinel errors for grid construction and analysis.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadCell indicates an unknown maze character or a negative cell value.
	ErrBadCell = errors.New("grid: invalid cell")
	// ErrNoStart indicates a parsed maze without an 'S' cell.
	ErrNoStart = errors.New("grid: maze has no start cell")
	// ErrNoGoal indicates a parsed maze without a 'G' cell.
	ErrNoGoal = errors.New("grid: maze has no goal cell")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("grid: component index out of range")
)

// Connectivity selects neighbour connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Point is a cell coordinate and the node type of a Grid. It is comparable,
// so canon.Identity[Point]() is its canonical key.
type Point struct {
	X, Y int
}

// Options contains tunable parameters for grid construction.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultOptions returns Options with Conn4.
func DefaultOptions() Options {
	return Options{Conn: Conn4}
}

// Grid treats a 2D matrix of entry costs as an implicit graph. It is
// immutable once built. Cells[y][x] == 0 is a wall; a positive value is
// the cost of stepping into that cell.
//
// Grid implements core.Graph[Point] and core.WeightedGraph[Point].
type Grid struct {
	Width, Height int
	Cells         [][]int
	Conn          Connectivity

	// Start and Goal are set by Parse from 'S' and 'G'; New leaves them zero.
	Start, Goal Point

	minCost int
	offsets []Point
}

// ErrNoPath indicates that Bridge could not connect the two components.
var ErrNoPath = errors.New("grid: no path between components")
