package grid

import "fmt"

// Grid is a rectangular, row-major 2D array of T.
// The zero value is an empty grid; construct with New or a parser.
type Grid[T any] struct {
	rows, cols int
	cells      []T
}

// New constructs a rows×cols grid filled with the zero value of T.
// Returns ErrEmptyGrid if either dimension is not positive.
func New[T any](rows, cols int) (*Grid[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	return &Grid[T]{rows: rows, cols: cols, cells: make([]T, rows*cols)}, nil
}

// FromRows constructs a grid from a non-empty nested slice, deep-copying
// the input to ensure immutability. Returns ErrEmptyGrid for empty input,
// ErrRagged if any row length differs. Complexity: O(rows×cols).
func FromRows[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(rows[0])
	g := &Grid[T]{rows: len(rows), cols: cols, cells: make([]T, 0, len(rows)*cols)}
	for _, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: want %d, got %d", ErrRagged, cols, len(row))
		}
		g.cells = append(g.cells, row...)
	}
	return g, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the number of columns. Complexity: O(1).
func (g *Grid[T]) Cols() int { return g.cols }

// Len returns the total number of cells.
func (g *Grid[T]) Len() int { return g.rows * g.cols }

// InBounds reports whether (r,c) lies within the grid.
func (g *Grid[T]) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// At returns the cell at row r, column c. Panics on out-of-range access:
// an invalid index inside a solver is a programming error, not input error.
func (g *Grid[T]) At(r, c int) T {
	if !g.InBounds(r, c) {
		panic(fmt.Sprintf("grid: At(%d,%d) outside %dx%d", r, c, g.rows, g.cols))
	}
	return g.cells[r*g.cols+c]
}

// Set stores v at row r, column c. Panics on out-of-range access.
func (g *Grid[T]) Set(r, c int, v T) {
	if !g.InBounds(r, c) {
		panic(fmt.Sprintf("grid: Set(%d,%d) outside %dx%d", r, c, g.rows, g.cols))
	}
	g.cells[r*g.cols+c] = v
}

// Row returns row r as a slice aliasing the grid's backing storage.
// Callers must not grow the returned slice.
func (g *Grid[T]) Row(r int) []T {
	if r < 0 || r >= g.rows {
		panic(fmt.Sprintf("grid: Row(%d) outside %d rows", r, g.rows))
	}
	return g.cells[r*g.cols : (r+1)*g.cols : (r+1)*g.cols]
}

// Clone returns a deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{rows: g.rows, cols: g.cols, cells: cells}
}
