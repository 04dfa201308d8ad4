package seatgrid

import (
	"fmt"
	"sort"
)

// New constructs a rows×cols Grid. Options are applied in order.
// Returns ErrEmptyGrid if rows or cols is below 1 and
// ErrCorridorOutOfRange if any corridor lies outside 1..cols.
// Corridor indices are copied, sorted and deduplicated.
// Complexity: O(cols + k log k) for k corridor entries.
func New(rows, cols int, opts ...Option) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("New: rows=%d, cols=%d: %w", rows, cols, ErrEmptyGrid)
	}
	g := &Grid{rows: rows, cols: cols}
	for _, opt := range opts {
		opt(g)
	}

	g.isCorridor = make([]bool, cols)
	unique := make([]int, 0, len(g.corridors))
	for _, c := range g.corridors {
		if c < 1 || c > cols {
			return nil, fmt.Errorf("New: corridor %d not in 1..%d: %w", c, cols, ErrCorridorOutOfRange)
		}
		if g.isCorridor[c-1] {
			continue
		}
		g.isCorridor[c-1] = true
		unique = append(unique, c)
	}
	sort.Ints(unique)
	g.corridors = unique

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns, corridors included.
func (g *Grid) Cols() int { return g.cols }

// Corridors returns a copy of the sorted 1-based corridor columns.
func (g *Grid) Corridors() []int {
	out := make([]int, len(g.corridors))
	copy(out, g.corridors)
	return out
}

// PodiumLeft reports whether the left podium slot is requested.
func (g *Grid) PodiumLeft() bool { return g.podiumLeft }

// PodiumRight reports whether the right podium slot is requested.
func (g *Grid) PodiumRight() bool { return g.podiumRight }

// HasPodium reports whether any podium slot is requested.
func (g *Grid) HasPodium() bool { return g.podiumLeft || g.podiumRight }

// IsCorridor reports whether the 0-based column col is a corridor.
// Out-of-range columns are not corridors.
// Complexity: O(1).
func (g *Grid) IsCorridor(col int) bool {
	return col >= 0 && col < g.cols && g.isCorridor[col]
}

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Index maps (row, col) to a row-major index: row*Cols + col.
// Returns ErrOutOfRange outside the grid.
func (g *Grid) Index(row, col int) (int, error) {
	if !g.InBounds(row, col) {
		return 0, fmt.Errorf("Index(%d,%d): %w", row, col, ErrOutOfRange)
	}
	return row*g.cols + col, nil
}

// Coordinate converts a row-major index back to (row, col).
// Returns ErrOutOfRange for indices outside 0..Rows*Cols-1.
func (g *Grid) Coordinate(idx int) (row, col int, err error) {
	if idx < 0 || idx >= g.rows*g.cols {
		return 0, 0, fmt.Errorf("Coordinate(%d): %w", idx, ErrOutOfRange)
	}
	return idx / g.cols, idx % g.cols, nil
}

// Cells returns every cell in row-major order, corridor cells included.
// Complexity: O(Rows×Cols).
func (g *Grid) Cells() []Pos {
	out := make([]Pos, 0, g.rows*g.cols)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			out = append(out, Pos{Row: r, Col: c})
		}
	}
	return out
}

// Seats returns the non-corridor cells in row-major order.
// len(Seats()) == AvailableSeats().
// Complexity: O(Rows×Cols).
func (g *Grid) Seats() []Pos {
	out := make([]Pos, 0, g.AvailableSeats())
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.isCorridor[c] {
				continue
			}
			out = append(out, Pos{Row: r, Col: c})
		}
	}
	return out
}

// String renders the grid shape, e.g. "7x11 corridors=[4 8] podium=L-".
func (g *Grid) String() string {
	l, r := "-", "-"
	if g.podiumLeft {
		l = "L"
	}
	if g.podiumRight {
		r = "R"
	}
	return fmt.Sprintf("%dx%d corridors=%v podium=%s%s", g.rows, g.cols, g.corridors, l, r)
}
