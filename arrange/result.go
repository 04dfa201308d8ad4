package arrange

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/seatplan/seatgrid"
)

// CellKind classifies one grid cell of a Result.
type CellKind int

const (
	// KindEmpty is a seat with no occupant (pool exhausted).
	KindEmpty CellKind = iota
	// KindCorridor is a cell in a corridor column.
	KindCorridor
	// KindOccupant is a seat holding an entity.
	KindOccupant
)

// Cell is the value of one grid position. ID is meaningful only for
// KindOccupant.
type Cell struct {
	Kind CellKind
	ID   int
}

// String renders a cell as "empty", "corridor" or "#<id>".
func (c Cell) String() string {
	switch c.Kind {
	case KindCorridor:
		return "corridor"
	case KindOccupant:
		return "#" + strconv.Itoa(c.ID)
	default:
		return "empty"
	}
}

// Counts tallies the cell kinds of a Result grid (podium slots excluded).
type Counts struct {
	Occupied int
	Empty    int
	Corridor int
}

// Result is the immutable outcome of one Assign call.
// cells holds rows*cols values in row-major order.
type Result struct {
	rows, cols int
	cells      []Cell
	left       int
	right      int
	hasLeft    bool
	hasRight   bool
	wantLeft   bool
	wantRight  bool
	policy     Policy
}

// newResult allocates a result for g with corridor cells marked and every
// other cell Empty.
func newResult(g *seatgrid.Grid, p Policy) *Result {
	res := &Result{
		rows:      g.Rows(),
		cols:      g.Cols(),
		cells:     make([]Cell, g.Rows()*g.Cols()),
		wantLeft:  g.PodiumLeft(),
		wantRight: g.PodiumRight(),
		policy:    p,
	}
	for r := 0; r < res.rows; r++ {
		for c := 0; c < res.cols; c++ {
			if g.IsCorridor(c) {
				res.cells[r*res.cols+c] = Cell{Kind: KindCorridor}
			}
		}
	}
	return res
}

// place writes an occupant at pos. Only Assign's algorithms call it.
func (res *Result) place(pos seatgrid.Pos, id int) {
	res.cells[pos.Row*res.cols+pos.Col] = Cell{Kind: KindOccupant, ID: id}
}

// Rows returns the grid row count.
func (res *Result) Rows() int { return res.rows }

// Cols returns the grid column count.
func (res *Result) Cols() int { return res.cols }

// Policy returns the policy the result was produced with.
func (res *Result) Policy() Policy { return res.policy }

// At returns the cell at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (res *Result) At(row, col int) (Cell, error) {
	if row < 0 || row >= res.rows || col < 0 || col >= res.cols {
		return Cell{}, fmt.Errorf("Result.At(%d,%d): %w", row, col, ErrOutOfRange)
	}
	return res.cells[row*res.cols+col], nil
}

// Left returns the left podium occupant, if any.
func (res *Result) Left() (int, bool) { return res.left, res.hasLeft }

// Right returns the right podium occupant, if any.
func (res *Result) Right() (int, bool) { return res.right, res.hasRight }

// PodiumRequested reports which podium slots the grid asked for, filled
// or not.
func (res *Result) PodiumRequested() (left, right bool) { return res.wantLeft, res.wantRight }

// Do calls f for every grid cell in row-major order until f returns false.
func (res *Result) Do(f func(row, col int, c Cell) bool) {
	for i, c := range res.cells {
		if !f(i/res.cols, i%res.cols, c) {
			return
		}
	}
}

// Placed returns every placed entity ID: podium left, podium right, then
// grid occupants in row-major order.
func (res *Result) Placed() []int {
	ids := make([]int, 0, len(res.cells)+2)
	if res.hasLeft {
		ids = append(ids, res.left)
	}
	if res.hasRight {
		ids = append(ids, res.right)
	}
	for _, c := range res.cells {
		if c.Kind == KindOccupant {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// Locate returns the grid position of id. Podium occupants are not on the
// grid and report false.
// Complexity: O(rows*cols).
func (res *Result) Locate(id int) (seatgrid.Pos, bool) {
	for i, c := range res.cells {
		if c.Kind == KindOccupant && c.ID == id {
			return seatgrid.Pos{Row: i / res.cols, Col: i % res.cols}, true
		}
	}
	return seatgrid.Pos{}, false
}

// Counts tallies occupied, empty and corridor cells.
func (res *Result) Counts() Counts {
	var n Counts
	for _, c := range res.cells {
		switch c.Kind {
		case KindOccupant:
			n.Occupied++
		case KindCorridor:
			n.Corridor++
		default:
			n.Empty++
		}
	}
	return n
}
