package seatgrid

import "errors"

var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("seatgrid: grid must have at least one row and one column")
	// ErrCorridorOutOfRange indicates a corridor column outside 1..Cols.
	ErrCorridorOutOfRange = errors.New("seatgrid: corridor column out of range")
	// ErrCapacity indicates fewer grid seats than entities to seat.
	ErrCapacity = errors.New("seatgrid: not enough seats")
	// ErrOutOfRange indicates a coordinate or index outside the grid.
	ErrOutOfRange = errors.New("seatgrid: position out of range")
)
