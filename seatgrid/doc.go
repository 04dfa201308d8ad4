// Package seatgrid describes the rectangular seating arrangement a run
// fills: row and column counts, whole corridor columns that hold no seats,
// and up to two podium slots outside the grid proper.
//
// What:
//
//   - Grid is immutable once built by New.
//   - Corridor columns are 1-based, matching how classrooms are described
//     ("the corridor is column 4"); cell coordinates are 0-based.
//   - Seats walks non-corridor cells row-major; Cells walks every cell.
//
// Capacity:
//
//	available = Rows × (Cols − |Corridors|)
//	required  = |roster| − podiumLeft − podiumRight
//
// CheckCapacity returns ErrCapacity when available < required. Podium
// slots are separate capacity and always count as available.
//
// Complexity:
//
//   - New:            O(Cols + |Corridors|), Memory: O(Cols).
//   - Seats / Cells:  O(Rows×Cols).
//   - CheckCapacity:  O(1).
//
// Errors:
//
//   - ErrEmptyGrid: rows or cols below 1.
//   - ErrCorridorOutOfRange: a corridor index outside 1..Cols.
//   - ErrCapacity: not enough grid seats for the roster.
//   - ErrOutOfRange: a coordinate or index outside the grid.
package seatgrid
