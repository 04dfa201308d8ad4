// Package arrange is the seat-assignment engine: it places a roster onto a
// seatgrid.Grid under exactly one placement Policy and returns an immutable
// Result mapping every (row, col) to an occupant, a corridor or an empty seat.
//
// 🚀 Flow of one Assign call:
//
//  1. Validate inputs and the policy (ErrNilInput, ErrBadRunLength, ErrUnknownTag).
//  2. Capacity check (ErrCapacity); nothing random happens before it passes.
//  3. Copy the roster IDs into a private working pool.
//  4. Draw the left podium occupant, then the right one, from the pool.
//  5. Run the policy's algorithm, writing straight into the result matrix.
//
// Policies:
//
//   - Uniform: a random permutation of the pool fills seats row-major.
//   - GenderClustered(k): runs of up to k entities from one tag group; the
//     group for each run is picked at random while both have members.
//   - StrictClustered(k): like GenderClustered but a run never follows a run
//     of the same group while the other group still has members.
//   - CorridorAlternating: walks every cell row-major; each corridor cell
//     re-rolls the current group, seats pop FIFO from that group.
//
// Determinism:
//
//	All randomness flows through one *rand.Rand. Pass WithSeed or WithRand to
//	reproduce a run; without either the engine seeds from the clock.
//
// Assign is single-threaded and does not retain or mutate its inputs.
package arrange
