package seatgrid

import "fmt"

// AvailableSeats returns Rows × (Cols − |Corridors|).
func (g *Grid) AvailableSeats() int {
	return g.rows * (g.cols - len(g.corridors))
}

// PodiumSlots returns how many podium slots are requested (0, 1 or 2).
func (g *Grid) PodiumSlots() int {
	n := 0
	if g.podiumLeft {
		n++
	}
	if g.podiumRight {
		n++
	}
	return n
}

// RequiredSeats returns the grid seats needed for n entities once the
// podium slots have taken theirs. Never negative.
func (g *Grid) RequiredSeats(n int) int {
	req := n - g.PodiumSlots()
	if req < 0 {
		return 0
	}
	return req
}

// CheckCapacity returns an error wrapping ErrCapacity when the grid cannot
// seat n entities.
// Complexity: O(1).
func (g *Grid) CheckCapacity(n int) error {
	avail, req := g.AvailableSeats(), g.RequiredSeats(n)
	if avail < req {
		return fmt.Errorf("CheckCapacity: %d seats available, %d required: %w", avail, req, ErrCapacity)
	}
	return nil
}
