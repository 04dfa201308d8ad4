package arrange

import "github.com/katalvlaran/seatplan/seatgrid"

// placeUniform shuffles pool and fills the row-major seats in that order.
// Seats past the end of the pool stay Empty.
//
// Complexity: O(rows*cols + n).
func placeUniform(res *Result, g *seatgrid.Grid, pool []int, cfg engineConfig) {
	order := make([]int, len(pool))
	copy(order, pool)
	shuffleInPlace(order, cfg.rng)

	seats := g.Seats()
	for i, id := range order {
		if i >= len(seats) {
			break
		}
		res.place(seats[i], id)
	}
}
