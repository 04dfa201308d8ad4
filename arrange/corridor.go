package arrange

import "github.com/katalvlaran/seatplan/seatgrid"

// placeCorridor walks every cell row-major, corridors included.
//
// The current group starts as a coin flip and is re-rolled at each corridor
// cell. A seat takes the head of the current group's FIFO queue; if that
// queue is empty it takes the other queue's head without changing the
// current group; if both are empty the seat stays Empty.
//
// Complexity: O(rows*cols).
func placeCorridor(res *Result, g *seatgrid.Grid, queues [2][]int, cfg engineConfig) {
	cur := coin(cfg.rng)
	for _, pos := range g.Cells() {
		if g.IsCorridor(pos.Col) {
			// newResult already marked the cell; only the group changes.
			cur = coin(cfg.rng)
			continue
		}
		q := cur
		if len(queues[q]) == 0 {
			q = 1 - cur
		}
		if len(queues[q]) == 0 {
			continue
		}
		res.place(pos, queues[q][0])
		queues[q] = queues[q][1:]
	}
}
