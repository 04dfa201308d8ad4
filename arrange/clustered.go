package arrange

import "github.com/katalvlaran/seatplan/seatgrid"

// noGroup marks "no run placed yet" for the strict alternation rule.
const noGroup = -1

// placeClustered fills the row-major seats in runs drawn from one group.
//
// Each iteration:
//  1. pick a group: random while both are non-empty (strict mode instead
//     takes the group not used by the previous run), else the non-empty one;
//  2. draw min(runLength, |group|, seats left) members uniformly without
//     replacement into the next seats.
//
// Stops when both groups are empty or seats run out.
// Complexity: O(rows*cols + n²).
func placeClustered(res *Result, g *seatgrid.Grid, groups [2][]int, p Policy, cfg engineConfig) {
	seats := g.Seats()
	next := 0
	last := noGroup

	for next < len(seats) {
		var pick int
		switch {
		case len(groups[0]) > 0 && len(groups[1]) > 0:
			if p.strict && last != noGroup {
				pick = 1 - last
			} else {
				pick = coin(cfg.rng)
			}
		case len(groups[0]) > 0:
			pick = 0
		case len(groups[1]) > 0:
			pick = 1
		default:
			return
		}

		n := min(p.runLength, len(groups[pick]), len(seats)-next)
		for i := 0; i < n; i++ {
			var id int
			id, groups[pick] = drawOne(groups[pick], cfg.rng)
			res.place(seats[next], id)
			next++
		}
		last = pick
	}
}
