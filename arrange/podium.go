package arrange

import "github.com/katalvlaran/seatplan/seatgrid"

// fillPodium draws the requested podium occupants from pool and returns
// what is left. Left is drawn before right, without replacement. An empty
// pool leaves the slot unfilled.
func fillPodium(res *Result, g *seatgrid.Grid, pool []int, cfg engineConfig) []int {
	if g.PodiumLeft() && len(pool) > 0 {
		res.left, pool = drawOne(pool, cfg.rng)
		res.hasLeft = true
	}
	if g.PodiumRight() && len(pool) > 0 {
		res.right, pool = drawOne(pool, cfg.rng)
		res.hasRight = true
	}
	return pool
}
