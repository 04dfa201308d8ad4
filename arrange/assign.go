package arrange

import (
	"fmt"

	"github.com/katalvlaran/seatplan/roster"
	"github.com/katalvlaran/seatplan/seatgrid"
)

// methodAssign tags errors returned by Assign.
const methodAssign = "Assign"

// Assign places r onto g under policy p.
//
// Stage 1 (Validate): nil inputs, policy parameters and tag order.
// Stage 2 (Capacity): g.CheckCapacity(r.Len()); on failure no result is
// built and no random number is drawn.
// Stage 3 (Podium): left slot first, then right, each drawn uniformly from
// the remaining pool.
// Stage 4 (Place): the policy's algorithm fills the result matrix.
//
// The roster and grid are only read. Each call allocates its own pool.
// Complexity: O(rows*cols + n²) worst case (order-preserving removals).
func Assign(r *roster.Roster, g *seatgrid.Grid, p Policy, opts ...Option) (*Result, error) {
	if r == nil || g == nil {
		return nil, fmt.Errorf("%s: %w", methodAssign, ErrNilInput)
	}
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodAssign, err)
	}
	cfg := newEngineConfig(opts...)
	tags, err := cfg.groupTags(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodAssign, err)
	}
	if err := g.CheckCapacity(r.Len()); err != nil {
		return nil, fmt.Errorf("%s: %w", methodAssign, err)
	}

	res := newResult(g, p)
	pool := r.IDs()
	pool = fillPodium(res, g, pool, cfg)

	switch p.kind {
	case PolicyUniform:
		placeUniform(res, g, pool, cfg)
	case PolicyClustered:
		placeClustered(res, g, splitGroups(r, pool, tags), p, cfg)
	case PolicyCorridor:
		placeCorridor(res, g, splitGroups(r, pool, tags), cfg)
	}

	return res, nil
}

// splitGroups partitions pool by tag, keeping pool order inside each group.
// Entities whose tag is not tags[0] fall into group 1; groupTags already
// guarantees at most two tags are present.
func splitGroups(r *roster.Roster, pool []int, tags [2]roster.Tag) [2][]int {
	var groups [2][]int
	for _, id := range pool {
		if r.TagOf(id) == tags[0] {
			groups[0] = append(groups[0], id)
		} else {
			groups[1] = append(groups[1], id)
		}
	}
	return groups
}
