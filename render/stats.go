package render

import (
	"fmt"

	"github.com/katalvlaran/seatplan/arrange"
	"github.com/katalvlaran/seatplan/roster"
)

// TagCount is the number of roster entities carrying Tag.
type TagCount struct {
	Tag   roster.Tag
	Count int
}

// Stats summarizes one arrangement.
type Stats struct {
	Total       int        // roster size
	PerTag      []TagCount // in roster tag order
	GridSeats   int        // non-corridor grid cells
	PodiumSeats int        // requested podium slots
	Assigned    int        // entities placed on grid or podium
	Empty       int        // grid seats left unfilled
	Corridor    int        // corridor cells
}

// Summarize tallies res against r.
// Complexity: O(rows*cols + n).
func Summarize(res *arrange.Result, r *roster.Roster) (Stats, error) {
	if res == nil || r == nil {
		return Stats{}, fmt.Errorf("Summarize: %w", ErrNilInput)
	}
	n := res.Counts()
	s := Stats{
		Total:     r.Len(),
		GridSeats: n.Occupied + n.Empty,
		Assigned:  len(res.Placed()),
		Empty:     n.Empty,
		Corridor:  n.Corridor,
	}
	for _, t := range r.Tags() {
		s.PerTag = append(s.PerTag, TagCount{Tag: t, Count: r.Count(t)})
	}
	left, right := res.PodiumRequested()
	if left {
		s.PodiumSeats++
	}
	if right {
		s.PodiumSeats++
	}
	return s, nil
}

// Unassigned returns how many roster entities have no seat. After a
// successful Assign it is always zero.
func (s Stats) Unassigned() int { return s.Total - s.Assigned }
