// Package seatgrid defines the core types and options of the seating grid.
package seatgrid

// Pos is a 0-based cell coordinate.
type Pos struct {
	Row, Col int
}

// Option customizes a Grid during New.
type Option func(*Grid)

// WithCorridors marks the given 1-based columns as corridors.
// Repeated calls accumulate; duplicates collapse in New.
func WithCorridors(cols ...int) Option {
	return func(g *Grid) {
		g.corridors = append(g.corridors, cols...)
	}
}

// WithPodium requests the left and/or right podium slot.
func WithPodium(left, right bool) Option {
	return func(g *Grid) {
		g.podiumLeft, g.podiumRight = left, right
	}
}

// Grid is an immutable rows×cols seating layout.
// corridors holds sorted, unique 1-based column indices; isCorridor is
// indexed by 0-based column for O(1) lookups.
type Grid struct {
	rows, cols  int
	corridors   []int
	isCorridor  []bool
	podiumLeft  bool
	podiumRight bool
}
