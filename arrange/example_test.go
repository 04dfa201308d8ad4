package arrange_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/seatplan/arrange"
	"github.com/katalvlaran/seatplan/roster"
	"github.com/katalvlaran/seatplan/seatgrid"
)

// ExampleAssign seats a single-group roster with corridor alternation.
// With one group every seat takes the next queued entity, so the layout
// does not depend on the seed.
func ExampleAssign() {
	names := []string{"Ann", "Ben", "Cat", "Dan", "Eve", "Fay"}
	tags := make([]roster.Tag, len(names))
	for i := range tags {
		tags[i] = roster.TagFemale
	}
	r, _ := roster.Sequential(names, tags)
	g, _ := seatgrid.New(2, 5, seatgrid.WithCorridors(3))

	res, err := arrange.Assign(r, g, arrange.CorridorAlternating(), arrange.WithSeed(1))
	if err != nil {
		fmt.Println(err)
		return
	}
	for row := 0; row < res.Rows(); row++ {
		line := make([]string, 0, res.Cols())
		for col := 0; col < res.Cols(); col++ {
			c, _ := res.At(row, col)
			line = append(line, c.String())
		}
		fmt.Println(strings.Join(line, " "))
	}
	fmt.Printf("%+v\n", res.Counts())
	// Output:
	// #1 #2 corridor #3 #4
	// #5 #6 corridor empty empty
	// {Occupied:6 Empty:2 Corridor:2}
}

// ExampleAssign_capacity shows the capacity failure on the classic
// 7×11 room when one too many students enroll.
func ExampleAssign_capacity() {
	names := make([]string, 65)
	tags := make([]roster.Tag, 65)
	for i := range names {
		names[i] = fmt.Sprintf("S%02d", i+1)
		tags[i] = roster.TagMale
	}
	r, _ := roster.Sequential(names, tags)
	g, _ := seatgrid.New(7, 11, seatgrid.WithCorridors(4, 8), seatgrid.WithPodium(true, false))

	_, err := arrange.Assign(r, g, arrange.Uniform())
	fmt.Println(errors.Is(err, arrange.ErrCapacity))
	fmt.Println(err)
	// Output:
	// true
	// Assign: CheckCapacity: 63 seats available, 64 required: seatgrid: not enough seats
}
