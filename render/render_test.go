package render_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seatplan/arrange"
	"github.com/katalvlaran/seatplan/render"
	"github.com/katalvlaran/seatplan/roster"
	"github.com/katalvlaran/seatplan/seatgrid"
)

// oneTag builds a roster whose members all share tag, so corridor
// alternation fills seats in roster order.
func oneTag(t *testing.T, tag roster.Tag, names ...string) *roster.Roster {
	t.Helper()
	tags := make([]roster.Tag, len(names))
	for i := range tags {
		tags[i] = tag
	}
	r, err := roster.Sequential(names, tags)
	require.NoError(t, err)
	return r
}

func assign(t *testing.T, r *roster.Roster, g *seatgrid.Grid) *arrange.Result {
	t.Helper()
	res, err := arrange.Assign(r, g, arrange.CorridorAlternating(), arrange.WithSeed(1))
	require.NoError(t, err)
	return res
}

func TestBuildGrid(t *testing.T) {
	r := oneTag(t, roster.TagFemale, "Ann", "Ben", "Cat", "Dan", "Eve", "Fay")
	g, err := seatgrid.New(2, 5, seatgrid.WithCorridors(3))
	require.NoError(t, err)

	sheet, err := render.Build(assign(t, r, g), r)
	require.NoError(t, err)
	assert.False(t, sheet.PodiumRow)
	assert.Equal(t, [][]string{
		{"Ann", "Ben", "Corridor", "Cat", "Dan"},
		{"Eve", "Fay", "Corridor", "", ""},
	}, sheet.Names.Records())
	assert.Equal(t, [][]string{
		{"female", "female", "Corridor", "female", "female"},
		{"female", "female", "Corridor", "", ""},
	}, sheet.Tags.Records())
}

func TestBuildPodiumRow(t *testing.T) {
	r := oneTag(t, roster.TagMale, "Ann")
	g, err := seatgrid.New(1, 3, seatgrid.WithPodium(false, true))
	require.NoError(t, err)

	sheet, err := render.Build(assign(t, r, g), r,
		render.WithPodiumLabel("Desk"), render.WithEmptyLabel("-"))
	require.NoError(t, err)
	assert.True(t, sheet.PodiumRow)
	assert.Equal(t, [][]string{
		{"-", "Desk", "Ann"},
		{"-", "-", "-"},
	}, sheet.Names.Records())
	assert.Equal(t, [][]string{
		{"-", "Desk", "male"},
		{"-", "-", "-"},
	}, sheet.Tags.Records())
}

// TestBuildPodiumNarrow covers rooms too narrow for a neighbour beside the marker.
func TestBuildPodiumNarrow(t *testing.T) {
	r := oneTag(t, roster.TagMale, "Ann")

	g, _ := seatgrid.New(1, 1, seatgrid.WithPodium(true, false))
	sheet, err := render.Build(assign(t, r, g), r)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Podium"}, {""}}, sheet.Names.Records())

	g, _ = seatgrid.New(1, 2, seatgrid.WithPodium(false, true))
	sheet, err = render.Build(assign(t, r, g), r)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"", "Podium"}, {"", ""}}, sheet.Names.Records())
}

func TestBuildLabels(t *testing.T) {
	r := oneTag(t, roster.TagMale, "Ann")
	g, _ := seatgrid.New(1, 3, seatgrid.WithCorridors(2))
	sheet, err := render.Build(assign(t, r, g), r,
		render.WithLabels(render.Labels{Podium: "P", Corridor: "|", Empty: "."}))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Ann", "|", "."}}, sheet.Names.Records())
}

func TestBuildErrors(t *testing.T) {
	r := oneTag(t, roster.TagMale, "Ann", "Ben")
	g, _ := seatgrid.New(1, 2)
	res := assign(t, r, g)

	_, err := render.Build(nil, r)
	assert.ErrorIs(t, err, render.ErrNilInput)
	_, err = render.Build(res, nil)
	assert.ErrorIs(t, err, render.ErrNilInput)

	other := oneTag(t, roster.TagMale, "Cy")
	_, err = render.Build(res, other)
	assert.ErrorIs(t, err, render.ErrUnknownEntity)
}

func TestSummarize(t *testing.T) {
	r, err := roster.Sequential([]string{"a", "b", "c", "d", "e"},
		[]roster.Tag{roster.TagMale, roster.TagFemale, roster.TagMale, roster.TagMale, roster.TagFemale})
	require.NoError(t, err)
	g, _ := seatgrid.New(2, 3, seatgrid.WithCorridors(2), seatgrid.WithPodium(true, true))

	s, err := render.Summarize(assign(t, r, g), r)
	require.NoError(t, err)
	assert.Equal(t, 5, s.Total)
	assert.Equal(t, []render.TagCount{{Tag: roster.TagMale, Count: 3}, {Tag: roster.TagFemale, Count: 2}}, s.PerTag)
	assert.Equal(t, 4, s.GridSeats)
	assert.Equal(t, 2, s.PodiumSeats)
	assert.Equal(t, 5, s.Assigned)
	assert.Equal(t, 1, s.Empty)
	assert.Equal(t, 2, s.Corridor)
	assert.Zero(t, s.Unassigned())

	_, err = render.Summarize(nil, r)
	assert.ErrorIs(t, err, render.ErrNilInput)
}

func TestWriteText(t *testing.T) {
	tbl, err := render.FromRecords([][]string{
		{"Ann", "Corridor", "Bo"},
		{"Cy", "Corridor", "Dee"},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.WriteText(&buf, tbl))
	assert.Equal(t, "Ann  Corridor  Bo\nCy   Corridor  Dee\n", buf.String())

	assert.ErrorIs(t, render.WriteText(&buf, nil), render.ErrNilInput)
}
