package roster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seatplan/roster"
)

// TestNew_Errors verifies that New rejects invalid entity sets.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name     string
		entities []roster.Entity
		err      error
	}{
		{"DuplicateID", []roster.Entity{{ID: 1, Name: "a", Tag: "x"}, {ID: 1, Name: "b", Tag: "x"}}, roster.ErrDuplicateID},
		{"EmptyName", []roster.Entity{{ID: 1, Name: "  ", Tag: "x"}}, roster.ErrEmptyName},
		{"ThreeTags", []roster.Entity{{ID: 1, Name: "a", Tag: "x"}, {ID: 2, Name: "b", Tag: "y"}, {ID: 3, Name: "c", Tag: "z"}}, roster.ErrAttributeNotBinary},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := roster.New(tc.entities)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNew_SortsAndCopies checks ID ordering, tag order and input isolation.
func TestNew_SortsAndCopies(t *testing.T) {
	in := []roster.Entity{
		{ID: 3, Name: "Cy", Tag: roster.TagFemale},
		{ID: 1, Name: "Al", Tag: roster.TagMale},
		{ID: 2, Name: "Bo", Tag: roster.TagFemale},
	}
	r, err := roster.New(in)
	require.NoError(t, err)

	in[0].Name = "mutated"
	assert.Equal(t, []int{1, 2, 3}, r.IDs())
	assert.Equal(t, "Cy", r.Name(3))
	assert.Equal(t, []roster.Tag{roster.TagMale, roster.TagFemale}, r.Tags())
	assert.Equal(t, 2, r.Count(roster.TagFemale))
	assert.Equal(t, roster.TagMale, r.TagOf(1))

	_, ok := r.Lookup(9)
	assert.False(t, ok)
	assert.Equal(t, "", r.Name(9))

	ents := r.Entities()
	ents[0].Name = "changed"
	assert.Equal(t, "Al", r.Name(1), "Entities must return a copy")
}

func TestSequential(t *testing.T) {
	r, err := roster.Sequential([]string{"a", "b"}, []roster.Tag{"x", "y"})
	require.NoError(t, err)
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, roster.Tag("y"), r.TagOf(2))

	_, err = roster.Sequential([]string{"a"}, nil)
	assert.ErrorIs(t, err, roster.ErrMalformedRow)
}

func TestNormalizeTag(t *testing.T) {
	cases := map[string]roster.Tag{
		"男":       roster.TagMale,
		"Male":    roster.TagMale,
		" m ":     roster.TagMale,
		"女":       roster.TagFemale,
		"FEMALE":  roster.TagFemale,
		"f":       roster.TagFemale,
		"":        roster.TagUnknown,
		"other":   roster.TagUnknown,
		"女生":      roster.TagFemale,
		"females": roster.TagFemale,
	}
	for in, want := range cases {
		assert.Equal(t, want, roster.NormalizeTag(in), "NormalizeTag(%q)", in)
	}
}
