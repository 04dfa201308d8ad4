package arrange_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/seatplan/arrange"
)

func TestResolvePolicy(t *testing.T) {
	cases := []struct {
		name                string
		clustered, corridor bool
		want                arrange.Policy
	}{
		{"neither", false, false, arrange.Uniform()},
		{"clustered", true, false, arrange.GenderClustered(3)},
		{"corridor", false, true, arrange.CorridorAlternating()},
		{"both prefers corridor", true, true, arrange.CorridorAlternating()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, arrange.ResolvePolicy(tc.clustered, 3, tc.corridor))
		})
	}
}

func TestPolicyAccessors(t *testing.T) {
	var zero arrange.Policy
	assert.Equal(t, arrange.PolicyUniform, zero.Kind())
	assert.Equal(t, "uniform", zero.String())

	p := arrange.GenderClustered(4)
	assert.Equal(t, arrange.PolicyClustered, p.Kind())
	assert.Equal(t, 4, p.RunLength())
	assert.False(t, p.Strict())
	assert.Equal(t, "clustered(4)", p.String())

	s := arrange.StrictClustered(2)
	assert.True(t, s.Strict())
	assert.Equal(t, "clustered-strict(2)", s.String())

	assert.Equal(t, "corridor", arrange.CorridorAlternating().String())
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "empty", arrange.Cell{}.String())
	assert.Equal(t, "corridor", arrange.Cell{Kind: arrange.KindCorridor}.String())
	assert.Equal(t, "#12", arrange.Cell{Kind: arrange.KindOccupant, ID: 12}.String())
}
