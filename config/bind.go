package config

import (
	"path/filepath"

	"github.com/katalvlaran/seatplan/arrange"
	"github.com/katalvlaran/seatplan/render"
	"github.com/katalvlaran/seatplan/roster"
	"github.com/katalvlaran/seatplan/seatgrid"
)

// NewGrid builds the seat grid described by c.Grid.
func (c *Config) NewGrid() (*seatgrid.Grid, error) {
	return seatgrid.New(c.Grid.Rows, c.Grid.Cols,
		seatgrid.WithCorridors(c.Grid.Corridors...),
		seatgrid.WithPodium(c.Grid.PodiumLeft, c.Grid.PodiumRight))
}

// PlacementPolicy maps the policy flags onto one arrange.Policy.
func (c *Config) PlacementPolicy() arrange.Policy {
	p := c.Policy
	if p.GenderClustered && p.StrictRuns && !p.CorridorAlternating {
		return arrange.StrictClustered(p.RunLength)
	}
	return arrange.ResolvePolicy(p.GenderClustered, p.RunLength, p.CorridorAlternating)
}

// EngineOptions returns the seed and tag-order options for arrange.Assign.
func (c *Config) EngineOptions() []arrange.Option {
	var opts []arrange.Option
	if c.Seed != 0 {
		opts = append(opts, arrange.WithSeed(c.Seed))
	}
	if len(c.Tags) == 2 {
		opts = append(opts, arrange.WithTagOrder(roster.Tag(c.Tags[0]), roster.Tag(c.Tags[1])))
	}
	return opts
}

// ReadOptions returns the roster.Read options for c.Input.
func (c *Config) ReadOptions() []roster.ReadOption {
	var opts []roster.ReadOption
	if c.NormalizeTags {
		opts = append(opts, roster.WithNormalizeTags())
	}
	if c.Table != "" {
		opts = append(opts, roster.WithTable(c.Table))
	}
	return opts
}

// RenderOptions returns the label options for render.Build.
func (c *Config) RenderOptions() []render.Option {
	return []render.Option{render.WithLabels(render.Labels{
		Podium:   c.Labels.Podium,
		Corridor: c.Labels.Corridor,
		Empty:    c.Labels.Empty,
	})}
}

// NamesBase returns the output path stem for the names sheet.
func (c *Config) NamesBase() string {
	return filepath.Join(c.Output.Dir, c.Output.Basename)
}

// TagsBase returns the output path stem for the tags sheet.
func (c *Config) TagsBase() string {
	return filepath.Join(c.Output.Dir, c.Output.TagBasename)
}
