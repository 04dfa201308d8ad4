package config

import (
	"fmt"
	"regexp"
)

// tableName matches identifiers safe to quote into a sqlite query.
var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate checks the configuration and returns the first problem found,
// wrapped with ErrInvalidConfig.
func (c *Config) Validate() error {
	g := c.Grid
	if g.Rows < 1 || g.Cols < 1 {
		return invalid("grid %dx%d must be at least 1x1", g.Rows, g.Cols)
	}
	for _, col := range g.Corridors {
		if col < 1 || col > g.Cols {
			return invalid("grid.corridors: %d not in 1..%d", col, g.Cols)
		}
	}
	if c.Policy.GenderClustered && !c.Policy.CorridorAlternating && c.Policy.RunLength < 1 {
		return invalid("policy.run_length %d must be >= 1", c.Policy.RunLength)
	}
	if c.Table != "" && !tableName.MatchString(c.Table) {
		return invalid("table %q is not a plain identifier", c.Table)
	}
	switch len(c.Tags) {
	case 0:
	case 2:
		if c.Tags[0] == c.Tags[1] {
			return invalid("tags: %q listed twice", c.Tags[0])
		}
	default:
		return invalid("tags: need exactly two values, got %d", len(c.Tags))
	}
	o := c.Output
	if o.Basename == "" || o.TagBasename == "" {
		return invalid("output.basename and output.tag_basename are required")
	}
	if o.Basename == o.TagBasename {
		return invalid("output.basename and output.tag_basename are both %q", o.Basename)
	}
	if len(o.Formats) == 0 {
		return invalid("output.formats is empty")
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("Validate: "+format+": %w", append(args, ErrInvalidConfig)...)
}
