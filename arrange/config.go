package arrange

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/seatplan/roster"
)

// engineConfig aggregates the knobs of one Assign call.
type engineConfig struct {
	rng       *rand.Rand
	tags      [2]roster.Tag
	tagsFixed bool
}

// newEngineConfig applies options in order (last wins) and fills an unset
// RNG with a clock-seeded one.
func newEngineConfig(opts ...Option) engineConfig {
	var cfg engineConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = newClockRNG()
	}
	return cfg
}

// groupTags resolves the two group tags for r. With WithTagOrder every
// roster tag must be one of the pair; otherwise the roster's own tag order
// is used, padded with "" when fewer than two tags exist.
func (c engineConfig) groupTags(r *roster.Roster) ([2]roster.Tag, error) {
	if c.tagsFixed {
		for _, t := range r.Tags() {
			if t != c.tags[0] && t != c.tags[1] {
				return c.tags, fmt.Errorf("tag %q not in %v: %w", t, c.tags, ErrUnknownTag)
			}
		}
		return c.tags, nil
	}
	var out [2]roster.Tag
	copy(out[:], r.Tags())
	return out, nil
}
