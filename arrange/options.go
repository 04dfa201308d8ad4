// SPDX-License-Identifier: MIT
// Package: seatplan/arrange
//
// options.go: functional options for Assign.
//
// Contract:
//   • Options are functional (type Option func(*engineConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     Assign itself never panics.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package arrange

import (
	"math/rand"

	"github.com/katalvlaran/seatplan/roster"
)

// Option customizes one Assign call.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*engineConfig)

// WithRand provides the RNG every random draw of the call uses.
// The caller keeps ownership; *rand.Rand is not goroutine-safe.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("arrange: WithRand(nil)")
	}
	return func(c *engineConfig) {
		c.rng = r
	}
}

// WithSeed creates a fresh *rand.Rand from seed, making the call reproducible.
// Every seed, 0 included, is used verbatim.
func WithSeed(seed int64) Option {
	return func(c *engineConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithTagOrder fixes which tag forms group 0 and which forms group 1.
// Without it, groups follow the roster's order of first appearance.
// Roster tags outside {a, b} make Assign fail with ErrUnknownTag.
// Panics if a == b.
func WithTagOrder(a, b roster.Tag) Option {
	if a == b {
		panic("arrange: WithTagOrder(a == b)")
	}
	return func(c *engineConfig) {
		c.tags = [2]roster.Tag{a, b}
		c.tagsFixed = true
	}
}
