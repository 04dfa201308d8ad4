// Package arrange - RNG utilities shared by the placement algorithms.
//
// This file centralizes every random draw of an Assign call.
//
// Goals:
//   - Determinism: same *rand.Rand state ⇒ identical results.
//   - Encapsulation: algorithms never touch a global source.
//   - Safety: helpers never panic on the sizes Assign passes them.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Assign is single-threaded and
//     uses exactly one RNG per call.
package arrange

import (
	"math/rand"
	"time"
)

// newClockRNG returns an RNG seeded from the wall clock. Used only when the
// caller asked for neither WithSeed nor WithRand.
func newClockRNG() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// shuffleInPlace performs an in-place Fisher–Yates shuffle of a using rng.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleInPlace(a []int, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// takeAt removes and returns a[i], preserving the order of the rest.
// The backing array of a is reused.
//
// Complexity: O(n).
func takeAt(a []int, i int) (int, []int) {
	v := a[i]
	return v, append(a[:i], a[i+1:]...)
}

// drawOne removes a uniformly chosen element from a.
// The caller guarantees len(a) > 0.
//
// Complexity: O(n).
func drawOne(a []int, rng *rand.Rand) (int, []int) {
	return takeAt(a, rng.Intn(len(a)))
}

// coin returns 0 or 1 with equal probability.
func coin(rng *rand.Rand) int {
	return rng.Intn(2)
}
