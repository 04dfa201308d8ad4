// SPDX-License-Identifier: MIT
// Package: seatplan/arrange
//
// errors.go: sentinel errors for the arrange package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Context is attached with %w at the return site ("Assign: ...: %w").
//   • Assign never panics; option constructors do on nonsense input.

package arrange

import (
	"errors"

	"github.com/katalvlaran/seatplan/seatgrid"
)

// ErrCapacity indicates the grid has fewer seats than the roster needs once
// podium slots are subtracted. It is the same value as seatgrid.ErrCapacity,
// so either can be matched with errors.Is.
var ErrCapacity = seatgrid.ErrCapacity

// ErrBadRunLength indicates a clustered policy with a run length below 1.
var ErrBadRunLength = errors.New("arrange: run length must be at least 1")

// ErrNilInput indicates a nil roster or grid was passed to Assign.
var ErrNilInput = errors.New("arrange: roster and grid are required")

// ErrUnknownTag indicates a roster tag outside the pair fixed by WithTagOrder.
var ErrUnknownTag = errors.New("arrange: roster tag not in configured tag order")

// ErrUnknownPolicy indicates a Policy value not built by this package.
var ErrUnknownPolicy = errors.New("arrange: unknown policy")

// ErrOutOfRange indicates a Result lookup outside the grid.
var ErrOutOfRange = errors.New("arrange: position out of range")
