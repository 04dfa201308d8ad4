// SPDX-License-Identifier: MIT
// Package: seatplan/render
//
// errors.go: sentinel errors for tables and sheet assembly.

package render

import "errors"

var (
	// ErrShapeMismatch indicates a non-positive table shape or ragged records.
	ErrShapeMismatch = errors.New("render: table shape mismatch")

	// ErrOutOfRange indicates a row or column outside the table.
	ErrOutOfRange = errors.New("render: index out of range")

	// ErrNilInput indicates a nil result or roster passed to Build or Summarize.
	ErrNilInput = errors.New("render: result and roster are required")

	// ErrUnknownEntity indicates the result references an ID the roster lacks.
	ErrUnknownEntity = errors.New("render: entity not in roster")
)
