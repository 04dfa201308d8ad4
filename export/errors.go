package export

import "errors"

var (
	// ErrNoFormats indicates Export was called with an empty format list.
	ErrNoFormats = errors.New("export: no output formats")

	// ErrNilTable indicates Export was called with a nil table.
	ErrNilTable = errors.New("export: table is nil")
)
