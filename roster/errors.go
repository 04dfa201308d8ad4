package roster

import "errors"

var (
	// ErrInputNotFound indicates the roster file does not exist.
	ErrInputNotFound = errors.New("roster: input file not found")
	// ErrUnsupportedInput indicates the roster file extension is not recognized.
	ErrUnsupportedInput = errors.New("roster: unsupported input type")
	// ErrMalformedRow indicates a data row without both a name and a tag column.
	ErrMalformedRow = errors.New("roster: row needs a name and a tag column")
	// ErrDuplicateID indicates two entities share an identifier.
	ErrDuplicateID = errors.New("roster: duplicate entity id")
	// ErrEmptyName indicates an entity with a blank display name.
	ErrEmptyName = errors.New("roster: entity name must not be empty")
	// ErrAttributeNotBinary indicates more than two distinct attribute tags.
	ErrAttributeNotBinary = errors.New("roster: at most two distinct tags are allowed")
)
