package mapper

import "errors"

var (
	// ErrEmptySpec indicates a mapping specification with no groups.
	ErrEmptySpec = errors.New("mapper: mapping specification is empty")

	// ErrEmptyGroup indicates a blank line in a mapping specification.
	ErrEmptyGroup = errors.New("mapper: empty group in mapping specification")

	// ErrUnknownName indicates a type name absent from the origin vocabulary.
	ErrUnknownName = errors.New("mapper: unknown origin type name")

	// ErrDuplicateOrigin indicates an origin id or name assigned to more
	// than one destination group.
	ErrDuplicateOrigin = errors.New("mapper: origin type mapped twice")

	// ErrNegativeOrigin indicates a negative origin id in a subset map.
	ErrNegativeOrigin = errors.New("mapper: origin type id is negative")
)
