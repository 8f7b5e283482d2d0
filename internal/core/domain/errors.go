package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
//
// Parse and render never return these: unrecognized input and
// unrenderable features are signalled in-band by Unrecognized and the
// empty-set glyph. Services raise them when a caller asks for strictness.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnrecognizedSymbol indicates text that does not transcribe any
	// known sound.
	ErrUnrecognizedSymbol = errors.New("unrecognized symbol")

	// ErrInvalidRule indicates an unknown rewrite rule name.
	ErrInvalidRule = errors.New("invalid rule")

	// ErrReadOnly indicates an attempt to modify a built-in entity.
	ErrReadOnly = errors.New("read only")
)
