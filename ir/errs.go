package ir

import (
	"errors"
	"fmt"
)

var (
	// ErrType indicates a typed view was requested of a value whose
	// stored variant differs. Accessors never coerce.
	ErrType = errors.New("type mismatch")

	// ErrDepth indicates a document exceeded the configured maximum
	// nesting depth during parse, encode, traversal, or merge.
	ErrDepth = errors.New("max depth exceeded")
)

// DefaultMaxDepth bounds recursion over documents for all operations
// that walk the tree.
const DefaultMaxDepth = 200

func typeErr(have, want Type) error {
	return fmt.Errorf("%w: have %s, want %s", ErrType, have, want)
}
