package seqfn

import "errors"

// Error kinds reported by combinators. Failure sites wrap these with
// fmt.Errorf("...: %w", ...), so callers should match with errors.Is rather
// than comparing directly.
var (
	// ErrTypeMismatch reports that a typed map or modify produced a result
	// that cannot satisfy the declared element type.
	ErrTypeMismatch = errors.New("seqfn: type mismatch")

	// ErrLengthMismatch reports that a multi-sequence combinator was given
	// inputs of differing lengths.
	ErrLengthMismatch = errors.New("seqfn: length mismatch")

	// ErrIndexOutOfRange reports a 1-based position outside [1, Len].
	ErrIndexOutOfRange = errors.New("seqfn: index out of range")

	// ErrPathNotFound reports a Pluck step (or table column lookup) that
	// does not resolve.
	ErrPathNotFound = errors.New("seqfn: path not found")

	// ErrEmptyInput reports a reduction over an empty sequence with no
	// initial value to seed the accumulator.
	ErrEmptyInput = errors.New("seqfn: empty input and no initial value")

	// ErrUnnamedInput reports a CrossToTable input with an empty or
	// duplicate column name.
	ErrUnnamedInput = errors.New("seqfn: unnamed or duplicate input")
)
