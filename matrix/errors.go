// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user-triggered
// error conditions.

package matrix

import "errors"

var (
	// ErrBadSize is returned when a requested matrix size is not positive.
	// Constructors must validate before allocation.
	ErrBadSize = errors.New("matrix: size must be > 0")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds, or that an embedded sub-block does not fit the receiver.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrSizeMismatch indicates incompatible operand sizes, e.g. Add/Mul
	// between matrices of different size, or FromSlice with a slice whose
	// length is not size².
	ErrSizeMismatch = errors.New("matrix: size mismatch")

	// ErrNotSquare is returned by FromRows when the flat slice length is
	// not a perfect square. Rejecting (instead of truncating) is
	// deliberate: a wrong-length slice is data corruption, not intent.
	ErrNotSquare = errors.New("matrix: slice length is not a perfect square")

	// ErrBadPermutation indicates that a permutation slice is not a
	// bijection of {0, …, size-1}.
	ErrBadPermutation = errors.New("matrix: invalid permutation")
)
