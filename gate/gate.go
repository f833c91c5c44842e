// Package gate: the validated width+matrix pair.

package gate

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/atilag/unitary/matrix"
)

var (
	// ErrWidthMismatch indicates that a gate matrix dimension does not
	// equal 2^width for the declared qubit width.
	ErrWidthMismatch = errors.New("gate: matrix dimension must be 2^width")

	// ErrBadElements indicates that a flat element slice cannot encode a
	// gate: its length is not 4^k for any qubit width k ≥ 1.
	ErrBadElements = errors.New("gate: element count is not 4^width")
)

// Gate pairs a qubit width with its defining matrix. A gate of width w
// acts on w qubits and carries a 2^w × 2^w matrix.
type Gate[T matrix.Element] struct {
	width int
	mat   *matrix.Dense[T]
}

// New wraps an existing matrix as a gate of the given qubit width.
// Stage 1 (Validate): width ≥ 1 and m.Size() == 2^width.
// Complexity: O(1).
func New[T matrix.Element](width int, m *matrix.Dense[T]) (*Gate[T], error) {
	if m == nil {
		return nil, matrix.ErrNilMatrix
	}
	if width < 1 || m.Size() != 1<<width {
		return nil, fmt.Errorf("width %d, dimension %d: %w", width, m.Size(), ErrWidthMismatch)
	}

	return &Gate[T]{width: width, mat: m}, nil
}

// FromRows builds a gate from a flat row-major element slice, deriving
// the width from the length: a width-w gate has exactly 4^w elements.
// Anything else is rejected — never truncated.
// Complexity: O(len(elems)).
func FromRows[T matrix.Element](elems []T) (*Gate[T], error) {
	m, err := matrix.FromRows(elems)
	if err != nil {
		return nil, err
	}

	dim := m.Size()
	if dim < 2 || bits.OnesCount(uint(dim)) != 1 {
		return nil, fmt.Errorf("%d elements: %w", len(elems), ErrBadElements)
	}

	return &Gate[T]{width: bits.TrailingZeros(uint(dim)), mat: m}, nil
}

// Width returns the number of qubits the gate acts on.
func (g *Gate[T]) Width() int {
	return g.width
}

// Matrix returns the defining matrix. The gate keeps ownership; callers
// must not mutate it.
func (g *Gate[T]) Matrix() *matrix.Dense[T] {
	return g.mat
}

// At retrieves the matrix element at (row, col).
func (g *Gate[T]) At(row, col int) (T, error) {
	return g.mat.At(row, col)
}
