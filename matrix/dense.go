// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index
//     formula i*n + j.
//   - Guarantee safety at the public surface: At/Set return errors
//     instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Element is the scalar domain of Dense: real (float64) for
// permutation-encoded gates, complex (complex128) for everything else.
type Element interface {
	~float64 | ~complex128
}

// Dense is a square row-major matrix of Element values.
//   - n holds the size (rows == cols == n).
//   - data is a flat buffer of length n*n in row-major order.
//
// A Dense is never resized after construction.
type Dense[T Element] struct {
	n    int // matrix size, > 0
	data []T // contiguous row-major storage, len == n*n
}

// denseErrorf wraps a sentinel error with method context and callsite
// indices for diagnostics; the sentinel stays matchable via errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// New creates an n×n zero matrix using row-major storage.
// Stage 1 (Validate): ensure n > 0, else ErrBadSize.
// Stage 2 (Prepare): allocate flat backing slice (make zero-fills it).
// Complexity: O(n²) time and memory.
func New[T Element](n int) (*Dense[T], error) {
	if n <= 0 {
		return nil, ErrBadSize
	}

	return &Dense[T]{n: n, data: make([]T, n*n)}, nil
}

// Identity creates the n×n identity matrix.
// Complexity: O(n²) time and memory.
func Identity[T Element](n int) (*Dense[T], error) {
	m, err := New[T](n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// FromSlice creates an n×n matrix from a flat row-major slice of exactly
// n² elements. The slice is copied; the caller keeps ownership.
// Complexity: O(n²).
func FromSlice[T Element](n int, elems []T) (*Dense[T], error) {
	if n <= 0 {
		return nil, ErrBadSize
	}
	if len(elems) != n*n {
		return nil, ErrSizeMismatch
	}

	m := &Dense[T]{n: n, data: make([]T, n*n)}
	copy(m.data, elems)

	return m, nil
}

// FromRows creates a square matrix from a flat row-major slice, deriving
// the size as √len. A slice whose length is not a perfect square is
// rejected with ErrNotSquare — never silently truncated.
// Complexity: O(n²).
func FromRows[T Element](elems []T) (*Dense[T], error) {
	if len(elems) == 0 {
		return nil, ErrBadSize
	}

	n := int(math.Sqrt(float64(len(elems))))
	if n*n != len(elems) {
		return nil, ErrNotSquare
	}

	return FromSlice(n, elems)
}

// Size returns the matrix size n (the matrix is n×n).
// Complexity: O(1).
func (m *Dense[T]) Size() int {
	return m.n
}

// At retrieves the element at (row, col) with bounds checking.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	var zero T
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return zero, denseErrorf("At", row, col, ErrOutOfRange)
	}

	return m.data[row*m.n+col], nil
}

// Set assigns v at (row, col) with bounds checking.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return denseErrorf("Set", row, col, ErrOutOfRange)
	}
	m.data[row*m.n+col] = v

	return nil
}

// at reads (row, col) without bounds checks. Internal hot paths only;
// callers must have validated shapes up front.
func (m *Dense[T]) at(row, col int) T {
	return m.data[row*m.n+col]
}

// set writes (row, col) without bounds checks. Internal hot paths only.
func (m *Dense[T]) set(row, col int, v T) {
	m.data[row*m.n+col] = v
}

// Clone returns a deep copy of the matrix.
// Complexity: O(n²).
func (m *Dense[T]) Clone() *Dense[T] {
	buf := make([]T, len(m.data))
	copy(buf, m.data)

	return &Dense[T]{n: m.n, data: buf}
}

// Data returns a copy of the flat row-major element buffer (length n²).
// The copy keeps the receiver immutable from the caller's perspective.
// Complexity: O(n²).
func (m *Dense[T]) Data() []T {
	buf := make([]T, len(m.data))
	copy(buf, m.data)

	return buf
}

// String implements fmt.Stringer for debugging.
// Complexity: O(n²) for string construction.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		sb.WriteString("[")
		for j := 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", m.data[i*m.n+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
