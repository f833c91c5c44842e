// Package matrix - operator algebra and structure editing on Dense.
//
// All binary operations validate operand sizes up front and then run on
// the unchecked fast path. Loop orders are fixed so that floating-point
// accumulation is deterministic across runs: the reference behavior of
// the simulator assumes sequential evaluation order.

package matrix

import "math"

// Embed overwrites the sub-block of the receiver whose top-left corner
// is at (row, col) with the elements of sub.
// Stage 1 (Validate): sub must fit entirely within the receiver.
// Stage 2 (Execute): copy sub row by row.
// Complexity: O(|sub|²).
func (m *Dense[T]) Embed(sub *Dense[T], row, col int) error {
	if m == nil || sub == nil {
		return ErrNilMatrix
	}
	if row < 0 || col < 0 || row+sub.n > m.n || col+sub.n > m.n {
		return denseErrorf("Embed", row, col, ErrOutOfRange)
	}

	for x := 0; x < sub.n; x++ {
		for y := 0; y < sub.n; y++ {
			m.set(row+x, col+y, sub.at(x, y))
		}
	}

	return nil
}

// Block extracts a copy of the size×size sub-block whose top-left corner
// is at (row, col). Block is the read counterpart of Embed:
// m.Embed(s, i, j) followed by m.Block(i, j, s.Size()) returns s.
// Complexity: O(size²).
func (m *Dense[T]) Block(row, col, size int) (*Dense[T], error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if size <= 0 {
		return nil, ErrBadSize
	}
	if row < 0 || col < 0 || row+size > m.n || col+size > m.n {
		return nil, denseErrorf("Block", row, col, ErrOutOfRange)
	}

	sub := &Dense[T]{n: size, data: make([]T, size*size)}
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			sub.set(x, y, m.at(row+x, col+y))
		}
	}

	return sub, nil
}

// PermuteRows builds a new matrix with row i of the receiver placed at
// row perm[i]. perm must be a bijection of {0, …, n-1}; anything else is
// rejected with ErrBadPermutation.
// Complexity: O(n²).
func (m *Dense[T]) PermuteRows(perm []int) (*Dense[T], error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if err := validPermutation(perm, m.n); err != nil {
		return nil, err
	}

	out := &Dense[T]{n: m.n, data: make([]T, m.n*m.n)}
	for src, dst := range perm {
		for j := 0; j < m.n; j++ {
			out.set(dst, j, m.at(src, j))
		}
	}

	return out, nil
}

// PermuteColumns builds a new matrix with column j of the receiver
// placed at column perm[j]. Same bijection contract as PermuteRows.
// Complexity: O(n²).
func (m *Dense[T]) PermuteColumns(perm []int) (*Dense[T], error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if err := validPermutation(perm, m.n); err != nil {
		return nil, err
	}

	out := &Dense[T]{n: m.n, data: make([]T, m.n*m.n)}
	for src, dst := range perm {
		for i := 0; i < m.n; i++ {
			out.set(i, dst, m.at(i, src))
		}
	}

	return out, nil
}

// validPermutation checks that perm is a bijection of {0, …, n-1}.
// Complexity: O(n) time, O(n) space.
func validPermutation(perm []int, n int) error {
	if len(perm) != n {
		return ErrBadPermutation
	}

	seen := make([]bool, n)
	for _, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return ErrBadPermutation
		}
		seen[p] = true
	}

	return nil
}

// Add returns the element-wise sum of two same-size matrices.
// A size mismatch is a programming error upstream (sizes derive from a
// fixed qubit count), surfaced as ErrSizeMismatch.
// Complexity: O(n²).
func (m *Dense[T]) Add(other *Dense[T]) (*Dense[T], error) {
	if m == nil || other == nil {
		return nil, ErrNilMatrix
	}
	if m.n != other.n {
		return nil, ErrSizeMismatch
	}

	out := &Dense[T]{n: m.n, data: make([]T, len(m.data))}
	for i, v := range m.data {
		out.data[i] = v + other.data[i]
	}

	return out, nil
}

// Mul returns the standard matrix product m·other between same-size
// matrices, using the O(n³) triple loop with k innermost so that the
// accumulation order is deterministic.
// Complexity: O(n³) time, O(n²) space.
func (m *Dense[T]) Mul(other *Dense[T]) (*Dense[T], error) {
	if m == nil || other == nil {
		return nil, ErrNilMatrix
	}
	if m.n != other.n {
		return nil, ErrSizeMismatch
	}

	n := m.n
	out := &Dense[T]{n: n, data: make([]T, n*n)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var acc T
			for k := 0; k < n; k++ {
				acc += m.at(i, k) * other.at(k, j)
			}
			out.set(i, j, acc)
		}
	}

	return out, nil
}

// MulVec applies the matrix to a vector of length n, producing a new
// vector of length n. The result stays a vector: quantum states are not
// matrices.
// Complexity: O(n²).
func (m *Dense[T]) MulVec(v []T) ([]T, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if len(v) != m.n {
		return nil, ErrSizeMismatch
	}

	out := make([]T, m.n)
	for i := 0; i < m.n; i++ {
		var acc T
		for j := 0; j < m.n; j++ {
			acc += m.at(i, j) * v[j]
		}
		out[i] = acc
	}

	return out, nil
}

// ApproxEqual reports whether both matrices have the same size and every
// pair of elements differs by less than eps in each scalar component.
// Different sizes compare unequal (no error: inequality is an answer).
// Complexity: O(n²).
func (m *Dense[T]) ApproxEqual(other *Dense[T], eps float64) bool {
	if m == nil || other == nil || m.n != other.n {
		return false
	}

	for i, v := range m.data {
		if !approxEq(v, other.data[i], eps) {
			return false
		}
	}

	return true
}

// approxEq compares two elements component-wise under eps. The lift to
// complex128 is exact for both scalar domains.
func approxEq[T Element](a, b T, eps float64) bool {
	za, zb := lift(a), lift(b)

	return math.Abs(real(za)-real(zb)) < eps && math.Abs(imag(za)-imag(zb)) < eps
}

// lift converts an element to complex128 exactly for both scalar domains.
func lift[T Element](v T) complex128 {
	switch x := any(v).(type) {
	case float64:
		return complex(x, 0)
	case complex128:
		return x
	}

	return 0
}

// ToComplex lifts a real matrix into the complex domain, element by
// element. Used to compose real permutation-encoded enlargements into a
// complex running unitary.
// Complexity: O(n²).
func ToComplex(m *Dense[float64]) *Dense[complex128] {
	if m == nil {
		return nil
	}

	out := &Dense[complex128]{n: m.n, data: make([]complex128, len(m.data))}
	for i, v := range m.data {
		out.data[i] = complex(v, 0)
	}

	return out
}
