package matrix_test

import (
	"testing"

	"github.com/atilag/unitary/matrix"
	"github.com/atilag/unitary/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Validation rejects non-positive sizes and zero-fills valid ones.
func TestNew_Validation(t *testing.T) {
	_, err := matrix.New[complex128](0)
	assert.ErrorIs(t, err, matrix.ErrBadSize, "size 0 must be rejected")

	_, err = matrix.New[float64](-3)
	assert.ErrorIs(t, err, matrix.ErrBadSize, "negative size must be rejected")

	m, err := matrix.New[complex128](3)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Size())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			assert.Equal(t, complex128(0), v, "new matrix must be zero-filled")
		}
	}
}

// TestIdentity_Diagonal verifies ones on the diagonal, zeros elsewhere.
func TestIdentity_Diagonal(t *testing.T) {
	id, err := matrix.Identity[complex128](4)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			v, err := id.At(i, j)
			require.NoError(t, err)
			if i == j {
				assert.Equal(t, complex128(1), v)
			} else {
				assert.Equal(t, complex128(0), v)
			}
		}
	}
}

// TestFromSlice_Validation requires exactly n² elements.
func TestFromSlice_Validation(t *testing.T) {
	_, err := matrix.FromSlice(2, []float64{1, 2, 3})
	assert.ErrorIs(t, err, matrix.ErrSizeMismatch, "3 elements cannot fill a 2×2 matrix")

	m, err := matrix.FromSlice(2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v, "row-major order: element (1,0) is the third value")
}

// TestFromRows_RejectsNonSquareLength verifies the explicit rejection of
// a flat slice whose length is not a perfect square (no truncation).
func TestFromRows_RejectsNonSquareLength(t *testing.T) {
	for _, badLen := range []int{2, 3, 5, 8, 15} {
		_, err := matrix.FromRows(make([]complex128, badLen))
		assert.ErrorIs(t, err, matrix.ErrNotSquare, "length %d must be rejected", badLen)
	}

	_, err := matrix.FromRows([]complex128{})
	assert.ErrorIs(t, err, matrix.ErrBadSize, "empty slice must be rejected")

	m, err := matrix.FromRows([]complex128{1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(t, err)
	assert.Equal(t, 3, m.Size(), "9 elements must infer a 3×3 matrix")
}

// TestAtSet_Bounds verifies bounds checking on the public accessors.
func TestAtSet_Bounds(t *testing.T) {
	m, err := matrix.New[float64](2)
	require.NoError(t, err)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(-1, 0, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 2, 1), matrix.ErrOutOfRange)

	require.NoError(t, m.Set(1, 1, 2.5))
	v, err := m.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)
}

// TestClone_Independence verifies deep copy semantics.
func TestClone_Independence(t *testing.T) {
	m, err := matrix.FromSlice(2, []complex128{1, 2, 3, 4})
	require.NoError(t, err)

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 99))

	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, complex128(1), v, "mutating the clone must not touch the original")
	assert.True(t, m.ApproxEqual(m.Clone(), scalar.Epsilon))
}

// TestData_RowMajorCopy verifies flat export order and isolation.
func TestData_RowMajorCopy(t *testing.T) {
	m, err := matrix.FromSlice(2, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	d := m.Data()
	assert.Equal(t, []float64{1, 2, 3, 4}, d)

	d[0] = 42
	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "Data must return a copy")
}
