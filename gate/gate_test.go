package gate_test

import (
	"math"
	"testing"

	"github.com/atilag/unitary/gate"
	"github.com/atilag/unitary/matrix"
	"github.com/atilag/unitary/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_WidthValidation requires the matrix dimension to equal 2^width.
func TestNew_WidthValidation(t *testing.T) {
	m2, err := matrix.Identity[complex128](2)
	require.NoError(t, err)
	m3, err := matrix.Identity[complex128](3)
	require.NoError(t, err)

	g, err := gate.New(1, m2)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Width())

	_, err = gate.New(2, m2)
	assert.ErrorIs(t, err, gate.ErrWidthMismatch, "a 2×2 matrix is not a 2-qubit gate")
	_, err = gate.New(1, m3)
	assert.ErrorIs(t, err, gate.ErrWidthMismatch, "a 3×3 matrix is no gate at all")
	_, err = gate.New(0, m2)
	assert.ErrorIs(t, err, gate.ErrWidthMismatch, "width must be at least 1")
}

// TestFromRows_WidthInference derives width from element count and
// rejects counts that are not 4^width.
func TestFromRows_WidthInference(t *testing.T) {
	g1, err := gate.FromRows(make([]complex128, 4))
	require.NoError(t, err)
	assert.Equal(t, 1, g1.Width())

	g2, err := gate.FromRows(make([]float64, 16))
	require.NoError(t, err)
	assert.Equal(t, 2, g2.Width())

	_, err = gate.FromRows(make([]complex128, 9))
	assert.ErrorIs(t, err, gate.ErrBadElements, "a 3×3 matrix is not a gate")
	_, err = gate.FromRows(make([]complex128, 1))
	assert.ErrorIs(t, err, gate.ErrBadElements, "a 1×1 matrix is not a gate")
	_, err = gate.FromRows(make([]complex128, 6))
	assert.ErrorIs(t, err, matrix.ErrNotSquare, "non-square lengths are rejected upstream")
}

// TestU_HadamardEntries verifies U(π/2, 0, π) reproduces the Hadamard
// matrix within tolerance.
func TestU_HadamardEntries(t *testing.T) {
	h := gate.Hadamard()
	inv := 1 / math.Sqrt2

	want := [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	vals := []complex128{complex(inv, 0), complex(inv, 0), complex(inv, 0), complex(-inv, 0)}
	for k, rc := range want {
		got, err := h.At(rc[0], rc[1])
		require.NoError(t, err)
		assert.True(t, scalar.Equal(vals[k], got), "H[%d,%d]", rc[0], rc[1])
	}
}

// TestU_InverseComposesToIdentity verifies U(−θ,−λ,−φ)·U(θ,φ,λ) ≈ I.
func TestU_InverseComposesToIdentity(t *testing.T) {
	theta, phi, lambda := 0.7, -1.3, 2.1

	u := gate.U(theta, phi, lambda)
	inv := gate.U(-theta, -lambda, -phi)

	prod, err := inv.Matrix().Mul(u.Matrix())
	require.NoError(t, err)

	id, err := matrix.Identity[complex128](2)
	require.NoError(t, err)
	assert.True(t, prod.ApproxEqual(id, scalar.Epsilon), "U⁻¹·U must be the identity")
}

// TestPauliX_FlipsBasis verifies U(π, 0, π) is the bit flip.
func TestPauliX_FlipsBasis(t *testing.T) {
	x := gate.PauliX()

	got, err := x.Matrix().MulVec([]complex128{1, 0})
	require.NoError(t, err)
	assert.True(t, scalar.Equal(0, got[0]))
	assert.True(t, scalar.Equal(1, got[1]))
}

// TestCX_PermutationStructure verifies the fixed controlled-NOT swaps
// exactly the two basis states with the control bit set.
func TestCX_PermutationStructure(t *testing.T) {
	cx := gate.CX()
	assert.Equal(t, 2, cx.Width())

	// Basis index = control_bit + 2·target_bit.
	want := map[[2]int]float64{
		{0, 0}: 1, // |c=0,t=0⟩ fixed
		{2, 2}: 1, // |c=0,t=1⟩ fixed
		{1, 3}: 1, // |c=1,t=1⟩ → |c=1,t=0⟩
		{3, 1}: 1, // |c=1,t=0⟩ → |c=1,t=1⟩
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			got, err := cx.At(i, j)
			require.NoError(t, err)
			assert.Equal(t, want[[2]int{i, j}], got, "CX[%d,%d]", i, j)
		}
	}
}
