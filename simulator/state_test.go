package simulator_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/atilag/unitary/gate"
	"github.com/atilag/unitary/matrix"
	"github.com/atilag/unitary/simulator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGroundState(t *testing.T) {
	s, err := simulator.NewGroundState(3)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Qubits())

	amps := s.Amplitudes()
	require.Len(t, amps, 8)
	assert.Equal(t, complex128(1), amps[0])
	for i := 1; i < len(amps); i++ {
		assert.Equal(t, complex128(0), amps[i], "basis %d", i)
	}

	_, err = simulator.NewGroundState(0)
	assert.ErrorIs(t, err, simulator.ErrBadCircuit)
}

func TestFromAmplitudes(t *testing.T) {
	src := []complex128{0, 1, 0, 0}
	s, err := simulator.FromAmplitudes(src)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Qubits())

	// The input slice is copied, not aliased.
	src[1] = 0
	amp, err := s.Amplitude(1)
	require.NoError(t, err)
	assert.Equal(t, complex128(1), amp)

	for _, bad := range [][]complex128{nil, {1}, {1, 0, 0}, {1, 0, 0, 0, 0, 0}} {
		_, err := simulator.FromAmplitudes(bad)
		assert.ErrorIs(t, err, simulator.ErrBadCircuit, "len %d", len(bad))
	}
}

func TestAmplitude_Bounds(t *testing.T) {
	s, err := simulator.NewGroundState(1)
	require.NoError(t, err)

	_, err = s.Amplitude(-1)
	assert.ErrorIs(t, err, simulator.ErrQubitOutOfRange)
	_, err = s.Amplitude(2)
	assert.ErrorIs(t, err, simulator.ErrQubitOutOfRange)
}

// TestApply_Hadamard: |0⟩ goes to (|0⟩ + |1⟩)/√2 and the original state
// is left untouched.
func TestApply_Hadamard(t *testing.T) {
	s, err := simulator.NewGroundState(1)
	require.NoError(t, err)

	next, err := s.Apply(gate.Hadamard().Matrix())
	require.NoError(t, err)

	h := 1 / math.Sqrt2
	amps := next.Amplitudes()
	assert.InDelta(t, h, real(amps[0]), 1e-12)
	assert.InDelta(t, h, real(amps[1]), 1e-12)

	// Norm is preserved and the source state is unchanged.
	assert.InDelta(t, 1, cmplx.Abs(amps[0])*cmplx.Abs(amps[0])+cmplx.Abs(amps[1])*cmplx.Abs(amps[1]), 1e-12)
	assert.Equal(t, complex128(1), s.Amplitudes()[0])
}

func TestApply_SizeMismatch(t *testing.T) {
	s, err := simulator.NewGroundState(2)
	require.NoError(t, err)

	u, err := matrix.Identity[complex128](2)
	require.NoError(t, err)

	_, err = s.Apply(u)
	assert.ErrorIs(t, err, matrix.ErrSizeMismatch)
}
