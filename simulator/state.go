// Package simulator - quantum state vectors.
//
// A state vector is its own value type: an ordered sequence of 2^n
// complex amplitudes. It is deliberately not a matrix — applying an
// operator to a state yields a state, never a reshaped square matrix.

package simulator

import (
	"github.com/atilag/unitary/matrix"
)

// StateVector holds the 2^n complex amplitudes of an n-qubit register,
// indexed by basis state with qubit 0 as the least-significant bit.
type StateVector struct {
	qubits int
	amps   []complex128
}

// NewGroundState returns |0…0⟩: amplitude 1 on basis state 0.
// Complexity: O(2^n).
func NewGroundState(qubits int) (*StateVector, error) {
	if qubits < 1 {
		return nil, ErrBadCircuit
	}

	amps := make([]complex128, 1<<qubits)
	amps[0] = 1

	return &StateVector{qubits: qubits, amps: amps}, nil
}

// FromAmplitudes builds a state vector from a 2^n-length amplitude
// slice (copied). The length must be a power of two and at least 2.
func FromAmplitudes(amps []complex128) (*StateVector, error) {
	n := len(amps)
	if n < 2 || n&(n-1) != 0 {
		return nil, ErrBadCircuit
	}

	qubits := 0
	for 1<<qubits < n {
		qubits++
	}

	buf := make([]complex128, n)
	copy(buf, amps)

	return &StateVector{qubits: qubits, amps: buf}, nil
}

// Qubits returns the register width n.
func (s *StateVector) Qubits() int {
	return s.qubits
}

// Amplitude returns the amplitude of basis state i.
func (s *StateVector) Amplitude(i int) (complex128, error) {
	if i < 0 || i >= len(s.amps) {
		return 0, ErrQubitOutOfRange
	}

	return s.amps[i], nil
}

// Amplitudes returns a copy of all 2^n amplitudes in basis order.
func (s *StateVector) Amplitudes() []complex128 {
	buf := make([]complex128, len(s.amps))
	copy(buf, s.amps)

	return buf
}

// Apply returns the new state u·s. The operator size must equal the
// state dimension.
// Complexity: O(4^n).
func (s *StateVector) Apply(u *matrix.Dense[complex128]) (*StateVector, error) {
	amps, err := u.MulVec(s.amps)
	if err != nil {
		return nil, err
	}

	return &StateVector{qubits: s.qubits, amps: amps}, nil
}
