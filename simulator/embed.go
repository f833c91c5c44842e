// Package simulator - basis-index insertion maps and gate enlargement.
//
// Two strategies produce the full-width operator for a gate:
//
//   - EnlargeSingle tensors the gate between identities (the literal
//     definition of acting on one qubit of many).
//   - EnlargeTwo remaps basis indices through InsertTwoBits, writing
//     each gate element straight into its full-space position without
//     materializing a circuit-wide Kronecker product per step.
//
// Both encode the q_{n-1} ⊗ … ⊗ q_0 basis convention; their agreement
// on small systems is asserted by tests before the fast path is used.

package simulator

import (
	"fmt"

	"github.com/atilag/unitary/gate"
	"github.com/atilag/unitary/matrix"
)

// InsertBit takes a basis index k, inserts bit b at position pos, and
// shifts the bits at and above pos up by one to make room.
// Complexity: O(1).
func InsertBit(b, pos, k int) int {
	low := k & ((1 << pos) - 1) // bits below pos survive unchanged

	return ((((k >> pos) << 1) | b) << pos) | low
}

// InsertTwoBits inserts bit b1 at position p1 and bit b2 at position p2
// of the basis index k. The higher position is inserted first with its
// offset reduced by one, so the result is independent of the argument
// order of the two (bit, position) pairs.
//
// Calling with p1 == p2 is an unrecoverable usage error and panics:
// two bits cannot occupy one position.
// Complexity: O(1).
func InsertTwoBits(b1, p1, b2, p2, k int) int {
	if p1 == p2 {
		panic(fmt.Sprintf("simulator: InsertTwoBits positions collide (%d)", p1))
	}
	if p1 > p2 {
		return InsertBit(b2, p2, InsertBit(b1, p1-1, k))
	}

	return InsertBit(b1, p1, InsertBit(b2, p2-1, k))
}

// EnlargeSingle enlarges a single-qubit gate to the full n-qubit
// operator space:
//
//	identity(2^(n−q−1)) ⊗ gate ⊗ identity(2^q)
//
// where q is the target qubit, counted from the least-significant basis
// bit. Exponential in n by construction.
// Complexity: O(4^n) time and space.
func EnlargeSingle[T matrix.Element](g *gate.Gate[T], qubit, n int) (*matrix.Dense[T], error) {
	if g == nil {
		return nil, matrix.ErrNilMatrix
	}
	if g.Width() != 1 {
		return nil, fmt.Errorf("enlarge single: width %d: %w", g.Width(), gate.ErrWidthMismatch)
	}
	if qubit < 0 || qubit >= n {
		return nil, fmt.Errorf("enlarge single: qubit %d of %d: %w", qubit, n, ErrQubitOutOfRange)
	}

	high, err := matrix.Identity[T](1 << (n - qubit - 1))
	if err != nil {
		return nil, err
	}
	low, err := matrix.Identity[T](1 << qubit)
	if err != nil {
		return nil, err
	}

	inner, err := g.Matrix().Kronecker(low)
	if err != nil {
		return nil, err
	}

	return high.Kronecker(inner)
}

// EnlargeTwo enlarges a two-qubit gate to the full n-qubit operator
// space by basis-index remapping: for every assignment of the n−2
// spectator qubits (index k) and every pair of 2-qubit sub-indices, the
// gate element lands at
//
//	(InsertTwoBits(r0, q0, r1, q1, k), InsertTwoBits(c0, q0, c1, q1, k))
//
// with the gate's own basis index encoded as q0_bit + 2·q1_bit. For the
// controlled-NOT, q0 is the control and q1 the target. Any 4×4 gate is
// accepted; arbitrary-gate correctness is covered by dedicated tests.
// Complexity: O(4^n) time and space.
func EnlargeTwo[T matrix.Element](g *gate.Gate[T], q0, q1, n int) (*matrix.Dense[T], error) {
	if g == nil {
		return nil, matrix.ErrNilMatrix
	}
	if g.Width() != 2 {
		return nil, fmt.Errorf("enlarge two: width %d: %w", g.Width(), gate.ErrWidthMismatch)
	}
	if n < 2 {
		return nil, fmt.Errorf("enlarge two: %d qubits: %w", n, ErrBadCircuit)
	}
	if q0 < 0 || q0 >= n || q1 < 0 || q1 >= n || q0 == q1 {
		return nil, fmt.Errorf("enlarge two: qubits (%d,%d) of %d: %w", q0, q1, n, ErrQubitOutOfRange)
	}

	out, err := matrix.New[T](1 << n)
	if err != nil {
		return nil, err
	}

	for k := 0; k < 1<<(n-2); k++ {
		for r0 := 0; r0 < 2; r0++ {
			for r1 := 0; r1 < 2; r1++ {
				row := InsertTwoBits(r0, q0, r1, q1, k)
				for c0 := 0; c0 < 2; c0++ {
					for c1 := 0; c1 < 2; c1++ {
						v, err := g.At(r0+2*r1, c0+2*c1)
						if err != nil {
							return nil, err
						}
						if err := out.Set(row, InsertTwoBits(c0, q0, c1, q1, k), v); err != nil {
							return nil, err
						}
					}
				}
			}
		}
	}

	return out, nil
}
