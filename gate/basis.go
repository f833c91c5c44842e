// Package gate: constructors for the normalized gate basis.

package gate

import (
	"math"

	"github.com/atilag/unitary/scalar"
)

// U constructs the parametrized single-qubit unitary
//
//	⎡ cos(θ/2)            −e^{iλ}·sin(θ/2)      ⎤
//	⎣ e^{iφ}·sin(θ/2)      e^{i(φ+λ)}·cos(θ/2)  ⎦
//
// Every single-qubit operation in an unrolled circuit reduces to U for
// some (θ, φ, λ). The inverse of U(θ, φ, λ) is U(−θ, −λ, −φ).
// Complexity: O(1).
func U(theta, phi, lambda float64) *Gate[complex128] {
	cos := complex(math.Cos(theta/2), 0)
	sin := complex(math.Sin(theta/2), 0)

	g, err := FromRows([]complex128{
		cos, -scalar.Exp(scalar.I*complex(lambda, 0)) * sin,
		scalar.Exp(scalar.I*complex(phi, 0)) * sin, scalar.Exp(scalar.I*complex(phi+lambda, 0)) * cos,
	})
	if err != nil {
		// Four elements always form a valid width-1 gate.
		panic(err)
	}

	return g
}

// CX constructs the fixed controlled-NOT gate as a real 4×4 permutation
// matrix. Basis index encoding: control_bit + 2·target_bit, so rows
// |c=1,t=0⟩ and |c=1,t=1⟩ swap and the control subspace is untouched.
// Complexity: O(1).
func CX() *Gate[float64] {
	g, err := FromRows([]float64{
		1, 0, 0, 0,
		0, 0, 0, 1,
		0, 0, 1, 0,
		0, 1, 0, 0,
	})
	if err != nil {
		panic(err)
	}

	return g
}

// Hadamard is U(π/2, 0, π): the equal-superposition gate.
func Hadamard() *Gate[complex128] {
	return U(math.Pi/2, 0, math.Pi)
}

// PauliX is U(π, 0, π): the bit-flip gate.
func PauliX() *Gate[complex128] {
	return U(math.Pi, 0, math.Pi)
}
