// Package gate defines the unit of composition for the unitary
// simulator: a matrix paired with the qubit width it is declared to act
// on, plus constructors for the normalized gate basis.
//
// A Gate validates that its matrix dimension equals 2^width, nothing
// more. It does not check unitarity: gates built from the parametrized
// formulas below are unitary by construction, and whoever hand-builds a
// gate from raw elements owns that property.
//
// The normalized basis consists of two gates:
//
//   - U(θ, φ, λ) — the parametrized single-qubit unitary every
//     one-qubit operation unrolls to.
//   - CX — the fixed controlled-NOT, the only two-qubit gate, encoded
//     as a real permutation matrix with basis index
//     control_bit + 2·target_bit.
//
// Hadamard and PauliX are provided as named specializations of U.
package gate
