// Package matrix provides generic square dense matrices for quantum
// operator algebra.
//
// The matrix package provides:
//
//   - Dense[T] — a row-major square matrix over float64 or complex128,
//     stored in a flat slice for cache friendliness (offset = i*n + j).
//   - Constructors: New (zeros), Identity, FromSlice, FromRows.
//   - Operator algebra: Add, Mul (O(N³) triple loop), MulVec, Kronecker.
//   - Structure editing: Embed/Block sub-matrix write/read, row and
//     column permutations with bijection validation.
//   - ApproxEqual — element-wise tolerance comparison; the package never
//     compares floating-point values bit-exactly.
//
// Basis convention: when a Dense represents an operator over qubits its
// size is a power of two and the basis is ordered q_{n-1} ⊗ … ⊗ q_1 ⊗ q_0
// (qubit 0 is the least-significant bit of the basis index). Kronecker
// encodes exactly this ordering; the simulator package's bit-insertion
// maps rely on it.
//
// Matrices are produced functionally: operations return new matrices and
// never mutate operands, except Set and Embed which write into the
// receiver during construction.
//
// All public entry points validate their inputs and return sentinel
// errors (matched via errors.Is); nothing in this package panics on a
// user-triggered condition.
package matrix
