// Package unitary computes the exact global unitary matrix of a quantum
// circuit by folding a normalized operation list into a single
// 2^n × 2^n complex matrix.
//
// 🚀 What is unitary?
//
//	A deterministic, dependency-light library that brings together:
//		• scalar/    — complex128 helpers: tolerance equality, integer powers,
//		               roots of unity, polar construction
//		• matrix/    — generic square dense matrices (float64 or complex128)
//		               with Kronecker products, embedding, permutation
//		• gate/      — validated gate wrappers and the standard U(θ,φ,λ)
//		               and controlled-NOT constructors
//		• simulator/ — bit-index embedding and the sequential engine that
//		               composes every gate into one cumulative unitary
//
// ✨ Why choose unitary?
//
//   - Exact — full 2^n × 2^n dense unitary, no sampling, no approximation
//   - Deterministic — fixed loop orders, no global state, no randomness
//   - Pure Go — no cgo, no hidden deps
//   - Honest about cost — memory and time are O(4^n) by construction;
//     the engine enforces an explicit qubit limit instead of hiding it
//
// Quick ASCII example (a Bell pair):
//
//	q1: ──H──●──        H on q1, then CNOT q1→q0, yields
//	         │          (|00⟩ + |11⟩)/√2 from the ground state.
//	q0: ─────X──
//
// See the simulator package docs for the engine contract, and
// examples/bellstate for a runnable program.
//
//	go get github.com/atilag/unitary/simulator
package unitary
