// Package scalar provides complex-number helpers for quantum linear
// algebra on Go's native complex128 type.
//
// The package defines the numeric policy shared by the whole module:
// every "value equality" downstream (matrix comparison, unitary
// verification) is approximate equality with tolerance Epsilon, never
// bit-exact comparison, because repeated complex multiplication
// accumulates floating-point error in the least-significant bits.
//
// Provided operations:
//   - Equal / EqualTol — component-wise approximate equality
//   - Pow              — non-negative integer powers via repeated squaring
//   - Euler            — polar construction r·e^{iφ}
//   - NthRootOfUnity   — primitive nth roots of unity
//   - Exp              — the complex exponential e^z
//   - Scale            — scaling by a real factor
//   - NormSqr          — squared magnitude |z|²
//
// All functions are total, pure, and deterministic: no global state, no
// randomness, no error paths.
package scalar
