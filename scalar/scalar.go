// Package scalar: complex128 arithmetic helpers and the module-wide
// numeric policy (tolerance constants).
package scalar

import (
	"math"
	"math/bits"
)

// Numeric policy (single source of truth).
const (
	// Epsilon is the default tolerance for approximate equality of
	// complex values. It absorbs the error accumulated by long chains of
	// complex multiplications in 2^n × 2^n matrix products.
	Epsilon = 1e-12

	// powIterThreshold is the exponent below which Pow multiplies
	// iteratively instead of squaring; tiny exponents are cheaper as a
	// straight product.
	powIterThreshold = 5
)

// I is the imaginary unit.
const I = complex(0, 1)

// Equal reports whether a and b are approximately equal under Epsilon.
// Complexity: O(1).
func Equal(a, b complex128) bool {
	return EqualTol(a, b, Epsilon)
}

// EqualTol reports whether a and b are approximately equal: both the
// real and the imaginary components must differ by less than tol.
// Complexity: O(1).
func EqualTol(a, b complex128, tol float64) bool {
	return math.Abs(real(a)-real(b)) < tol && math.Abs(imag(a)-imag(b)) < tol
}

// Euler constructs r·e^{iφ} from polar form.
// Complexity: O(1).
func Euler(r, phi float64) complex128 {
	return complex(r*math.Cos(phi), r*math.Sin(phi))
}

// NthRootOfUnity returns the primitive nth root of unity e^{i·2π/n},
// or 1 when n == 0.
// Complexity: O(1).
func NthRootOfUnity(n uint) complex128 {
	if n == 0 {
		return 1
	}

	return Euler(1, 2*math.Pi/float64(n))
}

// Pow computes z^n for a non-negative integer exponent.
//
// Stage 1: n == 0 returns the multiplicative identity.
// Stage 2: small n (< powIterThreshold) multiplies iteratively.
// Stage 3: otherwise decompose n = 2^l + r with l = floor(log2 n),
// compute z^(2^l) by l squarings and combine with Pow(z, r).
//
// Complexity: O(log n) multiplications.
func Pow(z complex128, n uint) complex128 {
	if n == 0 {
		return 1
	}
	if n < powIterThreshold {
		x := complex128(1)
		for k := uint(0); k < n; k++ {
			x *= z
		}

		return x
	}

	// l = floor(log2 n), r = n - 2^l.
	l := uint(bits.Len(n)) - 1
	r := n - 1<<l

	x := z
	for k := uint(0); k < l; k++ {
		x *= x
	}

	return Pow(z, r) * x
}

// Exp computes the complex exponential e^z.
// Complexity: O(1).
func Exp(z complex128) complex128 {
	return Euler(math.Exp(real(z)), imag(z))
}

// Scale multiplies both components of z by the real factor t.
// Complexity: O(1).
func Scale(z complex128, t float64) complex128 {
	return complex(real(z)*t, imag(z)*t)
}

// NormSqr computes the squared norm |z|² = re² + im².
// Complexity: O(1).
func NormSqr(z complex128) float64 {
	return real(z)*real(z) + imag(z)*imag(z)
}
