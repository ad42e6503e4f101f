// Package floats holds the approximate-equality check used to validate
// every summation variant against the reference result.
package floats

import "math"

// machine epsilon for float64 (2^-52)
const eps = 2.220446049250313e-16

// Close reports whether a and b agree within the rounding error budget of
// summing n float64 terms.
//
// Tolerance: 1e-12 + eps * n * max(|a|, |b|).
//
// The term linear in n bounds the worst case for strictly sequential
// accumulation (each of n additions can contribute one rounding error
// proportional to the running magnitude). Reordered accumulation, as in the
// vectorized variants, typically lands far inside this bound (error grows
// roughly with sqrt(n)), while a single dropped or duplicated element of a
// uniform [0,1) array shifts the sum by about 0.5 and is rejected: at
// n=10^7 with sums near 5e6 the tolerance works out to roughly 0.011.
//
// The small absolute floor covers sums near zero, including the n=0 case
// where both sides must be exactly 0.
func Close(a, b float64, n int) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	tol := 1e-12 + eps*float64(n)*math.Max(math.Abs(a), math.Abs(b))
	return math.Abs(a-b) <= tol
}
