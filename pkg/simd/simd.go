package simd

import "github.com/viterin/vek"

// Implementation represents the active SIMD implementation
type Implementation string

const (
	// ImplGeneric indicates pure Go fallback (no SIMD)
	ImplGeneric Implementation = "generic"
	// ImplAVX2 indicates x86 AVX2+FMA SIMD
	ImplAVX2 Implementation = "avx2"
	// ImplNEON indicates ARM NEON SIMD
	ImplNEON Implementation = "neon"
)

// RuntimeInfo contains information about the active SIMD implementation
type RuntimeInfo struct {
	// Implementation is the active SIMD backend
	Implementation Implementation
	// Features lists specific CPU features being used
	Features []string
	// Accelerated indicates whether SIMD acceleration is active
	Accelerated bool
}

// Sum returns the sum of all elements of x, accumulated strictly in order.
// Returns 0 for an empty slice.
//
// This is the reference implementation: every other variant must agree
// with it within floats.Close tolerance.
func Sum(x []float64) float64 {
	s := 0.0
	for _, v := range x {
		s += v
	}
	return s
}

// SumLoop returns the sum of all elements of x via an explicit index loop,
// accumulator initialized to 0.0, strictly sequential. Returns 0 for an
// empty slice.
//
// Numerically identical to Sum; kept separate because the two are
// measured as distinct variants.
func SumLoop(x []float64) float64 {
	s := 0.0
	for i := 0; i < len(x); i++ {
		s += x[i]
	}
	return s
}

// SumVec returns the sum of all elements of x using the platform's
// lane-parallel kernel. Returns 0 for an empty slice.
//
// Accumulation order is unspecified, so the result may differ from Sum in
// its last bits.
func SumVec(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return sumVec(x)
}

// VekSum returns the sum of all elements of x via the vek library's
// optimized kernel. Returns 0 for an empty slice.
func VekSum(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return vek.Sum(x)
}

// Info returns information about the active SIMD implementation.
//
// Example:
//
//	info := simd.Info()
//	if info.Accelerated {
//	    fmt.Printf("Using %s SIMD\n", info.Implementation)
//	}
func Info() RuntimeInfo {
	return runtimeInfo()
}
