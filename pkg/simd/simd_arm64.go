//go:build arm64 && !nosimd

package simd

import "github.com/viterin/vek"

// ARM64 NEON-optimized implementation using the viterin/vek SIMD library.
// vek provides NEON SIMD assembly for float64 vectors on ARM64.

func sumVec(x []float64) float64 {
	return vek.Sum(x)
}

func runtimeInfo() RuntimeInfo {
	return RuntimeInfo{
		Implementation: ImplNEON,
		Features:       []string{"neon", "vek"},
		Accelerated:    true,
	}
}
