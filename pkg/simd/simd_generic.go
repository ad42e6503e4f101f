//go:build (!amd64 && !arm64) || nosimd

package simd

import "github.com/viterin/vek"

// Generic fallback using the viterin/vek library. On platforms without
// AVX2/NEON, vek uses optimized pure Go implementations that are still
// faster than naive loops due to better memory access patterns.

func sumVec(x []float64) float64 {
	return vek.Sum(x)
}

func runtimeInfo() RuntimeInfo {
	info := vek.Info()
	return RuntimeInfo{
		Implementation: ImplGeneric,
		Features:       info.CPUFeatures,
		Accelerated:    info.Acceleration,
	}
}
