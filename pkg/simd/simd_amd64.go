//go:build amd64 && !nosimd

package simd

import "golang.org/x/sys/cpu"

// x86/amd64 optimized implementation.
// Uses loop unrolling that the Go compiler can auto-vectorize with AVX2/SSE.

// hasAVX2 checks if the CPU supports AVX2+FMA at runtime
var hasAVX2 = cpu.X86.HasAVX2 && cpu.X86.HasFMA

func sumVec(x []float64) float64 {
	n := len(x)

	// 8-way unrolling: independent accumulators let the compiler keep
	// multiple AVX2 lanes (4 float64s per 256-bit register) in flight.
	sum0 := 0.0
	sum1 := 0.0
	sum2 := 0.0
	sum3 := 0.0
	sum4 := 0.0
	sum5 := 0.0
	sum6 := 0.0
	sum7 := 0.0

	i := 0
	for ; i <= n-8; i += 8 {
		sum0 += x[i]
		sum1 += x[i+1]
		sum2 += x[i+2]
		sum3 += x[i+3]
		sum4 += x[i+4]
		sum5 += x[i+5]
		sum6 += x[i+6]
		sum7 += x[i+7]
	}

	// Handle remaining elements
	for ; i < n; i++ {
		sum0 += x[i]
	}

	return sum0 + sum1 + sum2 + sum3 + sum4 + sum5 + sum6 + sum7
}

func runtimeInfo() RuntimeInfo {
	if hasAVX2 {
		return RuntimeInfo{
			Implementation: ImplAVX2,
			Features:       []string{"avx2", "fma", "auto-vectorized"},
			Accelerated:    true,
		}
	}
	return RuntimeInfo{
		Implementation: ImplGeneric,
		Features:       []string{"sse2"},
		Accelerated:    false,
	}
}
