// Package simd provides the in-process float64 summation kernels for
// sumbench.
//
// Three accumulation strategies are exposed, identical in mathematics and
// distinct in execution:
//
//   - Sum: idiomatic range loop, strictly sequential rounding order. This
//     is the reference every other variant is validated against.
//   - SumLoop: explicit index loop with an explicit 0.0 accumulator, also
//     strictly sequential.
//   - SumVec: accumulation split across independent partial sums so the
//     compiler (or the vek SIMD assembly on arm64) can keep multiple
//     lanes in flight. Reordering the additions changes the rounding
//     sequence, so SumVec may differ from Sum in the low-order bits; the
//     results remain within the tolerance of pkg/floats.Close.
//
// Platform selection mirrors the usual build-tag layout:
//
//   - x86/amd64: 8-way unrolled loop that auto-vectorizes with AVX2
//   - arm64: viterin/vek NEON SIMD assembly
//   - fallback: viterin/vek optimized pure Go
//
// VekSum exposes the vek library's sum directly on every platform; it is
// benchmarked as its own variant (the "optimized numeric library" row).
//
// Info reports which implementation is active. No configuration is
// required; detection happens at startup.
package simd
