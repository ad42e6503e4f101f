// Package dataset generates the input arrays the benchmark variants sum.
//
// The array is produced once per session and shared read-only across every
// variant and every timed trial. Nothing in this package (or anywhere else)
// mutates it after creation.
package dataset

import "math/rand/v2"

// Uniform returns n independent float64 samples drawn uniformly from [0, 1).
//
// The expected sum of the result is 0.5*n, which the correctness checks
// lean on: for large n the observed sum lands within a few standard
// deviations (sigma = sqrt(n/12)) of that value.
func Uniform(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = rand.Float64()
	}
	return x
}

// UniformSeeded is Uniform with a fixed seed, for reproducible runs.
func UniformSeeded(n int, seed uint64) []float64 {
	rng := rand.New(rand.NewPCG(seed, seed))
	x := make([]float64, n)
	for i := range x {
		x[i] = rng.Float64()
	}
	return x
}
