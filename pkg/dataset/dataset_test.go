package dataset

import (
	"math"
	"testing"
)

func TestUniformLength(t *testing.T) {
	for _, n := range []int{0, 1, 7, 1000} {
		x := Uniform(n)
		if len(x) != n {
			t.Errorf("Uniform(%d) returned %d elements", n, len(x))
		}
	}
}

func TestUniformRange(t *testing.T) {
	x := Uniform(10000)
	for i, v := range x {
		if v < 0 || v >= 1 {
			t.Fatalf("element %d = %v outside [0, 1)", i, v)
		}
	}
}

func TestUniformMean(t *testing.T) {
	// Sum of n uniforms has mean 0.5n and sigma sqrt(n/12).
	// 6 sigma gives a false-failure rate around 1e-9.
	const n = 1_000_000
	x := Uniform(n)
	sum := 0.0
	for _, v := range x {
		sum += v
	}
	sigma := math.Sqrt(n / 12.0)
	if math.Abs(sum-0.5*n) > 6*sigma {
		t.Errorf("sum = %v, want 0.5*n = %v within %v", sum, 0.5*n, 6*sigma)
	}
}

func TestUniformSeededReproducible(t *testing.T) {
	a := UniformSeeded(1000, 42)
	b := UniformSeeded(1000, 42)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("element %d differs between identically seeded arrays", i)
		}
	}
}
