package simd

import (
	"math"
	"testing"

	"github.com/orneryd/sumbench/pkg/floats"
)

func TestSumVariantsSmall(t *testing.T) {
	tests := []struct {
		name     string
		x        []float64
		expected float64
	}{
		{
			name:     "empty",
			x:        []float64{},
			expected: 0,
		},
		{
			name:     "nil",
			x:        nil,
			expected: 0,
		},
		{
			name:     "single",
			x:        []float64{2.5},
			expected: 2.5,
		},
		{
			name:     "three ones",
			x:        []float64{1, 1, 1},
			expected: 3, // exact, no rounding ambiguity at this size
		},
		{
			name:     "negatives cancel",
			x:        []float64{1.5, -1.5, 2.0, -2.0},
			expected: 0,
		},
		{
			name:     "below unroll width",
			x:        []float64{1, 2, 3, 4, 5, 6, 7},
			expected: 28,
		},
		{
			name:     "exactly unroll width",
			x:        []float64{1, 2, 3, 4, 5, 6, 7, 8},
			expected: 36,
		},
		{
			name:     "unroll width plus remainder",
			x:        []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
			expected: 66,
		},
	}

	variants := []struct {
		name string
		fn   func([]float64) float64
	}{
		{"Sum", Sum},
		{"SumLoop", SumLoop},
		{"SumVec", SumVec},
		{"VekSum", VekSum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, v := range variants {
				if got := v.fn(tt.x); got != tt.expected {
					t.Errorf("%s() = %v, want %v", v.name, got, tt.expected)
				}
			}
		})
	}
}

func TestSumLoopMatchesSum(t *testing.T) {
	x := randomArray(100001)
	// Both are strictly sequential, so they must agree bit for bit.
	if Sum(x) != SumLoop(x) {
		t.Errorf("Sum and SumLoop disagree on identical sequential accumulation")
	}
}

func TestSumVecCloseToSum(t *testing.T) {
	// Lane-parallel accumulation reorders additions; the result may
	// differ in low bits but must stay within the n-scaled tolerance.
	x := randomArray(1_000_003)
	ref := Sum(x)
	for _, v := range []struct {
		name string
		fn   func([]float64) float64
	}{
		{"SumVec", SumVec},
		{"VekSum", VekSum},
	} {
		got := v.fn(x)
		if !floats.Close(got, ref, len(x)) {
			t.Errorf("%s() = %v, reference = %v, outside tolerance for n=%d",
				v.name, got, ref, len(x))
		}
	}
}

func TestSumLargeUniformNearHalfN(t *testing.T) {
	const n = 1_000_000
	x := randomArray(n)
	sum := Sum(x)
	sigma := math.Sqrt(n / 12.0)
	if math.Abs(sum-0.5*n) > 6*sigma {
		t.Errorf("Sum of %d uniforms = %v, want about %v", n, sum, 0.5*n)
	}
}

func TestInfo(t *testing.T) {
	info := Info()
	switch info.Implementation {
	case ImplGeneric, ImplAVX2, ImplNEON:
	default:
		t.Errorf("unexpected implementation %q", info.Implementation)
	}
}
