// Package suite wires the pieces of sumbench together: it generates the
// shared input array, constructs every summation variant, validates each
// against the reference, times the survivors, and produces the results
// tables.
//
// Execution is strictly sequential. Variants run one after another on a
// single goroutine; racing trials against each other would contaminate
// the wall-clock numbers the whole tool exists to produce.
package suite

import (
	"errors"
	"fmt"

	"github.com/orneryd/sumbench/pkg/bench"
	"github.com/orneryd/sumbench/pkg/config"
	"github.com/orneryd/sumbench/pkg/dataset"
	"github.com/orneryd/sumbench/pkg/floats"
	"github.com/orneryd/sumbench/pkg/interp"
	"github.com/orneryd/sumbench/pkg/native"
	"github.com/orneryd/sumbench/pkg/report"
	"github.com/orneryd/sumbench/pkg/simd"
)

// ErrVerification marks a variant whose sum disagreed with the reference.
var ErrVerification = errors.New("suite: variant result disagrees with reference")

// errDisabled marks variants skipped by configuration.
var errDisabled = errors.New("suite: variant disabled by configuration")

// Variant is one summation strategy. Fn is nil when the variant could not
// be constructed; Err then says why.
type Variant struct {
	Label string
	Fn    func([]float64) float64
	Err   error
}

// VariantResult is the outcome for one variant: either a benchmark result
// or the error that kept it out of the timings.
type VariantResult struct {
	Label string
	Err   error
	Bench bench.Result
}

// Results holds everything one full run produces.
type Results struct {
	Reference float64
	Variants  []VariantResult
	// Table has one row per variant in declaration order.
	Table *report.Table
	// Sorted is Table re-sorted ascending by best time, absent rows last.
	Sorted *report.Table
}

// Failed returns the verification failures, if any. Unavailable variants
// are not failures; a wrong answer is.
func (r *Results) Failed() []VariantResult {
	var out []VariantResult
	for _, v := range r.Variants {
		if v.Err != nil && errors.Is(v.Err, ErrVerification) {
			out = append(out, v)
		}
	}
	return out
}

// Suite owns the input array, the variant set and the native kernel's
// temporary shared library.
type Suite struct {
	cfg      *config.Config
	data     []float64
	variants []Variant
	kernel   *native.Kernel

	adapter    interp.Adapter
	adapterErr error
}

// New generates the input array and constructs all variants in their fixed
// declaration order. Variants whose substrate is unavailable (no C
// toolchain, interpreter failure) are carried as absent, not dropped:
// they still get a table row.
func New(cfg *config.Config) *Suite {
	s := &Suite{cfg: cfg}

	if cfg.Seed != 0 {
		s.data = dataset.UniformSeeded(cfg.Size, cfg.Seed)
	} else {
		s.data = dataset.Uniform(cfg.Size)
	}

	s.variants = []Variant{
		s.nativeVariant(),
		s.bridgeVariant("yaegi/builtin", func(a interp.Adapter) (interp.SumFunc, error) {
			return a.Callable("BuiltinSum")
		}),
		s.bridgeVariant("yaegi/vek", func(a interp.Adapter) (interp.SumFunc, error) {
			return a.Callable("VekSum")
		}),
		s.bridgeVariant("yaegi/loop", func(a interp.Adapter) (interp.SumFunc, error) {
			return a.DefineInline(interp.LoopSrc, "bridge.LoopSum")
		}),
		s.goVariant("go/sum", simd.Sum),
		s.goVariant("vek/sum", simd.VekSum),
		s.goVariant("go/loop", simd.SumLoop),
		s.goVariant("go/simd", simd.SumVec),
	}
	return s
}

// Data exposes the shared input array (read-only by convention).
func (s *Suite) Data() []float64 { return s.data }

// Variants returns the variant set in declaration order.
func (s *Suite) Variants() []Variant { return s.variants }

func (s *Suite) goVariant(label string, fn func([]float64) float64) Variant {
	if s.cfg.Disabled(label) {
		return Variant{Label: label, Err: errDisabled}
	}
	return Variant{Label: label, Fn: fn}
}

func (s *Suite) nativeVariant() Variant {
	const label = "c/ffi"
	if s.cfg.Disabled(label) {
		return Variant{Label: label, Err: errDisabled}
	}
	k, err := native.NewKernelWith(native.Source(), s.cfg.CC)
	if err != nil {
		return Variant{Label: label, Err: err}
	}
	s.kernel = k
	return Variant{Label: label, Fn: k.Sum}
}

// adapter is built lazily so a broken interpreter disables all three
// bridge variants with the same recorded reason.
func (s *Suite) bridgeVariant(label string, get func(interp.Adapter) (interp.SumFunc, error)) Variant {
	if s.cfg.Disabled(label) {
		return Variant{Label: label, Err: errDisabled}
	}
	if s.adapterErr != nil {
		return Variant{Label: label, Err: s.adapterErr}
	}
	if s.adapter == nil {
		a, err := interp.NewYaegi()
		if err != nil {
			s.adapterErr = err
			return Variant{Label: label, Err: err}
		}
		s.adapter = a
	}
	fn, err := get(s.adapter)
	if err != nil {
		return Variant{Label: label, Err: err}
	}
	return Variant{Label: label, Fn: fn}
}

// Run validates and times every variant. The reference value is the
// strictly sequential range-loop sum over the shared array. A variant
// whose result fails the tolerance check is excluded from timing and
// reported with ErrVerification; it never appears in the table as if it
// had been validated.
func (s *Suite) Run() *Results {
	ref := simd.Sum(s.data)
	n := len(s.data)

	runner := &bench.Runner{
		Budget:    s.cfg.Budget,
		MaxTrials: s.cfg.MaxTrials,
		Warmup:    s.cfg.Warmup,
	}

	res := &Results{Reference: ref, Table: report.New()}
	for _, v := range s.variants {
		vr := VariantResult{Label: v.Label, Err: v.Err}
		if v.Fn != nil {
			got := v.Fn(s.data)
			if !floats.Close(got, ref, n) {
				vr.Err = fmt.Errorf("%w: %s returned %v, reference %v (n=%d)",
					ErrVerification, v.Label, got, ref, n)
			} else {
				data := s.data
				fn := v.Fn
				vr.Bench = runner.Run(func() float64 { return fn(data) })
			}
		}
		res.Variants = append(res.Variants, vr)

		if vr.Err != nil {
			res.Table.Add(vr.Label, report.Absent())
		} else {
			res.Table.Add(vr.Label, report.Present(vr.Bench.Best))
		}
	}
	res.Sorted = res.Table.SortByBest()
	return res
}

// Close releases the native kernel's temporary shared library.
// Best-effort; safe to call when the kernel never came up.
func (s *Suite) Close() error {
	if s.kernel != nil {
		err := s.kernel.Close()
		s.kernel = nil
		return err
	}
	return nil
}
