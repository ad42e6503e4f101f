// Package interp embeds a second, interpreted runtime and bridges sum
// implementations out of it.
//
// The benchmark harness never talks to a concrete interpreter directly; it
// depends on Adapter, which models exactly two capabilities: fetching a
// callable the foreign runtime already knows about, and defining one from
// inline source in the foreign runtime's own syntax. Only the yaegi
// adapter exists today, but the harness does not assume that.
package interp

import "errors"

// SumFunc is the shape every bridged summation callable is narrowed to.
type SumFunc func([]float64) float64

// Adapter bridges callables out of an embedded foreign runtime.
type Adapter interface {
	// Callable returns a named function the runtime already exposes.
	Callable(name string) (SumFunc, error)

	// DefineInline evaluates source text in the runtime and returns the
	// named symbol from it.
	DefineInline(src, symbol string) (SumFunc, error)
}

// Errors
var (
	ErrUnknownCallable = errors.New("interp: unknown callable")
	ErrBadSignature    = errors.New("interp: symbol does not have signature func([]float64) float64")
)
