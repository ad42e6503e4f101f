package interp

import (
	"fmt"
	"reflect"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	"github.com/orneryd/sumbench/pkg/simd"
)

// bridgeSrc is the interpreted prelude. BuiltinSum and VekSum delegate to
// host-compiled code through the export table, so calling them from Go
// measures the per-call cost of crossing into the interpreter and back,
// not the summation itself.
const bridgeSrc = `package bridge

import "sumbench/host"

func BuiltinSum(x []float64) float64 {
	return host.Sum(x)
}

func VekSum(x []float64) float64 {
	return host.VekSum(x)
}
`

// LoopSrc is the hand-written summation in the interpreter's own syntax.
// Every element crosses the interpreter's evaluation loop, which is the
// point: this is the intentionally slow variant.
const LoopSrc = `package bridge

func LoopSum(x []float64) float64 {
	s := 0.0
	for i := 0; i < len(x); i++ {
		s += x[i]
	}
	return s
}
`

// Yaegi adapts the yaegi Go interpreter to the Adapter interface.
type Yaegi struct {
	i *interp.Interpreter
}

var _ Adapter = (*Yaegi)(nil)

// NewYaegi builds an interpreter with the stdlib and the host export
// table loaded, and the bridge prelude evaluated.
func NewYaegi() (*Yaegi, error) {
	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("interp: loading stdlib symbols: %w", err)
	}
	err := i.Use(interp.Exports{
		"sumbench/host/host": {
			"Sum":    reflect.ValueOf(simd.Sum),
			"VekSum": reflect.ValueOf(simd.VekSum),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("interp: loading host symbols: %w", err)
	}
	if _, err := i.Eval(bridgeSrc); err != nil {
		return nil, fmt.Errorf("interp: evaluating bridge prelude: %w", err)
	}
	return &Yaegi{i: i}, nil
}

// Callable returns one of the prelude functions by its exported name
// ("BuiltinSum" or "VekSum").
func (y *Yaegi) Callable(name string) (SumFunc, error) {
	switch name {
	case "BuiltinSum", "VekSum":
		return y.extract("bridge." + name)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCallable, name)
	}
}

// DefineInline evaluates src (a chunk of the bridge package) and returns
// the function bound to symbol, e.g. "bridge.LoopSum".
func (y *Yaegi) DefineInline(src, symbol string) (SumFunc, error) {
	if _, err := y.i.Eval(src); err != nil {
		return nil, fmt.Errorf("interp: evaluating inline source: %w", err)
	}
	return y.extract(symbol)
}

func (y *Yaegi) extract(symbol string) (SumFunc, error) {
	v, err := y.i.Eval(symbol)
	if err != nil {
		return nil, fmt.Errorf("interp: looking up %s: %w", symbol, err)
	}
	fn, ok := v.Interface().(func([]float64) float64)
	if !ok {
		return nil, fmt.Errorf("%w: %s is %s", ErrBadSignature, symbol, v.Type())
	}
	return fn, nil
}
