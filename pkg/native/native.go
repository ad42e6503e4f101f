// Package native compiles a C summation routine at runtime and calls it
// through a dynamic-library FFI binding.
//
// The pipeline is: C source (embedded below) -> system C compiler
// (position-independent, optimized, native instruction set) -> temporary
// shared library -> dlopen -> one-time symbol binding with an explicit
// signature. The signature is declared exactly once, at bind time:
//
//	double sum_f64(size_t n, const double *x)
//
// maps to
//
//	func(n uintptr, x *float64) float64
//
// If no C toolchain is installed, or the platform has no dynamic loader
// support, NewKernel returns an error and the caller records the variant
// as unavailable. Nothing in this package panics over a missing compiler.
package native

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

//go:embed sum.c
var cSource string

// Source returns the embedded C source text of the summation routine.
func Source() string { return cSource }

// Errors
var (
	ErrToolchainNotFound   = errors.New("native: no C compiler found in PATH (tried cc, gcc, clang)")
	ErrCompileFailed       = errors.New("native: C compilation failed")
	ErrUnsupportedPlatform = errors.New("native: dynamic library loading not supported on this platform")
	ErrKernelClosed        = errors.New("native: kernel has been closed")
)

// compiler candidates, in preference order
var compilerCandidates = []string{"cc", "gcc", "clang"}

// FindCompiler returns the path of the first usable C compiler, preferring
// the override if non-empty.
func FindCompiler(override string) (string, error) {
	candidates := compilerCandidates
	if override != "" {
		candidates = []string{override}
	}
	for _, c := range candidates {
		if path, err := exec.LookPath(c); err == nil {
			return path, nil
		}
	}
	return "", ErrToolchainNotFound
}

// libExt returns the platform's shared-library file extension.
func libExt() string {
	switch runtime.GOOS {
	case "darwin":
		return ".dylib"
	case "windows":
		return ".dll"
	default:
		return ".so"
	}
}

// Compile feeds src to the C compiler on stdin and writes a shared library
// into a fresh temporary directory, returning the library path. The caller
// owns the directory and removes it when done.
func Compile(src, compilerOverride string) (string, error) {
	cc, err := FindCompiler(compilerOverride)
	if err != nil {
		return "", err
	}

	dir, err := os.MkdirTemp("", "sumbench-native-")
	if err != nil {
		return "", fmt.Errorf("native: creating temp dir: %w", err)
	}
	out := filepath.Join(dir, "libsum"+libExt())

	// -x c - reads the translation unit from stdin; -march=native enables
	// the host's full instruction set so the C loop can vectorize.
	cmd := exec.Command(cc, "-O3", "-march=native", "-fPIC", "-shared", "-x", "c", "-", "-o", out)
	cmd.Stdin = strings.NewReader(src)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		os.RemoveAll(dir)
		return "", fmt.Errorf("%w: %v\n%s", ErrCompileFailed, err, stderr.String())
	}
	return out, nil
}

// Kernel is a compiled-and-bound native summation routine.
type Kernel struct {
	libPath string
	lib     uintptr
	sum     func(n uintptr, x *float64) float64
}

// Available reports whether this platform can compile and load the native
// kernel at all (toolchain present and dynamic loading supported).
func Available() bool {
	if !loaderSupported() {
		return false
	}
	_, err := FindCompiler("")
	return err == nil
}

// NewKernel compiles the embedded C source and binds the sum_f64 symbol.
func NewKernel() (*Kernel, error) {
	return NewKernelWith(cSource, "")
}

// NewKernelWith is NewKernel with explicit source text and an optional
// compiler override.
func NewKernelWith(src, compilerOverride string) (*Kernel, error) {
	if !loaderSupported() {
		return nil, ErrUnsupportedPlatform
	}

	path, err := Compile(src, compilerOverride)
	if err != nil {
		return nil, err
	}

	k := &Kernel{libPath: path}
	if err := k.bind(); err != nil {
		os.RemoveAll(filepath.Dir(path))
		return nil, err
	}
	return k, nil
}

// Sum calls the bound native routine. Returns 0 for an empty slice without
// crossing the FFI boundary (no base pointer exists to pass).
func (k *Kernel) Sum(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return k.sum(uintptr(len(x)), &x[0])
}

// LibPath returns the on-disk path of the compiled shared library.
func (k *Kernel) LibPath() string {
	return k.libPath
}

// Close unloads the library and removes the temporary directory.
// Best-effort: the library lives under the OS temp area either way.
func (k *Kernel) Close() error {
	k.sum = nil
	if k.lib != 0 {
		closeLibrary(k.lib)
		k.lib = 0
	}
	if k.libPath != "" {
		err := os.RemoveAll(filepath.Dir(k.libPath))
		k.libPath = ""
		return err
	}
	return nil
}
