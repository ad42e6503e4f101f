//go:build linux || darwin || freebsd

package native

import (
	"fmt"

	"github.com/ebitengine/purego"
)

func loaderSupported() bool { return true }

// bind loads the compiled library and registers the sum_f64 symbol with
// its single authoritative signature: (size_t, const double*) -> double.
func (k *Kernel) bind() error {
	lib, err := purego.Dlopen(k.libPath, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return fmt.Errorf("native: loading %s: %w", k.libPath, err)
	}
	k.lib = lib

	purego.RegisterLibFunc(&k.sum, lib, "sum_f64")
	return nil
}

func closeLibrary(lib uintptr) {
	purego.Dlclose(lib)
}
