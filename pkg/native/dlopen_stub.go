//go:build !linux && !darwin && !freebsd

package native

func loaderSupported() bool { return false }

func (k *Kernel) bind() error {
	return ErrUnsupportedPlatform
}

func closeLibrary(lib uintptr) {}
