package imagegraph

import (
	"errors"
	"sync"
)

// ErrFallbackToScalar indicates a kernel backend cannot handle the given
// kernel. The dispatcher transparently falls back to the scalar pass.
var ErrFallbackToScalar = errors.New("imagegraph: falling back to scalar execution")

// KernelBackend is an optional data-parallel execution provider.
//
// When registered via RegisterBackend, Dispatch tries the backend first
// for every kernel. If Run returns ErrFallbackToScalar or any other
// error, execution transparently falls back to the scalar reference pass.
//
// A backend must compute each output pixel independently via Kernel.Pixel
// with no cross-pixel ordering guarantee; the per-pixel contract makes
// backend and scalar output numerically identical.
type KernelBackend interface {
	// Name returns the backend name (e.g., "worker-pool").
	Name() string

	// Init initializes backend resources. Called once during registration.
	Init() error

	// Close releases backend resources.
	Close()

	// Run executes the kernel, writing every output pixel of dst.
	// Returns ErrFallbackToScalar if the kernel cannot be dispatched.
	Run(k Kernel, dst *Texture) error
}

var (
	backendMu sync.RWMutex
	backend   KernelBackend
)

// RegisterBackend registers a kernel backend for data-parallel execution.
//
// Only one backend can be registered; subsequent calls replace (and close)
// the previous one. The backend's Init method is called during
// registration; if it fails, the previous backend stays installed and the
// error is returned.
func RegisterBackend(b KernelBackend) error {
	if b == nil {
		return errors.New("imagegraph: backend must not be nil")
	}
	if err := b.Init(); err != nil {
		return err
	}
	propagateLogger(b, Logger())
	backendMu.Lock()
	old := backend
	backend = b
	backendMu.Unlock()
	if old != nil {
		old.Close()
	}
	Logger().Info("kernel backend registered", "backend", b.Name())
	return nil
}

// Backend returns the currently registered kernel backend, or nil if none.
func Backend() KernelBackend {
	backendMu.RLock()
	b := backend
	backendMu.RUnlock()
	return b
}

// Dispatch allocates the kernel's output texture and executes the kernel,
// preferring the registered backend and falling back to the scalar pass on
// any backend error. Dispatch never fails; degraded execution is reported
// through the logger only.
func Dispatch(k Kernel) *Texture {
	w, h := k.Bounds()
	dst := NewTexture(w, h)
	if b := Backend(); b != nil {
		err := b.Run(k, dst)
		if err == nil {
			return dst
		}
		Logger().Warn("kernel backend failed, falling back to scalar",
			"backend", b.Name(), "kernel", k.Name(), "err", err)
	}
	RunScalar(k, dst)
	return dst
}
