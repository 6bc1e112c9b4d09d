package parallel

import (
	"errors"
	"log/slog"
	"sync/atomic"

	imagegraph "github.com/Hu-zihaoOo/ImageGraph"
)

// Backend executes kernels by slicing output rows across a worker pool.
// Each row task writes only its own pixels, so the result is numerically
// identical to the scalar reference pass.
type Backend struct {
	workers int
	pool    *Pool
	logger  atomic.Pointer[slog.Logger]
}

// NewBackend creates a backend with the given worker count. Zero or
// negative means GOMAXPROCS. The pool is started by Init.
func NewBackend(workers int) *Backend {
	return &Backend{workers: workers}
}

// Name implements imagegraph.KernelBackend.
func (b *Backend) Name() string { return "worker-pool" }

// Init implements imagegraph.KernelBackend.
func (b *Backend) Init() error {
	if b.pool != nil {
		return nil
	}
	b.pool = New(b.workers)
	return nil
}

// Close implements imagegraph.KernelBackend.
func (b *Backend) Close() {
	if b.pool != nil {
		b.pool.Close()
	}
}

// Run implements imagegraph.KernelBackend. Rows are computed concurrently;
// pixels within a row in raster order.
func (b *Backend) Run(k imagegraph.Kernel, dst *imagegraph.Texture) error {
	if b.pool == nil {
		return errors.New("parallel: backend not initialized")
	}
	w, h := k.Bounds()
	if l := b.logger.Load(); l != nil {
		l.Debug("dispatching kernel", "kernel", k.Name(), "width", w, "height", h,
			"workers", b.pool.Workers())
	}
	b.pool.Run(h, func(y int) {
		for x := 0; x < w; x++ {
			dst.Set(x, y, k.Pixel(x, y))
		}
	})
	return nil
}

// SetLogger accepts the engine logger, propagated by imagegraph.SetLogger.
func (b *Backend) SetLogger(l *slog.Logger) {
	b.logger.Store(l)
}
