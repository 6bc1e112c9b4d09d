//go:build !noparallel

// Package parallel registers the worker-pool kernel backend for
// data-parallel kernel execution.
//
// Import this package to have every kernel dispatch split output rows
// across GOMAXPROCS workers:
//
//	import _ "github.com/Hu-zihaoOo/ImageGraph/parallel" // enable parallel kernels
//
// The backend honors the per-pixel kernel contract, so its output is
// numerically identical to the scalar reference pass. If registration
// fails the engine keeps running on the scalar implementation.
package parallel

import (
	imagegraph "github.com/Hu-zihaoOo/ImageGraph"
	parallelimpl "github.com/Hu-zihaoOo/ImageGraph/internal/parallel"
)

func init() {
	if err := Register(0); err != nil {
		imagegraph.Logger().Warn("parallel backend not available", "err", err)
	}
}

// Register installs a worker-pool backend with an explicit worker count,
// replacing any previously registered backend. Zero or negative means
// GOMAXPROCS.
func Register(workers int) error {
	return imagegraph.RegisterBackend(parallelimpl.NewBackend(workers))
}
