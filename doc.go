// Package imagegraph provides a node-graph image compositing engine.
//
// # Overview
//
// imagegraph evaluates a directed graph of image-processing nodes (input,
// color adjustment, box blur, tiling/offset remap, two-source blend). Each
// node transforms a texture and feeds downstream nodes, culminating in a
// final composited output. Kernels are pure per-pixel functions with a
// scalar reference pass and an optional data-parallel backend that must
// produce identical results.
//
// # Quick Start
//
//	import "github.com/Hu-zihaoOo/ImageGraph"
//
//	g := imagegraph.NewGraph()
//	in := g.AddNode(imagegraph.KindInput)
//	in.SetSource(src)
//	blur := g.AddNode(imagegraph.KindBlur)
//	blur.Blur.Radius = 2
//	g.Connect(in.ID, 0, blur.ID, 0)
//
//	out := g.Evaluate(blur.ID)
//
// # Kernel Backends
//
// By default every kernel runs on the scalar reference implementation.
// Importing the parallel package registers a worker-pool backend that
// computes output rows concurrently:
//
//	import _ "github.com/Hu-zihaoOo/ImageGraph/parallel"
//
// If a registered backend fails to dispatch, evaluation transparently
// falls back to the scalar pass and logs a warning. No kernel failure is
// ever surfaced to the caller.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Graph, Node, Texture, RGBA, Kernel, Previewer
//   - Kernels: color adjust, blur, tile/offset, blend (root package)
//   - Backends: parallel (worker pool), internal/parallel (row pool)
package imagegraph
