package imagegraph

// Kernel is a pure per-pixel image transform. Implementations read only
// from their source texture(s) and parameters; Pixel must be safe to call
// concurrently for distinct coordinates so that scalar and data-parallel
// execution produce identical output.
type Kernel interface {
	// Name identifies the kernel for logging and diagnostics.
	Name() string

	// Bounds returns the output dimensions.
	Bounds() (width, height int)

	// Pixel computes the output sample at (x, y).
	Pixel(x, y int) RGBA
}

// RunScalar executes a kernel over all pixels in raster order on a single
// goroutine. This is the reference semantics every backend must match.
func RunScalar(k Kernel, dst *Texture) {
	w, h := k.Bounds()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.Set(x, y, k.Pixel(x, y))
		}
	}
}
