package imagegraph

// BlurParams control the box blur kernel. Radius is the half-width of the
// square averaging window in pixels; 0 is the identity.
type BlurParams struct {
	Radius int
}

// DefaultBlurParams returns a radius-1 blur.
func DefaultBlurParams() BlurParams {
	return BlurParams{Radius: 1}
}

// BlurKernel averages the square window [-radius, +radius]^2 around each
// pixel. Out-of-bounds samples are excluded from the average entirely (no
// edge clamping or wraparound), so the divisor shrinks near edges.
//
// Alpha is never blurred: the output alpha is the source pixel's own alpha
// at the same coordinate.
type BlurKernel struct {
	src    *Texture
	params BlurParams
}

// NewBlurKernel creates a box blur kernel over src. A negative radius is
// treated as 0 (identity).
func NewBlurKernel(src *Texture, params BlurParams) *BlurKernel {
	if params.Radius < 0 {
		params.Radius = 0
	}
	return &BlurKernel{src: src, params: params}
}

// Name implements Kernel.
func (k *BlurKernel) Name() string { return "box-blur" }

// Bounds implements Kernel.
func (k *BlurKernel) Bounds() (int, int) {
	return k.src.Width(), k.src.Height()
}

// Pixel implements Kernel.
func (k *BlurKernel) Pixel(x, y int) RGBA {
	w := k.src.Width()
	h := k.src.Height()
	r := k.params.Radius

	var sumR, sumG, sumB float64
	count := 0
	for dy := -r; dy <= r; dy++ {
		sy := y + dy
		if sy < 0 || sy >= h {
			continue
		}
		for dx := -r; dx <= r; dx++ {
			sx := x + dx
			if sx < 0 || sx >= w {
				continue
			}
			c := k.src.At(sx, sy)
			sumR += c.R
			sumG += c.G
			sumB += c.B
			count++
		}
	}

	// The window always contains the center pixel, so count >= 1.
	inv := 1 / float64(count)
	return RGBA{
		R: sumR * inv,
		G: sumG * inv,
		B: sumB * inv,
		A: k.src.At(x, y).A,
	}
}
