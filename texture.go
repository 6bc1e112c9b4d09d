package imagegraph

import (
	"image"
	"math"
)

// Texture is a rectangular grid of RGBA floating-point samples, row-major,
// four channels per pixel. Channel values are unclamped; conversion to an
// 8-bit image clamps on write.
//
// A Texture is owned by whichever component produced it. The engine never
// mutates a texture it did not create.
type Texture struct {
	width  int
	height int
	data   []float64 // RGBA, 4 samples per pixel
}

// NewTexture creates a texture with the given dimensions, initialized to
// transparent black. Dimensions are clamped to at least 1x1.
func NewTexture(width, height int) *Texture {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Texture{
		width:  width,
		height: height,
		data:   make([]float64, width*height*4),
	}
}

// Width returns the width of the texture in pixels.
func (t *Texture) Width() int {
	return t.width
}

// Height returns the height of the texture in pixels.
func (t *Texture) Height() int {
	return t.height
}

// At returns the sample at (x, y). Out-of-bounds reads return transparent.
func (t *Texture) At(x, y int) RGBA {
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		return Transparent
	}
	i := (y*t.width + x) * 4
	return RGBA{
		R: t.data[i+0],
		G: t.data[i+1],
		B: t.data[i+2],
		A: t.data[i+3],
	}
}

// Set writes the sample at (x, y). Out-of-bounds writes are ignored.
func (t *Texture) Set(x, y int, c RGBA) {
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		return
	}
	i := (y*t.width + x) * 4
	t.data[i+0] = c.R
	t.data[i+1] = c.G
	t.data[i+2] = c.B
	t.data[i+3] = c.A
}

// Fill sets every pixel to the given color.
func (t *Texture) Fill(c RGBA) {
	for i := 0; i < len(t.data); i += 4 {
		t.data[i+0] = c.R
		t.data[i+1] = c.G
		t.data[i+2] = c.B
		t.data[i+3] = c.A
	}
}

// Clone returns an independent copy of the texture.
func (t *Texture) Clone() *Texture {
	c := NewTexture(t.width, t.height)
	copy(c.data, t.data)
	return c
}

// SampleUV samples the texture at normalized coordinates with point
// (nearest-neighbor) filtering and clamped addressing at the edges.
func (t *Texture) SampleUV(u, v float64) RGBA {
	x := clampIndex(int(math.Floor(u*float64(t.width))), t.width)
	y := clampIndex(int(math.Floor(v*float64(t.height))), t.height)
	return t.At(x, y)
}

// SampleUVWrap samples with point filtering and repeat addressing: the
// coordinates are wrapped into [0, 1) before lookup.
func (t *Texture) SampleUVWrap(u, v float64) RGBA {
	return t.SampleUV(frac(u), frac(v))
}

// ToImage converts the texture to a straight-alpha 8-bit image, clamping
// each channel to [0, 255].
func (t *Texture) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, t.width, t.height))
	for y := 0; y < t.height; y++ {
		for x := 0; x < t.width; x++ {
			c := t.At(x, y)
			i := img.PixOffset(x, y)
			img.Pix[i+0] = uint8(clamp255(c.R * 255))
			img.Pix[i+1] = uint8(clamp255(c.G * 255))
			img.Pix[i+2] = uint8(clamp255(c.B * 255))
			img.Pix[i+3] = uint8(clamp255(c.A * 255))
		}
	}
	return img
}

// FromImage creates a texture from an image.
func FromImage(img image.Image) *Texture {
	bounds := img.Bounds()
	t := NewTexture(bounds.Dx(), bounds.Dy())
	for y := 0; y < t.height; y++ {
		for x := 0; x < t.width; x++ {
			t.Set(x, y, FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
		}
	}
	return t
}

// frac wraps a value into [0, 1), handling negative inputs.
func frac(v float64) float64 {
	return v - math.Floor(v)
}

// clampIndex restricts a pixel index to [0, n).
func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
