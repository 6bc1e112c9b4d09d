package imagegraph

// ColorAdjustParams control the color adjustment kernel.
// Brightness, contrast and saturation are in [0, 2] with 1 as identity;
// hue is a shift in [0, 1] around the color wheel with 0 as identity.
type ColorAdjustParams struct {
	Brightness float64
	Contrast   float64
	Saturation float64
	Hue        float64
}

// DefaultColorAdjustParams returns identity adjustment parameters.
func DefaultColorAdjustParams() ColorAdjustParams {
	return ColorAdjustParams{Brightness: 1, Contrast: 1, Saturation: 1, Hue: 0}
}

// ColorAdjustKernel applies brightness, contrast, saturation and hue
// adjustment per pixel, in that order:
//
//  1. scale RGB by brightness
//  2. contrast around mid-gray: (c-0.5)*contrast + 0.5
//  3. desaturate toward Rec.601 luma: lerp(luma, c, saturation)
//  4. shift hue through an RGB->HSV->RGB round trip
//
// Alpha passes through from the source pixel untouched. Intermediate
// values are never clamped; out-of-range channels survive until the final
// 8-bit conversion.
type ColorAdjustKernel struct {
	src    *Texture
	params ColorAdjustParams
}

// NewColorAdjustKernel creates a color adjustment kernel over src.
func NewColorAdjustKernel(src *Texture, params ColorAdjustParams) *ColorAdjustKernel {
	return &ColorAdjustKernel{src: src, params: params}
}

// Name implements Kernel.
func (k *ColorAdjustKernel) Name() string { return "color-adjust" }

// Bounds implements Kernel.
func (k *ColorAdjustKernel) Bounds() (int, int) {
	return k.src.Width(), k.src.Height()
}

// Pixel implements Kernel.
func (k *ColorAdjustKernel) Pixel(x, y int) RGBA {
	c := k.src.At(x, y)
	p := k.params

	r := c.R * p.Brightness
	g := c.G * p.Brightness
	b := c.B * p.Brightness

	r = (r-0.5)*p.Contrast + 0.5
	g = (g-0.5)*p.Contrast + 0.5
	b = (b-0.5)*p.Contrast + 0.5

	luma := 0.299*r + 0.587*g + 0.114*b
	r = luma + (r-luma)*p.Saturation
	g = luma + (g-luma)*p.Saturation
	b = luma + (b-luma)*p.Saturation

	h, s, v := RGBToHSV(r, g, b)
	r, g, b = HSVToRGB(frac(h+p.Hue), s, v)

	return RGBA{R: r, G: g, B: b, A: c.A}
}
