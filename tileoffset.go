package imagegraph

// TileOffsetParams control the tiling/offset remap kernel. Tiling scales
// the UV space (values above 1 repeat the source), offset shifts it.
// The identity is tiling 1,1 with offset 0,0.
type TileOffsetParams struct {
	TilingX float64
	TilingY float64
	OffsetX float64
	OffsetY float64
}

// DefaultTileOffsetParams returns identity remap parameters.
func DefaultTileOffsetParams() TileOffsetParams {
	return TileOffsetParams{TilingX: 1, TilingY: 1}
}

// TileOffsetKernel remaps each output UV as
//
//	uv' = frac(uv * tiling + offset)
//
// with repeat (wraparound) addressing and point sampling at pixel centers.
//
// The output alpha is the source pixel's own alpha at the original,
// pre-remap UV, not the remapped sample's alpha.
type TileOffsetKernel struct {
	src    *Texture
	params TileOffsetParams
}

// NewTileOffsetKernel creates a tiling/offset kernel over src.
func NewTileOffsetKernel(src *Texture, params TileOffsetParams) *TileOffsetKernel {
	return &TileOffsetKernel{src: src, params: params}
}

// Name implements Kernel.
func (k *TileOffsetKernel) Name() string { return "tile-offset" }

// Bounds implements Kernel.
func (k *TileOffsetKernel) Bounds() (int, int) {
	return k.src.Width(), k.src.Height()
}

// Pixel implements Kernel.
func (k *TileOffsetKernel) Pixel(x, y int) RGBA {
	p := k.params
	u := (float64(x) + 0.5) / float64(k.src.Width())
	v := (float64(y) + 0.5) / float64(k.src.Height())

	c := k.src.SampleUVWrap(u*p.TilingX+p.OffsetX, v*p.TilingY+p.OffsetY)
	c.A = k.src.At(x, y).A
	return c
}
